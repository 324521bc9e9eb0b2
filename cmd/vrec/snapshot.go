package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vrec/internal/demo"
	"github.com/vango-dev/vrec/internal/snapshot"
)

func snapshotCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage stored surface snapshots",
		Long: `Save, list, show and delete snapshots of the demo surface.

Snapshots go to the directory in vrec.yaml, or to S3 when
snapshot.s3.bucket is set.`,
	}

	cmd.AddCommand(
		snapshotSaveCmd(g),
		snapshotListCmd(g),
		snapshotShowCmd(g),
		snapshotDeleteCmd(g),
	)
	return cmd
}

func snapshotSaveCmd(g *globalFlags) *cobra.Command {
	var script string

	cmd := &cobra.Command{
		Use:   "save NAME",
		Short: "Render the demo and store the surface",
		Long: `Render the demo, optionally play a script, and store the surface
under NAME.

Examples:
  vrec snapshot save initial
  vrec snapshot save after-script --script=-`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !snapshot.ValidName(name) {
				return fmt.Errorf("invalid snapshot name %q", name)
			}
			e, err := loadEnv(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			store, err := e.store(cmd.Context())
			if err != nil {
				return err
			}

			session := demo.NewSession(e.sessionOptions()...)
			if script != "" {
				path := script
				if path == "-" {
					path = ""
				}
				steps, err := loadSteps(path)
				if err != nil {
					return err
				}
				if err := session.Play(steps, nil); err != nil {
					return err
				}
			}
			snap := snapshot.New(name, session.Body)
			snap.Journal = session.App.Journal()
			session.Close()

			if err := store.Put(cmd.Context(), snap); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "saved %s", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&script, "script", "s", "", `Play a script first ("-" for the built-in one)`)

	return cmd
}

func snapshotListCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			store, err := e.store(cmd.Context())
			if err != nil {
				return err
			}
			names, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func snapshotShowCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show NAME",
		Short: "Print a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			store, err := e.store(cmd.Context())
			if err != nil {
				return err
			}
			snap, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "html":
				_, err = fmt.Fprintln(out, snap.HTML)
				return err
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(snap)
			default:
				return fmt.Errorf("unknown format %q (want html or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "html", "Output format: html or json")

	return cmd
}

func snapshotDeleteCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a stored snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			store, err := e.store(cmd.Context())
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "deleted %s", args[0])
			return nil
		},
	}
}
