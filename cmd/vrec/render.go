package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/vrec/internal/demo"
	"github.com/vango-dev/vrec/pkg/surface"
)

func renderCmd(g *globalFlags) *cobra.Command {
	var (
		format string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Mount the demo app and print the surface",
		Long: `Mount the demo app into an in-memory surface, run its effects and
print the result.

Formats:
  html   serialized markup (default)
  json   node tree as JSON
  yaml   node tree as YAML

Examples:
  vrec render
  vrec render --pretty
  vrec render --format=json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			session := demo.NewSession(e.sessionOptions()...)
			defer session.Close()
			return writeSurface(cmd.OutOrStdout(), session.Body, format, pretty)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "html", "Output format: html, json or yaml")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent HTML output")

	return cmd
}

// writeSurface prints the children of body in the given format.
func writeSurface(w io.Writer, body *surface.MemNode, format string, pretty bool) error {
	switch format {
	case "html":
		for _, c := range body.Children {
			if err := surface.WriteHTML(w, c, surface.HTMLOptions{Pretty: pretty}); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(w)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(surface.Snapshot(body))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(surface.Snapshot(body)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want html, json or yaml)", format)
	}
}
