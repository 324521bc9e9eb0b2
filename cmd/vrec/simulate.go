package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vrec/internal/demo"
)

func simulateCmd(g *globalFlags) *cobra.Command {
	var (
		script  string
		quiet   bool
		journal bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay a sequence of events against the demo app",
		Long: `Replay a script of events against the demo app and print the surface
after every step.

A script is a YAML list of steps:

  - target: inc
    event: click
  - target: todo-2
    event: dblclick

Without --script the built-in script is used.

Examples:
  vrec simulate
  vrec simulate --script=steps.yaml --journal`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(g, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			steps, err := loadSteps(script)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			session := demo.NewSession(e.sessionOptions()...)
			err = session.Play(steps, func(i int, st demo.Step) {
				fmt.Fprintf(out, "step %d: %s %s\n", i+1, st.Event, st.Target)
				if !quiet {
					fmt.Fprintf(out, "%s\n\n", session.HTML())
				}
			})
			if err != nil {
				return err
			}
			session.Close()

			success(out, "played %d steps", len(steps))
			if journal {
				fmt.Fprintln(out)
				for _, entry := range session.App.Journal() {
					info(out, "%s", entry)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&script, "script", "s", "", "YAML script to play (default built-in)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print step names")
	cmd.Flags().BoolVarP(&journal, "journal", "j", false, "Print the lifecycle journal at the end")

	return cmd
}
