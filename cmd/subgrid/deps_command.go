package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"subgrid/internal/deps"
)

func newDepsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check availability of required external tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			statuses := deps.CheckBinaries(deps.Default(cfg.Probe.FFprobeBinary))
			out := cmd.OutOrStdout()
			missing := 0
			for _, status := range statuses {
				mark := "ok"
				if !status.Available {
					mark = "missing"
					if !status.Optional {
						missing++
					}
				}
				fmt.Fprintf(out, "%-10s %-8s %s", status.Name, mark, status.Description)
				if status.Detail != "" {
					fmt.Fprintf(out, " (%s)", status.Detail)
				}
				fmt.Fprintln(out)
			}
			if missing > 0 {
				return fmt.Errorf("%d required dependency(ies) missing", missing)
			}
			return nil
		},
	}
}
