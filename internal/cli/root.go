// Package cli wires the showcase commands.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "showcase",
		Short:        "Small typed operations, printed to the console or served over HTTP",
		SilenceUsage: true,
	}

	cmd.AddCommand(runCmd(), serveCmd(), seedCmd())
	return cmd
}

// splitList splits a comma-separated setting, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
