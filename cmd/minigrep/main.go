package main

import (
	"fmt"
	"go-practice/internal/minigrep"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var ignoreCase bool

	cmd := &cobra.Command{
		Use:           "minigrep [flags] [--] QUERY FILE",
		Short:         "Print lines of FILE that contain QUERY",
		Long:          "Print lines of FILE that contain QUERY. Set IGNORE_CASE (any value) or pass --ignore-case for a case-insensitive search. Put -- before a QUERY that starts with '-'.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := minigrep.BuildConfig(args, os.LookupEnv)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Problem parsing arguments: %v\n", err)
				os.Exit(1)
			}
			if ignoreCase {
				cfg.IgnoreCase = true
			}
			if err := minigrep.Run(cfg, cmd.OutOrStdout()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Application error: %v\n", err)
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "match without regard to case")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w (use -- before a query that starts with '-')", err)
	})
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
