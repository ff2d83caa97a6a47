package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	source     string
	target     string
	watch      bool
	dryRun     bool
	logLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "kiro",
		Short: "Kiro sorts screenshots into a month-keyed archive",
		Long:  `Kiro scans or watches a source directory, identifies screenshot images by
filename keywords, and moves them into <target>/Screenshots/<YYYY-MM>/.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganizer(cmd, opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.source, "source", "s", "", "Folder to scan or watch (default: desktop auto-detection)")
	rootCmd.Flags().StringVarP(&opts.target, "target", "t", "", "Archive root for sorted screenshots")
	rootCmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Run continuously, reacting to new files")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Simulate without moving files")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override configured log level")

	rootCmd.AddCommand(newConfigCommand(opts))

	return rootCmd
}
