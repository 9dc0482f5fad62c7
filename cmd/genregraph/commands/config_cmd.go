package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/genregraph/config"
	"github.com/katalvlaran/genregraph/logger"
	"github.com/katalvlaran/genregraph/report"
)

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage genregraph configuration",
	}

	var (
		path  string
		force bool
	)
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		// skips config loading
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			logger.Logger.Infow("wrote default configuration", "path", path)
			cmd.Printf("wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().StringVar(&path, "path", config.DefaultFileName, "destination file")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := a.format
			if f == report.FormatTable {
				f = report.FormatYAML
			}
			return report.Render(cmd.OutOrStdout(), f, report.Table{Title: "configuration", Data: a.cfg})
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}
