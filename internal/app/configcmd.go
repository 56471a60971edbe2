package app

import (
	"github.com/spf13/cobra"

	"github.com/agbru/lunaris/internal/config"
)

func (a *Application) newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as YAML",
		Long: `Prints the configuration after applying the --config file, LUNARIS_*
environment variables and flags. The output is a valid --config file.

Example:
  LUNARIS_TIMEZONE=Asia/Tokyo lunaris config --lang zh > lunaris.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Marshal(a.Config)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
