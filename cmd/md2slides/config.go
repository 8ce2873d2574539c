package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/fredcamaral/md2slides/internal/adapters/secondary/config"
	"github.com/fredcamaral/md2slides/internal/domain/services"
)

// configCmd groups configuration helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the global config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configService := services.NewConfigService(config.NewTOMLLoader(), config.NewConfigMerger())
		path, err := configService.CreateGlobalConfig(cmd.Context())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return err
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Context(), cmd, nil)
		if err != nil {
			return err
		}
		encoder := toml.NewEncoder(cmd.OutOrStdout())
		encoder.Indent = "  "
		return encoder.Encode(cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configShowCmd)
}
