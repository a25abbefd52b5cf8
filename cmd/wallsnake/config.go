package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wallsnake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate the game config",
	Long: `Inspect the snake config.

Config search order:
  1. --config <path>
  2. ~/.wallsnake/configs/snake.yaml
  3. ./configs/snake.yaml
  4. Built-in defaults

Values missing from a file keep their defaults.`,
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the effective config as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadSnake(flagConfig)
		if err != nil {
			return err
		}
		data, err := config.Encode(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configDefaultCmd = &cobra.Command{
	Use:   "default",
	Short: "Print the built-in default config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a config file (defaults to --config or the search order)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := flagConfig
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := config.LoadSnake(path); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "OK")
	},
}

func init() {
	configCmd.AddCommand(configPrintCmd)
	configCmd.AddCommand(configDefaultCmd)
	configCmd.AddCommand(configValidateCmd)
}
