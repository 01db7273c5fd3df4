package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"passview/internal/adapters/passstore"
	"passview/internal/config"
	"passview/internal/ports"
)

var (
	storePath string
	cfg       config.Config
	store     ports.Store
)

var rootCmd = &cobra.Command{
	Use:   "passview-cli",
	Short: "CLI for managing a pass password store",
	Long: `passview-cli is a command-line interface for a standard pass(1)
password store laid out as profile/category/name.

It provides commands to list, find, move, rename, insert, and delete
passwords, and to generate new secrets.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if storePath != "" {
			cfg.StorePath = storePath
		}
		s := passstore.New(config.ExpandHome(cfg.StorePath))
		if !s.IsInitialized() {
			return fmt.Errorf("no password store at %s", cfg.StorePath)
		}
		store = s
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&storePath, "store", "s", "", "path to the password store")
}

// GetStore returns the initialized store
func GetStore() ports.Store {
	return store
}
