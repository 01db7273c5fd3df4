package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"passview/internal/application/commands"
	"passview/internal/domain"
)

var rmCmd = &cobra.Command{
	Use:   "rm <path>...",
	Short: "Remove passwords from the store",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		targets := make([]domain.Entry, 0, len(args))
		for _, p := range args {
			targets = append(targets, domain.ParseEntry(p))
		}

		deleteCmd := commands.NewDeleteCommand(GetStore(), targets)
		result, err := deleteCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
