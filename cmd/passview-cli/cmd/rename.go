package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"passview/internal/application/commands"
	"passview/internal/domain"
)

var renameCmd = &cobra.Command{
	Use:   "rename <path> <new-name>",
	Short: "Rename a password in place",
	Long: `Rename a password without moving it out of its directory. The new
name may contain slashes to push it into a subdirectory.

Examples:
  passview-cli rename work/mail/gmail gmail-old
  passview-cli rename work/mail/gmail backup/gmail`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := domain.ParseEntry(args[0])

		renameCmd := commands.NewRenameCommand(GetStore(), target, args[1])
		result, err := renameCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("%s -> %s\n", target, result.Renamed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
