package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"passview/internal/application/commands"
	"passview/internal/domain"
)

var moveKeepCategory bool

var moveCmd = &cobra.Command{
	Use:   "move <path>... <destination>",
	Short: "Move passwords to another directory",
	Long: `Move one or more passwords to a destination directory.

With --keep-category each password keeps its category subdirectory
under the destination.

Examples:
  passview-cli move work/mail/gmail archive
  passview-cli move work/mail/gmail work/chat/slack old --keep-category`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		destination := args[len(args)-1]
		targets := make([]domain.Entry, 0, len(args)-1)
		for _, p := range args[:len(args)-1] {
			targets = append(targets, domain.ParseEntry(p))
		}

		moveCmd := commands.NewMoveCommand(GetStore(), targets, destination, moveKeepCategory)
		result, err := moveCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		for _, m := range result.Moved {
			fmt.Printf("%s -> %s\n", m.From, m.To)
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	moveCmd.Flags().BoolVar(&moveKeepCategory, "keep-category", false, "keep the category subdirectory under the destination")
	rootCmd.AddCommand(moveCmd)
}
