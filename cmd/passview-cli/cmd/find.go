package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"passview/internal/application/commands"
)

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Fuzzy-search passwords by path",
	Long: `Fuzzy-search password paths, best matches first.

Examples:
  passview-cli find wrkmail
  passview-cli find "personal bank"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := GetStore().ListEntries()
		if err != nil {
			return err
		}

		for _, e := range commands.Search(entries, args[0]) {
			fmt.Println(e)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
