package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all passwords in the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := GetStore().ListEntries()
		if err != nil {
			return err
		}

		for _, e := range entries {
			fmt.Println(e)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
