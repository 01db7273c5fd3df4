package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"passview/internal/application/commands"
	"passview/internal/domain"
	"passview/internal/generator"
)

var (
	insertUsername string
	insertGenerate bool
)

var insertCmd = &cobra.Command{
	Use:   "insert <path>",
	Short: "Insert a new password",
	Long: `Insert a new password at the given path. The secret is read from
stdin unless --generate is set.

Examples:
  passview-cli insert work/mail/gmail --username me@example.com
  passview-cli insert personal/bank/hsbc --generate`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry := domain.ParseEntry(args[0])
		directory := strings.TrimSuffix(args[0], entry.Name)
		directory = strings.TrimSuffix(directory, domain.Separator)

		var secret string
		if insertGenerate {
			var err error
			secret, err = generator.Password(generator.Alphabet(true, true, true, true), cfg.PasswordLength)
			if err != nil {
				return err
			}
		} else {
			fmt.Fprint(os.Stderr, "Secret: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				return err
			}
			secret = strings.TrimRight(line, "\r\n")
		}

		insertCmd := commands.NewInsertCommand(GetStore(), directory, entry.Name, insertUsername, secret)
		result, err := insertCmd.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	insertCmd.Flags().StringVarP(&insertUsername, "username", "u", "", "username stored on the second line")
	insertCmd.Flags().BoolVarP(&insertGenerate, "generate", "g", false, "generate the secret instead of reading stdin")
	rootCmd.AddCommand(insertCmd)
}
