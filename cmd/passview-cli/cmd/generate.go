package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"passview/internal/config"
	"passview/internal/generator"
)

var (
	generateLength int
	generateWords  int
	generateNoPunc bool
	generateCopy   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a password or passphrase",
	Long: `Generate a random password, or a passphrase when --words is set.

Examples:
  passview-cli generate
  passview-cli generate --length 32 --no-symbols
  passview-cli generate --words 6 --copy`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var secret string
		var err error

		if generateWords > 0 {
			words, werr := generator.LoadWordlist(config.ExpandHome(cfg.WordsFile))
			if werr != nil {
				return werr
			}
			secret, err = generator.Passphrase(words, generateWords, "-")
		} else {
			length := generateLength
			if length <= 0 {
				length = cfg.PasswordLength
			}
			secret, err = generator.Password(generator.Alphabet(true, true, true, !generateNoPunc), length)
		}
		if err != nil {
			return err
		}

		if generateCopy {
			if err := clipboard.WriteAll(secret); err != nil {
				return err
			}
			fmt.Println("Copied to clipboard.")
			return nil
		}
		fmt.Println(secret)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&generateLength, "length", "l", 0, "password length (default from config)")
	generateCmd.Flags().IntVarP(&generateWords, "words", "w", 0, "generate a passphrase with this many words")
	generateCmd.Flags().BoolVar(&generateNoPunc, "no-symbols", false, "exclude punctuation")
	generateCmd.Flags().BoolVarP(&generateCopy, "copy", "c", false, "copy to clipboard instead of printing")
	rootCmd.AddCommand(generateCmd)
}
