// Package generator produces random passwords and passphrases for new
// entries. All randomness comes from crypto/rand.
package generator

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"math/big"
	"os"
	"strings"
)

// Character classes selectable in the new-entry dialog.
const (
	Upper       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lower       = "abcdefghijklmnopqrstuvwxyz"
	Digits      = "0123456789"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Alphabet assembles a character set from the selected classes, falling back
// to lowercase letters when nothing is selected.
func Alphabet(upper, lower, digits, punctuation bool) string {
	var b strings.Builder
	if upper {
		b.WriteString(Upper)
	}
	if lower {
		b.WriteString(Lower)
	}
	if digits {
		b.WriteString(Digits)
	}
	if punctuation {
		b.WriteString(Punctuation)
	}
	if b.Len() == 0 {
		return Lower
	}
	return b.String()
}

// Password returns n characters drawn uniformly from alphabet.
func Password(alphabet string, n int) (string, error) {
	if alphabet == "" {
		return "", fmt.Errorf("empty alphabet")
	}
	if n < 1 {
		return "", fmt.Errorf("password length must be at least 1, got %d", n)
	}

	chars := []rune(alphabet)
	var b strings.Builder
	for i := 0; i < n; i++ {
		c, err := pick(len(chars))
		if err != nil {
			return "", err
		}
		b.WriteRune(chars[c])
	}
	return b.String(), nil
}

// Passphrase returns n words drawn uniformly from words. When separators is
// non-empty, each pair of words is joined by one randomly chosen separator
// character; otherwise words are concatenated directly.
func Passphrase(words []string, n int, separators string) (string, error) {
	if len(words) == 0 {
		return "", fmt.Errorf("empty word list")
	}
	if n < 1 {
		return "", fmt.Errorf("passphrase length must be at least 1, got %d", n)
	}

	seps := []rune(separators)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 && len(seps) > 0 {
			s, err := pick(len(seps))
			if err != nil {
				return "", err
			}
			b.WriteRune(seps[s])
		}
		w, err := pick(len(words))
		if err != nil {
			return "", err
		}
		b.WriteString(words[w])
	}
	return b.String(), nil
}

// LoadWordlist reads a newline-separated word list, skipping blank lines.
func LoadWordlist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}

func pick(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to draw random number: %w", err)
	}
	return int(v.Int64()), nil
}
