package main

import (
	"fmt"
	"strconv"

	"cashsite/internal/scramble"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// sampleRunes caps how much of each alphabet is shown.
const sampleRunes = 24

// charsetsCmd lists the registered scramble alphabets
var charsetsCmd = &cobra.Command{
	Use:   "charsets",
	Short: "List the scramble alphabets",
	Args:  cobra.NoArgs,
	RunE:  runCharsets,
}

func runCharsets(cmd *cobra.Command, args []string) error {
	active := scramble.DefaultCharset
	if cfg != nil && cfg.Effect.Alphabet == "" && cfg.Effect.Charset != "" {
		active = cfg.Effect.Charset
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "NAME", "RUNES", "SAMPLE")
	for _, name := range scramble.CharsetNames() {
		alphabet, _ := scramble.LookupCharset(name)
		runes := []rune(alphabet)
		sample := string(runes)
		if len(runes) > sampleRunes {
			sample = string(runes[:sampleRunes]) + "…"
		}
		marker := ""
		if name == active {
			marker = "●"
		}
		t.Row(marker, name, strconv.Itoa(len(runes)), sample)
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
