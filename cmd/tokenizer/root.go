package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexigraph/tokenizer/cmd/tokenizer/internal/tokenizecmd"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tokenizer",
	Short: "A configurable subword tokenizer CLI tool",
	Long: `Tokenizer is a CLI tool for tokenizing text with a configurable
normalizer/pre-tokenizer/model/post-processor/decoder pipeline.

The pipeline is loaded from a tokenizer.json-style configuration document
via the tokenize subcommand's --config flag, so the same binary can drive
a WordPiece or BPE tokenizer of any vocabulary without a rebuild.

Available operations:
  - encode: Convert text to token IDs
  - decode: Convert token IDs back to text
  - info:   Display tokenizer information`,
	Example: `  # Encode text
  tokenizer tokenize encode --config tokenizer.json "Hello, world!"

  # Decode tokens
  tokenizer tokenize decode --config tokenizer.json 101 7592 2088 102

  # Get tokenizer info
  tokenizer tokenize info --config tokenizer.json`,
	SilenceUsage: true,
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tokenizer version %s\n", version)
		if commit != "none" {
			fmt.Printf("  commit:     %s\n", commit)
		}
		if buildDate != "unknown" {
			fmt.Printf("  built:      %s\n", buildDate)
		}
		if goVersion != "unknown" {
			fmt.Printf("  go version: %s\n", goVersion)
		}
	},
}

func init() {
	// Register commands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tokenizecmd.Command())
}
