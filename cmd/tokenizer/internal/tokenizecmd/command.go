// Package tokenizecmd provides the tokenize command for the tokenizer CLI.
package tokenizecmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexigraph/tokenizer"
)

// Command returns the tokenize command tree for the tokenizer CLI. It
// replaces the fixed llama3 subcommand with one that loads its pipeline
// from a tokenizer.json-style --config document, so any model the config
// package can build (WordPiece or BPE, with whatever normalizer/
// pre-tokenizer/post-processor/decoder it names) is reachable the same way.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Run a configurable subword tokenizer",
		Long: `Perform tokenization operations using a tokenizer.json-style pipeline.

Unlike a fixed tokenizer, tokenize loads its normalizer, pre-tokenizer,
model, post-processor, and decoder from a configuration document, so it
can drive a WordPiece or BPE pipeline built from any tokenizer.json-shaped
file.

Available commands:
  encode - Encode text to token IDs
  decode - Decode token IDs to text
  info   - Display tokenizer information`,
		Example: `  # Encode text
  tokenizer tokenize encode --config tokenizer.json "Hello, world!"

  # Decode tokens
  tokenizer tokenize decode --config tokenizer.json 101 7592 2088 102

  # Show tokenizer info
  tokenizer tokenize info --config tokenizer.json`,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a tokenizer.json-style config file (required)")

	cmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newInfoCmd(),
	)

	return cmd
}

// configPath is the --config flag shared by every tokenize subcommand.
var configPath string

func loadTokenizer() (*tokenizer.Tokenizer, error) {
	if configPath == "" {
		return nil, fmt.Errorf("--config is required")
	}
	return tokenizer.New(configPath)
}
