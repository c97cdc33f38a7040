package tokenizecmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexigraph/tokenizer"
)

var (
	encAddSpecial bool
	encPairText   string
	encOutput     string
)

// newEncodeCmd creates the encode subcommand.
func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text to token IDs",
		Long: `Encode text using the configured tokenizer pipeline.

If no text is provided as an argument, reads from stdin. Special tokens
(the post-processor's template, e.g. BERT's [CLS]/[SEP]) are added by
default.`,
		Example: `  # Encode a simple string
  tokenizer tokenize encode --config tokenizer.json "Hello, world!"

  # Encode a sequence pair
  tokenizer tokenize encode --config tokenizer.json --pair "world" "hello"

  # Output as JSON
  tokenizer tokenize encode --config tokenizer.json --output json "Hello"`,
		RunE: runEncode,
	}

	cmd.Flags().BoolVar(&encAddSpecial, "add-special-tokens", true, "run the configured post-processor template")
	cmd.Flags().StringVar(&encPairText, "pair", "", "second sequence of a pair, joined via the configured post-processor")
	cmd.Flags().StringVarP(&encOutput, "output", "o", "space", "output format: space, newline, json")

	return cmd
}

func runEncode(_ *cobra.Command, args []string) error {
	tk, err := loadTokenizer()
	if err != nil {
		return err
	}

	text, err := readText(args)
	if err != nil {
		return err
	}

	var enc *tokenizer.Encoding
	if encPairText != "" {
		enc, err = tk.EncodePair(text, encPairText, encAddSpecial)
	} else {
		enc, err = tk.Encode(text, encAddSpecial)
	}
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	switch encOutput {
	case "json":
		out, err := json.Marshal(enc.IDs)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		fmt.Println(string(out))
	case "newline":
		for _, id := range enc.IDs {
			fmt.Println(id)
		}
	default:
		strs := make([]string, len(enc.IDs))
		for i, id := range enc.IDs {
			strs[i] = strconv.Itoa(id)
		}
		fmt.Println(strings.Join(strs, " "))
	}
	return nil
}

func readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\n"), nil
}
