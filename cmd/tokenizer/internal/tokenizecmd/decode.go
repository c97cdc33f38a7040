package tokenizecmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var decSkipSpecial bool

// newDecodeCmd creates the decode subcommand.
func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [token_ids...]",
		Short: "Decode token IDs to text",
		Long: `Decode token IDs back to text using the configured tokenizer pipeline.

Token IDs can be provided as arguments or piped from stdin, separated by
any whitespace.`,
		Example: `  # Decode token IDs from arguments
  tokenizer tokenize decode --config tokenizer.json 101 7592 2088 102

  # Decode from stdin, dropping special tokens
  echo "101 7592 2088 102" | tokenizer tokenize decode --config tokenizer.json --skip-special`,
		RunE: runDecode,
	}

	cmd.Flags().BoolVar(&decSkipSpecial, "skip-special", false, "drop special tokens from the decoded output")

	return cmd
}

func runDecode(_ *cobra.Command, args []string) error {
	tk, err := loadTokenizer()
	if err != nil {
		return err
	}

	var ids []int
	if len(args) > 0 {
		for _, arg := range args {
			id, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid token id %q: %w", arg, err)
			}
			ids = append(ids, id)
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			id, err := strconv.Atoi(scanner.Text())
			if err != nil {
				return fmt.Errorf("invalid token id %q: %w", scanner.Text(), err)
			}
			ids = append(ids, id)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	if len(ids) == 0 {
		return fmt.Errorf("no token ids provided")
	}

	fmt.Println(tk.Decode(ids, decSkipSpecial))
	return nil
}
