package tokenizecmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newInfoCmd creates the info subcommand.
func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Display tokenizer information",
		Long: `Display information about the loaded tokenizer configuration,
including its combined vocabulary size.`,
		Example: `  # Show tokenizer information
  tokenizer tokenize info --config tokenizer.json`,
		RunE: runInfo,
	}

	return cmd
}

func runInfo(_ *cobra.Command, _ []string) error {
	tk, err := loadTokenizer()
	if err != nil {
		return err
	}

	fmt.Println("Tokenizer Information")
	fmt.Println("=====================")
	fmt.Printf("Config:          %s\n", configPath)
	fmt.Printf("Vocabulary Size: %d tokens\n", tk.VocabSize())

	return nil
}
