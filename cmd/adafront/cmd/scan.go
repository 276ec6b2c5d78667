package cmd

import (
	"fmt"

	cerrors "github.com/adalang/adafront/internal/errors"
	"github.com/adalang/adafront/internal/lexer"
	"github.com/adalang/adafront/pkg/token"
	"github.com/spf13/cobra"
)

var (
	evalExpr   string
	showPos    bool
	showType   bool
	onlyErrors bool
	prettyErrs bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Tokenize an Ada source file or expression",
	Long: `Tokenize (scan) an Ada program and print the resulting tokens.

This command is useful for debugging the scanner and understanding how
source code is tokenized.

Examples:
  # Tokenize a script file
  adafront scan hello.ada

  # Tokenize inline code
  adafront scan -e "procedure P is begin end P;"

  # Show token kinds and positions
  adafront scan --show-type --show-pos hello.ada

  # Show only errors
  adafront scan --only-errors hello.ada`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	scanCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	scanCmd.Flags().BoolVar(&showType, "show-type", false, "show token kind names")
	scanCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only lexical errors")
	scanCmd.Flags().BoolVar(&prettyErrs, "pretty", false, "render errors with source context and a caret")
}

func runScan(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(evalExpr, args)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	s := lexer.New(input, lexer.WithStopOnError(stopOnError))
	tokens, errs, scanErr := s.Analyze()

	if !onlyErrors {
		for _, tok := range tokens {
			printToken(tok)
		}
	}

	if prettyErrs && len(errs) > 0 {
		messages := make([]string, len(errs))
		positions := make([]token.Position, len(errs))
		for i, e := range errs {
			messages[i] = e.Message
			positions[i] = e.Pos
		}
		fmt.Println(cerrors.FormatErrors(cerrors.FromPositioned(messages, positions, input, filename), true))
	} else {
		for _, e := range errs {
			fmt.Printf("error: %s\n", e.Error())
		}
	}

	if verbose {
		fmt.Println("---")
		fmt.Printf("Total tokens: %d\n", len(tokens))
		if len(errs) > 0 {
			fmt.Printf("Errors: %d\n", len(errs))
		}
	}

	if scanErr != nil {
		return fmt.Errorf("scan halted: %w", scanErr)
	}
	if len(errs) > 0 {
		return fmt.Errorf("found %d lexical error(s)", len(errs))
	}

	return nil
}

func printToken(tok token.Token) {
	var output string

	if showType {
		output = fmt.Sprintf("[%-10s]", tok.Kind)
	}
	output += fmt.Sprintf(" %q", tok.Lexeme)

	if showPos {
		output += fmt.Sprintf(" @%s", tok.Pos)
	}

	fmt.Println(output)
}
