package cmd

import (
	"fmt"
	"os"

	cerrors "github.com/adalang/adafront/internal/errors"
	"github.com/adalang/adafront/internal/lexer"
	"github.com/adalang/adafront/internal/parser"
	"github.com/adalang/adafront/pkg/token"
	"github.com/spf13/cobra"
)

var (
	parseExpr      string
	parseTree      bool
	parsePanicMode bool
	parsePretty    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Scan and parse an Ada source file and report diagnostics",
	Long: `Parse an Ada procedure declaration against the grammar

    Prog → PROCEDURE id Args IS DeclPart Procedures BEGIN SeqOfStmts END id ;

and report parse errors. Use --tree to render the concrete parse tree and
--panic-mode to skip ahead to the next ';', begin, end or end of input after
each mismatch instead of resuming at the mismatched token.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseTree, "tree", false, "render the concrete parse tree")
	parseCmd.Flags().BoolVar(&parsePanicMode, "panic-mode", false, "after a mismatch, skip tokens up to the next synchronisation token")
	parseCmd.Flags().BoolVar(&parsePretty, "pretty", false, "render errors with source context and a caret")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, filename, err := readInput(parseExpr, args)
	if err != nil {
		return err
	}

	stopOnError, _ := cmd.Flags().GetBool("stop-on-error")

	s := lexer.New(input, lexer.WithStopOnError(stopOnError))
	tokens, lexErrs, lexErr := s.Analyze()
	for _, e := range lexErrs {
		fmt.Fprintf(os.Stderr, "lexical error: %s\n", e.Error())
	}
	if lexErr != nil {
		return fmt.Errorf("scan halted: %w", lexErr)
	}

	p := parser.New(tokens,
		parser.WithStopOnError(stopOnError),
		parser.WithPanicModeRecover(parsePanicMode),
		parser.WithBuildParseTree(parseTree),
	)
	tree, errs, success, parseErr := p.Parse()

	if parseTree && tree != nil {
		fmt.Println(parser.RenderTree(tree))
	}

	if parsePretty && len(errs) > 0 {
		messages := make([]string, len(errs))
		positions := make([]token.Position, len(errs))
		for i, e := range errs {
			messages[i] = e.Message
			positions[i] = e.Pos
		}
		fmt.Fprintln(os.Stderr, cerrors.FormatErrors(cerrors.FromPositioned(messages, positions, input, filename), true))
	} else {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "parse error: %s\n", e.Error())
		}
	}

	if parseErr != nil {
		return fmt.Errorf("parse halted: %w", parseErr)
	}
	if !success {
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	fmt.Println("parse OK")
	return nil
}
