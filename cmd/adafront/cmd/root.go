package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "adafront",
	Short: "A lexical scanner and predictive parser for a subset of Ada",
	Long: `adafront is a compiler front end for a small subset of Ada: a
longest-match lexical scanner over an ordered pattern table, and a
recursive-descent predictive parser over a procedure/declaration grammar.

It exposes two subcommands, scan and parse, plus a "serve" subcommand
that runs both stages over an HTTP request and reports tokens, an
optional parse tree, and diagnostics as JSON.`,
	Version: Version,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("stop-on-error", false, "halt on the first scanner/parser error instead of accumulating")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

func readInput(evalExpr string, args []string) (input string, source string, err error) {
	switch {
	case evalExpr != "":
		return evalExpr, "<eval>", nil
	case len(args) == 1:
		data, rerr := os.ReadFile(args[0])
		if rerr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], rerr)
		}
		return string(data), args[0], nil
	default:
		return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
	}
}
