package cmd

import (
	"fmt"
	"net/http"

	"github.com/adalang/adafront/internal/diagnostics"
	"github.com/adalang/adafront/internal/web"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analyze server",
	Long: `Run an HTTP server exposing POST /analyze, which scans and parses
a JSON-encoded Ada source string and returns tokens, an optional parse
tree, and diagnostics as JSON (spec §6).`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := diagnostics.NewDevelopment()
	router := web.NewRouter(logger)

	fmt.Printf("listening on %s\n", serveAddr)
	return http.ListenAndServe(serveAddr, router)
}
