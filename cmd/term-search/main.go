package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "term-search",
	Short: "Terminal-site page renderer and search server",
	Long: "term-search compiles terminal-site page markup into rendered documents.\n\n" +
		"Pages are XML files using a small tag vocabulary plus import, list, and\n" +
		"if directives; render compiles a single page, serve runs the search\n" +
		"frontend that renders pages against a JSON search index.",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
