package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jaggler3/term-search/pkg/term"
)

var flagContextFile string

var renderCmd = &cobra.Command{
	Use:   "render <page>",
	Short: "Render a single page to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := term.Context{}
		if flagContextFile != "" {
			data, err := os.ReadFile(flagContextFile)
			if err != nil {
				return fmt.Errorf("reading context file: %w", err)
			}
			if err := json.Unmarshal(data, &ctx); err != nil {
				return fmt.Errorf("parsing context file: %w", err)
			}
		}

		out, err := term.NewRenderer().Render(args[0], ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&flagContextFile, "context", "c", "", "JSON file holding the render context")
	rootCmd.AddCommand(renderCmd)
}
