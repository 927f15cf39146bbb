package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/Jaggler3/term-search/pkg/term"
)

var flagConfigFile string

// ServerConfig is the YAML configuration for the serve command.
type ServerConfig struct {
	Listen    string `yaml:"listen"`
	PagesDir  string `yaml:"pages_dir"`
	IndexFile string `yaml:"index_file"`
	HomePage  string `yaml:"home_page"`
}

// DefaultServerConfig returns the serve defaults; the YAML file overrides
// whichever fields it sets.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Listen:   ":8080",
		PagesDir: "pages",
		HomePage: "index.xml",
	}
}

func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rendered pages over HTTP",
	Long: "serve renders the configured home page per request, building the render\n" +
		"context from the q query parameter and the JSON search index.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadServerConfig(flagConfigFile)
		if err != nil {
			return err
		}

		var index []byte
		if cfg.IndexFile != "" {
			index, err = os.ReadFile(cfg.IndexFile)
			if err != nil {
				return fmt.Errorf("reading search index: %w", err)
			}
		}

		renderer := term.NewRenderer()
		log := term.GetLogger()

		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
			query := req.URL.Query().Get("q")
			ctx := term.Context{
				"search":  query,
				"results": searchIndex(index, query),
			}

			page := filepath.Join(cfg.PagesDir, cfg.HomePage)
			out, err := renderer.Render(page, ctx)
			if err != nil {
				if term.IsStructuralError(err) {
					http.Error(w, err.Error(), http.StatusUnprocessableEntity)
					return
				}
				log.Error("render failed for %s: %v", page, err)
				http.Error(w, "internal render error", http.StatusInternalServerError)
				return
			}

			w.Header().Set("Content-Type", "application/xml; charset=utf-8")
			fmt.Fprint(w, out)
		})

		log.Info("listening on %s", cfg.Listen)
		return http.ListenAndServe(cfg.Listen, mux)
	},
}

// searchIndex filters the JSON index entries by a case-insensitive substring
// match on name and description. An empty query returns every entry.
func searchIndex(index []byte, query string) []any {
	var results []any
	if len(index) == 0 {
		return results
	}
	query = strings.ToLower(query)
	for _, entry := range gjson.GetBytes(index, "entries").Array() {
		name := entry.Get("name").String()
		description := entry.Get("description").String()
		if query != "" &&
			!strings.Contains(strings.ToLower(name), query) &&
			!strings.Contains(strings.ToLower(description), query) {
			continue
		}
		results = append(results, map[string]any{
			"name":        name,
			"url":         entry.Get("url").String(),
			"description": description,
		})
	}
	return results
}

func init() {
	serveCmd.Flags().StringVarP(&flagConfigFile, "config", "f", "", "YAML server configuration file")
	rootCmd.AddCommand(serveCmd)
}
