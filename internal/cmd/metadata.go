package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/AlbertLnz/spring-initializr-cli/internal/metadata"
	"github.com/AlbertLnz/spring-initializr-cli/internal/tui/views"
)

var metadataOutput string

// catalog is the resolved view of one metadata document that the metadata
// command prints.
type catalog struct {
	URL          string                `json:"url" yaml:"url"`
	Categories   []catalogCategory     `json:"categories" yaml:"categories"`
	Dependencies []metadata.Dependency `json:"dependencies" yaml:"dependencies"`
	Problems     []string              `json:"problems,omitempty" yaml:"problems,omitempty"`
}

type catalogCategory struct {
	Key     string          `json:"key" yaml:"key"`
	Default string          `json:"default,omitempty" yaml:"default,omitempty"`
	Options []catalogOption `json:"options" yaml:"options"`
}

type catalogOption struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

var selectCategories = []string{
	metadata.KeyLanguage,
	metadata.KeyBootVersion,
	metadata.KeyPackaging,
	metadata.KeyJavaVersion,
}

// buildCatalog resolves every category the wizard uses. Categories that
// fail to resolve are listed as problems instead of failing the whole
// catalogue.
func buildCatalog(url string, doc *metadata.Document) catalog {
	c := catalog{URL: url, Dependencies: []metadata.Dependency{}}

	for _, key := range selectCategories {
		opts, err := metadata.Resolve(doc, key)
		if err != nil {
			c.Problems = append(c.Problems, err.Error())
			continue
		}
		cat := catalogCategory{Key: key, Options: make([]catalogOption, opts.Len())}
		for i := range opts.IDs {
			cat.Options[i] = catalogOption{ID: opts.IDs[i], Name: opts.DisplayNames[i]}
		}
		if opts.HasDefault {
			cat.Default = opts.IDs[opts.DefaultIndex]
		}
		c.Categories = append(c.Categories, cat)
	}

	deps, err := metadata.ResolveDependencies(doc)
	if err != nil {
		c.Problems = append(c.Problems, err.Error())
	} else {
		c.Dependencies = deps
	}
	return c
}

// markdown renders the catalogue as tables, one per category.
func (c catalog) markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Metadata from %s\n\n", c.URL)

	for _, cat := range c.Categories {
		fmt.Fprintf(&b, "## %s\n\n| ID | Name | Default |\n|---|---|---|\n", cat.Key)
		for _, o := range cat.Options {
			mark := ""
			if o.ID == cat.Default {
				mark = "✔"
			}
			fmt.Fprintf(&b, "| %s | %s | %s |\n", cell(o.ID), cell(o.Name), mark)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## dependencies (%d)\n\n", len(c.Dependencies))
	if len(c.Dependencies) > 0 {
		b.WriteString("| Group | ID | Name | Spring Boot |\n|---|---|---|---|\n")
		for _, d := range c.Dependencies {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", cell(d.Group), cell(d.ID), cell(d.DisplayName()), cell(rangeLabel(d.VersionRange)))
		}
		b.WriteString("\n")
	}

	if len(c.Problems) > 0 {
		b.WriteString("## Problems\n\n")
		for _, p := range c.Problems {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}
	return b.String()
}

func rangeLabel(expr string) string {
	if expr == "" {
		return "any"
	}
	r, err := metadata.ParseVersionRange(expr)
	if err != nil {
		return expr
	}
	return r.String()
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// writeCatalog encodes c in the requested format.
func writeCatalog(w io.Writer, c catalog, format string, term views.Terminal) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	case "markdown", "md":
		out, err := views.RenderMarkdown(c.markdown(), term)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		return fmt.Errorf("unknown output format %q: want markdown, json or yaml", format)
	}
}

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Show the options offered by the metadata service",
	Long: `Fetch the metadata document once and print every category the wizard
uses, with its default, plus the flattened dependency list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		term := views.DetectTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.NoColor)

		doc, err := views.SpinnerSource{Source: newClient(*cfg), Term: term}.Fetch(cmd.Context())
		if err != nil {
			return err
		}
		return writeCatalog(term.Out, buildCatalog(cfg.Metadata.URL, doc), metadataOutput, term)
	},
}

func init() {
	metadataCmd.Flags().StringVarP(&metadataOutput, "output", "o", "markdown", "output format: markdown, json, or yaml")
	rootCmd.AddCommand(metadataCmd)
}
