package cmd

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/ezerfernandes/mdfolio/internal/frontmatter"
	"github.com/spf13/cobra"
)

//go:embed help/render.md
var renderHelp string

type renderOutput struct {
	Path       string                 `json:"path"`
	Attributes frontmatter.Attributes `json:"attributes"`
	HTML       string                 `json:"html"`
}

func renderCmd(opts *options) *cobra.Command {
	var (
		asJSON bool
		style  string
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "render [flags] [filename]",
		Aliases: []string{"r"},
		Short:   "Render a Markdown file to HTML",
		Long:    renderHelp,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("style") {
				cfg.Render.Style = style
			}

			name, source, err := readSource(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			doc := frontmatter.Parse(name, source)

			html, err := newRenderer(cfg.Render).RenderDocument(cmd.Context(), doc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if !asJSON {
				_, err = out.Write(html)

				return err
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")

			if err := enc.Encode(renderOutput{Path: name, Attributes: doc.Attributes, HTML: string(html)}); err != nil {
				return fmt.Errorf("encode output: %w", err)
			}

			return nil
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print front matter and HTML as JSON")
	cmd.Flags().StringVar(&style, "style", "", "chroma style name (default from config, onedark)")

	return cmd
}
