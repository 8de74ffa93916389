package cmd

import (
	_ "embed"
	"fmt"

	"github.com/ezerfernandes/mdfolio/internal/highlight"
	"github.com/ezerfernandes/mdfolio/internal/markdown"
	"github.com/spf13/cobra"
)

//go:embed help/blocks.md
var blocksHelp string

func blocksCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "blocks [flags] [filename]",
		Aliases: []string{"b"},
		Short:   "List the fenced code blocks of a Markdown file",
		Long:    blocksHelp,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			var err error

			opts.filter, err = filter(opts.lang, opts.meta)

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			name, source, err := readSource(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			return blocksRun(cmd, opts, name, source)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringSliceVarP(&opts.lang, "lang", "l", nil, "language glob filter (repeatable)")
	cmd.Flags().StringToStringVarP(&opts.meta, "meta", "m", nil, "meta attribute glob filter, key=pattern")

	return cmd
}

func blocksRun(cmd *cobra.Command, opts *options, name string, source []byte) error {
	if opts.filter == nil {
		opts.filter = acceptAll
	}

	tbl := newTable(cmd.OutOrStdout(), opts, "#", "Lang", "Lines", "Highlight", "Title")

	index := 0

	err := walk(source, func(block *markdown.Block) error {
		meta := highlight.ParseMeta(block.Meta)

		tbl.AddRow(
			index,
			orDash(block.Lang),
			fmt.Sprintf("%d-%d", block.StartLine, block.EndLine),
			orDash(meta.Lines.String()),
			orDash(meta.Get("title")),
		)

		index++

		return nil
	}, opts.filter)
	if err != nil {
		return err
	}

	tbl.Print()

	if opts.status != nil {
		opts.status("%d block(s) in %s\n", index, name)
	}

	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
