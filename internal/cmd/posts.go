package cmd

import (
	_ "embed"

	"github.com/spf13/cobra"
)

//go:embed help/posts.md
var postsHelp string

const postDateLayout = "2006-01-02"

func postsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "posts",
		Aliases: []string{"p"},
		Short:   "List the blog posts of the configured source",
		Long:    postsHelp,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			provider, err := newLoggerProvider(cfg.Log)
			if err != nil {
				return err
			}

			source, _, err := newSource(cfg.Content)
			if err != nil {
				return err
			}

			svc, err := newBlogService(cfg, source, provider)
			if err != nil {
				return err
			}

			posts, err := svc.Posts(cmd.Context())
			if err != nil {
				return err
			}

			tbl := newTable(cmd.OutOrStdout(), opts, "Slug", "Title", "Date")

			for _, post := range posts {
				date := "-"
				if t, ok := post.Attributes.Date(); ok {
					date = t.Format(postDateLayout)
				}

				tbl.AddRow(post.Slug, post.Title(), date)
			}

			tbl.Print()

			return nil
		},

		DisableAutoGenTag: true,
	}

	return cmd
}
