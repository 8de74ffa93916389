package cmd

import (
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"
)

func newTable(w io.Writer, opts *options, columns ...any) table.Table {
	tbl := table.New(columns...).WithWriter(w)

	if opts.noColor || color.NoColor {
		return tbl
	}

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	return tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
}
