// Table rendering shared by the list and export commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/huemot/atlas/internal/table"
)

// tableOpts carries the list/export view state parsed from flags.
type tableOpts struct {
	query  string
	sort   string
	desc   bool
	hide   []string
	csv    bool
	asJSON bool
}

func (o tableOpts) hidden() map[string]bool {
	h := make(map[string]bool, len(o.hide))
	for _, id := range o.hide {
		h[id] = true
	}
	return h
}

// renderTable runs the table engine over rows and writes the result:
// CSV, JSON, or an aligned text table.
func renderTable[T any](w io.Writer, rows []T, cols []table.Column[T], opts tableOpts) error {
	sort := table.Sort{}
	if opts.sort != "" {
		sort = table.Sort{Key: opts.sort, Desc: opts.desc}
	}
	rows = table.Apply(rows, cols, opts.query, sort)
	visible := table.Visible(cols, opts.hidden())

	if opts.csv {
		return table.WriteCSV(w, rows, visible)
	}
	if opts.asJSON {
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	headers := make([]string, len(visible))
	for i, col := range visible {
		headers[i] = col.Header
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		cells := make([]string, len(visible))
		for i, col := range visible {
			cells[i] = table.Format(col.Value(row))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// addTableFlags registers the shared table view flags on a command's
// flag set.
func addTableFlags(fs *pflag.FlagSet, opts *tableOpts) {
	fs.StringVar(&opts.query, "query", "", "case-insensitive substring filter over searchable columns")
	fs.StringVar(&opts.sort, "sort", "", "column id to sort by (omit for unsorted)")
	fs.BoolVar(&opts.desc, "desc", false, "sort descending")
	fs.StringSliceVar(&opts.hide, "hide", nil, "column ids to hide")
}
