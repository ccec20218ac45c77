package renderer

import (
	"bytes"

	"github.com/etnz/chartdata"
	md "github.com/nao1215/markdown"
)

// SeriesMarkdown renders a series as a date/value table, in the series order.
func SeriesMarkdown(title string, s chartdata.Series, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if title != "" {
		doc.H1(title)
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Value"},
		Rows:   [][]string{},
	}
	for _, p := range s {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			Amount(p.Value, currency),
		})
	}
	doc.Table(table)
	return doc.String()
}
