package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/chartdata"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the summary of a series.
func SummaryMarkdown(title string, s chartdata.Summary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if s.Points == 0 {
		doc.PlainText("No data.")
		return doc.String()
	}
	doc.PlainText(fmt.Sprintf("From %s to %s, %d points over %d days.", s.From, s.To, s.Points, s.Days()))

	doc.H2("Values")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"", "Value", "On"},
		Rows: [][]string{
			{"First", Amount(s.First, currency), s.From.String()},
			{"Last", Amount(s.Last, currency), s.To.String()},
			{"Min", Amount(s.Min, currency), s.MinOn.String()},
			{"Max", Amount(s.Max, currency), s.MaxOn.String()},
		},
	})

	doc.H2("Change")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Change"),
			md.Bold(SignedAmount(s.Change(), currency)),
		},
		Rows: [][]string{
			{"Return", Percent(s.Return())},
			{"Points", strconv.Itoa(s.Points)},
		},
	})
	return doc.String()
}
