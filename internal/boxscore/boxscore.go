package boxscore

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DefaultTableID is the id of the play-by-play table on a box-score page
const DefaultTableID = "pbp"

// DetailStat is the data-stat key of the play description column
const DetailStat = "detail"

// Row is one table row as plain text
type Row struct {
	// Text is every text node of the row, stripped and joined by single spaces
	Text string `json:"text"`
	// Cells maps each cell's data-stat attribute to its stripped text
	Cells map[string]string `json:"cells,omitempty"`
}

// Detail returns the play description cell, falling back to the whole row
func (r Row) Detail() string {
	if d, ok := r.Cells[DetailStat]; ok && d != "" {
		return d
	}
	return r.Text
}

// ReadRows parses an HTML page and returns the rows of the table with id
// tableID. Box-score pages ship most tables inside HTML comments, so commented
// markup is searched too. When no table has that id every row on the page is
// returned.
func ReadRows(r io.Reader, tableID string) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	if tableID == "" {
		tableID = DefaultTableID
	}

	table, err := findTable(doc, tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return collectRows(doc.Find("tr")), nil
	}
	return collectRows(table.Find("tr")), nil
}

// findTable looks for the table in the live document first, then in comments
func findTable(doc *goquery.Document, tableID string) (*goquery.Selection, error) {
	selector := "table#" + tableID
	if sel := doc.Find(selector); sel.Length() > 0 {
		return sel.First(), nil
	}

	for _, comment := range commentsContaining(doc, `id="`+tableID+`"`) {
		inner, err := goquery.NewDocumentFromReader(strings.NewReader(comment))
		if err != nil {
			return nil, fmt.Errorf("parsing commented table: %w", err)
		}
		if sel := inner.Find(selector); sel.Length() > 0 {
			return sel.First(), nil
		}
	}
	return nil, nil
}

// commentsContaining returns the data of every comment node containing needle
func commentsContaining(doc *goquery.Document, needle string) []string {
	var found []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.CommentNode && strings.Contains(n.Data, needle) {
			found = append(found, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range doc.Nodes {
		walk(n)
	}
	return found
}

func collectRows(rows *goquery.Selection) []Row {
	out := make([]Row, 0, rows.Length())
	rows.Each(func(_ int, tr *goquery.Selection) {
		text := joinText(tr)
		if text == "" {
			return
		}

		row := Row{Text: text}
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			stat, ok := cell.Attr("data-stat")
			if !ok {
				return
			}
			if row.Cells == nil {
				row.Cells = make(map[string]string)
			}
			row.Cells[stat] = joinText(cell)
		})
		out = append(out, row)
	})
	return out
}

// joinText strips every text node under sel and joins the non-empty ones with
// a single space
func joinText(sel *goquery.Selection) string {
	var parts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, " ")
}
