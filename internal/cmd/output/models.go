package output

import (
	"io"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/bookshelf/pkg/books"
)

// BooksTable converts books to table data with one row per book.
func BooksTable(list []books.Book) Data {
	caser := cases.Title(language.English)

	headers := []string{"ID", "Title", "Author", "Year", "Status"}
	rows := make([][]string, 0, len(list))
	for _, b := range list {
		rows = append(rows, []string{
			b.ID,
			b.Title,
			b.Author,
			strconv.Itoa(b.Year),
			caser.String(string(b.Status)),
		})
	}

	return Data{
		Headers:      headers,
		Rows:         rows,
		RightAligned: []int{0, 3},
	}
}

// Books writes list in the given format. Table and markdown output render
// rows; JSON and YAML output the records as stored.
func Books(f Formatter, w io.Writer, list []books.Book) error {
	switch f.(type) {
	case *TableFormatter, *MarkdownFormatter:
		return f.Format(w, BooksTable(list))
	}
	if list == nil {
		list = []books.Book{}
	}
	return f.Format(w, list)
}
