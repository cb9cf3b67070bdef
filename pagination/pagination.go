// Package pagination holds the arithmetic behind the transfers table: which
// slice of the fetched records is visible, how many blank rows keep the
// table height steady on a short last page, and which navigation controls
// are live. Everything here is pure and operates on the record count only.
package pagination

import (
	"fmt"
	"slices"
)

const DefaultRowsPerPage = 10

// RowsPerPageOptions are the page sizes offered by the table footer.
var RowsPerPageOptions = []int{5, 10, 25}

// Window returns the bounds [start, end) of the visible slice for a list of
// n records. The window is empty when page*rowsPerPage >= n.
func Window(n, page, rowsPerPage int) (start, end int) {
	if n <= 0 || page < 0 || rowsPerPage <= 0 {
		return 0, 0
	}

	// compare in pages so a huge page index cannot overflow page*rowsPerPage
	if page >= PageCount(n, rowsPerPage) {
		return n, n
	}

	start = page * rowsPerPage
	end = min(n, start+rowsPerPage)

	return start, end
}

// Slice returns the records visible on the given page
func Slice[T any](items []T, page, rowsPerPage int) []T {
	start, end := Window(len(items), page, rowsPerPage)
	return items[start:end]
}

// EmptyRows is the number of blank rows to render after the visible slice so
// that every page occupies rowsPerPage rows.
func EmptyRows(n, page, rowsPerPage int) int {
	if rowsPerPage <= 0 {
		return 0
	}
	start, end := Window(n, page, rowsPerPage)
	return rowsPerPage - (end - start)
}

// PageCount is ceil(n / rowsPerPage)
func PageCount(n, rowsPerPage int) int {
	if n <= 0 || rowsPerPage <= 0 {
		return 0
	}
	return (n + rowsPerPage - 1) / rowsPerPage
}

// LastPage is the index of the final page, 0 for an empty list
func LastPage(n, rowsPerPage int) int {
	return max(0, PageCount(n, rowsPerPage)-1)
}

// DisplayedRows renders the "from-to of count" footer label
func DisplayedRows(n, page, rowsPerPage int) string {
	start, end := Window(n, page, rowsPerPage)
	from := start + 1
	if n <= 0 || start == end {
		from = 0
	}
	return fmt.Sprintf("%d-%d of %d", from, end, max(n, 0))
}

// Control is a single navigation button. Target is the page it leads to.
type Control struct {
	Label    string
	Target   int
	Disabled bool
}

// Controls are the four navigation buttons of the table footer
type Controls struct {
	First    Control
	Previous Control
	Next     Control
	Last     Control
}

// All returns the controls in display order
func (c Controls) All() []Control {
	return []Control{c.First, c.Previous, c.Next, c.Last}
}

// NewControls computes the navigation controls for the given page.
// First/Previous are disabled on page 0, Next/Last on or past the last page.
func NewControls(n, page, rowsPerPage int) Controls {
	atStart := page <= 0
	last := LastPage(n, rowsPerPage)
	atEnd := page >= PageCount(n, rowsPerPage)-1

	next := last
	if !atEnd {
		next = page + 1
	}

	return Controls{
		First:    Control{Label: "First Page", Target: 0, Disabled: atStart},
		Previous: Control{Label: "Previous Page", Target: max(0, page-1), Disabled: atStart},
		Next:     Control{Label: "Next Page", Target: next, Disabled: atEnd},
		Last:     Control{Label: "Last Page", Target: last, Disabled: atEnd},
	}
}

// IsAllowedRowsPerPage reports whether r is one of RowsPerPageOptions
func IsAllowedRowsPerPage(r int) bool {
	return slices.Contains(RowsPerPageOptions, r)
}
