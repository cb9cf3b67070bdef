package pagination

// ViewState is the table's local state: the current page index and the
// page size. The zero value is not usable; start from NewViewState.
type ViewState struct {
	Page        int `json:"page"`
	RowsPerPage int `json:"rows_per_page"`
}

func NewViewState() ViewState {
	return ViewState{Page: 0, RowsPerPage: DefaultRowsPerPage}
}

// SetPage moves to page p. Negative pages are treated as 0.
func (v *ViewState) SetPage(p int) {
	v.Page = max(0, p)
}

// SetRowsPerPage changes the page size and always returns to the first page.
// Sizes outside RowsPerPageOptions fall back to DefaultRowsPerPage.
func (v *ViewState) SetRowsPerPage(r int) {
	if !IsAllowedRowsPerPage(r) {
		r = DefaultRowsPerPage
	}
	v.RowsPerPage = r
	v.Page = 0
}

// Clamp pulls the page back onto the last page when it points past the end
// of a list of n records.
func (v *ViewState) Clamp(n int) {
	if v.Page > LastPage(n, v.RowsPerPage) {
		v.Page = LastPage(n, v.RowsPerPage)
	}
}

func (v ViewState) Window(n int) (start, end int) {
	return Window(n, v.Page, v.RowsPerPage)
}

func (v ViewState) EmptyRows(n int) int {
	return EmptyRows(n, v.Page, v.RowsPerPage)
}

func (v ViewState) Controls(n int) Controls {
	return NewControls(n, v.Page, v.RowsPerPage)
}

func (v ViewState) DisplayedRows(n int) string {
	return DisplayedRows(n, v.Page, v.RowsPerPage)
}
