package models

// PaginatedResult is one page of rows plus what a client needs to
// render the table footer without recomputing anything.
type PaginatedResult struct {
	Items         []TransferRow `json:"items"`
	TotalCount    int           `json:"total_count"`
	Page          int           `json:"page"`
	PageSize      int           `json:"page_size"`
	PageCount     int           `json:"page_count"`
	EmptyRows     int           `json:"empty_rows"`
	DisplayedRows string        `json:"displayed_rows"`
}
