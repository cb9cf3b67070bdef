package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/lightlink-network/dai-tracker/explorer"
	"github.com/lightlink-network/dai-tracker/models"
	"github.com/lightlink-network/dai-tracker/pagination"
	"github.com/lightlink-network/dai-tracker/utils"
)

const (
	pageParam        = "page"
	rowsPerPageParam = "rowsPerPage"
)

// Reads the view state from the query string. Unknown page sizes fall
// back to the default and a bad page index to 0.
func parseViewState(r *http.Request) pagination.ViewState {
	state := pagination.NewViewState()

	if rowsPerPage, err := strconv.Atoi(r.URL.Query().Get(rowsPerPageParam)); err == nil {
		state.SetRowsPerPage(rowsPerPage)
	}

	if page, err := strconv.Atoi(r.URL.Query().Get(pageParam)); err == nil {
		state.SetPage(page)
	}

	return state
}

func pageURL(page, rowsPerPage int) string {
	q := url.Values{}
	q.Set(pageParam, strconv.Itoa(page))
	q.Set(rowsPerPageParam, strconv.Itoa(rowsPerPage))
	return "/?" + q.Encode()
}

func (s *Server) toRow(t models.Transfer) models.TransferRow {
	value, err := utils.FormatEther(t.Wad)
	if err != nil {
		s.log.Debug("unparseable transfer amount", "id", t.ID, "wad", t.Wad, "error", err)
		value = "-"
	}

	return models.TransferRow{
		ID:       t.ID,
		ShortID:  utils.ShortenHash(t.ID),
		TxHash:   explorer.TxHash(t.ID),
		TxURL:    s.explorer.TxURL(t.ID),
		Src:      t.Src,
		ShortSrc: utils.ShortenAddress(t.Src),
		SrcURL:   s.explorer.AddressURL(t.Src),
		Dst:      t.Dst,
		ShortDst: utils.ShortenAddress(t.Dst),
		DstURL:   s.explorer.AddressURL(t.Dst),
		Wad:      t.Wad,
		Value:    value,
	}
}

// Builds the visible page. The state is clamped first so a page past the
// end (e.g. after a bookmark outlived a smaller page size) shows the last page.
func (s *Server) buildResult(transfers []models.Transfer, state *pagination.ViewState) models.PaginatedResult {
	n := len(transfers)
	state.Clamp(n)

	visible := pagination.Slice(transfers, state.Page, state.RowsPerPage)
	rows := make([]models.TransferRow, len(visible))
	for i, t := range visible {
		rows[i] = s.toRow(t)
	}

	return models.PaginatedResult{
		Items:         rows,
		TotalCount:    n,
		Page:          state.Page,
		PageSize:      state.RowsPerPage,
		PageCount:     pagination.PageCount(n, state.RowsPerPage),
		EmptyRows:     state.EmptyRows(n),
		DisplayedRows: state.DisplayedRows(n),
	}
}
