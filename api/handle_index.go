package api

import (
	"net/http"

	"github.com/lightlink-network/dai-tracker/models"
	"github.com/lightlink-network/dai-tracker/pagination"
	"github.com/lightlink-network/dai-tracker/types"
)

const pageTitle = "DAI Tracker"

var controlSymbols = map[string]string{
	"First Page":    "|<",
	"Previous Page": "<",
	"Next Page":     ">",
	"Last Page":     ">|",
}

type controlData struct {
	Label    string
	Symbol   string
	URL      string
	Disabled bool
}

type indexData struct {
	Title              string
	Status             string
	Result             models.PaginatedResult
	PaddingHeight      int
	ColSpan            int
	RowsPerPageOptions []int
	Controls           []controlData
}

func (s *Server) handleIndexGet(w http.ResponseWriter, r *http.Request) {
	snap := s.view.Snapshot()
	state := parseViewState(r)

	data := indexData{
		Title:              pageTitle,
		Status:             string(snap.Status),
		ColSpan:            columnCount,
		RowsPerPageOptions: pagination.RowsPerPageOptions,
	}

	statusCode := http.StatusOK
	switch snap.Status {
	case types.Ready:
		data.Result = s.buildResult(snap.Transfers, &state)
		data.PaddingHeight = rowHeight * data.Result.EmptyRows
		for _, c := range state.Controls(len(snap.Transfers)).All() {
			data.Controls = append(data.Controls, controlData{
				Label:    c.Label,
				Symbol:   controlSymbols[c.Label],
				URL:      pageURL(c.Target, state.RowsPerPage),
				Disabled: c.Disabled,
			})
		}
	case types.Error:
		statusCode = http.StatusBadGateway
	}

	if s.metrics != nil {
		s.metrics.PageViews.WithLabelValues("html", data.Status).Inc()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := s.page.Execute(w, data); err != nil {
		s.log.Error("failed to render page", "error", err)
	}
}
