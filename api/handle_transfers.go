package api

import (
	"errors"
	"net/http"

	"github.com/lightlink-network/dai-tracker/types"
)

var (
	errLoading = errors.New("loading")
	errFetch   = errors.New("error")
)

func (s *Server) handleTransfersGet(w http.ResponseWriter, r *http.Request) {
	snap := s.view.Snapshot()

	if s.metrics != nil {
		s.metrics.PageViews.WithLabelValues("json", string(snap.Status)).Inc()
	}

	switch snap.Status {
	case types.Loading:
		ERROR(w, http.StatusServiceUnavailable, errLoading)
		return
	case types.Error:
		ERROR(w, http.StatusBadGateway, errFetch)
		return
	}

	state := parseViewState(r)
	JSON(w, http.StatusOK, s.buildResult(snap.Transfers, &state))
}

func (s *Server) handleHealthGet(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"health_status": "online",
		"fetch_status":  s.view.Snapshot().Status,
	})
}
