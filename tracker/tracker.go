package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lightlink-network/dai-tracker/metrics"
	"github.com/lightlink-network/dai-tracker/models"
	"github.com/lightlink-network/dai-tracker/types"
)

// TransferSource is where the tracker gets its transfers from
type TransferSource interface {
	GetTransfers(ctx context.Context, first int) ([]models.Transfer, error)
}

var allStatuses = []string{string(types.Loading), string(types.Error), string(types.Ready)}

// Tracker issues the transfers query once and holds its outcome for the
// lifetime of the process. Pagination never triggers another request.
type Tracker struct {
	source  TransferSource
	logger  *slog.Logger
	metrics *metrics.Metrics
	first   int

	once sync.Once
	done chan struct{}

	mu        sync.RWMutex
	status    types.FetchStatus
	transfers []models.Transfer
	err       error
}

type TrackerOpts struct {
	Source  TransferSource
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	First   int
}

// Snapshot is the fetch state as seen by the view. Transfers is only set
// when Status is types.Ready and must not be modified.
type Snapshot struct {
	Status    types.FetchStatus
	Transfers []models.Transfer
}

func NewTracker(opts TrackerOpts) (*Tracker, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("transfer source is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	t := &Tracker{
		source:  opts.Source,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		first:   opts.First,
		done:    make(chan struct{}),
		status:  types.Loading,
	}
	if t.metrics != nil {
		t.metrics.SetStatus(string(types.Loading), allStatuses...)
	}

	return t, nil
}

// Run performs the fetch. Only the first call does any work; later calls
// return the outcome of the first.
func (t *Tracker) Run(ctx context.Context) error {
	t.once.Do(func() {
		defer close(t.done)
		t.fetch(ctx)
	})

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.err
}

func (t *Tracker) fetch(ctx context.Context) {
	t.logger.Info("fetching transfers", "first", t.first)

	start := time.Now()
	transfers, err := t.source.GetTransfers(ctx, t.first)
	elapsed := time.Since(start)

	t.mu.Lock()
	if err != nil {
		t.status = types.Error
		t.err = fmt.Errorf("failed to fetch transfers: %w", err)
	} else {
		t.status = types.Ready
		t.transfers = transfers
	}
	status := t.status
	t.mu.Unlock()

	if err != nil {
		t.logger.Error("failed to fetch transfers", "error", err, "elapsed", elapsed)
	} else {
		t.logger.Info("transfers ready", "count", len(transfers), "elapsed", elapsed)
	}

	if t.metrics != nil {
		t.metrics.FetchDuration.Observe(elapsed.Seconds())
		t.metrics.FetchTotal.WithLabelValues(string(status)).Inc()
		t.metrics.TransfersLoaded.Set(float64(len(transfers)))
		t.metrics.SetStatus(string(status), allStatuses...)
	}
}

// Done is closed once the fetch has completed, successfully or not
func (t *Tracker) Done() <-chan struct{} {
	return t.done
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return Snapshot{
		Status:    t.status,
		Transfers: t.transfers,
	}
}
