package tracker_test

import (
	"context"
	"errors"
	"sync"

	"github.com/lightlink-network/dai-tracker/metrics"
	"github.com/lightlink-network/dai-tracker/models"
	"github.com/lightlink-network/dai-tracker/tracker"
	"github.com/lightlink-network/dai-tracker/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type stubSource struct {
	mu        sync.Mutex
	calls     int
	first     int
	transfers []models.Transfer
	err       error
	release   chan struct{}
}

func (s *stubSource) GetTransfers(ctx context.Context, first int) ([]models.Transfer, error) {
	s.mu.Lock()
	s.calls++
	s.first = first
	s.mu.Unlock()

	if s.release != nil {
		<-s.release
	}
	return s.transfers, s.err
}

func (s *stubSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var _ = Describe("Tracker", func() {
	var (
		source *stubSource
		m      *metrics.Metrics
	)

	BeforeEach(func() {
		source = &stubSource{transfers: []models.Transfer{
			{ID: "0xaa-0", Wad: "1", Src: "0x01", Dst: "0x02"},
			{ID: "0xbb-0", Wad: "2", Src: "0x03", Dst: "0x04"},
		}}
		m = metrics.NewMetrics(prometheus.NewRegistry())
	})

	newTracker := func() *tracker.Tracker {
		t, err := tracker.NewTracker(tracker.TrackerOpts{Source: source, Metrics: m, First: 100})
		Expect(err).ToNot(HaveOccurred())
		return t
	}

	It("requires a source", func() {
		_, err := tracker.NewTracker(tracker.TrackerOpts{})
		Expect(err).To(HaveOccurred())
	})

	It("starts out loading", func() {
		t := newTracker()
		Expect(t.Snapshot().Status).To(Equal(types.Loading))
		Expect(t.Snapshot().Transfers).To(BeNil())
		Expect(testutil.ToFloat64(m.FetchStatus.WithLabelValues("LOADING"))).To(Equal(1.0))
	})

	It("stays loading until the fetch returns", func() {
		source.release = make(chan struct{})
		t := newTracker()

		go func() { _ = t.Run(context.Background()) }()
		Eventually(source.Calls).Should(Equal(1))
		Expect(t.Snapshot().Status).To(Equal(types.Loading))

		close(source.release)
		Eventually(t.Done()).Should(BeClosed())
		Expect(t.Snapshot().Status).To(Equal(types.Ready))
	})

	It("holds the transfers after a successful fetch", func() {
		t := newTracker()
		Expect(t.Run(context.Background())).To(Succeed())

		snap := t.Snapshot()
		Expect(snap.Status).To(Equal(types.Ready))
		Expect(snap.Transfers).To(HaveLen(2))
		Expect(source.first).To(Equal(100))
		Expect(testutil.ToFloat64(m.TransfersLoaded)).To(Equal(2.0))
		Expect(testutil.ToFloat64(m.FetchTotal.WithLabelValues("READY"))).To(Equal(1.0))
		Expect(testutil.ToFloat64(m.FetchStatus.WithLabelValues("LOADING"))).To(Equal(0.0))
	})

	It("fetches exactly once", func() {
		t := newTracker()

		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = t.Run(context.Background())
			}()
		}
		wg.Wait()

		Expect(source.Calls()).To(Equal(1))
	})

	When("the fetch fails", func() {
		BeforeEach(func() {
			source.transfers = nil
			source.err = errors.New("subgraph unavailable")
		})

		It("reports the error state without data and does not retry", func() {
			t := newTracker()
			err := t.Run(context.Background())
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("subgraph unavailable"))

			snap := t.Snapshot()
			Expect(snap.Status).To(Equal(types.Error))
			Expect(snap.Transfers).To(BeNil())

			Expect(t.Run(context.Background())).To(HaveOccurred())
			Expect(source.Calls()).To(Equal(1))
			Expect(testutil.ToFloat64(m.FetchTotal.WithLabelValues("ERROR"))).To(Equal(1.0))
		})
	})
})
