package indexer

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/holaplex/hub-nfts-solana-go/internal/metrics"
	"github.com/holaplex/hub-nfts-solana-go/programs/bubblegum"
	"github.com/holaplex/hub-nfts-solana-go/programs/token"
)

// Indexer owns two independent geyser subscriptions — one filtered to
// the SPL Token program, one to Bubblegum — reassembles each stream's
// transactions by slot, and fans decoded transactions out to a
// bounded pool of Processor workers.
type Indexer struct {
	Endpoint    string
	XToken      string
	Parallelism int
	Metrics     *metrics.Registry
	Logger      *zap.SugaredLogger
	processor   *Processor
}

func New(endpoint, xToken string, parallelism int, processor *Processor, reg *metrics.Registry, logger *zap.SugaredLogger) *Indexer {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Indexer{
		Endpoint:    endpoint,
		XToken:      xToken,
		Parallelism: parallelism,
		Metrics:     reg,
		Logger:      logger,
		processor:   processor,
	}
}

// Run streams both programs' transactions until ctx is cancelled.
// Each stream is reassembled into slot order independently; a
// transaction is handed to the worker pool as soon as its slot is
// confirmed on that stream, so the two programs' dispatch orders are
// never coupled to each other.
func (ix *Indexer) Run(ctx context.Context) error {
	sources := []*geyserSource{
		{endpoint: ix.Endpoint, xToken: ix.XToken, filterID: "spl_token", programID: token.ProgramID, logger: ix.Logger},
		{endpoint: ix.Endpoint, xToken: ix.XToken, filterID: "mpl_bubblegum", programID: bubblegum.ProgramID, logger: ix.Logger},
	}

	work := make(chan RawTransaction, ix.Parallelism*4)

	var wg sync.WaitGroup
	for i := 0; i < ix.Parallelism; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tx := range work {
				ix.processor.Process(ctx, tx)
			}
		}()
	}

	var srcWG sync.WaitGroup
	errs := make(chan error, len(sources))
	for _, src := range sources {
		src := src
		srcWG.Add(1)
		go func() {
			defer srcWG.Done()
			errs <- ix.runStream(ctx, src, work)
		}()
	}

	srcWG.Wait()
	close(work)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// runStream drives a single geyser subscription's buffered,
// slot-ordered dispatch into work.
func (ix *Indexer) runStream(ctx context.Context, src *geyserSource, work chan<- RawTransaction) error {
	events := make(chan geyserEvent, 256)

	done := make(chan error, 1)
	go func() { done <- src.Run(ctx, events) }()

	buffer := newSlotBuffer()
	var lastSlot uint64

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return <-done
			}
			if ev.IsSlot {
				lastSlot = ev.SlotSeen
				if ix.Metrics != nil {
					ix.Metrics.IndexerLag.Set(0)
				}
				for _, tx := range buffer.DrainThrough(ev.SlotSeen) {
					ix.dispatch(ctx, tx, work)
				}
				continue
			}
			if ev.Tx != nil {
				if ev.Tx.Slot <= lastSlot {
					ix.dispatch(ctx, *ev.Tx, work)
				} else {
					buffer.Add(*ev.Tx)
				}
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (ix *Indexer) dispatch(ctx context.Context, tx RawTransaction, work chan<- RawTransaction) {
	select {
	case work <- tx:
	case <-ctx.Done():
	}
}
