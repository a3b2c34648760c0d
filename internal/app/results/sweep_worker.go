package results

import (
	"time"

	"github.com/zkproofport/proofport-app-demo/pkg/logger"
)

const sweepWorkerName = "ResultSweeper"

// SweepWorker reclaims expired entries on a timer so that memory is
// bounded even when the store sees writes but no reads.
type SweepWorker struct {
	store    *InMemoryStore
	interval time.Duration
}

func NewSweepWorker(store *InMemoryStore, interval time.Duration) *SweepWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SweepWorker{store: store, interval: interval}
}

func (w *SweepWorker) GetServiceName() string {
	return sweepWorkerName
}

func (w *SweepWorker) StartService() {
	sweepLogger := logger.Default()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for range ticker.C {
		if removed := w.store.Sweep(); removed > 0 {
			sweepLogger.Debugf("Swept %d expired result entries, %d remain", removed, w.store.Len())
		}
	}
}
