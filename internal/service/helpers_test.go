package service

import (
	"context"
	"sync"
	"time"

	"braik-api/internal/audit"
	"braik-api/internal/clock"
)

var testNow = time.Date(2024, 9, 14, 15, 0, 0, 0, time.UTC)

func newTestClock() *clock.Fake {
	return clock.NewFake(testNow)
}

// recordingAudit keeps every entry handed to it.
type recordingAudit struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (r *recordingAudit) Record(_ context.Context, entry audit.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

func (r *recordingAudit) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

func (r *recordingAudit) last() audit.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return audit.Entry{}
	}
	return r.entries[len(r.entries)-1]
}
