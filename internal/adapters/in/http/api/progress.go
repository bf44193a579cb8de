package api

import (
	"fmt"
	"sync"
	"time"

	"github.com/bnema/vackup/internal/domain"
)

// Activity describes an operation running on a volume.
type Activity struct {
	Operation domain.Operation `json:"operation"`
	StartedAt time.Time        `json:"startedAt"`
}

// Progress tracks at most one running operation per volume.
type Progress struct {
	mu      sync.Mutex
	running map[string]Activity
	now     func() time.Time
}

// NewProgress creates an empty progress cache.
func NewProgress() *Progress {
	return &Progress{
		running: make(map[string]Activity),
		now:     time.Now,
	}
}

// Begin records op on volumeName, or fails with domain.ErrVolumeBusy when
// another operation holds the volume.
func (p *Progress) Begin(volumeName string, op domain.Operation) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if current, ok := p.running[volumeName]; ok {
		return fmt.Errorf("%w: %s is running an %s", domain.ErrVolumeBusy, volumeName, current.Operation)
	}
	p.running[volumeName] = Activity{Operation: op, StartedAt: p.now()}
	return nil
}

// End releases the volume.
func (p *Progress) End(volumeName string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.running, volumeName)
}

// Snapshot returns a copy of the running operations.
func (p *Progress) Snapshot() map[string]Activity {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make(map[string]Activity, len(p.running))
	for k, v := range p.running {
		out[k] = v
	}
	return out
}
