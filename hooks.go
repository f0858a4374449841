package tracker

import (
	"sync"

	"github.com/KaminaDuck/hd2-tracker/pkg/achievements"
	"github.com/KaminaDuck/hd2-tracker/pkg/stats"
)

// Compile-time interface check to ensure proper implementation.
var _ Hooks = (*tracker)(nil)

// Hook function types for roster events
type (
	// RecordHook is called when a submission creates or replaces a
	// player record. old is nil on first submission.
	RecordHook func(old, new *stats.Record)

	// UnlockHook is called once per achievement a submission newly
	// unlocked.
	UnlockHook func(player string, unlocked achievements.Progress)
)

// Hooks provides access to event callback registration.
type Hooks interface {
	// OnRecord registers a callback for record changes
	OnRecord(RecordHook)

	// OnUnlock registers a callback for achievement unlocks
	OnUnlock(UnlockHook)
}

// hooks manages event callbacks for roster changes
type hooks struct {
	mu       sync.RWMutex
	onRecord []RecordHook
	onUnlock []UnlockHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnRecord registers a callback for record changes
func (h *hooks) OnRecord(fn RecordHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onRecord = append(h.onRecord, fn)
}

// OnUnlock registers a callback for achievement unlocks
func (h *hooks) OnUnlock(fn UnlockHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onUnlock = append(h.onUnlock, fn)
}

// OnRecord registers a callback for record changes
func (t *tracker) OnRecord(fn RecordHook) {
	t.hooks.OnRecord(fn)
}

// OnUnlock registers a callback for achievement unlocks
func (t *tracker) OnUnlock(fn UnlockHook) {
	t.hooks.OnUnlock(fn)
}

// triggerSubmit compares the old and new records and fires the
// appropriate hooks. Unlocks are detected by diffing achievement
// progress before and after.
func (h *hooks) triggerSubmit(catalog *achievements.Catalog, old, new *stats.Record) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, hook := range h.onRecord {
		hook(old, new)
	}

	if len(h.onUnlock) == 0 {
		return
	}

	// An achievement counts as newly unlocked when the old record did
	// not reach its threshold.
	unlockedBefore := make(map[string]bool)
	if old != nil {
		for _, p := range catalog.Progress(old) {
			if p.Unlocked {
				unlockedBefore[p.Achievement.ID] = true
			}
		}
	}

	for _, p := range catalog.Progress(new) {
		if p.Unlocked && !unlockedBefore[p.Achievement.ID] {
			for _, hook := range h.onUnlock {
				hook(new.Player, p)
			}
		}
	}
}
