package presence

import (
	"sync"

	"chaoshub/domain"
)

// InterestTable is the default InterestResolver: a precomputed
// identity-to-watchers map fed by the external friend-list and channel
// membership systems. Lookups are pure map reads so the connect path
// never waits on a query.
type InterestTable struct {
	mu       sync.RWMutex
	watchers map[domain.IdentityID]map[domain.IdentityID]struct{}
}

func NewInterestTable() *InterestTable {
	return &InterestTable{watchers: make(map[domain.IdentityID]map[domain.IdentityID]struct{})}
}

// AddInterest records that watcher wants presence updates about subject.
// Interest is directional; friendships register both directions.
func (t *InterestTable) AddInterest(subject, watcher domain.IdentityID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	set, ok := t.watchers[subject]
	if !ok {
		set = make(map[domain.IdentityID]struct{})
		t.watchers[subject] = set
	}
	set[watcher] = struct{}{}
}

func (t *InterestTable) RemoveInterest(subject, watcher domain.IdentityID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if set, ok := t.watchers[subject]; ok {
		delete(set, watcher)
		if len(set) == 0 {
			delete(t.watchers, subject)
		}
	}
}

func (t *InterestTable) InterestedIn(id domain.IdentityID) []domain.IdentityID {
	t.mu.RLock()
	defer t.mu.RUnlock()

	set, ok := t.watchers[id]
	if !ok {
		return nil
	}
	ids := make([]domain.IdentityID, 0, len(set))
	for watcher := range set {
		ids = append(ids, watcher)
	}
	return ids
}
