package repositories

import (
	"context"
	"sync"

	"chaoshub/domain"
)

// BlocklistOracle is the default AuthorizationOracle: a direct message
// is allowed unless either side blocked the other. The block table is
// fed by the external friend-list service; lookups never leave memory.
type BlocklistOracle struct {
	mu     sync.RWMutex
	blocks map[domain.IdentityID]map[domain.IdentityID]struct{}
}

func NewBlocklistOracle() *BlocklistOracle {
	return &BlocklistOracle{blocks: make(map[domain.IdentityID]map[domain.IdentityID]struct{})}
}

func (o *BlocklistOracle) Block(blocker, blocked domain.IdentityID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	set, ok := o.blocks[blocker]
	if !ok {
		set = make(map[domain.IdentityID]struct{})
		o.blocks[blocker] = set
	}
	set[blocked] = struct{}{}
}

func (o *BlocklistOracle) Unblock(blocker, blocked domain.IdentityID) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if set, ok := o.blocks[blocker]; ok {
		delete(set, blocked)
		if len(set) == 0 {
			delete(o.blocks, blocker)
		}
	}
}

func (o *BlocklistOracle) CanMessage(_ context.Context, sender, target domain.IdentityID) (bool, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if _, blocked := o.blocks[target][sender]; blocked {
		return false, nil
	}
	if _, blocked := o.blocks[sender][target]; blocked {
		return false, nil
	}
	return true, nil
}
