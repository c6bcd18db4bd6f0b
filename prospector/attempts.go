package prospector

import (
	"github.com/spacemeshos/rpow/shared"
)

// Attempts is a lazy, restartable sequence of evaluated nonces. It starts at a
// nonce and advances by a fixed stride with wrap-around modulo 2^64, so
// workers with the same stride and distinct offsets scan disjoint nonces.
//
// An Attempts is not safe for concurrent use.
type Attempts struct {
	hasher   *shared.ChainHasher
	identity []byte

	next      uint64
	stride    uint64
	bounded   bool
	remaining uint64
	evaluated uint64
}

// NewAttempts creates a sequence starting at start. A nil maxAttempts makes the
// sequence infinite. A zero stride is treated as 1.
func NewAttempts(identity []byte, start, stride uint64, maxAttempts *uint64) *Attempts {
	if stride == 0 {
		stride = 1
	}
	a := &Attempts{
		hasher:   shared.NewChainHasher(identity),
		identity: identity,
		next:     start,
		stride:   stride,
	}
	if maxAttempts != nil {
		a.bounded = true
		a.remaining = *maxAttempts
	}
	return a
}

// Next evaluates the next nonce. It returns false once the attempt budget is
// exhausted, without evaluating anything.
func (a *Attempts) Next() (shared.Attempt, bool) {
	if a.bounded {
		if a.remaining == 0 {
			return shared.Attempt{}, false
		}
		a.remaining--
	}
	nonce := a.next
	a.next += a.stride
	a.evaluated++
	return shared.Attempt{
		Nonce:    nonce,
		Identity: a.identity,
		Digest:   a.hasher.Hash(nonce),
	}, true
}

// Position is the next nonce to be evaluated. A new sequence started there
// continues where this one stopped.
func (a *Attempts) Position() uint64 {
	return a.next
}

// Evaluated is the number of nonces hashed so far.
func (a *Attempts) Evaluated() uint64 {
	return a.evaluated
}
