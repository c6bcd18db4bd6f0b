package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/rpow/shared"
	"github.com/spacemeshos/rpow/verifier"
)

var (
	// The first nonce meeting the genesis target for this identity is 3035,
	// the next ones are 769510 and 807151.
	identity     = []byte("prospector-29")
	validNonce   = uint64(3035)
	invalidNonce = uint64(3034)
)

type manualClock struct {
	now int64
	err error
}

func (c *manualClock) Now() (int64, error) {
	return c.now, c.err
}

func newTestLedger(t *testing.T, dir string, clock verifier.Clock, opts ...Option) *Ledger {
	t.Helper()
	l, err := Open(context.Background(), dir, append(opts, WithClock(clock))...)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, l.Close()) })
	return l
}

func TestOpenCreatesGenesis(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	clock := &manualClock{now: 1000}
	cfg := DefaultConfig()
	cfg.RetargetInterval = 60

	l, err := Open(context.Background(), dir, WithClock(clock), WithConfig(cfg))
	require.NoError(t, err)
	state, err := l.State(context.Background())
	require.NoError(t, err)
	require.Equal(t, shared.InitialTarget(), &state.Target)
	require.EqualValues(t, 1000, state.LastUpdate)
	require.EqualValues(t, 60, state.RetargetInterval)
	require.Zero(t, state.WorkCounter)
	require.NoError(t, l.Close())

	// Reopening keeps the stored state even with another configuration.
	clock.now = 5000
	l = newTestLedger(t, dir, clock)
	reopened, err := l.State(context.Background())
	require.NoError(t, err)
	require.Equal(t, state, reopened)
}

func TestOpenWithoutClock(t *testing.T) {
	t.Parallel()
	_, err := Open(context.Background(), t.TempDir(), WithClock(&manualClock{err: errors.New("no time")}))
	require.ErrorIs(t, err, verifier.ErrClockUnavailable)
}

func TestSubmit(t *testing.T) {
	t.Parallel()
	clock := &manualClock{now: 1000}
	l := newTestLedger(t, t.TempDir(), clock)

	accepted, receipt, err := l.Submit(context.Background(), identity, validNonce)
	require.NoError(t, err)
	require.EqualValues(t, 1, accepted.WorkCounter)
	require.False(t, accepted.Retargeted)
	require.Equal(t, shared.ChainHash(validNonce, identity), accepted.Digest)

	require.Equal(t, "rpow", receipt.Mint)
	require.Equal(t, identity, receipt.Recipient)
	require.Equal(t, validNonce, receipt.Nonce)
	require.EqualValues(t, 1000, receipt.Time)

	stored, err := l.Receipt(context.Background(), receipt.ID)
	require.NoError(t, err)
	require.Equal(t, receipt, stored)

	state, err := l.State(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, state.WorkCounter)
	require.Equal(t, shared.InitialTarget(), &state.Target)
}

func TestSubmitRejectedLeavesLedgerUntouched(t *testing.T) {
	t.Parallel()
	l := newTestLedger(t, t.TempDir(), &manualClock{now: 1000})
	before, err := l.State(context.Background())
	require.NoError(t, err)

	_, _, err = l.Submit(context.Background(), identity, invalidNonce)
	require.ErrorIs(t, err, verifier.ErrBelowTarget)

	after, err := l.State(context.Background())
	require.NoError(t, err)
	require.Equal(t, before, after)
	receipts, err := l.Receipts(context.Background())
	require.NoError(t, err)
	require.Empty(t, receipts)
}

func TestSubmitReplay(t *testing.T) {
	t.Parallel()
	t.Run("replay is refused", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		clock := &manualClock{now: 1000}
		l, err := Open(context.Background(), dir, WithClock(clock))
		require.NoError(t, err)

		_, _, err = l.Submit(context.Background(), identity, validNonce)
		require.NoError(t, err)
		_, _, err = l.Submit(context.Background(), identity, validNonce)
		require.ErrorIs(t, err, ErrAlreadySubmitted)
		require.NoError(t, l.Close())

		// Uniqueness survives a restart, not only the in-memory cache.
		l = newTestLedger(t, dir, clock)
		_, _, err = l.Submit(context.Background(), identity, validNonce)
		require.ErrorIs(t, err, ErrAlreadySubmitted)

		state, err := l.State(context.Background())
		require.NoError(t, err)
		require.EqualValues(t, 1, state.WorkCounter)
	})
	t.Run("resubmission allowed", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.AllowResubmission = true
		l := newTestLedger(t, t.TempDir(), &manualClock{now: 1000}, WithConfig(cfg))

		for i := 0; i < 2; i++ {
			_, _, err := l.Submit(context.Background(), identity, validNonce)
			require.NoError(t, err)
		}
		state, err := l.State(context.Background())
		require.NoError(t, err)
		require.EqualValues(t, 2, state.WorkCounter)

		receipts, err := l.Receipts(context.Background())
		require.NoError(t, err)
		require.Len(t, receipts, 2)
	})
	t.Run("other identity is not a replay", func(t *testing.T) {
		t.Parallel()
		l := newTestLedger(t, t.TempDir(), &manualClock{now: 1000})
		_, _, err := l.Submit(context.Background(), identity, validNonce)
		require.NoError(t, err)
		_, _, err = l.Submit(context.Background(), []byte("someone else"), validNonce)
		require.ErrorIs(t, err, verifier.ErrBelowTarget)
	})
}

func TestSubmitMinterFailureIsAtomic(t *testing.T) {
	t.Parallel()
	fail := true
	minter := verifier.AcknowledgerFunc(func(context.Context, verifier.Acknowledgment) error {
		if fail {
			return errors.New("mint unavailable")
		}
		return nil
	})
	clock := &manualClock{now: 1000}
	cfg := DefaultConfig()
	cfg.RetargetInterval = 10
	l := newTestLedger(t, t.TempDir(), clock, WithConfig(cfg), WithMinter(minter))
	before, err := l.State(context.Background())
	require.NoError(t, err)

	clock.now = 2000
	_, _, err = l.Submit(context.Background(), identity, validNonce)
	require.ErrorIs(t, err, verifier.ErrAcknowledgmentFailed)

	after, err := l.State(context.Background())
	require.NoError(t, err)
	require.Equal(t, before, after)
	receipts, err := l.Receipts(context.Background())
	require.NoError(t, err)
	require.Empty(t, receipts)

	// The failed submission did not consume the nonce.
	fail = false
	accepted, _, err := l.Submit(context.Background(), identity, validNonce)
	require.NoError(t, err)
	require.True(t, accepted.Retargeted)
}

func TestSubmitClockUnavailable(t *testing.T) {
	t.Parallel()
	clock := &manualClock{now: 1000}
	l := newTestLedger(t, t.TempDir(), clock)

	clock.err = errors.New("no time")
	_, _, err := l.Submit(context.Background(), identity, validNonce)
	require.ErrorIs(t, err, verifier.ErrClockUnavailable)

	state, err := l.State(context.Background())
	require.NoError(t, err)
	require.Zero(t, state.WorkCounter)
}

func TestSubmitRetargets(t *testing.T) {
	t.Parallel()
	clock := &manualClock{now: 1000}
	cfg := DefaultConfig()
	cfg.RetargetInterval = 100
	l := newTestLedger(t, t.TempDir(), clock, WithConfig(cfg))

	accepted, _, err := l.Submit(context.Background(), identity, validNonce)
	require.NoError(t, err)
	require.False(t, accepted.Retargeted)

	clock.now = 1101
	accepted, _, err = l.Submit(context.Background(), identity, 769510)
	require.NoError(t, err)
	require.True(t, accepted.Retargeted)

	state, err := l.State(context.Background())
	require.NoError(t, err)
	require.Equal(t, new(uint256.Int).Rsh(shared.InitialTarget(), 1), &state.Target)
	require.EqualValues(t, 1101, state.LastUpdate)
	require.EqualValues(t, 2, state.WorkCounter)

	// 807151 meets the genesis target but not the halved one.
	_, _, err = l.Submit(context.Background(), identity, 807151)
	require.ErrorIs(t, err, verifier.ErrBelowTarget)
}

func TestWorkKeyIsUnambiguous(t *testing.T) {
	t.Parallel()
	require.NotEqual(t, workKey([]byte("a/1"), 2), workKey([]byte("a"), 12))
	require.NotEqual(t, workKey([]byte("a"), 1), workKey([]byte("a"), 11))
}
