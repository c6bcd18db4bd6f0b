package verifier_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/rpow/difficulty"
	"github.com/spacemeshos/rpow/shared"
	"github.com/spacemeshos/rpow/verifier"
	"github.com/spacemeshos/rpow/verifier/mocks"
)

var (
	// The first nonce meeting the genesis target for this identity is 3035.
	identity     = []byte("prospector-29")
	validNonce   = uint64(3035)
	invalidNonce = uint64(3034)
)

func recordOf(t *testing.T, state *difficulty.State) []byte {
	t.Helper()
	data, err := state.MarshalBinary()
	require.NoError(t, err)
	return data
}

func TestConformanceVectors(t *testing.T) {
	t.Parallel()
	vectors, err := shared.LoadConformanceVectors("../shared/testdata/vectors.json")
	require.NoError(t, err)

	for _, v := range vectors.Vectors {
		id, err := v.IdentityBytes()
		require.NoError(t, err)

		value := shared.DigestValue(v.Digest)
		digest, err := verifier.Check(v.Nonce, id, new(uint256.Int).AddUint64(value, 1))
		require.NoError(t, err)
		require.Equal(t, v.Digest, digest)

		_, err = verifier.Check(v.Nonce, id, value)
		require.ErrorIs(t, err, verifier.ErrBelowTarget)
	}
}

func TestSubmitRejectsBelowTarget(t *testing.T) {
	t.Parallel()
	ack := mocks.NewMockAcknowledger(gomock.NewController(t))
	state := difficulty.Genesis(1000, difficulty.DefaultRetargetInterval)
	before := recordOf(t, &state)

	accepted, err := verifier.Submit(context.Background(), ack, invalidNonce, identity, &state, 1_000_000)
	require.ErrorIs(t, err, verifier.ErrBelowTarget)
	require.Nil(t, accepted)

	var rejection *verifier.Rejection
	require.ErrorAs(t, err, &rejection)
	require.Equal(t, verifier.ReasonBelowTarget, rejection.Reason)
	require.Equal(t, shared.ChainHash(invalidNonce, identity), rejection.Digest)

	require.Equal(t, before, recordOf(t, &state))
}

func TestSubmitAcknowledgmentFailureIsAtomic(t *testing.T) {
	t.Parallel()
	ack := mocks.NewMockAcknowledger(gomock.NewController(t))
	mintErr := errors.New("mint failed")
	ack.EXPECT().Acknowledge(gomock.Any(), gomock.Any()).Return(mintErr)

	// The interval has elapsed, a successful submission would retarget.
	state := difficulty.Genesis(1000, 10)
	before := recordOf(t, &state)

	_, err := verifier.Submit(context.Background(), ack, validNonce, identity, &state, 2000)
	require.ErrorIs(t, err, verifier.ErrAcknowledgmentFailed)
	require.ErrorIs(t, err, mintErr)
	require.Equal(t, before, recordOf(t, &state))
	require.Zero(t, state.WorkCounter)
}

func TestSubmitAccepts(t *testing.T) {
	t.Parallel()
	ack := mocks.NewMockAcknowledger(gomock.NewController(t))
	ack.EXPECT().Acknowledge(gomock.Any(), verifier.Acknowledgment{
		Recipient: identity,
		Nonce:     validNonce,
		Digest:    shared.ChainHash(validNonce, identity),
		Time:      1500,
	}).Return(nil)

	state := difficulty.Genesis(1000, difficulty.DefaultRetargetInterval)
	accepted, err := verifier.Submit(context.Background(), ack, validNonce, identity, &state, 1500)
	require.NoError(t, err)
	require.Equal(t, validNonce, accepted.Nonce)
	require.Equal(t, shared.ChainHash(validNonce, identity), accepted.Digest)
	require.False(t, accepted.Retargeted)
	require.EqualValues(t, 1, accepted.WorkCounter)

	require.EqualValues(t, 1, state.WorkCounter)
	require.Equal(t, shared.InitialTarget(), &state.Target)
	require.EqualValues(t, 1000, state.LastUpdate)
}

func TestSubmitRetargetsAfterInterval(t *testing.T) {
	t.Parallel()
	ack := mocks.NewMockAcknowledger(gomock.NewController(t))
	ack.EXPECT().Acknowledge(gomock.Any(), gomock.Any()).Return(nil)

	state := difficulty.Genesis(1000, 100)
	accepted, err := verifier.Submit(context.Background(), ack, validNonce, identity, &state, 1101)
	require.NoError(t, err)
	require.True(t, accepted.Retargeted)

	half := new(uint256.Int).Rsh(shared.InitialTarget(), 1)
	require.Equal(t, half, &state.Target)
	require.Equal(t, *half, accepted.Target)
	require.EqualValues(t, 1101, state.LastUpdate)
	require.EqualValues(t, 1, state.WorkCounter)
}

func TestVerifierReadsClock(t *testing.T) {
	t.Parallel()
	t.Run("clock unavailable", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		ack := mocks.NewMockAcknowledger(ctrl)
		clock := mocks.NewMockClock(ctrl)
		clock.EXPECT().Now().Return(int64(0), errors.New("no clock"))

		state := difficulty.Genesis(1000, 0)
		before := recordOf(t, &state)

		_, err := verifier.New(ack, verifier.WithClock(clock)).Submit(context.Background(), validNonce, identity, &state)
		require.ErrorIs(t, err, verifier.ErrClockUnavailable)
		require.Equal(t, before, recordOf(t, &state))
	})
	t.Run("clock time is used", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		ack := mocks.NewMockAcknowledger(ctrl)
		ack.EXPECT().Acknowledge(gomock.Any(), gomock.Any()).Return(nil)
		clock := mocks.NewMockClock(ctrl)
		clock.EXPECT().Now().Return(int64(5000), nil)

		state := difficulty.Genesis(1000, 0)
		accepted, err := verifier.New(ack, verifier.WithClock(clock)).Submit(context.Background(), validNonce, identity, &state)
		require.NoError(t, err)
		require.True(t, accepted.Retargeted)
		require.EqualValues(t, 5000, state.LastUpdate)
	})
}

func TestRejectionReasons(t *testing.T) {
	t.Parallel()
	require.Equal(t, "below_target", verifier.ReasonBelowTarget.String())
	require.Equal(t, "acknowledgment_failed", verifier.ReasonAcknowledgmentFailed.String())
	require.Equal(t, "clock_unavailable", verifier.ReasonClockUnavailable.String())
}
