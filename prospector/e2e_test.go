package prospector_test

import (
	"context"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/rpow/difficulty"
	"github.com/spacemeshos/rpow/prospector"
	"github.com/spacemeshos/rpow/shared"
	"github.com/spacemeshos/rpow/verifier"
)

// The prospector and the verifier agree on found work, and the verifier
// halves the target once the retarget interval has elapsed.
func TestProspectAndVerify(t *testing.T) {
	t.Parallel()
	identity := []byte("prospector-29")
	const genesisTime, interval = int64(1_700_000_000), int64(3600)

	var minted []verifier.Acknowledgment
	ack := verifier.AcknowledgerFunc(func(_ context.Context, a verifier.Acknowledgment) error {
		minted = append(minted, a)
		return nil
	})
	state := difficulty.Genesis(genesisTime, interval)
	p := prospector.New(prospector.Config{Workers: 2})

	// Find work against the target last observed on the verifier.
	observed := state.Target
	solution, err := p.Run(context.Background(), identity, &observed, 0, nil)
	require.NoError(t, err)
	require.NotNil(t, solution)

	accepted, err := verifier.Submit(context.Background(), ack, solution.Nonce, identity, &state, genesisTime)
	require.NoError(t, err)
	require.Equal(t, solution.Digest, accepted.Digest)
	require.False(t, accepted.Retargeted)
	require.EqualValues(t, 1, state.WorkCounter)
	require.Equal(t, shared.InitialTarget(), &state.Target)

	// Search on from where the previous search stopped.
	observed = state.Target
	next, err := prospector.Search(context.Background(), identity, &observed, solution.Nonce+1, nil)
	require.NoError(t, err)
	require.NotNil(t, next)

	accepted, err = verifier.Submit(context.Background(), ack, next.Nonce, identity, &state, genesisTime+interval+1)
	require.NoError(t, err)
	require.True(t, accepted.Retargeted)
	require.EqualValues(t, 2, state.WorkCounter)
	require.Equal(t, new(uint256.Int).Div(shared.InitialTarget(), uint256.NewInt(2)), &state.Target)
	require.EqualValues(t, genesisTime+interval+1, state.LastUpdate)

	require.Len(t, minted, 2)
	require.Equal(t, solution.Nonce, minted[0].Nonce)
	require.Equal(t, next.Nonce, minted[1].Nonce)
}
