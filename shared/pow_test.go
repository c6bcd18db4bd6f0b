package shared_test

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/rpow/shared"
)

const vectorsFile = "testdata/vectors.json"

// chainHashGeneric is a straightforward rendition of the construction on top of
// the standard library, used as an independent reference.
func chainHashGeneric(nonce uint64, identity []byte) (digest shared.Digest) {
	nonceBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonceBytes, nonce)
	for i := 0; i < shared.Rounds; i++ {
		msg := append(append(append([]byte{}, digest[:]...), nonceBytes...), identity...)
		digest = sha256.Sum256(msg)
	}
	return digest
}

func TestChainHashConformance(t *testing.T) {
	t.Parallel()
	vectors, err := shared.LoadConformanceVectors(vectorsFile)
	require.NoError(t, err)
	require.NotEmpty(t, vectors.Vectors)

	for _, v := range vectors.Vectors {
		identity, err := v.IdentityBytes()
		require.NoError(t, err)

		require.Equal(t, v.Digest, shared.ChainHash(v.Nonce, identity), "nonce %d identity %x", v.Nonce, identity)
		require.Equal(t, v.Digest, chainHashGeneric(v.Nonce, identity))
		require.Equal(t, v.Value, shared.FormatTarget(shared.DigestValue(v.Digest)))
	}
}

func TestChainHashKnownVector(t *testing.T) {
	t.Parallel()
	require.Equal(
		t,
		"c96af1fc3cd9e6b171989ef6f2da2fe9c9f135b268c047ff962cecb9f6814b56",
		shared.ChainHash(0, nil).String(),
	)
}

func TestChainHashDeterministic(t *testing.T) {
	t.Parallel()
	identity := []byte("identity")
	first := shared.ChainHash(123, identity)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, shared.ChainHash(123, identity))
	}
	require.NotEqual(t, first, shared.ChainHash(124, identity))
	require.NotEqual(t, first, shared.ChainHash(123, []byte("other")))
}

func TestChainHasherReuse(t *testing.T) {
	t.Parallel()
	identity := make([]byte, 32)
	hasher := shared.NewChainHasher(identity)
	for nonce := uint64(0); nonce < 100; nonce++ {
		require.Equal(t, chainHashGeneric(nonce, identity), hasher.Hash(nonce))
	}
	// The hasher keeps no state between calls.
	require.Equal(t, chainHashGeneric(5, identity), hasher.Hash(5))
}

func TestMeetsTargetBoundary(t *testing.T) {
	t.Parallel()
	digest := shared.ChainHash(0, nil)
	value := shared.DigestValue(digest)

	require.False(t, shared.MeetsTarget(digest, value))
	require.False(t, shared.MeetsTarget(digest, new(uint256.Int).SubUint64(value, 1)))
	require.True(t, shared.MeetsTarget(digest, new(uint256.Int).AddUint64(value, 1)))
	require.True(t, shared.MeetsTarget(digest, shared.MaxTarget()))
	require.False(t, shared.MeetsTarget(digest, uint256.NewInt(1)))
}

func TestMeetsTargetUsesBigEndianPrefix(t *testing.T) {
	t.Parallel()
	var digest shared.Digest
	digest[15] = 0x01 // value 1
	digest[16] = 0xff // outside the prefix

	require.False(t, shared.MeetsTarget(digest, uint256.NewInt(1)))
	require.True(t, shared.MeetsTarget(digest, uint256.NewInt(2)))

	digest = shared.Digest{}
	digest[0] = 0x01 // value 2^120
	require.False(t, shared.MeetsTarget(digest, new(uint256.Int).Lsh(uint256.NewInt(1), 120)))
	require.True(t, shared.MeetsTarget(digest, new(uint256.Int).AddUint64(new(uint256.Int).Lsh(uint256.NewInt(1), 120), 1)))
}

func TestTargets(t *testing.T) {
	t.Parallel()
	require.Equal(t, "340282366920938463463374607431768211455", shared.FormatTarget(shared.MaxTarget()))
	require.Equal(t, "340282366920938463463374607431768", shared.FormatTarget(shared.InitialTarget()))

	t.Run("parse decimal", func(t *testing.T) {
		target, err := shared.ParseTarget("340282366920938463463374607431768")
		require.NoError(t, err)
		require.Equal(t, shared.InitialTarget(), target)
	})
	t.Run("parse hex", func(t *testing.T) {
		target, err := shared.ParseTarget("0xffffffffffffffffffffffffffffffff")
		require.NoError(t, err)
		require.Equal(t, shared.MaxTarget(), target)
	})
	t.Run("reject zero", func(t *testing.T) {
		_, err := shared.ParseTarget("0")
		require.ErrorIs(t, err, shared.ErrInvalidTarget)
	})
	t.Run("reject more than 128 bits", func(t *testing.T) {
		_, err := shared.ParseTarget("0x100000000000000000000000000000000")
		require.ErrorIs(t, err, shared.ErrInvalidTarget)
	})
	t.Run("reject garbage", func(t *testing.T) {
		_, err := shared.ParseTarget("many")
		require.ErrorIs(t, err, shared.ErrInvalidTarget)
	})
}

func TestSolutionReport(t *testing.T) {
	t.Parallel()
	report := shared.SolutionReport{Nonce: 7, Identity: "0a0b"}
	identity, err := report.IdentityBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0x0a, 0x0b}, identity)
}

func BenchmarkChainHash(b *testing.B) {
	hasher := shared.NewChainHasher(make([]byte, 32))
	for i := 0; i < b.N; i++ {
		hasher.Hash(uint64(i))
	}
}
