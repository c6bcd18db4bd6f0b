package shared

import (
	"encoding/binary"
	"hash"

	"github.com/minio/sha256-simd"
)

const (
	// ProtocolVersion identifies the hash-chain construction below. Any change to
	// Rounds, the nonce encoding or the field order is a new protocol version.
	ProtocolVersion = 1

	// Rounds is the number of chained SHA-256 invocations.
	Rounds = 10

	DigestSize = sha256.Size
	nonceSize  = 8
)

// ChainHash computes the proof-of-work digest of a nonce for the given identity.
//
// acc_0 = 0^32
// acc_i = sha256(acc_{i-1} || le64(nonce) || identity), for i in 1..Rounds.
func ChainHash(nonce uint64, identity []byte) Digest {
	return NewChainHasher(identity).Hash(nonce)
}

// ChainHasher computes ChainHash for a fixed identity without allocating.
// It is not safe for concurrent use, every search worker owns one.
type ChainHasher struct {
	h hash.Hash
	// acc || nonce || identity
	buf []byte
}

func NewChainHasher(identity []byte) *ChainHasher {
	buf := make([]byte, DigestSize+nonceSize+len(identity))
	copy(buf[DigestSize+nonceSize:], identity)
	return &ChainHasher{h: sha256.New(), buf: buf}
}

func (c *ChainHasher) Hash(nonce uint64) (digest Digest) {
	acc := c.buf[:DigestSize]
	for i := range acc {
		acc[i] = 0
	}
	binary.LittleEndian.PutUint64(c.buf[DigestSize:DigestSize+nonceSize], nonce)

	for i := 0; i < Rounds; i++ {
		c.h.Reset()
		c.h.Write(c.buf)
		// Sum appends after the digest is computed, so it is safe to
		// overwrite the accumulator prefix of the input in place.
		c.h.Sum(acc[:0])
	}
	copy(digest[:], acc)
	return digest
}
