package shared

import (
	"encoding/hex"
	"fmt"
	"time"
)

// Digest is the output of ChainHash.
type Digest [DigestSize]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Digest) UnmarshalText(text []byte) error {
	if hex.DecodedLen(len(text)) != DigestSize {
		return fmt.Errorf("digest must be %d bytes, got %d", DigestSize, hex.DecodedLen(len(text)))
	}
	_, err := hex.Decode(d[:], text)
	return err
}

// Attempt is a single evaluated nonce. It is never persisted.
type Attempt struct {
	Nonce    uint64
	Identity []byte
	Digest   Digest
}

// SolutionReport describes a discovered solution on its way to the submission
// interface. It is informational only, the verifier recomputes everything.
type SolutionReport struct {
	Nonce     uint64 `json:"nonce"`
	Identity  string `json:"identity"`
	Timestamp uint64 `json:"timestamp"`
}

func NewSolutionReport(nonce uint64, identity []byte, now time.Time) SolutionReport {
	return SolutionReport{
		Nonce:     nonce,
		Identity:  hex.EncodeToString(identity),
		Timestamp: uint64(now.Unix()),
	}
}

// IdentityBytes decodes the hex encoded identity of the report.
func (r SolutionReport) IdentityBytes() ([]byte, error) {
	return hex.DecodeString(r.Identity)
}
