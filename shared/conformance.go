package shared

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// ConformanceVector pins ChainHash output for one input. Both the verifier
// and the prospector test suites check the same vectors file.
type ConformanceVector struct {
	Nonce    uint64 `json:"nonce"`
	Identity string `json:"identity"` // hex
	Digest   Digest `json:"digest"`
	// Value is the 128-bit big-endian prefix of Digest in decimal.
	Value string `json:"value"`
}

type ConformanceVectors struct {
	Version int                 `json:"version"`
	Rounds  int                 `json:"rounds"`
	Vectors []ConformanceVector `json:"vectors"`
}

func (v ConformanceVector) IdentityBytes() ([]byte, error) {
	return hex.DecodeString(v.Identity)
}

// LoadConformanceVectors reads a vectors file and refuses files written for
// another protocol version.
func LoadConformanceVectors(path string) (*ConformanceVectors, error) {
	data, err := os.ReadFile(path) //#nosec G304
	if err != nil {
		return nil, fmt.Errorf("loading vectors: %w", err)
	}
	var vectors ConformanceVectors
	if err := json.Unmarshal(data, &vectors); err != nil {
		return nil, fmt.Errorf("decoding vectors: %w", err)
	}
	if vectors.Version != ProtocolVersion || vectors.Rounds != Rounds {
		return nil, fmt.Errorf(
			"vectors are for protocol v%d (%d rounds), implementation is v%d (%d rounds)",
			vectors.Version, vectors.Rounds, ProtocolVersion, Rounds,
		)
	}
	return &vectors, nil
}
