package shared

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// InitialTargetDivisor sets the genesis target to MaxTarget / InitialTargetDivisor.
const InitialTargetDivisor = 1_000_000

var ErrInvalidTarget = errors.New("invalid target")

var maxTarget = func() uint256.Int {
	var all [16]byte
	for i := range all {
		all[i] = 0xff
	}
	var t uint256.Int
	t.SetBytes16(all[:])
	return t
}()

// MaxTarget returns 2^128 - 1.
func MaxTarget() *uint256.Int {
	t := maxTarget
	return &t
}

// InitialTarget returns the genesis target.
func InitialTarget() *uint256.Int {
	return new(uint256.Int).Div(MaxTarget(), uint256.NewInt(InitialTargetDivisor))
}

// DigestValue interprets the first 16 bytes of the digest as a big-endian
// unsigned 128-bit integer.
func DigestValue(digest Digest) *uint256.Int {
	return new(uint256.Int).SetBytes16(digest[:16])
}

// MeetsTarget reports whether the 128-bit prefix of the digest is strictly
// below the target.
func MeetsTarget(digest Digest, target *uint256.Int) bool {
	var v uint256.Int
	v.SetBytes16(digest[:16])
	return v.Lt(target)
}

// ValidateTarget checks that the target is non-zero and fits in 128 bits.
func ValidateTarget(target *uint256.Int) error {
	switch {
	case target == nil || target.IsZero():
		return fmt.Errorf("%w: zero target rejects every digest", ErrInvalidTarget)
	case target.BitLen() > 128:
		return fmt.Errorf("%w: %d bits, at most 128 allowed", ErrInvalidTarget, target.BitLen())
	}
	return nil
}

// ParseTarget accepts a decimal or a 0x-prefixed hexadecimal target.
func ParseTarget(s string) (*uint256.Int, error) {
	b, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok || b.Sign() < 0 {
		return nil, fmt.Errorf("%w: cannot parse %q", ErrInvalidTarget, s)
	}
	t, overflow := uint256.FromBig(b)
	if overflow {
		return nil, fmt.Errorf("%w: %q overflows", ErrInvalidTarget, s)
	}
	if err := ValidateTarget(t); err != nil {
		return nil, err
	}
	return t, nil
}

// FormatTarget renders the target in decimal.
func FormatTarget(target *uint256.Int) string {
	return target.ToBig().String()
}
