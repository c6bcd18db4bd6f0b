package difficulty

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/holiman/uint256"
	xdr "github.com/nullstyle/go-xdr/xdr3"
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/rpow/shared"
)

// DefaultRetargetInterval is the number of seconds that must elapse since the
// last retarget before the target is halved again.
const DefaultRetargetInterval int64 = 210_000

// RecordSize is the size of the persisted state record.
const RecordSize = 16 + 8 + 8 + 8

var ErrInvalidState = errors.New("invalid difficulty state")

// State is the consensus state of the verifier. There is exactly one per
// deployment, it is threaded explicitly and mutated only through Retarget and
// RecordWork.
type State struct {
	// Target is the acceptance threshold, smaller is harder.
	Target uint256.Int
	// LastUpdate is the unix time of the last retarget.
	LastUpdate int64
	// RetargetInterval is the number of seconds after which a retarget fires.
	RetargetInterval int64
	// WorkCounter counts accepted submissions since genesis. It is advisory only
	// and never consulted by the retarget policy.
	WorkCounter uint64
}

// Genesis returns the initial state.
func Genesis(now, retargetInterval int64) State {
	return State{
		Target:           *shared.InitialTarget(),
		LastUpdate:       now,
		RetargetInterval: retargetInterval,
	}
}

func (s *State) Validate() error {
	if err := shared.ValidateTarget(&s.Target); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	if s.RetargetInterval < 0 {
		return fmt.Errorf("%w: negative retarget interval %d", ErrInvalidState, s.RetargetInterval)
	}
	return nil
}

// record is the XDR image of State. Every field is fixed size so the record
// is exactly RecordSize bytes.
type record struct {
	Target           [16]byte
	LastUpdate       int64
	RetargetInterval int64
	WorkCounter      uint64
}

func (s *State) MarshalBinary() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	r := record{
		LastUpdate:       s.LastUpdate,
		RetargetInterval: s.RetargetInterval,
		WorkCounter:      s.WorkCounter,
	}
	// Validate bounds the target to 128 bits.
	target := s.Target.Bytes32()
	copy(r.Target[:], target[16:])
	var buf bytes.Buffer
	if _, err := xdr.Marshal(&buf, r); err != nil {
		return nil, fmt.Errorf("serializing state: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *State) UnmarshalBinary(data []byte) error {
	if len(data) != RecordSize {
		return fmt.Errorf("%w: record is %d bytes, expected %d", ErrInvalidState, len(data), RecordSize)
	}
	var r record
	if _, err := xdr.Unmarshal(bytes.NewReader(data), &r); err != nil {
		return fmt.Errorf("deserializing state: %w", err)
	}
	decoded := State{
		LastUpdate:       r.LastUpdate,
		RetargetInterval: r.RetargetInterval,
		WorkCounter:      r.WorkCounter,
	}
	decoded.Target.SetBytes16(r.Target[:])
	if err := decoded.Validate(); err != nil {
		return err
	}
	*s = decoded
	return nil
}

// implement zap.ObjectMarshaler interface.
func (s *State) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("target", shared.FormatTarget(&s.Target))
	enc.AddInt64("last_update", s.LastUpdate)
	enc.AddInt64("retarget_interval", s.RetargetInterval)
	enc.AddUint64("work_counter", s.WorkCounter)
	return nil
}
