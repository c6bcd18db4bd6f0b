package verifier

import (
	"errors"
	"fmt"

	"github.com/spacemeshos/rpow/shared"
)

var (
	ErrBelowTarget          = errors.New("digest does not meet the target")
	ErrAcknowledgmentFailed = errors.New("work acknowledgment failed")
	ErrClockUnavailable     = errors.New("clock unavailable")
)

// Reason classifies a refused submission.
type Reason int

const (
	ReasonBelowTarget Reason = iota + 1
	ReasonAcknowledgmentFailed
	ReasonClockUnavailable
)

func (r Reason) String() string {
	switch r {
	case ReasonBelowTarget:
		return "below_target"
	case ReasonAcknowledgmentFailed:
		return "acknowledgment_failed"
	case ReasonClockUnavailable:
		return "clock_unavailable"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

func (r Reason) sentinel() error {
	switch r {
	case ReasonBelowTarget:
		return ErrBelowTarget
	case ReasonAcknowledgmentFailed:
		return ErrAcknowledgmentFailed
	case ReasonClockUnavailable:
		return ErrClockUnavailable
	}
	return nil
}

// Rejection is the error returned for every refused submission. It matches
// the sentinel of its Reason with errors.Is.
type Rejection struct {
	Reason Reason
	Nonce  uint64
	Digest shared.Digest
	// Cause is the underlying failure, if any.
	Cause error
}

func (r *Rejection) Error() string {
	msg := fmt.Sprintf("submission of nonce %d rejected: %v", r.Nonce, r.Reason.sentinel())
	if r.Cause != nil {
		msg += ": " + r.Cause.Error()
	}
	return msg
}

func (r *Rejection) Unwrap() []error {
	errs := []error{r.Reason.sentinel()}
	if r.Cause != nil {
		errs = append(errs, r.Cause)
	}
	return errs
}

func reject(reason Reason, nonce uint64, digest shared.Digest, cause error) *Rejection {
	return &Rejection{Reason: reason, Nonce: nonce, Digest: digest, Cause: cause}
}
