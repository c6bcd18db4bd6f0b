package verifier

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/spacemeshos/rpow/difficulty"
	"github.com/spacemeshos/rpow/logging"
	"github.com/spacemeshos/rpow/shared"
)

//go:generate mockgen -package mocks -destination mocks/verifier.go . Acknowledger,Clock

var (
	submissionsMetric = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "rpow",
		Subsystem: "verifier",
		Name:      "submissions_total",
		Help:      "Number of verified submissions by result",
	}, []string{"result"})

	retargetsMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "rpow",
		Subsystem: "verifier",
		Name:      "retargets_total",
		Help:      "Number of retargets",
	})

	targetBitsMetric = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "rpow",
		Subsystem: "verifier",
		Name:      "target_bits",
		Help:      "Bit length of the current target",
	})
)

// Acknowledgment is handed to the Acknowledger for every valid submission.
type Acknowledgment struct {
	// Recipient is the identity that did the work.
	Recipient []byte
	Nonce     uint64
	Digest    shared.Digest
	Time      int64
}

// Acknowledger performs the side effect of accepted work (minting).
// A failing Acknowledger aborts the submission.
type Acknowledger interface {
	Acknowledge(ctx context.Context, ack Acknowledgment) error
}

// AcknowledgerFunc adapts a function to Acknowledger.
type AcknowledgerFunc func(ctx context.Context, ack Acknowledgment) error

func (f AcknowledgerFunc) Acknowledge(ctx context.Context, ack Acknowledgment) error {
	return f(ctx, ack)
}

// Clock is the trusted time source of the verifier.
type Clock interface {
	Now() (int64, error)
}

type SystemClock struct{}

func (SystemClock) Now() (int64, error) {
	return time.Now().Unix(), nil
}

// Accepted describes accepted work and the resulting state.
type Accepted struct {
	Nonce  uint64
	Digest shared.Digest

	Retargeted  bool
	Target      uint256.Int
	WorkCounter uint64
}

// Check recomputes the digest of the nonce and tests it against the target
// without touching any state.
func Check(nonce uint64, identity []byte, target *uint256.Int) (shared.Digest, error) {
	digest := shared.ChainHash(nonce, identity)
	if !shared.MeetsTarget(digest, target) {
		return digest, reject(ReasonBelowTarget, nonce, digest, nil)
	}
	return digest, nil
}

// Submit is the single authoritative decision on a submission.
//
// The state is left untouched unless the digest meets the current target and
// the acknowledgment succeeds. The new state is then committed at once.
// Callers must serialize calls sharing a state and guarantee a logical
// submission is not replayed.
func Submit(
	ctx context.Context,
	ack Acknowledger,
	nonce uint64,
	identity []byte,
	state *difficulty.State,
	now int64,
) (*Accepted, error) {
	logger := logging.FromContext(ctx).With(zap.Uint64("nonce", nonce), zap.String("identity", hex.EncodeToString(identity)))

	digest, err := Check(nonce, identity, &state.Target)
	if err != nil {
		submissionsMetric.WithLabelValues(ReasonBelowTarget.String()).Inc()
		logger.Debug("digest below target", zap.Stringer("digest", digest))
		return nil, err
	}

	err = ack.Acknowledge(ctx, Acknowledgment{
		Recipient: identity,
		Nonce:     nonce,
		Digest:    digest,
		Time:      now,
	})
	if err != nil {
		submissionsMetric.WithLabelValues(ReasonAcknowledgmentFailed.String()).Inc()
		logger.Warn("acknowledgment failed", zap.Error(err))
		return nil, reject(ReasonAcknowledgmentFailed, nonce, digest, err)
	}

	next := *state
	retargeted := difficulty.Retarget(&next, now)
	difficulty.RecordWork(&next)
	*state = next

	submissionsMetric.WithLabelValues("accepted").Inc()
	targetBitsMetric.Set(float64(state.Target.BitLen()))
	if retargeted {
		retargetsMetric.Inc()
		logger.Info("retargeted", zap.Object("state", state))
	}
	logger.Debug("accepted work", zap.Stringer("digest", digest), zap.Uint64("work_counter", state.WorkCounter))

	return &Accepted{
		Nonce:       nonce,
		Digest:      digest,
		Retargeted:  retargeted,
		Target:      state.Target,
		WorkCounter: state.WorkCounter,
	}, nil
}

// Verifier binds Submit to an acknowledger and a clock.
type Verifier struct {
	ack   Acknowledger
	clock Clock
}

type newVerifierOptionFunc func(*Verifier)

func WithClock(clock Clock) newVerifierOptionFunc {
	return func(v *Verifier) {
		v.clock = clock
	}
}

func New(ack Acknowledger, opts ...newVerifierOptionFunc) *Verifier {
	v := &Verifier{ack: ack, clock: SystemClock{}}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Submit reads the clock and submits the nonce. Without a readable clock the
// submission is refused, a stale or default time is never used.
func (v *Verifier) Submit(
	ctx context.Context,
	nonce uint64,
	identity []byte,
	state *difficulty.State,
) (*Accepted, error) {
	now, err := v.clock.Now()
	if err != nil {
		submissionsMetric.WithLabelValues(ReasonClockUnavailable.String()).Inc()
		return nil, reject(ReasonClockUnavailable, nonce, shared.Digest{}, err)
	}
	return Submit(ctx, v.ack, nonce, identity, state, now)
}

func (v *Verifier) Clock() Clock {
	return v.clock
}
