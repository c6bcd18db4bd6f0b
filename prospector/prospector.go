package prospector

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spacemeshos/rpow/logging"
	"github.com/spacemeshos/rpow/shared"
)

const DefaultReportInterval = 10_000

var ErrNoSolution = errors.New("no solution found")

var (
	hashesMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "rpow",
		Subsystem: "prospector",
		Name:      "hashes_total",
		Help:      "Number of evaluated nonces",
	})
	hashrateMetric = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "rpow",
		Subsystem: "prospector",
		Name:      "hashes_per_second",
		Help:      "Nonce evaluation rate of the running search",
	})
	solutionsMetric = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "rpow",
		Subsystem: "prospector",
		Name:      "solutions_total",
		Help:      "Number of solutions found",
	})
)

// Solution is a nonce whose digest meets the target.
type Solution struct {
	Nonce  uint64
	Digest shared.Digest
	// Attempts is the number of nonces evaluated by all workers.
	Attempts uint64
}

// RandomStartNonce returns a uniformly random nonce, lowering the chance that
// searchers sharing an identity duplicate work.
func RandomStartNonce() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("reading random nonce: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Search scans nonces from start with wrap-around until one meets the target.
// It returns nil without an error if maxAttempts nonces were evaluated without
// success. Cancellation is checked before every attempt.
func Search(
	ctx context.Context,
	identity []byte,
	target *uint256.Int,
	start uint64,
	maxAttempts *uint64,
) (*Solution, error) {
	attempts := NewAttempts(identity, start, 1, maxAttempts)
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		attempt, ok := attempts.Next()
		if !ok {
			return nil, nil
		}
		if shared.MeetsTarget(attempt.Digest, target) {
			return &Solution{Nonce: attempt.Nonce, Digest: attempt.Digest, Attempts: attempts.Evaluated()}, nil
		}
	}
}

type Config struct {
	Workers        int    `long:"workers"         description:"Number of search workers (0 for one per CPU)"`
	ReportInterval uint64 `long:"report-interval" description:"Number of attempts per worker between progress reports"`
}

func DefaultConfig() Config {
	return Config{
		Workers:        runtime.NumCPU(),
		ReportInterval: DefaultReportInterval,
	}
}

// Prospector runs a parallel search. Worker i of n starts at start+i and
// advances by n, so no nonce is evaluated twice.
type Prospector struct {
	cfg Config
}

func New(cfg Config) *Prospector {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.ReportInterval == 0 {
		cfg.ReportInterval = DefaultReportInterval
	}
	return &Prospector{cfg: cfg}
}

func (p *Prospector) Workers() int {
	return p.cfg.Workers
}

// Run searches with all workers until one finds a solution, the budget of
// maxAttempts (shared by all workers) is exhausted or ctx is canceled.
// The first solution wins and stops the remaining workers.
func (p *Prospector) Run(
	ctx context.Context,
	identity []byte,
	target *uint256.Int,
	start uint64,
	maxAttempts *uint64,
) (*Solution, error) {
	if err := shared.ValidateTarget(target); err != nil {
		return nil, err
	}
	logger := logging.FromContext(ctx).Named("prospector")
	workers := uint64(p.cfg.Workers)
	logger.Info("starting search",
		zap.String("target", shared.FormatTarget(target)),
		zap.Binary("identity", identity),
		zap.Uint64("start", start),
		zap.Uint64("workers", workers),
	)

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, searchCtx := errgroup.WithContext(searchCtx)

	var (
		once      sync.Once
		solution  *Solution
		evaluated atomic.Uint64
		began     = time.Now()
	)
	report := func(n uint64) {
		total := evaluated.Add(n)
		hashesMetric.Add(float64(n))
		elapsed := time.Since(began).Seconds()
		if elapsed > 0 {
			rate := float64(total) / elapsed
			hashrateMetric.Set(rate)
			logger.Debug("searching", zap.Uint64("attempts", total), zap.Float64("hashrate", rate))
		}
	}

	for i := uint64(0); i < workers; i++ {
		attempts := NewAttempts(identity, start+i, workers, workerBudget(maxAttempts, i, workers))
		eg.Go(func() error {
			var unreported uint64
			for {
				select {
				case <-searchCtx.Done():
					report(unreported)
					return nil
				default:
				}
				attempt, ok := attempts.Next()
				if !ok {
					report(unreported)
					return nil
				}
				unreported++
				if shared.MeetsTarget(attempt.Digest, target) {
					report(unreported)
					once.Do(func() {
						solution = &Solution{Nonce: attempt.Nonce, Digest: attempt.Digest}
						cancel()
					})
					return nil
				}
				if unreported == p.cfg.ReportInterval {
					report(unreported)
					unreported = 0
				}
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if solution != nil {
		solution.Attempts = evaluated.Load()
		solutionsMetric.Inc()
		logger.Info("found solution",
			zap.Uint64("nonce", solution.Nonce),
			zap.Stringer("digest", solution.Digest),
			zap.Uint64("attempts", solution.Attempts),
			zap.Duration("took", time.Since(began)),
		)
		return solution, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Info("search exhausted", zap.Uint64("attempts", evaluated.Load()))
	return nil, nil
}

// workerBudget splits maxAttempts between workers as evenly as possible.
func workerBudget(maxAttempts *uint64, worker, workers uint64) *uint64 {
	if maxAttempts == nil {
		return nil
	}
	budget := *maxAttempts / workers
	if worker < *maxAttempts%workers {
		budget++
	}
	return &budget
}
