// Command prospector searches for a nonce whose chain hash meets the target
// and optionally submits it to an rpow node.
package main

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/holiman/uint256"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/spacemeshos/rpow/logging"
	"github.com/spacemeshos/rpow/prospector"
	api "github.com/spacemeshos/rpow/release/proto/go/rpc/api/v1"
	"github.com/spacemeshos/rpow/shared"
	"github.com/spacemeshos/rpow/signing"
)

type prospect struct {
	cfg    *config
	key    ed25519.PrivateKey
	client api.PowServiceClient
}

func (p *prospect) identity(ctx context.Context) ([]byte, error) {
	if p.cfg.KeyFile != "" {
		key, err := signing.LoadKey(ctx, p.cfg.KeyFile, os.Getenv(signing.KeyEnvVar))
		if err != nil {
			return nil, err
		}
		p.key = key
		return key.Public().(ed25519.PublicKey), nil
	}
	if p.cfg.Identity == "" {
		return nil, ErrNoIdentity
	}
	return parseIdentity(p.cfg.Identity)
}

func (p *prospect) target(ctx context.Context) (*uint256.Int, error) {
	switch {
	case p.cfg.Target != "":
		return shared.ParseTarget(p.cfg.Target)
	case p.client != nil:
		resp, err := p.client.Difficulty(ctx, &api.DifficultyRequest{})
		if err != nil {
			return nil, fmt.Errorf("querying difficulty: %w", err)
		}
		if resp.ProtocolVersion != shared.ProtocolVersion {
			return nil, fmt.Errorf("%w: node speaks version %d, expected %d",
				ErrIncompatibleNode, resp.ProtocolVersion, shared.ProtocolVersion)
		}
		if resp.Rounds != shared.Rounds {
			return nil, fmt.Errorf("%w: node uses %d rounds, expected %d", ErrIncompatibleNode, resp.Rounds, shared.Rounds)
		}
		return shared.ParseTarget(resp.Target)
	default:
		return shared.InitialTarget(), nil
	}
}

func (p *prospect) submit(ctx context.Context, solution *prospector.Solution) error {
	signed, err := signing.Sign(signing.NewSubmission(solution.Nonce), p.key, p.key.Public().(ed25519.PublicKey))
	if err != nil {
		return err
	}
	resp, err := p.client.Submit(ctx, &api.SubmitRequest{
		Nonce:     solution.Nonce,
		Pubkey:    signed.PubKey(),
		Signature: signed.Signature(),
	})
	if err != nil {
		return fmt.Errorf("submitting solution: %w", err)
	}
	logging.FromContext(ctx).Info("solution accepted",
		zap.String("receipt", resp.Receipt),
		zap.String("mint", resp.Mint),
		zap.Uint64("work_counter", resp.WorkCounter),
		zap.Bool("retargeted", resp.Retargeted),
		zap.String("target", resp.Target),
	)
	return nil
}

// run searches a solution for the configured identity and writes its
// report to out as JSON.
func run(ctx context.Context, cfg *config, out io.Writer) error {
	p := &prospect{cfg: cfg}
	if cfg.Node != "" {
		conn, err := grpc.DialContext(ctx, cfg.Node, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("connecting to %s: %w", cfg.Node, err)
		}
		defer conn.Close()
		p.client = api.NewPowServiceClient(conn)
	}

	identity, err := p.identity(ctx)
	if err != nil {
		return err
	}
	target, err := p.target(ctx)
	if err != nil {
		return err
	}

	var start uint64
	if cfg.StartNonce != nil {
		start = *cfg.StartNonce
	} else if start, err = prospector.RandomStartNonce(); err != nil {
		return err
	}

	solution, err := prospector.New(cfg.Prospector).Run(ctx, identity, target, start, cfg.MaxAttempts)
	if err != nil {
		return err
	}
	if solution == nil {
		return prospector.ErrNoSolution
	}

	report := shared.NewSolutionReport(solution.Nonce, identity, time.Now())
	if err := json.NewEncoder(out).Encode(report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if cfg.Submit {
		return p.submit(ctx, solution)
	}
	return nil
}

func prospectorMain() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	logLevel := zap.InfoLevel
	if cfg.DebugLog {
		logLevel = zap.DebugLevel
	}
	logger := logging.New(logLevel, logging.FileConfig{}, cfg.JSONLog)
	defer func() { _ = logger.Sync() }()
	ctx := logging.NewContext(context.Background(), logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	return run(ctx, cfg, os.Stdout)
}

func main() {
	if err := prospectorMain(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		} else {
			_, _ = fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
