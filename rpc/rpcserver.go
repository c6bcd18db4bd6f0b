package rpc

import (
	"context"
	"errors"

	"github.com/holiman/uint256"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/spacemeshos/rpow/difficulty"
	"github.com/spacemeshos/rpow/ledger"
	"github.com/spacemeshos/rpow/logging"
	api "github.com/spacemeshos/rpow/release/proto/go/rpc/api/v1"
	"github.com/spacemeshos/rpow/shared"
	"github.com/spacemeshos/rpow/signing"
	"github.com/spacemeshos/rpow/verifier"
)

// Ledger is the difficulty state backend of the rpcServer.
type Ledger interface {
	State(ctx context.Context) (*difficulty.State, error)
	Submit(ctx context.Context, identity []byte, nonce uint64) (*verifier.Accepted, *ledger.Receipt, error)
}

// rpcServer is a gRPC, RPC front end to the ledger.
type rpcServer struct {
	ledger Ledger
}

// A compile time check to ensure that rpcServer fully implements
// the PowServiceServer gRPC rpc.
var _ api.PowServiceServer = (*rpcServer)(nil)

// NewServer creates and returns a new instance of the rpcServer.
func NewServer(ledger Ledger) *rpcServer {
	return &rpcServer{ledger: ledger}
}

// Difficulty implements api.Difficulty.
func (r *rpcServer) Difficulty(ctx context.Context, in *api.DifficultyRequest) (*api.DifficultyResponse, error) {
	state, err := r.ledger.State(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn("failed to load difficulty state", zap.Error(err))
		return nil, status.Error(codes.Internal, "failed to load difficulty state")
	}
	return &api.DifficultyResponse{
		Target:           shared.FormatTarget(&state.Target),
		LastUpdate:       state.LastUpdate,
		RetargetInterval: state.RetargetInterval,
		WorkCounter:      state.WorkCounter,
		ProtocolVersion:  shared.ProtocolVersion,
		Rounds:           shared.Rounds,
	}, nil
}

// Submit implements api.Submit.
func (r *rpcServer) Submit(ctx context.Context, in *api.SubmitRequest) (*api.SubmitResponse, error) {
	signed, err := signing.NewFromScaleEncodable(signing.NewSubmission(in.Nonce), in.Signature, in.Pubkey)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	accepted, receipt, err := r.ledger.Submit(ctx, signed.PubKey(), signed.Data().Nonce)
	switch {
	case errors.Is(err, verifier.ErrBelowTarget):
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, ledger.ErrAlreadySubmitted):
		return nil, status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, verifier.ErrClockUnavailable), errors.Is(err, verifier.ErrAcknowledgmentFailed):
		return nil, status.Error(codes.Unavailable, "failed to process the submission, consider retrying")
	case err != nil:
		logging.FromContext(ctx).Warn("unknown error during submission", zap.Error(err))
		return nil, status.Error(codes.Internal, "unknown error during submission")
	}

	return &api.SubmitResponse{
		Receipt:     receipt.ID.String(),
		Mint:        receipt.Mint,
		Digest:      accepted.Digest[:],
		Retargeted:  accepted.Retargeted,
		Target:      shared.FormatTarget(&accepted.Target),
		WorkCounter: accepted.WorkCounter,
	}, nil
}

// Verify implements api.Verify.
func (r *rpcServer) Verify(ctx context.Context, in *api.VerifyRequest) (*api.VerifyResponse, error) {
	var target *uint256.Int
	if in.Target != "" {
		t, err := shared.ParseTarget(in.Target)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		target = t
	} else {
		state, err := r.ledger.State(ctx)
		if err != nil {
			logging.FromContext(ctx).Warn("failed to load difficulty state", zap.Error(err))
			return nil, status.Error(codes.Internal, "failed to load difficulty state")
		}
		target = &state.Target
	}

	digest := shared.ChainHash(in.Nonce, in.Identity)
	return &api.VerifyResponse{
		Digest:      digest[:],
		Value:       shared.FormatTarget(shared.DigestValue(digest)),
		Target:      shared.FormatTarget(target),
		MeetsTarget: shared.MeetsTarget(digest, target),
	}, nil
}
