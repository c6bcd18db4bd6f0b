package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"

	"github.com/spacemeshos/rpow/difficulty"
	"github.com/spacemeshos/rpow/logging"
	"github.com/spacemeshos/rpow/verifier"
)

var ErrAlreadySubmitted = errors.New("nonce already submitted by this identity")

// Ledger hosts the single difficulty state of a deployment. It plays the
// part of the chain: it serializes submissions, provides the trusted clock,
// guarantees submission uniqueness and commits the mint receipt together with
// the state transition.
type Ledger struct {
	db    *leveldb.DB
	cfg   Config
	clock verifier.Clock
	// minter is an optional extra side effect run inside the submission.
	minter verifier.Acknowledger

	// submissions are serialized.
	mu     sync.Mutex
	recent *lru.Cache
}

type newLedgerOptions struct {
	cfg    Config
	clock  verifier.Clock
	minter verifier.Acknowledger
}

// Option configures Open.
type Option func(*newLedgerOptions)

func WithConfig(cfg Config) Option {
	return func(opts *newLedgerOptions) {
		opts.cfg = cfg
	}
}

func WithClock(clock verifier.Clock) Option {
	return func(opts *newLedgerOptions) {
		opts.clock = clock
	}
}

// WithMinter adds a side effect executed for every accepted submission.
// Its failure aborts the submission.
func WithMinter(minter verifier.Acknowledger) Option {
	return func(opts *newLedgerOptions) {
		opts.minter = minter
	}
}

// Open opens the ledger in dbPath, creating the genesis state if the ledger
// is empty.
func Open(ctx context.Context, dbPath string, opts ...Option) (*Ledger, error) {
	options := newLedgerOptions{
		cfg:   DefaultConfig(),
		clock: verifier.SystemClock{},
	}
	for _, opt := range opts {
		opt(&options)
	}
	cacheSize := options.cfg.ReplayCacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultConfig().ReplayCacheSize
	}
	recent, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating replay cache: %w", err)
	}

	db, err := leveldb.OpenFile(dbPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database @ %s: %w", dbPath, err)
	}
	l := &Ledger{
		db:     db,
		cfg:    options.cfg,
		clock:  options.clock,
		minter: options.minter,
		recent: recent,
	}
	if err := l.initGenesis(ctx); err != nil {
		return nil, errors.Join(err, db.Close())
	}
	return l, nil
}

func (l *Ledger) initGenesis(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	state, err := loadState(l.db)
	switch {
	case err == nil:
		logger.Info("loaded difficulty state", zap.Object("state", state))
		return nil
	case !isNotFound(err):
		return err
	}

	now, err := l.clock.Now()
	if err != nil {
		return fmt.Errorf("%w: creating genesis: %w", verifier.ErrClockUnavailable, err)
	}
	genesis := difficulty.Genesis(now, l.cfg.RetargetInterval)
	data, err := genesis.MarshalBinary()
	if err != nil {
		return fmt.Errorf("creating genesis: %w", err)
	}
	if err := l.db.Put(stateKey, data, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("storing genesis state: %w", err)
	}
	logger.Info("created genesis state", zap.Object("state", &genesis))
	return nil
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

// State returns a copy of the current difficulty state.
func (l *Ledger) State(ctx context.Context) (*difficulty.State, error) {
	return loadState(l.db)
}

// Submit runs a submission of nonce by identity against the ledger state.
//
// Everything the submission writes (the state, the receipt and the
// uniqueness record) is committed in a single transaction or not at all.
func (l *Ledger) Submit(ctx context.Context, identity []byte, nonce uint64) (*verifier.Accepted, *Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	logger := logging.FromContext(ctx)

	key := workKey(identity, nonce)
	if !l.cfg.AllowResubmission && l.recent.Contains(string(key)) {
		return nil, nil, ErrAlreadySubmitted
	}

	tx, err := l.db.OpenTransaction()
	if err != nil {
		return nil, nil, fmt.Errorf("opening transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			tx.Discard()
		}
	}()

	if !l.cfg.AllowResubmission {
		seen, err := tx.Has(key, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("checking submission uniqueness: %w", err)
		}
		if seen {
			l.recent.Add(string(key), struct{}{})
			return nil, nil, ErrAlreadySubmitted
		}
	}

	state, err := loadState(tx)
	if err != nil {
		return nil, nil, err
	}

	var receipt *Receipt
	mint := verifier.AcknowledgerFunc(func(ctx context.Context, ack verifier.Acknowledgment) error {
		receipt = &Receipt{
			ID:        uuid.New(),
			Mint:      l.cfg.Mint,
			Recipient: ack.Recipient,
			Nonce:     ack.Nonce,
			Digest:    ack.Digest,
			Time:      ack.Time,
		}
		data, err := serializeReceipt(*receipt)
		if err != nil {
			return err
		}
		if err := tx.Put(receiptKey(receipt.ID), data, nil); err != nil {
			return fmt.Errorf("storing receipt: %w", err)
		}
		if err := tx.Put(key, receipt.ID[:], nil); err != nil {
			return fmt.Errorf("storing submission: %w", err)
		}
		if l.minter != nil {
			return l.minter.Acknowledge(ctx, ack)
		}
		return nil
	})

	accepted, err := verifier.New(mint, verifier.WithClock(l.clock)).Submit(ctx, nonce, identity, state)
	if err != nil {
		return nil, nil, err
	}

	data, err := state.MarshalBinary()
	if err != nil {
		return nil, nil, err
	}
	if err := tx.Put(stateKey, data, nil); err != nil {
		return nil, nil, fmt.Errorf("storing difficulty state: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("committing submission: %w", err)
	}
	committed = true
	l.recent.Add(string(key), struct{}{})

	logger.Info("accepted work",
		zap.Uint64("nonce", nonce),
		zap.Binary("identity", identity),
		zap.Stringer("receipt", receipt.ID),
		zap.Uint64("work_counter", accepted.WorkCounter),
		zap.Bool("retargeted", accepted.Retargeted),
	)
	return accepted, receipt, nil
}

// Receipt returns a stored mint receipt.
func (l *Ledger) Receipt(ctx context.Context, id uuid.UUID) (*Receipt, error) {
	data, err := l.db.Get(receiptKey(id), nil)
	if err != nil {
		return nil, fmt.Errorf("get receipt %s from DB: %w", id, err)
	}
	return deserializeReceipt(data)
}

// Receipts returns all stored mint receipts.
func (l *Ledger) Receipts(ctx context.Context) ([]*Receipt, error) {
	iter := l.db.NewIterator(util.BytesPrefix(receiptPrefix), nil)
	defer iter.Release()

	var receipts []*Receipt
	for iter.Next() {
		receipt, err := deserializeReceipt(iter.Value())
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}
	return receipts, iter.Error()
}
