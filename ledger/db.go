package ledger

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	xdr "github.com/nullstyle/go-xdr/xdr3"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/spacemeshos/rpow/difficulty"
	"github.com/spacemeshos/rpow/shared"
)

var ErrNotFound = leveldb.ErrNotFound

var (
	stateKey      = []byte("difficulty")
	receiptPrefix = []byte("receipt/")
	workPrefix    = []byte("work/")
)

// Receipt records acknowledged work (a mint).
type Receipt struct {
	ID        uuid.UUID
	Mint      string
	Recipient []byte
	Nonce     uint64
	Digest    shared.Digest
	Time      int64
}

// reader is implemented by both *leveldb.DB and *leveldb.Transaction.
type reader interface {
	Get(key []byte, ro *opt.ReadOptions) ([]byte, error)
	Has(key []byte, ro *opt.ReadOptions) (bool, error)
}

func workKey(identity []byte, nonce uint64) []byte {
	key := append([]byte{}, workPrefix...)
	key = strconv.AppendQuote(key, string(identity))
	key = append(key, '/')
	return strconv.AppendUint(key, nonce, 10)
}

func receiptKey(id uuid.UUID) []byte {
	return append(append([]byte{}, receiptPrefix...), id.String()...)
}

func loadState(r reader) (*difficulty.State, error) {
	data, err := r.Get(stateKey, nil)
	if err != nil {
		return nil, fmt.Errorf("getting difficulty state: %w", err)
	}
	state := &difficulty.State{}
	if err := state.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return state, nil
}

func serializeReceipt(receipt Receipt) ([]byte, error) {
	var dataBuf bytes.Buffer
	if _, err := xdr.Marshal(&dataBuf, receipt); err != nil {
		return nil, fmt.Errorf("serialization failure: %w", err)
	}
	return dataBuf.Bytes(), nil
}

func deserializeReceipt(data []byte) (*Receipt, error) {
	receipt := &Receipt{}
	if _, err := xdr.Unmarshal(bytes.NewReader(data), receipt); err != nil {
		return nil, fmt.Errorf("failed to deserialize: %w", err)
	}
	return receipt, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, leveldb.ErrNotFound)
}
