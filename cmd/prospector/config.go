package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/spacemeshos/rpow/prospector"
)

var (
	ErrNoIdentity         = errors.New("either --identity or --keyfile must be set")
	ErrSubmitRequirements = errors.New("--submit requires --keyfile and --node")
	ErrIncompatibleNode   = errors.New("node runs an incompatible protocol")
)

// config defines the configuration options for the prospector.
//
//nolint:lll
type config struct {
	Identity    string  `long:"identity"     description:"Identity to search a nonce for, 0x-prefixed hex or a raw string"`
	KeyFile     string  `long:"keyfile"      description:"ed25519 key file, its public key is the identity and it signs submissions (created if missing)"`
	Target      string  `long:"target"       description:"Target as decimal or 0x-prefixed hex (queried from --node if empty, the genesis target otherwise)"`
	Node        string  `long:"node"         description:"Address of the rpow node GRPC API"`
	Submit      bool    `long:"submit"       description:"Submit the solution to the node (requires --keyfile)"`
	StartNonce  *uint64 `long:"start-nonce"  description:"First nonce to evaluate (random if unset)"`
	MaxAttempts *uint64 `long:"max-attempts" description:"Maximum number of nonces to evaluate (unbounded if unset)"`
	DebugLog    bool    `long:"debuglog"     description:"Enable debug logs"`
	JSONLog     bool    `long:"jsonlog"      description:"Whether to log in JSON format"`

	Prospector prospector.Config `group:"Prospector"`
}

func defaultConfig() config {
	return config{
		Prospector: prospector.DefaultConfig(),
	}
}

// loadConfig initializes and parses the config using command line options.
func loadConfig(args []string) (*config, error) {
	cfg := defaultConfig()
	if _, err := flags.ParseArgs(&cfg, args); err != nil {
		return nil, err
	}
	if cfg.Submit && (cfg.KeyFile == "" || cfg.Node == "") {
		return nil, ErrSubmitRequirements
	}
	return &cfg, nil
}

// parseIdentity decodes a 0x-prefixed hex identity, any other value is taken verbatim.
func parseIdentity(s string) ([]byte, error) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		identity, err := hex.DecodeString(rest)
		if err != nil {
			return nil, fmt.Errorf("decoding identity: %w", err)
		}
		return identity, nil
	}
	return []byte(s), nil
}
