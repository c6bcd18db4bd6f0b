package signing

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/spacemeshos/rpow/logging"
	"github.com/spacemeshos/rpow/util"
)

// KeyEnvVar names the environment variable that may carry a base64 encoded
// ed25519 private key.
const KeyEnvVar = "RPOW_PRIVATE_KEY"

var ErrKeyMismatch = errors.New("persisted key doesn't match the provided one")

type keyFile struct {
	PrivKey []byte
}

// LoadKey loads the ed25519 private key persisted in path.
// If envKey is set (base64), it's used instead and must match the persisted key if any.
// A fresh key is generated when neither exists. The key is persisted back to path.
func LoadKey(ctx context.Context, path, envKey string) (ed25519.PrivateKey, error) {
	logger := logging.FromContext(ctx)

	var fromEnv ed25519.PrivateKey
	if envKey != "" {
		key, err := base64.StdEncoding.DecodeString(envKey)
		if err != nil {
			return nil, fmt.Errorf("decoding private key: %w", err)
		}
		if len(key) != ed25519.PrivateKeySize {
			return nil, fmt.Errorf("private key must be %d bytes long, got %d", ed25519.PrivateKeySize, len(key))
		}
		fromEnv = key
	}

	var persisted keyFile
	err := util.Load(path, &persisted)
	switch {
	case err == nil:
		if fromEnv != nil && !fromEnv.Equal(ed25519.PrivateKey(persisted.PrivKey)) {
			return nil, ErrKeyMismatch
		}
		logger.Info("loaded persisted key", zap.String("path", path))
		return persisted.PrivKey, nil
	case !errors.Is(err, os.ErrNotExist):
		return nil, err
	}

	key := fromEnv
	if key == nil {
		logger.Info("generating new key")
		_, key, err = ed25519.GenerateKey(nil)
		if err != nil {
			return nil, fmt.Errorf("generating key: %w", err)
		}
	}
	if err := util.Persist(path, &keyFile{PrivKey: key}); err != nil {
		return nil, fmt.Errorf("persisting key: %w", err)
	}
	return key, nil
}
