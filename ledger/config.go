package ledger

import (
	"go.uber.org/zap/zapcore"

	"github.com/spacemeshos/rpow/difficulty"
)

func DefaultConfig() Config {
	return Config{
		RetargetInterval: difficulty.DefaultRetargetInterval,
		Mint:             "rpow",
		ReplayCacheSize:  1 << 16,
	}
}

//nolint:lll
type Config struct {
	RetargetInterval  int64  `long:"retarget-interval"  description:"Seconds since the last retarget after which the target is halved (applied at genesis only)"`
	Mint              string `long:"mint"               description:"Mint that accepted work is acknowledged from"`
	AllowResubmission bool   `long:"allow-resubmission" description:"Accept the same nonce from the same identity more than once"`
	ReplayCacheSize   int    `long:"replay-cache-size"  description:"Number of recently accepted submissions kept in memory"`
}

// implement zap.ObjectMarshaler interface.
func (c Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("retarget-interval", c.RetargetInterval)
	enc.AddString("mint", c.Mint)
	enc.AddBool("allow-resubmission", c.AllowResubmission)
	enc.AddInt("replay-cache-size", c.ReplayCacheSize)
	return nil
}
