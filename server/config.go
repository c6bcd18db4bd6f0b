// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Copyright (c) 2017-2023 The Spacemesh developers

package server

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/spacemeshos/rpow/ledger"
	"github.com/spacemeshos/rpow/logging"
)

const (
	defaultDbDirName       = "db"
	defaultDataDirname     = "data"
	defaultLogDirname      = "logs"
	defaultMaxLogFiles     = 3
	defaultMaxLogFileSize  = 10
	defaultRPCPort         = 50002
	defaultRESTPort        = 8080
	defaultMaxGrpcRespSize = 1 << 20
	defaultShutdownTimeout = 10 * time.Second
)

// Config defines the configuration options for the rpow node.
//
// See ReadConfigFile and SetupConfig for further details regarding the
// configuration loading+parsing process.
type Config struct {
	RpowDir         string  `long:"rpowdir"        description:"The base directory that contains rpow's data, logs, configuration file, etc."`
	ConfigFile      string  `long:"configfile"     description:"Path to configuration file"                                                   short:"c"`
	DataDir         string  `long:"datadir"        description:"The directory to store rpow's data within."                                   short:"b"`
	DbDir           string  `long:"dbdir"          description:"The directory to store the ledger DB within"`
	LogDir          string  `long:"logdir"         description:"Directory to log output."`
	DebugLog        bool    `long:"debuglog"       description:"Enable debug logs"`
	JSONLog         bool    `long:"jsonlog"        description:"Whether to log in JSON format"`
	MaxLogFiles     int     `long:"maxlogfiles"    description:"Maximum logfiles to keep (0 for no rotation)"`
	MaxLogFileSize  int     `long:"maxlogfilesize" description:"Maximum logfile size in MB"`
	RawRPCListener  string  `long:"rpclisten"      description:"The interface/port/socket to listen for RPC connections"                      short:"r"`
	RawRESTListener string  `long:"restlisten"     description:"The interface/port/socket to listen for REST connections"                     short:"w"`
	MetricsPort     *uint16 `long:"metrics-port"   description:"The port to expose metrics"`
	MaxGrpcRespSize int     `long:"max-grpc-respond-size" description:"The maximum size of GRPC response to send"`

	CPUProfile string `long:"cpuprofile" description:"Write CPU profile to the specified file"`
	Profile    string `long:"profile"    description:"Enable HTTP profiling on given port -- must be between 1024 and 65535"`

	ShutdownTimeout time.Duration `long:"shutdown-timeout" description:"Time to wait for the servers to shut down gracefully"`

	Ledger ledger.Config `group:"Ledger"`
}

// DefaultConfig returns a config with default hardcoded values.
func DefaultConfig() *Config {
	rpowDir := "./rpow"
	cacheDir, err := os.UserCacheDir()
	if err == nil {
		rpowDir = filepath.Join(cacheDir, "rpow")
	}

	return &Config{
		RpowDir:         rpowDir,
		DataDir:         filepath.Join(rpowDir, defaultDataDirname),
		DbDir:           filepath.Join(rpowDir, defaultDbDirName),
		LogDir:          filepath.Join(rpowDir, defaultLogDirname),
		MaxLogFiles:     defaultMaxLogFiles,
		MaxLogFileSize:  defaultMaxLogFileSize,
		RawRPCListener:  fmt.Sprintf("localhost:%d", defaultRPCPort),
		RawRESTListener: fmt.Sprintf("localhost:%d", defaultRESTPort),
		MaxGrpcRespSize: defaultMaxGrpcRespSize,
		ShutdownTimeout: defaultShutdownTimeout,
		Ledger:          ledger.DefaultConfig(),
	}
}

// ParseFlags reads values from command line arguments.
func ParseFlags(preCfg *Config) (*Config, error) {
	if _, err := flags.Parse(preCfg); err != nil {
		return nil, err
	}
	return preCfg, nil
}

// ReadConfigFile reads config from an ini file.
// It uses the provided `cfg` as a base config and overrides it with the values
// from the config file.
func ReadConfigFile(cfg *Config) (*Config, error) {
	if cfg.ConfigFile == "" {
		return cfg, nil
	}
	logging.FromContext(context.Background()).Sugar().Debugf("reading config from %s", cfg.ConfigFile)
	if err := flags.IniParse(cfg.ConfigFile, cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from %v: %w", cfg.ConfigFile, err)
	}

	return cfg, nil
}

// SetupConfig expands paths and initializes filesystem.
func SetupConfig(cfg *Config) (*Config, error) {
	// If the provided rpow directory is not the default, we'll modify the
	// path to all of the files and directories that will live within it.
	defaultCfg := DefaultConfig()
	if cfg.RpowDir != defaultCfg.RpowDir {
		if cfg.DataDir == defaultCfg.DataDir {
			cfg.DataDir = filepath.Join(cfg.RpowDir, defaultDataDirname)
		}
		if cfg.LogDir == defaultCfg.LogDir {
			cfg.LogDir = filepath.Join(cfg.RpowDir, defaultLogDirname)
		}
		if cfg.DbDir == defaultCfg.DbDir {
			cfg.DbDir = filepath.Join(cfg.RpowDir, defaultDbDirName)
		}
	}

	// Create the rpow directory if it doesn't already exist.
	if err := os.MkdirAll(cfg.RpowDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create %v: %w", cfg.RpowDir, err)
	}

	// As soon as we're done parsing configuration options, ensure all paths
	// to directories and files are cleaned and expanded before attempting
	// to use them later on.
	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)
	cfg.DbDir = cleanAndExpandPath(cfg.DbDir)

	return cfg, nil
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
// This function is taken from https://github.com/btcsuite/btcd
func cleanAndExpandPath(path string) string {
	if path == "" {
		return ""
	}

	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		var homeDir string
		user, err := user.Current()
		if err == nil {
			homeDir = user.HomeDir
		} else {
			homeDir = os.Getenv("HOME")
		}

		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}
