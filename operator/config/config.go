package config

import (
	"errors"
	"io/fs"
	"net/url"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	ibcerrors "github.com/SecretSaturn/sp1-ics07-tendermint/internal/errors"
)

const (
	// EnvRPCURL is the Tendermint RPC endpoint of the chain the client tracks.
	EnvRPCURL = "TENDERMINT_RPC_URL"
	// EnvRPCTimeout bounds every RPC request.
	EnvRPCTimeout = "TENDERMINT_RPC_TIMEOUT"
	// EnvProgramPath is the path of the proof program image whose verifier key
	// is embedded in the genesis.
	EnvProgramPath = "SP1_PROGRAM_PATH"
	// EnvLogLevel is one of trace, debug, info, warn, error.
	EnvLogLevel = "LOG_LEVEL"

	DefaultRPCTimeout  = 30 * time.Second
	DefaultProgramPath = "../elf/riscv32im-succinct-zkvm-elf"
	DefaultLogLevel    = "info"
	DefaultGenesisPath = "../contracts/script"

	// MinRPCTimeout is the resolution of the RPC client timeout.
	MinRPCTimeout = time.Second

	// DotEnvFile is read, if present, before the process environment.
	DotEnvFile = ".env"
)

// Config holds the process wide settings. It is loaded once at startup and
// not modified afterwards.
type Config struct {
	RPCURL      string
	RPCTimeout  time.Duration
	ProgramPath string
	LogLevel    string

	// GenesisPath is the directory genesis.json is written to. It is set from
	// the command line, not the environment.
	GenesisPath string
}

// DefaultConfig returns a Config with every optional field set.
func DefaultConfig() Config {
	return Config{
		RPCTimeout:  DefaultRPCTimeout,
		ProgramPath: DefaultProgramPath,
		LogLevel:    DefaultLogLevel,
		GenesisPath: DefaultGenesisPath,
	}
}

// Load reads the configuration from dotEnvPath, when the file exists, and the
// process environment. Environment variables take precedence over the file.
func Load(dotEnvPath string) (Config, error) {
	v := viper.New()
	v.SetDefault(EnvRPCTimeout, DefaultRPCTimeout)
	v.SetDefault(EnvProgramPath, DefaultProgramPath)
	v.SetDefault(EnvLogLevel, DefaultLogLevel)

	if dotEnvPath != "" {
		v.SetConfigFile(dotEnvPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errorsmod.Wrapf(ibcerrors.ErrInvalidConfig, "failed to read %s: %s", dotEnvPath, err)
		}
	}

	for _, key := range []string{EnvRPCURL, EnvRPCTimeout, EnvProgramPath, EnvLogLevel} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, errorsmod.Wrapf(ibcerrors.ErrInvalidConfig, "failed to bind %s: %s", key, err)
		}
	}

	timeout, err := cast.ToDurationE(v.Get(EnvRPCTimeout))
	if err != nil {
		return Config{}, errorsmod.Wrapf(ibcerrors.ErrInvalidConfig, "invalid %s: %s", EnvRPCTimeout, err)
	}

	return Config{
		RPCURL:      strings.TrimSpace(cast.ToString(v.Get(EnvRPCURL))),
		RPCTimeout:  timeout,
		ProgramPath: cast.ToString(v.Get(EnvProgramPath)),
		LogLevel:    cast.ToString(v.Get(EnvLogLevel)),
		GenesisPath: DefaultGenesisPath,
	}, nil
}

// Validate checks that the configuration can start a run.
func (c Config) Validate() error {
	if c.RPCURL == "" {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidConfig, "%s must be set", EnvRPCURL)
	}
	if _, err := url.Parse(c.RPCURL); err != nil {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidConfig, "invalid %s: %s", EnvRPCURL, err)
	}
	if c.RPCTimeout < MinRPCTimeout {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidConfig, "%s must be at least %s, got %s", EnvRPCTimeout, MinRPCTimeout, c.RPCTimeout)
	}
	if strings.TrimSpace(c.ProgramPath) == "" {
		return errorsmod.Wrapf(ibcerrors.ErrInvalidConfig, "%s must not be empty", EnvProgramPath)
	}
	if strings.TrimSpace(c.GenesisPath) == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidConfig, "genesis path must not be empty")
	}
	if _, err := c.ZerologLevel(); err != nil {
		return err
	}
	return nil
}

// ZerologLevel parses LogLevel.
func (c Config) ZerologLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, errorsmod.Wrapf(ibcerrors.ErrInvalidConfig, "invalid %s: %s", EnvLogLevel, err)
	}
	return level, nil
}
