package simapp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cosmossdk.io/log"

	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// EnvPrefix is the prefix of environment variables overriding config values.
	EnvPrefix = "WASMSTORAGE"

	// DefaultChainID is the chain id used when none is configured.
	DefaultChainID = "wasm-storage-1"

	configDir   = "config"
	dataDir     = "data"
	appTomlName = "app.toml"
	genesisName = "genesis.json"
)

// Config keys, also used as command flag names.
const (
	FlagChainID     = "chain-id"
	FlagAuthority   = "authority"
	FlagGRPCAddress = "grpc-address"
	FlagAPIAddress  = "api-address"
	FlagAPIEnable   = "api-enable"
	FlagDBBackend   = "db-backend"
	FlagLogLevel    = "log_level"
	FlagLogFormat   = "log_format"
)

const (
	logFormatJSON  = "json"
	logFormatPlain = "plain"
)

// Config defines the node configuration stored in app.toml.
type Config struct {
	ChainID     string
	Authority   string
	GRPCAddress string
	APIAddress  string
	APIEnable   bool
	DBBackend   string
	LogLevel    string
	LogFormat   string
}

// DefaultConfig returns the default node configuration. The authority
// defaults to the gov module account.
func DefaultConfig() Config {
	return Config{
		ChainID:     DefaultChainID,
		Authority:   sdk.AccAddress(address.Module("gov")).String(),
		GRPCAddress: "localhost:9090",
		APIAddress:  "localhost:1317",
		APIEnable:   true,
		DBBackend:   string(dbm.GoLevelDBBackend),
		LogLevel:    zerolog.InfoLevel.String(),
		LogFormat:   logFormatPlain,
	}
}

// Validate checks the configuration for obvious mistakes.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ChainID) == "" {
		return fmt.Errorf("%s must not be empty", FlagChainID)
	}
	if _, err := sdk.AccAddressFromBech32(c.Authority); err != nil {
		return fmt.Errorf("invalid %s: %w", FlagAuthority, err)
	}
	if c.GRPCAddress == "" {
		return fmt.Errorf("%s must not be empty", FlagGRPCAddress)
	}
	if c.APIEnable && c.APIAddress == "" {
		return fmt.Errorf("%s must not be empty when the API is enabled", FlagAPIAddress)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s: %w", FlagLogLevel, err)
	}
	if c.LogFormat != logFormatJSON && c.LogFormat != logFormatPlain {
		return fmt.Errorf("invalid %s %q, expected %s or %s", FlagLogFormat, c.LogFormat, logFormatPlain, logFormatJSON)
	}
	return nil
}

// ConfigPath returns the path of app.toml under the node home.
func ConfigPath(home string) string {
	return filepath.Join(home, configDir, appTomlName)
}

// GenesisPath returns the path of genesis.json under the node home.
func GenesisPath(home string) string {
	return filepath.Join(home, configDir, genesisName)
}

// DataPath returns the directory holding the node database.
func DataPath(home string) string {
	return filepath.Join(home, dataDir)
}

// newViper returns a viper instance with the config defaults and the env
// prefix set.
func newViper(cfg Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(FlagChainID, cfg.ChainID)
	v.SetDefault(FlagAuthority, cfg.Authority)
	v.SetDefault(FlagGRPCAddress, cfg.GRPCAddress)
	v.SetDefault(FlagAPIAddress, cfg.APIAddress)
	v.SetDefault(FlagAPIEnable, cfg.APIEnable)
	v.SetDefault(FlagDBBackend, cfg.DBBackend)
	v.SetDefault(FlagLogLevel, cfg.LogLevel)
	v.SetDefault(FlagLogFormat, cfg.LogFormat)
	return v
}

// WriteConfig writes the configuration to <home>/config/app.toml.
func WriteConfig(home string, cfg Config) error {
	if err := os.MkdirAll(filepath.Join(home, configDir), 0o755); err != nil {
		return err
	}

	return newViper(cfg).WriteConfigAs(ConfigPath(home))
}

// ReadConfig loads <home>/config/app.toml. Environment variables prefixed
// with WASMSTORAGE_ and changed flags take precedence over file values. A
// missing config file yields the defaults.
func ReadConfig(home string, flags *pflag.FlagSet) (Config, error) {
	v := newViper(DefaultConfig())
	v.SetConfigFile(ConfigPath(home))

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read %s: %w", ConfigPath(home), err)
	}

	if flags != nil {
		for _, key := range []string{FlagChainID, FlagAuthority, FlagGRPCAddress, FlagAPIAddress, FlagAPIEnable, FlagDBBackend, FlagLogLevel, FlagLogFormat} {
			if f := flags.Lookup(key); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, err
				}
			}
		}
	}

	cfg := Config{
		ChainID:     cast.ToString(v.Get(FlagChainID)),
		Authority:   cast.ToString(v.Get(FlagAuthority)),
		GRPCAddress: cast.ToString(v.Get(FlagGRPCAddress)),
		APIAddress:  cast.ToString(v.Get(FlagAPIAddress)),
		APIEnable:   cast.ToBool(v.Get(FlagAPIEnable)),
		DBBackend:   cast.ToString(v.Get(FlagDBBackend)),
		LogLevel:    cast.ToString(v.Get(FlagLogLevel)),
		LogFormat:   cast.ToString(v.Get(FlagLogFormat)),
	}

	return cfg, cfg.Validate()
}

// NewLogger returns a logger writing to w with the configured level and
// format.
func NewLogger(w io.Writer, cfg Config) (log.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	opts := []log.Option{log.LevelOption(level)}
	if cfg.LogFormat == logFormatJSON {
		opts = append(opts, log.OutputJSONOption())
	}

	return log.NewLogger(w, opts...), nil
}

// OpenDB opens the node database under <home>/data.
func OpenDB(home string, cfg Config) (dbm.DB, error) {
	return dbm.NewDB("application", dbm.BackendType(cfg.DBBackend), DataPath(home))
}
