package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "CETUS_SDK"

var (
	// ErrEnvMismatch is returned when an override file names a different
	// environment than the one requested.
	ErrEnvMismatch = errors.New("override environment does not match")
	// ErrDecode is returned when an override cannot be decoded into Options,
	// for example an unknown env or provider name.
	ErrDecode = errors.New("decode config")
	// ErrForeignModule is returned when an override attaches the package of
	// another module.
	ErrForeignModule = errors.New("package belongs to another module")
)

// Load resolves the options of module m in env. It starts from the preset,
// overlays the file at path when path is non-empty (format taken from the
// extension: yaml, json or toml), then applies CETUS_SDK_FULL_RPC_URL,
// CETUS_SDK_GRAPH_RPC_URL and CETUS_SDK_AGGREGATOR_URL. The result is
// validated before it is returned.
func Load(m Module, env Env, path string) (Options, error) {
	opts, err := Lookup(m, env)
	if err != nil {
		return Options{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{"full_rpc_url", "graph_rpc_url", "aggregator_url"} {
		if err := v.BindEnv(key); err != nil {
			return Options{}, err
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("read config %s: %w", path, err)
		}
		zap.L().Debug("config override loaded", zap.String("file", v.ConfigFileUsed()))
	}

	// mapstructure writes slice elements in place; a shorter override would
	// keep the preset's tail.
	if v.IsSet("providers") {
		opts.Providers = nil
	}

	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	strict := viper.DecoderConfigOption(func(c *mapstructure.DecoderConfig) {
		c.WeaklyTypedInput = false
	})
	if err := v.Unmarshal(&opts, viper.DecodeHook(hook), strict); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	for _, other := range Modules() {
		if other == m {
			continue
		}
		if _, ok := opts.Package(other); ok {
			return Options{}, fmt.Errorf("%w: %s options carry a %s package", ErrForeignModule, m, other)
		}
	}

	if opts.Env != env {
		return Options{}, fmt.Errorf("%w: requested %s, got %s", ErrEnvMismatch, env, opts.Env)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}

	zap.L().Debug("sdk options resolved",
		zap.String("module", m.String()),
		zap.String("env", env.String()),
		zap.String("full_rpc_url", opts.FullRPCURL))
	return opts, nil
}
