// Package sdk exposes the entry point shared by the burn, farms and zap
// modules. A Core is built from one deployment's options and resolves the
// endpoints, packages and objects the module calls into.
package sdk

import (
	"errors"
	"fmt"
	"slices"

	"github.com/shamank/cetus-sdk-go/pkg/config"
	"go.uber.org/zap"
)

var (
	ErrModuleNotConfigured = errors.New("module not configured")
	ErrUnknownRole         = errors.New("unknown object role")
)

// SDK is the read surface module clients build on.
type SDK interface {
	// Env returns the environment the SDK was built for.
	Env() config.Env
	// Options returns a copy of the resolved options.
	Options() config.Options
	// Package returns the deployment of module m.
	Package(m config.Module) (config.Package, error)
	// ObjectID resolves an object role of module m to its object ID.
	ObjectID(m config.Module, role string) (string, error)
}

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// Core is the concrete SDK. It owns a private copy of its options; nothing
// handed out by its accessors aliases that copy.
type Core struct {
	opts config.Options
}

var _ SDK = (*Core)(nil)

// New validates opts, fills defaults (see config.Options.WithDefaults) and
// returns a Core bound to them. opts is copied, later changes by the caller
// are not observed.
func New(opts config.Options) (*Core, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sdk options: %w", err)
	}
	opts = opts.WithDefaults()

	fields := []zap.Field{
		zap.String("env", opts.Env.String()),
		zap.String("full_rpc_url", opts.FullRPCURL),
	}
	for _, m := range config.Modules() {
		if p, ok := opts.Package(m); ok {
			fields = append(fields, zap.Uint64(m.String()+"_version", p.Version))
		}
	}
	if opts.AggregatorURL != "" {
		fields = append(fields, zap.String("aggregator_url", opts.AggregatorURL), zap.Int("providers", len(opts.Providers)))
	}
	zap.L().Debug("sdk initialized", fields...)

	return &Core{opts: opts}, nil
}

// NewFor builds a Core from the preset of module m in env.
func NewFor(m config.Module, env config.Env) (*Core, error) {
	opts, err := config.Lookup(m, env)
	if err != nil {
		return nil, err
	}
	return New(opts)
}

// Env returns the environment the Core was built for.
func (c *Core) Env() config.Env {
	return c.opts.Env
}

// Options returns a copy of the resolved options.
func (c *Core) Options() config.Options {
	return c.opts.Clone()
}

// FullRPCURL returns the fullnode endpoint, defaulted when unset.
func (c *Core) FullRPCURL() string {
	return c.opts.FullRPCURL
}

// GraphRPCURL returns the GraphQL indexer endpoint, or "" when unset.
func (c *Core) GraphRPCURL() string {
	return c.opts.GraphRPCURL
}

// AggregatorURL returns the router endpoint, or "" when routing is not
// configured.
func (c *Core) AggregatorURL() string {
	return c.opts.AggregatorURL
}

// Providers returns a copy of the router's liquidity sources.
func (c *Core) Providers() []config.Provider {
	return slices.Clone(c.opts.Providers)
}

// Package returns a copy of the Move package deployed for module m.
func (c *Core) Package(m config.Module) (config.Package, error) {
	p, ok := c.opts.Package(m)
	if !ok {
		return config.Package{}, fmt.Errorf("%w: %s on %s", ErrModuleNotConfigured, m, c.opts.Env)
	}
	return *p.Clone(), nil
}

// ObjectID resolves role to its object ID in the package of module m.
func (c *Core) ObjectID(m config.Module, role string) (string, error) {
	p, ok := c.opts.Package(m)
	if !ok {
		return "", fmt.Errorf("%w: %s on %s", ErrModuleNotConfigured, m, c.opts.Env)
	}
	id, ok := p.Object(role)
	if !ok {
		zap.L().Warn("object role not found", zap.String("module", m.String()), zap.String("role", role))
		return "", fmt.Errorf("%w: %s.%s", ErrUnknownRole, m, role)
	}
	return id, nil
}
