// Package config defines the deployment options consumed by the burn, farms and
// zap SDK modules: network endpoints, router settings, and the on-chain package
// and object IDs of each module per environment. It also provides validation,
// defaulting and the preset registry.
package config

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"

	"github.com/shamank/cetus-sdk-go/pkg/blockchain"
)

var (
	ErrInvalidAddress    = blockchain.ErrInvalidAddress
	ErrInvalidVersion    = errors.New("package version must be positive")
	ErrInvalidURL        = errors.New("invalid endpoint url")
	ErrDuplicateProvider = errors.New("duplicate provider")
	ErrEmptyRole         = errors.New("empty object role")
)

// Options holds everything an SDK module needs from its deployment: the
// environment tag, network endpoints, router settings and the module's
// on-chain packages. Modules that are not deployed are left nil.
type Options struct {
	// Env tags the deployment the options belong to.
	Env Env `json:"env" yaml:"env" mapstructure:"env"`
	// FullRPCURL is the Sui fullnode JSON-RPC endpoint used for transactions.
	FullRPCURL string `json:"full_rpc_url,omitempty" yaml:"full_rpc_url,omitempty" mapstructure:"full_rpc_url"`
	// GraphRPCURL is the indexer / GraphQL endpoint.
	GraphRPCURL string `json:"graph_rpc_url,omitempty" yaml:"graph_rpc_url,omitempty" mapstructure:"graph_rpc_url"`
	// AggregatorURL is the router service endpoint used by zap.
	AggregatorURL string `json:"aggregator_url,omitempty" yaml:"aggregator_url,omitempty" mapstructure:"aggregator_url"`
	// Providers lists the liquidity sources the router may route through, in
	// order of preference.
	Providers []Provider `json:"providers,omitempty" yaml:"providers,omitempty" mapstructure:"providers"`
	// Burn is the burn module deployment.
	Burn *Package `json:"burn,omitempty" yaml:"burn,omitempty" mapstructure:"burn"`
	// Farms is the farms module deployment.
	Farms *Package `json:"farms,omitempty" yaml:"farms,omitempty" mapstructure:"farms"`
}

// Package describes one deployed Move package and the shared objects the SDK
// calls into.
type Package struct {
	// PackageID is the original ID of the package; types are addressed by it.
	PackageID string `json:"package_id" yaml:"package_id" mapstructure:"package_id"`
	// PublishedAt is the ID of the latest upgrade; calls are made against it.
	PublishedAt string `json:"published_at" yaml:"published_at" mapstructure:"published_at"`
	// Version is the on-chain package version the SDK targets.
	Version uint64 `json:"version" yaml:"version" mapstructure:"version"`
	// Config maps an object role (see ManagerID etc.) to its object ID.
	Config map[string]string `json:"config,omitempty" yaml:"config,omitempty" mapstructure:"config"`
}

// Object roles used in Package.Config.
const (
	ManagerID             = "manager_id"
	GlobalConfigID        = "global_config_id"
	AdminCapID            = "admin_cap_id"
	RewarderManagerID     = "rewarder_manager_id"
	RewarderGlobalVaultID = "rewarder_global_vault_id"
	ClmmGlobalConfig      = "clmm_global_config"
	ClmmGlobalVaultID     = "clmm_global_vault_id"
	BurnPoolHandle        = "burn_pool_handle"
)

// Object returns the object ID registered for role.
func (p *Package) Object(role string) (string, bool) {
	if p == nil {
		return "", false
	}
	id, ok := p.Config[role]
	return id, ok
}

// Clone returns a deep copy of p.
func (p *Package) Clone() *Package {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Config = maps.Clone(p.Config)
	return &cp
}

// Validate checks that both package addresses and every object ID are
// canonical Sui addresses and that Version is set.
func (p *Package) Validate() error {
	if !blockchain.IsValidAddress(p.PackageID) {
		return fmt.Errorf("package_id: %w: %q", ErrInvalidAddress, p.PackageID)
	}
	if !blockchain.IsValidAddress(p.PublishedAt) {
		return fmt.Errorf("published_at: %w: %q", ErrInvalidAddress, p.PublishedAt)
	}
	if p.Version == 0 {
		return ErrInvalidVersion
	}
	for _, role := range slices.Sorted(maps.Keys(p.Config)) {
		if role == "" {
			return ErrEmptyRole
		}
		if id := p.Config[role]; !blockchain.IsValidAddress(id) {
			return fmt.Errorf("config.%s: %w: %q", role, ErrInvalidAddress, id)
		}
	}
	return nil
}

// Clone returns a deep copy of o. Presets are handed out through Clone so no
// caller can alter another caller's view.
func (o Options) Clone() Options {
	cp := o
	cp.Providers = slices.Clone(o.Providers)
	cp.Burn = o.Burn.Clone()
	cp.Farms = o.Farms.Clone()
	return cp
}

// Package returns the deployment of module m, if present.
func (o Options) Package(m Module) (*Package, bool) {
	var p *Package
	switch m {
	case Burn:
		p = o.Burn
	case Farms:
		p = o.Farms
	}
	return p, p != nil
}

// Validate checks the environment tag, every configured package, the provider
// list and any endpoints that are set. Returns the first problem found.
func (o Options) Validate() error {
	if !o.Env.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownEnv, o.Env)
	}

	endpoints := []struct{ name, value string }{
		{"full_rpc_url", o.FullRPCURL},
		{"graph_rpc_url", o.GraphRPCURL},
		{"aggregator_url", o.AggregatorURL},
	}
	for _, ep := range endpoints {
		if err := validateURL(ep.value); err != nil {
			return fmt.Errorf("%s: %w", ep.name, err)
		}
	}

	seen := make(map[Provider]struct{}, len(o.Providers))
	for _, p := range o.Providers {
		if !p.Known() {
			return fmt.Errorf("%w: %q", ErrUnknownProvider, p)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateProvider, p)
		}
		seen[p] = struct{}{}
	}

	for _, m := range Modules() {
		p, ok := o.Package(m)
		if !ok {
			continue
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%s: %w", m, err)
		}
	}
	return nil
}

// WithDefaults returns a copy of o with an empty FullRPCURL replaced by the
// public fullnode of o.Env:
//
//	mainnet: https://fullnode.mainnet.sui.io:443
//	testnet: https://fullnode.testnet.sui.io:443
func (o Options) WithDefaults() Options {
	cp := o.Clone()
	if cp.FullRPCURL == "" {
		cp.FullRPCURL = o.Env.DefaultFullRPCURL()
	}
	return cp
}

func validateURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	switch u.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host in %q", ErrInvalidURL, raw)
	}
	return nil
}
