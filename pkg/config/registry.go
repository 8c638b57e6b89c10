package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownModule = errors.New("unknown sdk module")
	ErrNotDeployed   = errors.New("module not deployed in environment")
)

// Module names an SDK module with its own deployment table.
type Module string

const (
	Burn  Module = "burn"
	Farms Module = "farms"
	Zap   Module = "zap"
)

// Modules returns every SDK module in a stable order.
func Modules() []Module {
	return []Module{Burn, Farms, Zap}
}

// ParseModule maps a case-insensitive name to its Module.
func ParseModule(s string) (Module, error) {
	m := Module(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case Burn, Farms, Zap:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModule, s)
}

func (m Module) String() string {
	return string(m)
}

// registry is filled once at package init and only read afterwards. Records
// are keyed by their own Env so a record cannot sit under the wrong
// environment.
var registry = map[Module]map[Env]Options{}

func register(m Module, opts Options) {
	envs, ok := registry[m]
	if !ok {
		envs = map[Env]Options{}
		registry[m] = envs
	}
	if _, dup := envs[opts.Env]; dup {
		panic(fmt.Sprintf("config: duplicate %s preset for %s", m, opts.Env))
	}
	envs[opts.Env] = opts
}

func init() {
	register(Burn, burnMainnet)
	register(Burn, burnTestnet)
	register(Farms, farmsMainnet)
	register(Farms, farmsTestnet)
	register(Zap, zapMainnet)
	register(Zap, zapTestnet)
}

// Lookup returns a copy of the preset options of module m in env.
func Lookup(m Module, env Env) (Options, error) {
	envs, ok := registry[m]
	if !ok {
		return Options{}, fmt.Errorf("%w: %q", ErrUnknownModule, m)
	}
	if !env.Known() {
		return Options{}, fmt.Errorf("%w: %q", ErrUnknownEnv, env)
	}
	opts, ok := envs[env]
	if !ok {
		return Options{}, fmt.Errorf("%w: %s/%s", ErrNotDeployed, m, env)
	}
	return opts.Clone(), nil
}

// EnvsOf returns the environments module m has presets for, in Envs order.
func EnvsOf(m Module) []Env {
	var out []Env
	for _, e := range Envs() {
		if _, ok := registry[m][e]; ok {
			out = append(out, e)
		}
	}
	return out
}

// BurnMainnet returns the burn module options for mainnet.
func BurnMainnet() Options { return burnMainnet.Clone() }

// BurnTestnet returns the burn module options for testnet.
func BurnTestnet() Options { return burnTestnet.Clone() }

// FarmsMainnet returns the farms module options for mainnet.
func FarmsMainnet() Options { return farmsMainnet.Clone() }

// FarmsTestnet returns the farms module options for testnet.
func FarmsTestnet() Options { return farmsTestnet.Clone() }

// ZapMainnet returns the zap module options for mainnet.
func ZapMainnet() Options { return zapMainnet.Clone() }

// ZapTestnet returns the zap module options for testnet.
func ZapTestnet() Options { return zapTestnet.Clone() }
