package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEnv is returned for an environment name outside the supported set.
var ErrUnknownEnv = errors.New("unknown environment")

// Env names a deployment environment.
type Env string

const (
	Mainnet Env = "mainnet"
	Testnet Env = "testnet"
)

// Envs returns every supported environment.
func Envs() []Env {
	return []Env{Mainnet, Testnet}
}

// ParseEnv maps a case-insensitive name to its Env.
func ParseEnv(s string) (Env, error) {
	e := Env(strings.ToLower(strings.TrimSpace(s)))
	if !e.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEnv, s)
	}
	return e, nil
}

// Known reports whether e is a supported environment.
func (e Env) Known() bool {
	return e == Mainnet || e == Testnet
}

func (e Env) String() string {
	return string(e)
}

// DefaultFullRPCURL returns the public Sui fullnode for e, or "" when e is
// unknown.
func (e Env) DefaultFullRPCURL() string {
	switch e {
	case Mainnet:
		return "https://fullnode.mainnet.sui.io:443"
	case Testnet:
		return "https://fullnode.testnet.sui.io:443"
	}
	return ""
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Env) UnmarshalText(text []byte) error {
	parsed, err := ParseEnv(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (e Env) MarshalText() ([]byte, error) {
	return []byte(e), nil
}
