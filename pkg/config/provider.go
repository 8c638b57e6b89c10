package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownProvider is returned for a liquidity source outside the router's
// vocabulary.
var ErrUnknownProvider = errors.New("unknown provider")

// Provider identifies a liquidity source the aggregator can route through.
type Provider string

const (
	Cetus      Provider = "CETUS"
	DeepBook   Provider = "DEEPBOOK"
	DeepBookV3 Provider = "DEEPBOOKV3"
	Kriya      Provider = "KRIYA"
	KriyaV3    Provider = "KRIYAV3"
	FlowX      Provider = "FLOWX"
	FlowXV3    Provider = "FLOWXV3"
	Turbos     Provider = "TURBOS"
	Aftermath  Provider = "AFTERMATH"
	Haedal     Provider = "HAEDAL"
	Volo       Provider = "VOLO"
	AfSui      Provider = "AFSUI"
	BlueMove   Provider = "BLUEMOVE"
	Bluefin    Provider = "BLUEFIN"
	Scallop    Provider = "SCALLOP"
	Suilend    Provider = "SUILEND"
	SpringSui  Provider = "SPRINGSUI"
	Steamm     Provider = "STEAMM"
	HaWal      Provider = "HAWAL"
	Metastable Provider = "METASTABLE"
	Obric      Provider = "OBRIC"
	Momentum   Provider = "MOMENTUM"
	AlphaFi    Provider = "ALPHAFI"
)

var knownProviders = []Provider{
	Cetus, DeepBook, DeepBookV3, Kriya, KriyaV3, FlowX, FlowXV3, Turbos,
	Aftermath, Haedal, Volo, AfSui, BlueMove, Bluefin, Scallop, Suilend,
	SpringSui, Steamm, HaWal, Metastable, Obric, Momentum, AlphaFi,
}

// KnownProviders returns the full provider vocabulary.
func KnownProviders() []Provider {
	return slices.Clone(knownProviders)
}

// ParseProvider maps a case-insensitive name to its Provider.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Known() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProvider, s)
	}
	return p, nil
}

// Known reports whether p belongs to the vocabulary.
func (p Provider) Known() bool {
	return slices.Contains(knownProviders, p)
}

func (p Provider) String() string {
	return string(p)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Provider) UnmarshalText(text []byte) error {
	parsed, err := ParseProvider(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Provider) MarshalText() ([]byte, error) {
	return []byte(p), nil
}
