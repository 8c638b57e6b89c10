package config

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/shamank/cetus-sdk-go/pkg/blockchain"
)

func allPresets() map[string]func() Options {
	return map[string]func() Options{
		"burn/mainnet":  BurnMainnet,
		"burn/testnet":  BurnTestnet,
		"farms/mainnet": FarmsMainnet,
		"farms/testnet": FarmsTestnet,
		"zap/mainnet":   ZapMainnet,
		"zap/testnet":   ZapTestnet,
	}
}

func TestPresets_EnvMatchesRegistration(t *testing.T) {
	for _, m := range Modules() {
		for _, env := range EnvsOf(m) {
			opts, err := Lookup(m, env)
			if err != nil {
				t.Fatalf("Lookup(%s, %s): %v", m, env, err)
			}
			if opts.Env != env {
				t.Errorf("%s/%s preset has env %q", m, env, opts.Env)
			}
		}
	}

	want := map[string]Env{
		"burn/mainnet":  Mainnet,
		"burn/testnet":  Testnet,
		"farms/mainnet": Mainnet,
		"farms/testnet": Testnet,
		"zap/mainnet":   Mainnet,
		"zap/testnet":   Testnet,
	}
	for name, get := range allPresets() {
		if got := get().Env; got != want[name] {
			t.Errorf("%s env = %s, want %s", name, got, want[name])
		}
	}
}

func TestPresets_Validate(t *testing.T) {
	for name, get := range allPresets() {
		t.Run(name, func(t *testing.T) {
			if err := get().Validate(); err != nil {
				t.Fatalf("preset invalid: %v", err)
			}
		})
	}
}

func TestPresets_PackageShape(t *testing.T) {
	for name, get := range allPresets() {
		opts := get()
		for _, m := range Modules() {
			p, ok := opts.Package(m)
			if !ok {
				continue
			}
			if !blockchain.IsValidAddress(p.PackageID) {
				t.Errorf("%s %s package_id %q is not canonical", name, m, p.PackageID)
			}
			if !blockchain.IsValidAddress(p.PublishedAt) {
				t.Errorf("%s %s published_at %q is not canonical", name, m, p.PublishedAt)
			}
			if p.Version == 0 {
				t.Errorf("%s %s version must be positive", name, m)
			}
		}
	}
}

func TestPresets_ModuleOwnsItsPackage(t *testing.T) {
	for _, env := range Envs() {
		burn, _ := Lookup(Burn, env)
		if burn.Burn == nil || burn.Farms != nil {
			t.Errorf("burn/%s should only carry the burn package", env)
		}
		farms, _ := Lookup(Farms, env)
		if farms.Farms == nil || farms.Burn != nil {
			t.Errorf("farms/%s should only carry the farms package", env)
		}
		zap, _ := Lookup(Zap, env)
		if zap.AggregatorURL == "" || len(zap.Providers) == 0 {
			t.Errorf("zap/%s should carry router settings", env)
		}
	}
}

func TestZapTestnet_Providers(t *testing.T) {
	opts := ZapTestnet()

	seen := map[Provider]bool{}
	for _, p := range opts.Providers {
		if !p.Known() {
			t.Errorf("provider %q outside vocabulary", p)
		}
		if seen[p] {
			t.Errorf("duplicate provider %q", p)
		}
		seen[p] = true
	}

	if opts.AggregatorURL != "https://api-sui.devcetus.com/router_v3" {
		t.Fatalf("AggregatorURL = %s", opts.AggregatorURL)
	}
	for _, want := range []Provider{Cetus, DeepBook, Kriya} {
		if !slices.Contains(opts.Providers, want) {
			t.Errorf("providers missing %s", want)
		}
	}
}

func TestBurnMainnet_Deployment(t *testing.T) {
	opts, err := Lookup(Burn, Mainnet)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}

	if opts.Burn.PackageID != "0x12d73de9a6bc3cb658ec9dc0fe7de2662be1cea5c76c092fcc3606048cdbac27" {
		t.Errorf("PackageID = %s", opts.Burn.PackageID)
	}
	if opts.Burn.Version != 7 {
		t.Errorf("Version = %d, want 7", opts.Burn.Version)
	}
	manager, ok := opts.Burn.Object(ManagerID)
	if !ok || manager != "0x1d94aa32518d0cb00f9de6ed60d450c9a2090761f326752ffad06b2e9404f845" {
		t.Errorf("manager_id = %q", manager)
	}
}

func TestLookup_Deterministic(t *testing.T) {
	for _, m := range Modules() {
		for _, env := range EnvsOf(m) {
			a, _ := Lookup(m, env)
			b, _ := Lookup(m, env)
			if !reflect.DeepEqual(a, b) {
				t.Errorf("%s/%s differs between lookups", m, env)
			}
		}
	}

	if !reflect.DeepEqual(BurnMainnet(), BurnMainnet()) {
		t.Error("BurnMainnet differs between calls")
	}
}

func TestLookup_ReturnsCopies(t *testing.T) {
	first := BurnMainnet()
	first.Burn.Version = 1
	first.Burn.Config[ManagerID] = "0x0"
	first.FullRPCURL = "http://localhost"

	second, err := Lookup(Burn, Mainnet)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if second.Burn.Version != 7 {
		t.Error("mutation leaked into the burn preset version")
	}
	if second.Burn.Config[ManagerID] == "0x0" {
		t.Error("mutation leaked into the burn preset objects")
	}
	if second.FullRPCURL == "http://localhost" {
		t.Error("mutation leaked into the burn preset endpoint")
	}

	zap := ZapTestnet()
	zap.Providers[0] = Obric
	if ZapTestnet().Providers[0] != Cetus {
		t.Error("mutation leaked into the zap preset providers")
	}
}

func TestLookup_Errors(t *testing.T) {
	tests := []struct {
		name string
		m    Module
		env  Env
		want error
	}{
		{name: "unknown module", m: "lending", env: Mainnet, want: ErrUnknownModule},
		{name: "unknown env", m: Burn, env: "devnet", want: ErrUnknownEnv},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Lookup(tt.m, tt.env); !errors.Is(err, tt.want) {
				t.Fatalf("Lookup error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEnvsOf(t *testing.T) {
	for _, m := range Modules() {
		if got := EnvsOf(m); !reflect.DeepEqual(got, []Env{Mainnet, Testnet}) {
			t.Errorf("EnvsOf(%s) = %v", m, got)
		}
	}
	if got := EnvsOf("lending"); len(got) != 0 {
		t.Errorf("EnvsOf(lending) = %v, want none", got)
	}
}

func TestParseModule(t *testing.T) {
	for _, m := range Modules() {
		got, err := ParseModule(" " + string(m) + " ")
		if err != nil || got != m {
			t.Fatalf("ParseModule(%s) = %s, %v", m, got, err)
		}
	}
	if _, err := ParseModule("lending"); !errors.Is(err, ErrUnknownModule) {
		t.Fatalf("expected ErrUnknownModule, got %v", err)
	}
}

func TestRegister_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	register(Burn, Options{Env: Mainnet})
}
