package sdk

import (
	"errors"
	"testing"

	"github.com/shamank/cetus-sdk-go/pkg/config"
)

func TestNew_AppliesDefaults(t *testing.T) {
	opts := config.BurnMainnet()
	opts.FullRPCURL = ""

	core, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if core.FullRPCURL() != "https://fullnode.mainnet.sui.io:443" {
		t.Fatalf("FullRPCURL = %s", core.FullRPCURL())
	}
	if core.Env() != config.Mainnet {
		t.Fatalf("Env = %s", core.Env())
	}
	if opts.FullRPCURL != "" {
		t.Fatal("New must not modify the caller's options")
	}
}

func TestNew_RejectsInvalid(t *testing.T) {
	opts := config.BurnMainnet()
	opts.Burn.PackageID = "0x2"

	if _, err := New(opts); !errors.Is(err, config.ErrInvalidAddress) {
		t.Fatalf("New error = %v, want ErrInvalidAddress", err)
	}

	if _, err := New(config.Options{Env: "devnet"}); !errors.Is(err, config.ErrUnknownEnv) {
		t.Fatalf("New error = %v, want ErrUnknownEnv", err)
	}
}

func TestNew_CopiesOptions(t *testing.T) {
	opts := config.ZapTestnet()
	core, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	opts.Providers[0] = config.Obric
	opts.AggregatorURL = "https://other.example.com"

	if core.Providers()[0] != config.Cetus {
		t.Fatal("core shares the caller's providers")
	}
	if core.AggregatorURL() != "https://api-sui.devcetus.com/router_v3" {
		t.Fatalf("AggregatorURL = %s", core.AggregatorURL())
	}

	got := core.Providers()
	got[0] = config.Obric
	if core.Providers()[0] != config.Cetus {
		t.Fatal("Providers must return a copy")
	}
}

func TestNewFor(t *testing.T) {
	tests := []struct {
		name    string
		module  config.Module
		env     config.Env
		wantErr error
	}{
		{name: "burn mainnet", module: config.Burn, env: config.Mainnet},
		{name: "farms testnet", module: config.Farms, env: config.Testnet},
		{name: "zap testnet", module: config.Zap, env: config.Testnet},
		{name: "unknown env", module: config.Burn, env: "devnet", wantErr: config.ErrUnknownEnv},
		{name: "unknown module", module: "lending", env: config.Mainnet, wantErr: config.ErrUnknownModule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, err := NewFor(tt.module, tt.env)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewFor error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFor: %v", err)
			}
			if core.Env() != tt.env {
				t.Fatalf("Env = %s, want %s", core.Env(), tt.env)
			}
		})
	}
}

func TestCore_Package(t *testing.T) {
	core, err := NewFor(config.Burn, config.Mainnet)
	if err != nil {
		t.Fatalf("NewFor: %v", err)
	}

	p, err := core.Package(config.Burn)
	if err != nil {
		t.Fatalf("Package(burn): %v", err)
	}
	if p.Version != 7 {
		t.Fatalf("Version = %d, want 7", p.Version)
	}

	p.Config[config.ManagerID] = "changed"
	again, _ := core.Package(config.Burn)
	if again.Config[config.ManagerID] == "changed" {
		t.Fatal("Package must return a copy")
	}

	if _, err := core.Package(config.Farms); !errors.Is(err, ErrModuleNotConfigured) {
		t.Fatalf("Package(farms) error = %v, want ErrModuleNotConfigured", err)
	}
}

func TestCore_ObjectID(t *testing.T) {
	core, err := NewFor(config.Burn, config.Mainnet)
	if err != nil {
		t.Fatalf("NewFor: %v", err)
	}

	id, err := core.ObjectID(config.Burn, config.ManagerID)
	if err != nil {
		t.Fatalf("ObjectID: %v", err)
	}
	if id != "0x1d94aa32518d0cb00f9de6ed60d450c9a2090761f326752ffad06b2e9404f845" {
		t.Fatalf("manager_id = %s", id)
	}

	if _, err := core.ObjectID(config.Burn, config.AdminCapID); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
	if _, err := core.ObjectID(config.Zap, config.ManagerID); !errors.Is(err, ErrModuleNotConfigured) {
		t.Fatalf("expected ErrModuleNotConfigured, got %v", err)
	}
}

func TestCore_OptionsCopy(t *testing.T) {
	core, err := NewFor(config.Farms, config.Mainnet)
	if err != nil {
		t.Fatalf("NewFor: %v", err)
	}

	opts := core.Options()
	opts.Farms.Version = 100
	opts.GraphRPCURL = ""

	if core.Options().Farms.Version == 100 {
		t.Fatal("Options must return a copy")
	}
	if core.GraphRPCURL() == "" {
		t.Fatal("GraphRPCURL changed through a copy")
	}
}
