// Package sdk provides the entry point the Cetus SDK modules are built on.
//
// A Core wraps the options of one deployment. The burn, farms and zap module
// clients take a Core at construction time and read everything network
// specific from it: fullnode and indexer endpoints, the router endpoint and
// providers, and the package and object IDs of their Move packages.
//
// # Quick Start
//
//	import (
//		"github.com/shamank/cetus-sdk-go/pkg/config"
//		"github.com/shamank/cetus-sdk-go/pkg/sdk"
//	)
//
//	func main() {
//		core, err := sdk.NewFor(config.Burn, config.Mainnet)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		burn, err := core.Package(config.Burn)
//		if err != nil {
//			log.Fatal(err)
//		}
//		manager, err := core.ObjectID(config.Burn, config.ManagerID)
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(burn.PublishedAt, manager)
//	}
//
// # Custom deployments
//
// New accepts any options that pass config.Options.Validate, so a preset can
// be adjusted or replaced:
//
//	opts := config.ZapMainnet()
//	opts.FullRPCURL = "https://rpc.example.com"
//	opts.Providers = []config.Provider{config.Cetus, config.DeepBook}
//	core, err := sdk.New(opts)
//
// config.Load resolves the same thing from a file and environment variables.
//
// # Defaults
//
// New fills an empty FullRPCURL with the public fullnode of the selected
// environment. No other field is defaulted.
//
// # Errors
//
// Package and ObjectID report ErrModuleNotConfigured when the options carry
// no package for the module, and ObjectID reports ErrUnknownRole for a role
// the package does not define. Invalid options are rejected by New with the
// validation error wrapped.
//
// # Logging
//
// The package installs a console zap logger at Info level on import. Replace
// it with zap.ReplaceGlobals to change level or sink; Core logs its resolved
// options at Debug.
//
// # Thread Safety
//
// A Core is immutable after New and safe for concurrent use. Accessors return
// copies.
package sdk
