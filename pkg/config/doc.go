// Package config provides the deployment options for the Cetus SDK modules.
//
// Each SDK module (burn, farms, zap) is deployed separately on every Sui
// environment. Options bundles what a module needs to talk to one deployment:
// the environment tag, RPC and router endpoints, and the package and object
// IDs of the module's Move packages.
//
// # Presets
//
// Known deployments ship as presets. Every accessor returns a fresh copy, so
// callers may modify what they receive without affecting anybody else:
//
//	opts := config.BurnMainnet()
//	opts.Burn.Version // 7
//
// The same presets are reachable by name, which is what command line tools
// and config files use:
//
//	opts, err := config.Lookup(config.Zap, config.Testnet)
//	if err != nil {
//		return err
//	}
//	opts.AggregatorURL // "https://api-sui.devcetus.com/router_v3"
//
// Lookup fails with ErrUnknownModule, ErrUnknownEnv or ErrNotDeployed.
//
// # Packages and objects
//
// A Package carries two addresses. PackageID is the ID the package was first
// published under; Move types keep that ID across upgrades. PublishedAt is
// the ID of the latest upgrade, and entry functions are called against it.
// Config maps an object role to a shared object ID:
//
//	manager, ok := opts.Burn.Object(config.ManagerID)
//
// # Providers
//
// Providers lists the liquidity sources the zap router may use. The vocabulary
// is fixed (see KnownProviders); ParseProvider is case-insensitive.
//
// # Overrides
//
// Load starts from a preset and overlays a file and environment variables:
//
//	opts, err := config.Load(config.Farms, config.Mainnet, "farms.yaml")
//
// A file only needs the keys it changes:
//
//	full_rpc_url: https://rpc.example.com
//	farms:
//	  config:
//	    admin_cap_id: "0x..."
//
// The environment variables CETUS_SDK_FULL_RPC_URL, CETUS_SDK_GRAPH_RPC_URL
// and CETUS_SDK_AGGREGATOR_URL override the matching endpoints. A file that
// sets env to another environment is rejected with ErrEnvMismatch.
//
// # Validation
//
// Validate checks the environment tag, that package and object IDs are
// canonical 32-byte Sui addresses, that versions are positive, that providers
// are known and unique, and that endpoints are absolute http(s) or ws(s) URLs.
// WithDefaults fills an empty FullRPCURL with the environment's public
// fullnode.
//
// # Thread Safety
//
// Presets are never modified after package initialization, and every
// accessor hands out a deep copy, so concurrent use needs no locking.
package config
