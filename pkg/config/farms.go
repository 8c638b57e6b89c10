package config

// Farms deployments. Both records follow the published Cetus SDK tables and
// have not been checked on-chain; run `SUI_E2E=1 go test -tags e2e ./e2e`
// before relying on them.
//
//nolint:gomnd
var (
	farmsMainnet = Options{
		Env:         Mainnet,
		FullRPCURL:  "https://fullnode.mainnet.sui.io:443",
		GraphRPCURL: "https://sui-mainnet.mystenlabs.com/graphql",
		Farms: &Package{
			PackageID:   "0x11ea791d82b5742cc8cab0bf7946035c97d9001d7c3803a93f119753da66f526",
			PublishedAt: "0x7e4ca066f06a1132ab0499c8c0b87f847a0d90684afa902e52501a44dbd81992",
			Version:     5,
			Config: map[string]string{
				GlobalConfigID:    "0x21215f2f6de04b57dd87d9be7bb4e15499aec935e36078e2488f36436d64996e",
				RewarderManagerID: "0xe0e155a88c77025056da08db5b1701a91b79edb6167462f768e387c3ed6614d5",
				AdminCapID:        "0xf10fbf1fea5b7aeaa524b87769461a28c5c977613046360093673991f26d886c",
			},
		},
	}
	farmsTestnet = Options{
		Env:         Testnet,
		FullRPCURL:  "https://fullnode.testnet.sui.io:443",
		GraphRPCURL: "https://sui-testnet.mystenlabs.com/graphql",
		Farms: &Package{
			PackageID:   "0xcc38686ca84d1dca949b6966dcdb66b698b58a4bba247d8db4d6a3a1dbeca26e",
			PublishedAt: "0xcc38686ca84d1dca949b6966dcdb66b698b58a4bba247d8db4d6a3a1dbeca26e",
			Version:     1,
			Config: map[string]string{
				GlobalConfigID:    "0x499132a4baf342a0fe9528a3666a77b2aece3be129f4a3ada469fef4b9c34fb4",
				RewarderManagerID: "0x960c7800e301fd1e47b79037927b426db57b643bd2934f7069d81c2dae092230",
				AdminCapID:        "0x110175c1bc1e3e38a1ba6f6eb1bd2ad1a2a9cd7a3ec6a28e1bf0c6e5a21e9f0e",
			},
		},
	}
)
