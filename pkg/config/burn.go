package config

// Burn deployments. The mainnet package_id, version and manager_id are the
// confirmed deployment values. The remaining mainnet objects and the testnet
// record follow the published Cetus SDK tables and have not been checked
// on-chain; run `SUI_E2E=1 go test -tags e2e ./e2e` before relying on them.
//
//nolint:gomnd
var (
	burnMainnet = Options{
		Env:        Mainnet,
		FullRPCURL: "https://fullnode.mainnet.sui.io:443",
		Burn: &Package{
			PackageID:   "0x12d73de9a6bc3cb658ec9dc0fe7de2662be1cea5c76c092fcc3606048cdbac27",
			PublishedAt: "0xb6ec861eec8c550269dc29a1662008a816ac4756df723af5103075b665e32e65",
			Version:     7,
			Config: map[string]string{
				ManagerID:         "0x1d94aa32518d0cb00f9de6ed60d450c9a2090761f326752ffad06b2e9404f845",
				ClmmGlobalConfig:  "0xdaa46292632c3c4d8f31f23ea0f9b36a28ff3677e9684980e4438403a67a3d8f",
				ClmmGlobalVaultID: "0xce7bceef26d3ad1f6d9b6f13a953f053e6ed3ca77907516481ce99ae8e588f2b",
				BurnPoolHandle:    "0xc9aacf74bd7cc8da8820ae28ca4473b7e01c87be19bc35bf81c9c7311e1b299e",
			},
		},
	}
	burnTestnet = Options{
		Env:        Testnet,
		FullRPCURL: "https://fullnode.testnet.sui.io:443",
		Burn: &Package{
			PackageID:   "0x3b494006831b046481c8046910106e2dfbe0d1fa9bc01e41783fb3ff6534ed3a",
			PublishedAt: "0x3b494006831b046481c8046910106e2dfbe0d1fa9bc01e41783fb3ff6534ed3a",
			Version:     1,
			Config: map[string]string{
				ManagerID:         "0xd04529ef15b7dad6699ee905daca0698858cab49724b2b2a1fc6b1ebc5e474ef",
				ClmmGlobalConfig:  "0x9774e359588ead122af1c7e7f64e14ade261cfeecdb5d0eb4a5b3b4c8ab8bd3e",
				ClmmGlobalVaultID: "0xf78d2ee3c312f298882cb680695e5e8c81b1d441a646caccc058006c2851ddea",
			},
		},
	}
)
