package config

// Zap router settings. The testnet aggregator URL and its CETUS, DEEPBOOK and
// KRIYA providers are confirmed. The mainnet record and the other testnet
// providers follow the published Cetus SDK tables and have not been checked
// against the live router.
var (
	zapMainnet = Options{
		Env:           Mainnet,
		FullRPCURL:    "https://fullnode.mainnet.sui.io:443",
		AggregatorURL: "https://api-sui.cetus.zone/router_v3",
		Providers: []Provider{
			Cetus, DeepBook, DeepBookV3, Kriya, KriyaV3, FlowX, FlowXV3,
			Turbos, Aftermath, Haedal, Volo, AfSui, BlueMove, Bluefin,
			Scallop, Suilend, SpringSui, Steamm, HaWal, Metastable, Obric,
			Momentum, AlphaFi,
		},
	}
	zapTestnet = Options{
		Env:           Testnet,
		FullRPCURL:    "https://fullnode.testnet.sui.io:443",
		AggregatorURL: "https://api-sui.devcetus.com/router_v3",
		Providers: []Provider{
			Cetus, DeepBook, Kriya, FlowX, FlowXV3, KriyaV3, Turbos,
			Aftermath, Haedal, Volo, AfSui,
		},
	}
)
