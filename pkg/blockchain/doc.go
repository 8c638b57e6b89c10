// Package blockchain holds the Sui address helpers shared by the SDK modules.
//
// Sui addresses, package IDs and object IDs are all 32-byte values written as
// "0x" followed by 64 hex digits. The deployment tables in package config
// store them in that canonical form; IsValidAddress checks it strictly.
//
// On-chain tooling often prints short forms, for example "0x2" for the Sui
// framework package. NormalizeAddress expands those:
//
//	addr, err := blockchain.NormalizeAddress("0x2")
//	// addr == "0x0000000000000000000000000000000000000000000000000000000000000002"
//
// AddressToBytes32 and Bytes32ToAddress convert between the string form and
// the raw 32-byte value.
package blockchain
