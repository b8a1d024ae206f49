package utils

import (
	"github.com/cometbft/cometbft/crypto/secp256k1"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Bech32Prefix is the account prefix used by test addresses.
const Bech32Prefix = "cosmos"

// Address holds the raw and bech32 forms of an account address.
type Address struct {
	Bytes  []byte
	Bech32 string
}

// TestAddress returns the address of a freshly generated secp256k1 key.
func TestAddress() Address {
	key := secp256k1.GenPrivKey()
	bytes := key.PubKey().Address().Bytes()

	address, err := sdk.Bech32ifyAddressBytes(Bech32Prefix, bytes)
	if err != nil {
		panic("error during test address creation")
	}
	return Address{
		Bytes:  bytes,
		Bech32: address,
	}
}
