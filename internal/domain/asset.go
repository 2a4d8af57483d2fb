package domain

import (
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
)

// rippleAlphabet is the base58 dictionary used by XRPL classic addresses.
var rippleAlphabet = base58.NewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")

// MakeAssetID builds the canonical asset identifier.
// The base asset has no issuer; everything else is "currency.issuer".
func MakeAssetID(currency, issuer string) string {
	if currency == BaseAsset && issuer == "" {
		return BaseAsset
	}
	return currency + "." + issuer
}

// SplitAssetID splits an asset identifier into currency and issuer.
// The base asset returns an empty issuer.
func SplitAssetID(assetID string) (currency, issuer string) {
	if assetID == BaseAsset {
		return BaseAsset, ""
	}
	idx := strings.Index(assetID, ".")
	if idx < 0 {
		return assetID, ""
	}
	return assetID[:idx], assetID[idx+1:]
}

// ValidateAddress checks that an account address decodes as an XRPL classic
// address: ripple-alphabet base58, version byte 0x00, 25 payload bytes.
// Checksum verification is left to the ledger; the warehouse only ever hands
// us addresses that already passed it.
func ValidateAddress(address string) error {
	if !strings.HasPrefix(address, "r") {
		return fmt.Errorf("address %q: missing r prefix", address)
	}
	decoded, err := base58.DecodeAlphabet(address, rippleAlphabet)
	if err != nil {
		return fmt.Errorf("address %q: %w", address, err)
	}
	if len(decoded) != 25 {
		return fmt.Errorf("address %q: decoded length %d, want 25", address, len(decoded))
	}
	if decoded[0] != 0x00 {
		return fmt.Errorf("address %q: version byte %#x, want 0x00", address, decoded[0])
	}
	return nil
}
