package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComputeSaleID computes a deterministic sale record id using SHA256.
// Formula: SHA256(address|tx_hash|ledger_index|match_index)
// matchIndex distinguishes the multiple FIFO matches one disposal can
// produce. Returns a hex-encoded hash (64 characters).
func ComputeSaleID(address, txHash string, ledgerIndex int64, matchIndex int) string {
	data := fmt.Sprintf("%s|%s|%d|%d", address, txHash, ledgerIndex, matchIndex)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
