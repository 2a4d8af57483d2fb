package domain

import "testing"

func TestMakeAssetID(t *testing.T) {
	if got := MakeAssetID("XRP", ""); got != "XRP" {
		t.Errorf("base asset id = %s, want XRP", got)
	}
	if got := MakeAssetID("USD", "rIssuer"); got != "USD.rIssuer" {
		t.Errorf("asset id = %s, want USD.rIssuer", got)
	}
}

func TestSplitAssetID(t *testing.T) {
	currency, issuer := SplitAssetID("XRP")
	if currency != "XRP" || issuer != "" {
		t.Errorf("SplitAssetID(XRP) = (%s, %s)", currency, issuer)
	}

	currency, issuer = SplitAssetID("USD.rIssuer")
	if currency != "USD" || issuer != "rIssuer" {
		t.Errorf("SplitAssetID(USD.rIssuer) = (%s, %s)", currency, issuer)
	}

	currency, issuer = SplitAssetID("NOISSUER")
	if currency != "NOISSUER" || issuer != "" {
		t.Errorf("SplitAssetID(NOISSUER) = (%s, %s)", currency, issuer)
	}
}

func TestValidateAddress(t *testing.T) {
	// Well-known ledger addresses
	valid := []string{
		"rN7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",
		"rvYAfWj5gh67oV6fW32ZzP3Aw4Eubs59B",
	}
	for _, addr := range valid {
		if err := ValidateAddress(addr); err != nil {
			t.Errorf("ValidateAddress(%s) = %v, want nil", addr, err)
		}
	}

	invalid := []string{
		"",
		"N7n7otQDd6FczFgLdSqtcsAUxDkw6fzRH",  // missing r prefix
		"r0OIl",                              // characters outside the alphabet
		"rShort",                             // wrong payload length
	}
	for _, addr := range invalid {
		if err := ValidateAddress(addr); err == nil {
			t.Errorf("ValidateAddress(%s) = nil, want error", addr)
		}
	}
}
