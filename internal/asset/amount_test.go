package asset

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name    string
		asset   *Asset
		input   string
		want    string
		wantErr bool
	}{
		{"integer", GALA, "1500", "1500", false},
		{"decimal", GUSDT, "12.5", "12.5", false},
		{"truncates_to_asset_decimals", GUSDT, "1.23456789", "1.234567", false},
		{"zero", GALA, "0", "0", false},
		{"negative", GALA, "-1", "", true},
		{"garbage", GALA, "abc", "", true},
		{"empty", GALA, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amt, err := ParseString(tt.asset, tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseString(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && amt.WireString() != tt.want {
				t.Errorf("WireString() = %q, want %q", amt.WireString(), tt.want)
			}
		})
	}

	if _, err := ParseString(nil, "1"); !errors.Is(err, ErrNilAsset) {
		t.Errorf("ParseString(nil asset) error = %v, want ErrNilAsset", err)
	}
}

func TestAmount_AddSub(t *testing.T) {
	a, _ := ParseString(GALA, "100")
	b, _ := ParseString(GALA, "40")
	other, _ := ParseString(GUSDT, "40")

	sum, err := a.Add(b)
	if err != nil || sum.WireString() != "140" {
		t.Errorf("Add = %s, %v; want 140", sum.WireString(), err)
	}

	diff, err := a.Sub(b)
	if err != nil || diff.WireString() != "60" {
		t.Errorf("Sub = %s, %v; want 60", diff.WireString(), err)
	}

	if _, err := b.Sub(a); !errors.Is(err, ErrNegativeResult) {
		t.Errorf("Sub below zero error = %v, want ErrNegativeResult", err)
	}
	if _, err := a.Add(other); !errors.Is(err, ErrAssetMismatch) {
		t.Errorf("Add across assets error = %v, want ErrAssetMismatch", err)
	}
}

func TestAmount_MulDecimal(t *testing.T) {
	a, _ := ParseString(GALA, "1000")

	fee := a.MulDecimal(decimal.RequireFromString("0.003"))
	if fee.WireString() != "3" {
		t.Errorf("MulDecimal(0.003) = %s, want 3", fee.WireString())
	}

	// Results are truncated to the asset's precision, never rounded up.
	b, _ := ParseString(GUSDT, "1")
	tiny := b.MulDecimal(decimal.RequireFromString("0.00000099"))
	if tiny.WireString() != "0" {
		t.Errorf("MulDecimal below precision = %s, want 0", tiny.WireString())
	}
}

func TestAmount_Cmp(t *testing.T) {
	small, _ := ParseString(GALA, "1")
	big, _ := ParseString(GALA, "2")

	if cmp, err := small.Cmp(big); err != nil || cmp != -1 {
		t.Errorf("Cmp = %d, %v; want -1", cmp, err)
	}
	if cmp, err := big.Cmp(small); err != nil || cmp != 1 {
		t.Errorf("Cmp = %d, %v; want 1", cmp, err)
	}

	other, _ := ParseString(GUSDT, "1")
	if _, err := small.Cmp(other); !errors.Is(err, ErrAssetMismatch) {
		t.Errorf("Cmp across assets error = %v, want ErrAssetMismatch", err)
	}
}

func TestClassKey_RoundTrip(t *testing.T) {
	key, err := ParseClassKey("GALA|Unit|none|none")
	if err != nil {
		t.Fatal(err)
	}
	if !key.Equals(KeyGALA) {
		t.Errorf("parsed key %s != KeyGALA", key)
	}
	if key.String() != "GALA|Unit|none|none" {
		t.Errorf("String() = %q", key.String())
	}

	if _, err := ParseClassKey("GALA|Unit|none"); err == nil {
		t.Error("expected error for 3-part key")
	}
	if _, err := ParseClassKey("GALA||none|none"); err == nil {
		t.Error("expected error for empty component")
	}
}

func TestClassKey_Compare(t *testing.T) {
	if KeyGALA.Compare(KeyGUSDT) >= 0 {
		t.Error("GALA should order before GUSDT")
	}
	if KeyGUSDT.Compare(KeyGUSDC) <= 0 {
		t.Error("GUSDT should order after GUSDC")
	}
	if KeyGALA.Compare(KeyGALA) != 0 {
		t.Error("key should compare equal to itself")
	}
}
