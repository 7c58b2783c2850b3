package domain

import (
	"testing"

	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
)

func TestParsePair(t *testing.T) {
	registry := asset.DefaultRegistry()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "GALA-GUSDT", false},
		{"valid_usdc", "GALA-GUSDC", false},
		{"unknown_source", "DOGE-GUSDT", true},
		{"unknown_intermediate", "GALA-XYZ", true},
		{"same_token", "GALA-GALA", true},
		{"missing_separator", "GALAGUSDT", true},
		{"too_many_parts", "GALA-GUSDT-GWETH", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := ParsePair(tt.input, registry)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePair(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && pair.Label() != tt.input {
				t.Errorf("Label() = %q, want %q", pair.Label(), tt.input)
			}
		})
	}
}

func TestPair_Key(t *testing.T) {
	registry := asset.DefaultRegistry()

	pair, err := ParsePair("GALA-GUSDT", registry)
	if err != nil {
		t.Fatal(err)
	}

	want := "GALA|Unit|none|none/GUSDT|Unit|none|none"
	if got := pair.Key(); got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
}

func TestPair_WithIntermediate(t *testing.T) {
	registry := asset.DefaultRegistry()

	pair, err := ParsePair("GALA-GUSDT", registry)
	if err != nil {
		t.Fatal(err)
	}

	variant := pair.WithIntermediate(asset.GUSDC)
	if variant.Label() != "GALA-GUSDC" {
		t.Errorf("variant label = %q, want GALA-GUSDC", variant.Label())
	}
	if pair.Label() != "GALA-GUSDT" {
		t.Errorf("original pair mutated: %q", pair.Label())
	}
	if variant.Key() == pair.Key() {
		t.Error("variant should have a distinct breaker key")
	}
}
