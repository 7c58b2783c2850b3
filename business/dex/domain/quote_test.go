package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
)

func TestFeeTierRate(t *testing.T) {
	tests := []struct {
		tier int
		want string
	}{
		{500, "0.0005"},
		{3000, "0.003"},
		{10000, "0.01"},
	}

	for _, tt := range tests {
		if got := FeeTierRate(tt.tier); !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("FeeTierRate(%d) = %s, want %s", tt.tier, got, tt.want)
		}
	}
}

func TestQuote_FeeAmount(t *testing.T) {
	amountIn, err := asset.ParseString(asset.GALA, "1000")
	if err != nil {
		t.Fatal(err)
	}

	q := &Quote{TokenIn: asset.GALA, AmountIn: amountIn, FeeTier: 3000}
	if got := q.FeeAmount().WireString(); got != "3" {
		t.Errorf("FeeAmount() = %s, want 3", got)
	}
}

func TestQuote_EffectivePrice(t *testing.T) {
	amountIn, err := asset.ParseString(asset.GALA, "1000")
	if err != nil {
		t.Fatal(err)
	}
	amountOut, err := asset.ParseString(asset.GUSDT, "15")
	if err != nil {
		t.Fatal(err)
	}

	q := &Quote{AmountIn: amountIn, AmountOut: amountOut}
	if got := q.EffectivePrice(); !got.Equal(decimal.RequireFromString("0.015")) {
		t.Errorf("EffectivePrice() = %s, want 0.015", got)
	}

	empty := &Quote{AmountIn: asset.Zero(asset.GALA), AmountOut: amountOut}
	if got := empty.EffectivePrice(); !got.IsZero() {
		t.Errorf("EffectivePrice() with zero input = %s, want 0", got)
	}
}

func TestOrderTokens(t *testing.T) {
	tests := []struct {
		name        string
		a, b        asset.ClassKey
		wantToken0  asset.ClassKey
		wantSwapped bool
	}{
		{
			name:        "already_ordered",
			a:           asset.KeyGALA,
			b:           asset.KeyGUSDT,
			wantToken0:  asset.KeyGALA,
			wantSwapped: false,
		},
		{
			name:        "swapped",
			a:           asset.KeyGUSDT,
			b:           asset.KeyGALA,
			wantToken0:  asset.KeyGALA,
			wantSwapped: true,
		},
		{
			name:        "usdc_before_usdt",
			a:           asset.KeyGUSDT,
			b:           asset.KeyGUSDC,
			wantToken0:  asset.KeyGUSDC,
			wantSwapped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token0, token1, swapped := OrderTokens(tt.a, tt.b)
			if !token0.Equals(tt.wantToken0) {
				t.Errorf("token0 = %s, want %s", token0, tt.wantToken0)
			}
			if swapped != tt.wantSwapped {
				t.Errorf("swapped = %v, want %v", swapped, tt.wantSwapped)
			}
			if token0.Compare(token1) >= 0 {
				t.Errorf("pool order violated: %s >= %s", token0, token1)
			}
		})
	}
}
