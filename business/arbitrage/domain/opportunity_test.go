package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func opWithProfit(profit string) *Opportunity {
	return &Opportunity{NetProfit: decimal.RequireFromString(profit)}
}

func TestOpportunity_MeetsThreshold(t *testing.T) {
	tests := []struct {
		name      string
		netProfit string
		minProfit string
		want      bool
	}{
		{"above", "5", "1", true},
		{"exactly_at", "1", "1", true},
		{"below", "0.5", "1", false},
		{"negative", "-2", "1", false},
		{"zero_threshold", "0", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := opWithProfit(tt.netProfit)
			if got := op.MeetsThreshold(decimal.RequireFromString(tt.minProfit)); got != tt.want {
				t.Errorf("MeetsThreshold(%s) with profit %s = %v, want %v",
					tt.minProfit, tt.netProfit, got, tt.want)
			}
		})
	}
}

func TestOpportunity_WithinLossTolerance(t *testing.T) {
	tests := []struct {
		name      string
		netProfit string
		tolerance string
		want      bool
	}{
		{"profit_always_ok", "3", "0", true},
		{"small_loss_within", "-0.5", "1", true},
		{"loss_at_limit", "-1", "1", true},
		{"loss_beyond", "-1.5", "1", false},
		{"zero_tolerance_rejects_loss", "-0.01", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := opWithProfit(tt.netProfit)
			if got := op.WithinLossTolerance(decimal.RequireFromString(tt.tolerance)); got != tt.want {
				t.Errorf("WithinLossTolerance(%s) with profit %s = %v, want %v",
					tt.tolerance, tt.netProfit, got, tt.want)
			}
		})
	}
}

func TestOpportunity_BetterThan(t *testing.T) {
	if !opWithProfit("5").BetterThan(nil) {
		t.Error("any opportunity beats nil")
	}
	if !opWithProfit("5").BetterThan(opWithProfit("3")) {
		t.Error("higher profit should win")
	}
	if opWithProfit("3").BetterThan(opWithProfit("5")) {
		t.Error("lower profit should lose")
	}
	// Ties are not strictly better, so the incumbent (first found) stays.
	if opWithProfit("5").BetterThan(opWithProfit("5")) {
		t.Error("equal profit should not replace the incumbent")
	}
}
