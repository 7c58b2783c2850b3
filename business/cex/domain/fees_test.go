package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseFeeMode(t *testing.T) {
	tests := []struct {
		input string
		want  FeeMode
	}{
		{"maker", FeeModeMaker},
		{"MAKER", FeeModeMaker},
		{"taker", FeeModeTaker},
		{"", FeeModeTaker},
		{"anything-else", FeeModeTaker},
	}

	for _, tt := range tests {
		if got := ParseFeeMode(tt.input); got != tt.want {
			t.Errorf("ParseFeeMode(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestFeeSchedule_Rate(t *testing.T) {
	schedule := FeeSchedule{
		MakerRate: decimal.RequireFromString("0.0008"),
		TakerRate: decimal.RequireFromString("0.001"),
	}

	if got := schedule.Rate(FeeModeMaker); !got.Equal(schedule.MakerRate) {
		t.Errorf("Rate(maker) = %s, want %s", got, schedule.MakerRate)
	}
	if got := schedule.Rate(FeeModeTaker); !got.Equal(schedule.TakerRate) {
		t.Errorf("Rate(taker) = %s, want %s", got, schedule.TakerRate)
	}
}

func TestOrder_Validate(t *testing.T) {
	valid := Order{
		Symbol:   "GALAUSDT",
		Side:     SideBuy,
		Type:     OrderTypeMarket,
		Quantity: decimal.NewFromInt(100),
	}

	tests := []struct {
		name    string
		mutate  func(o *Order)
		wantErr error
	}{
		{"valid_market", func(o *Order) {}, nil},
		{"empty_symbol", func(o *Order) { o.Symbol = "" }, ErrEmptySymbol},
		{"bad_side", func(o *Order) { o.Side = "HOLD" }, ErrInvalidSide},
		{"bad_type", func(o *Order) { o.Type = "STOP" }, ErrInvalidType},
		{"zero_quantity", func(o *Order) { o.Quantity = decimal.Zero }, ErrInvalidQuantity},
		{"limit_without_price", func(o *Order) { o.Type = OrderTypeLimit }, ErrMissingLimitPrice},
		{"limit_with_price", func(o *Order) {
			o.Type = OrderTypeLimit
			o.Price = decimal.RequireFromString("0.015")
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := valid
			tt.mutate(&order)
			if err := order.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
