// Package domain contains the core domain types for the arbitrage context.
package domain

// Direction indicates which venue leads the execution.
type Direction string

const (
	// DirectionDexToCex sells on the on-chain venue first, then buys the
	// source token back on the exchange.
	DirectionDexToCex Direction = "DEX_TO_CEX"

	// DirectionCexToDex buys the source token on the exchange first, then
	// sells it on the on-chain venue.
	DirectionCexToDex Direction = "CEX_TO_DEX"
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	return string(d)
}
