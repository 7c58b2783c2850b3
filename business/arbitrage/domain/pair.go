package domain

import (
	"fmt"
	"strings"

	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
)

// Pair is a source/intermediate token combination traded against the
// on-chain venue. The intermediate token is what the source is swapped
// into on the DEX leg.
type Pair struct {
	Source       *asset.Asset
	Intermediate *asset.Asset
}

// ParsePair parses "GALA-GUSDT" against the registry.
func ParsePair(s string, registry *asset.Registry) (Pair, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return Pair{}, fmt.Errorf("invalid pair %q: expected SOURCE-INTERMEDIATE", s)
	}

	source, ok := registry.GetBySymbol(parts[0])
	if !ok {
		return Pair{}, fmt.Errorf("invalid pair %q: unknown asset %s", s, parts[0])
	}
	intermediate, ok := registry.GetBySymbol(parts[1])
	if !ok {
		return Pair{}, fmt.Errorf("invalid pair %q: unknown asset %s", s, parts[1])
	}
	if source.Equals(intermediate) {
		return Pair{}, fmt.Errorf("invalid pair %q: source and intermediate are the same", s)
	}

	return Pair{Source: source, Intermediate: intermediate}, nil
}

// Key returns a stable identity string used for circuit-breaker state.
func (p Pair) Key() string {
	return p.Source.Key().String() + "/" + p.Intermediate.Key().String()
}

// Label returns a human-readable pair label (e.g., "GALA-GUSDT").
func (p Pair) Label() string {
	return p.Source.Symbol() + "-" + p.Intermediate.Symbol()
}

// WithIntermediate returns a copy of the pair with a different
// intermediate token. Used when falling through to alternate pairs.
func (p Pair) WithIntermediate(intermediate *asset.Asset) Pair {
	return Pair{Source: p.Source, Intermediate: intermediate}
}
