package asset

// Asset represents the metadata of a GalaChain token.
// It is a reference entity with stable identity (ClassKey).
// The symbol is NOT identity - just metadata for display and venue mapping.
type Asset struct {
	key      ClassKey
	symbol   string
	name     string
	decimals uint8
	stable   bool
}

// NewAsset creates a new Asset with the given parameters.
func NewAsset(key ClassKey, symbol string, decimals uint8) *Asset {
	if symbol == "" {
		panic("asset: empty symbol")
	}
	if decimals > 30 {
		panic("asset: suspicious decimals (>30)")
	}

	return &Asset{
		key:      key,
		symbol:   symbol,
		decimals: decimals,
	}
}

// NewAssetWithName creates a new Asset with a human-readable name.
func NewAssetWithName(key ClassKey, symbol, name string, decimals uint8) *Asset {
	a := NewAsset(key, symbol, decimals)
	a.name = name
	return a
}

// NewStableAsset creates an Asset flagged as stable-valued (pegged 1:1 to USD).
func NewStableAsset(key ClassKey, symbol, name string, decimals uint8) *Asset {
	a := NewAssetWithName(key, symbol, name, decimals)
	a.stable = true
	return a
}

// Key returns the token class key, the unique identifier for this asset.
func (a *Asset) Key() ClassKey {
	return a.key
}

// Symbol returns the ticker symbol (e.g., "GALA", "GUSDC").
func (a *Asset) Symbol() string {
	return a.symbol
}

// Name returns the human-readable name (e.g., "Gala", "Gala USD Coin").
func (a *Asset) Name() string {
	if a.name == "" {
		return a.symbol
	}
	return a.name
}

// Decimals returns the number of decimal places.
func (a *Asset) Decimals() uint8 {
	return a.decimals
}

// IsStable returns true if this asset is stable-valued (USD-pegged).
// Stable assets are valued 1:1 without an exchange price lookup.
func (a *Asset) IsStable() bool {
	return a.stable
}

// String returns a human-readable representation.
func (a *Asset) String() string {
	return a.symbol
}

// Equals compares two Assets by their class key.
func (a *Asset) Equals(other *Asset) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.key.Equals(other.key)
}
