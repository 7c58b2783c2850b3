// Package asset provides a type-safe model for GalaChain tokens.
// Token identity is the GalaChain token class key, not the ticker symbol.
// Quantities are decimal strings on the wire, so amounts are decimal-backed.
package asset

import (
	"fmt"
	"strings"
)

// ClassKey uniquely identifies a token class on GalaChain.
// The canonical string form is "collection|category|type|additionalKey",
// e.g. "GALA|Unit|none|none".
type ClassKey struct {
	Collection    string `json:"collection"`
	Category      string `json:"category"`
	Type          string `json:"type"`
	AdditionalKey string `json:"additionalKey"`
}

// NewClassKey creates a ClassKey from its four components.
func NewClassKey(collection, category, typ, additionalKey string) ClassKey {
	if collection == "" {
		panic("asset: empty collection in class key")
	}
	return ClassKey{
		Collection:    collection,
		Category:      category,
		Type:          typ,
		AdditionalKey: additionalKey,
	}
}

// NewUnitClassKey creates the common "X|Unit|none|none" class key.
func NewUnitClassKey(collection string) ClassKey {
	return NewClassKey(collection, "Unit", "none", "none")
}

// ParseClassKey parses the canonical pipe-delimited form.
func ParseClassKey(s string) (ClassKey, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 4 {
		return ClassKey{}, fmt.Errorf("asset: invalid class key %q: want 4 pipe-delimited parts", s)
	}
	for _, p := range parts {
		if p == "" {
			return ClassKey{}, fmt.Errorf("asset: invalid class key %q: empty component", s)
		}
	}
	return ClassKey{
		Collection:    parts[0],
		Category:      parts[1],
		Type:          parts[2],
		AdditionalKey: parts[3],
	}, nil
}

// MustParseClassKey parses the canonical form, panicking on error.
func MustParseClassKey(s string) ClassKey {
	k, err := ParseClassKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// String returns the canonical pipe-delimited form.
func (k ClassKey) String() string {
	return strings.Join([]string{k.Collection, k.Category, k.Type, k.AdditionalKey}, "|")
}

// IsZero reports whether the key is the zero value.
func (k ClassKey) IsZero() bool {
	return k == ClassKey{}
}

// Equals compares two class keys for equality.
func (k ClassKey) Equals(other ClassKey) bool {
	return k == other
}

// Compare orders two class keys lexicographically, component by component.
// GalaChain pools require token0 < token1 in this ordering.
func (k ClassKey) Compare(other ClassKey) int {
	if c := strings.Compare(k.Collection, other.Collection); c != 0 {
		return c
	}
	if c := strings.Compare(k.Category, other.Category); c != 0 {
		return c
	}
	if c := strings.Compare(k.Type, other.Type); c != 0 {
		return c
	}
	return strings.Compare(k.AdditionalKey, other.AdditionalKey)
}
