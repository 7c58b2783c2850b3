package galaswap

import (
	"crypto/ecdsa"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/Tariq3654467/trading-bot-galaswap/internal/apperror"
)

// Signer signs GalaChain DTOs with a secp256k1 key.
// GalaChain verifies keccak256 signatures over the canonical JSON payload
// and addresses wallets as "eth|<checksummed address without 0x>".
type Signer struct {
	privateKey *ecdsa.PrivateKey
	address    string
}

// NewSigner creates a Signer from a hex-encoded private key.
func NewSigner(privateKeyHex string) (*Signer, error) {
	privateKeyHex = strings.TrimPrefix(privateKeyHex, "0x")

	keyBytes, err := hex.DecodeString(privateKeyHex)
	if err != nil {
		return nil, apperror.New(apperror.CodeSigningFailed,
			apperror.WithMessage("invalid private key hex"), apperror.WithCause(err))
	}

	privateKey, err := crypto.ToECDSA(keyBytes)
	if err != nil {
		return nil, apperror.New(apperror.CodeSigningFailed,
			apperror.WithMessage("invalid private key"), apperror.WithCause(err))
	}

	publicKey := privateKey.Public().(*ecdsa.PublicKey)
	derived := crypto.PubkeyToAddress(*publicKey)

	// Checksummed mixed-case hex without the 0x prefix
	address := "eth|" + strings.TrimPrefix(derived.Hex(), "0x")

	return &Signer{
		privateKey: privateKey,
		address:    address,
	}, nil
}

// Address returns the GalaChain wallet address derived from the key.
func (s *Signer) Address() string {
	return s.address
}

// Sign serializes dto to JSON, hashes it with keccak256, and returns the
// hex-encoded secp256k1 signature.
func (s *Signer) Sign(dto any) (string, error) {
	payload, err := json.Marshal(dto)
	if err != nil {
		return "", apperror.New(apperror.CodeSigningFailed,
			apperror.WithMessage(fmt.Sprintf("failed to serialize dto: %v", err)), apperror.WithCause(err))
	}

	hash := crypto.Keccak256Hash(payload)

	signature, err := crypto.Sign(hash.Bytes(), s.privateKey)
	if err != nil {
		return "", apperror.New(apperror.CodeSigningFailed, apperror.WithCause(err))
	}

	return "0x" + hex.EncodeToString(signature), nil
}
