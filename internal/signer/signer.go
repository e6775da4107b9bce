// Package signer produces the oracle's payout attestations. A signature
// binds (gameId, player, payout) under the oracle's secp256k1 key in the
// packed-keccak256 + personal-sign form the settlement contract recovers
// with ecrecover.
package signer

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	hdwallet "github.com/miguelmota/go-ethereum-hdwallet"
	"github.com/tyler-smith/go-bip39"
)

const personalPrefix = "\x19Ethereum Signed Message:\n32"

type Signer struct {
	key *ecdsa.PrivateKey
}

// New builds a signer from a hex-encoded private key, with or without a
// 0x prefix.
func New(hexKey string) (*Signer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("oracle private key: %w", err)
	}
	return &Signer{key: key}, nil
}

// FromMnemonic derives the oracle key from a BIP-39 mnemonic at the
// standard Ethereum path m/44'/60'/0'/0/<index>.
func FromMnemonic(mnemonic string, index uint32) (*Signer, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, errors.New("oracle mnemonic is not a valid BIP-39 phrase")
	}

	wallet, err := hdwallet.NewFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}

	path := hdwallet.MustParseDerivationPath(fmt.Sprintf("m/44'/60'/0'/0/%d", index))
	account, err := wallet.Derive(path, false)
	if err != nil {
		return nil, err
	}

	key, err := wallet.PrivateKey(account)
	if err != nil {
		return nil, err
	}
	return &Signer{key: key}, nil
}

// Address is the public identity verifiers check signatures against.
func (s *Signer) Address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

// Attest signs the payout owed for a finished round. The caller supplies
// only values it computed itself; the signer still refuses obviously
// unsignable input rather than emit a digest the contract cannot recover.
func (s *Signer) Attest(gameID, player string, payout *big.Int) (string, error) {
	id, ok := new(big.Int).SetString(gameID, 10)
	if !ok || id.Sign() < 0 {
		return "", fmt.Errorf("game id %q is not a uint256", gameID)
	}
	if !common.IsHexAddress(player) {
		return "", fmt.Errorf("player %q is not an address", player)
	}
	if payout == nil || payout.Sign() <= 0 {
		return "", errors.New("payout must be positive")
	}

	sig, err := crypto.Sign(prefixedDigest(id, common.HexToAddress(player), payout), s.key)
	if err != nil {
		return "", err
	}

	// contract-side ecrecover expects v in {27, 28}
	sig[64] += 27
	return hexutil.Encode(sig), nil
}

// Verify checks an attestation against an oracle address. The oracle never
// needs this on the hot path; it exists so operators and tests can confirm
// what the contract will conclude.
func Verify(oracle common.Address, gameID, player string, payout *big.Int, sigHex string) error {
	sig, err := hexutil.Decode(sigHex)
	if err != nil {
		return err
	}
	if len(sig) != 65 || (sig[64] != 27 && sig[64] != 28) {
		return errors.New("malformed signature")
	}

	id, ok := new(big.Int).SetString(gameID, 10)
	if !ok || id.Sign() < 0 {
		return fmt.Errorf("game id %q is not a uint256", gameID)
	}

	raw := make([]byte, 65)
	copy(raw, sig)
	raw[64] -= 27

	pub, err := crypto.SigToPub(prefixedDigest(id, common.HexToAddress(player), payout), raw)
	if err != nil {
		return err
	}
	if crypto.PubkeyToAddress(*pub) != oracle {
		return errors.New("signature does not match oracle address")
	}
	return nil
}

// prefixedDigest is keccak256 over the solidity packed encoding
// uint256(gameId) . address(player) . uint256(payout), wrapped in the
// EIP-191 personal-sign prefix.
func prefixedDigest(gameID *big.Int, player common.Address, payout *big.Int) []byte {
	packed := make([]byte, 0, 84)
	packed = append(packed, common.LeftPadBytes(gameID.Bytes(), 32)...)
	packed = append(packed, player.Bytes()...)
	packed = append(packed, common.LeftPadBytes(payout.Bytes(), 32)...)

	return crypto.Keccak256([]byte(personalPrefix), crypto.Keccak256(packed))
}
