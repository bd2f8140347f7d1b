package sessionkeys

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"slices"
	"sync"
)

var ErrBadSignature = errors.New("enable encryption signature mismatch")

// Size of the EnterEncryptedMode signature (2048-bit modulus)
const SignatureSize = 256

var serverIdentity = sync.OnceValues(func() (*rsa.PrivateKey, error) {
	return ParseIdentity(identityPEM)
})

// ServerIdentity returns the compiled-in server key. It is parsed once and shared read-only.
func ServerIdentity() (*rsa.PrivateKey, error) {
	return serverIdentity()
}

// ParseIdentity parses a PKCS#1 PEM RSA private key.
func ParseIdentity(data []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(data)

	if block == nil || block.Type != "RSA PRIVATE KEY" {
		return nil, fmt.Errorf("no RSA PRIVATE KEY block found")
	}

	key, err := x509.ParsePKCS1PrivateKey(block.Bytes)

	if err != nil {
		return nil, err
	}

	if key.N.BitLen() != SignatureSize*8 {
		return nil, fmt.Errorf("identity key is %d bits, want %d", key.N.BitLen(), SignatureSize*8)
	}

	return key, nil
}

// SignEnableEncryption produces the EnterEncryptedMode signature for encryptionKey.
// The signature is RSA PKCS#1 v1.5 over SHA256 of the EnableEncryption HMAC, byte-reversed.
func SignEnableEncryption(key *rsa.PrivateKey, encryptionKey []byte, enabled bool) ([]byte, error) {
	digest, err := enableEncryptionDigest(encryptionKey, enabled)

	if err != nil {
		return nil, err
	}

	signature, err := rsa.SignPKCS1v15(nil, key, crypto.SHA256, digest[:])

	if err != nil {
		return nil, err
	}

	slices.Reverse(signature)
	return signature, nil
}

// VerifyEnableEncryption checks a signature produced by SignEnableEncryption.
func VerifyEnableEncryption(key *rsa.PublicKey, encryptionKey []byte, enabled bool, signature []byte) error {
	digest, err := enableEncryptionDigest(encryptionKey, enabled)

	if err != nil {
		return err
	}

	if len(signature) != SignatureSize {
		return fmt.Errorf("%w: signature is %d bytes", ErrBadSignature, len(signature))
	}

	reversed := slices.Clone(signature)
	slices.Reverse(reversed)

	if err := rsa.VerifyPKCS1v15(key, crypto.SHA256, digest[:], reversed); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSignature, err)
	}

	return nil
}

func enableEncryptionDigest(encryptionKey []byte, enabled bool) ([sha256.Size]byte, error) {
	mac, err := Derive(EnableEncryption, NonceSet{Secret: encryptionKey, Enabled: enabled})

	if err != nil {
		return [sha256.Size]byte{}, err
	}

	return sha256.Sum256(mac), nil
}
