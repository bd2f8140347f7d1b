package sessionkeys

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingInput   = errors.New("missing derivation input")
	ErrMalformedInput = errors.New("malformed derivation input")
	ErrUnknownPurpose = errors.New("unknown derivation purpose")
)

// Purpose selects the seed (and with it the construction) used by Derive.
type Purpose uint8

const (
	// AuthCheck: proves the peer knows the account secret. HMAC keyed by the RealmAuth digest.
	AuthCheck Purpose = iota + 1
	// SessionKey: 40-byte session key for a fresh login
	SessionKey
	// ContinuedSession: proves a resumed connection holds the prior session key
	ContinuedSession
	// EncryptionKey: 16-byte packet encryption key, from the session key
	EncryptionKey
	// RealmAuth: digest key combining the account secret with the realm build seed
	RealmAuth
	// EnableEncryption: value signed by the server identity in EnterEncryptedMode
	EnableEncryption
)

var purposeNames = map[Purpose]string{
	AuthCheck:        "auth check",
	SessionKey:       "session key",
	ContinuedSession: "continued session",
	EncryptionKey:    "encryption key",
	RealmAuth:        "realm auth",
	EnableEncryption: "enable encryption",
}

func (purpose Purpose) String() string {
	if name, ok := purposeNames[purpose]; ok {
		return name
	}

	return fmt.Sprintf("purpose(%d)", uint8(purpose))
}

// ParsePurpose accepts a purpose name with spaces or dashes, e.g. "auth-check".
func ParsePurpose(name string) (Purpose, error) {
	name = strings.ReplaceAll(strings.ToLower(name), "-", " ")

	for purpose, purposeName := range purposeNames {
		if purposeName == name {
			return purpose, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPurpose, name)
}

// NonceSet carries the inputs of a single derivation. Which fields are read depends on the purpose:
//
//   - RealmAuth: Secret (account key data)
//   - AuthCheck: Secret (account key data), ClientNonce, ServerNonce
//   - SessionKey: Secret (account key data), ClientNonce, ServerNonce
//   - ContinuedSession: Secret (prior session key), Token, ClientNonce, ServerNonce
//   - EncryptionKey: Secret (session key), ClientNonce, ServerNonce
//   - EnableEncryption: Secret (encryption key), Enabled
type NonceSet struct {
	Secret      []byte
	ClientNonce []byte
	ServerNonce []byte
	Token       []byte
	Enabled     bool
}

// Derive computes the key material for purpose from in. It is a pure function: equal inputs
// always produce equal outputs, and the output is a fresh slice owned by the caller.
func Derive(purpose Purpose, in NonceSet) ([]byte, error) {
	if err := in.validate(purpose); err != nil {
		return nil, err
	}

	seed, _ := Seed(purpose)

	switch purpose {
	case RealmAuth:
		digest := sha256.New()
		digest.Write(in.Secret)
		digest.Write(seed[:])

		return digest.Sum(nil), nil
	case AuthCheck:
		digestKey, err := Derive(RealmAuth, NonceSet{Secret: in.Secret})

		if err != nil {
			return nil, err
		}

		return hmacSum(digestKey, in.ClientNonce, in.ServerNonce, seed[:]), nil
	case SessionKey:
		keyData := sha256.Sum256(in.Secret)
		sessionHmac := hmacSum(keyData[:], in.ServerNonce, in.ClientNonce, seed[:])

		sessionKey := make([]byte, SessionKeySize)
		NewSessionKeyGenerator(sessionHmac).Read(sessionKey)

		return sessionKey, nil
	case ContinuedSession:
		return hmacSum(in.Secret, in.Token, in.ClientNonce, in.ServerNonce, seed[:]), nil
	case EncryptionKey:
		return hmacSum(in.Secret, in.ClientNonce, in.ServerNonce, seed[:])[:EncryptionKeySize], nil
	case EnableEncryption:
		enabled := []byte{0}

		if in.Enabled {
			enabled[0] = 1
		}

		return hmacSum(in.Secret, enabled, seed[:]), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownPurpose, purpose)
}

func (in NonceSet) validate(purpose Purpose) error {
	if _, ok := Seed(purpose); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPurpose, purpose)
	}

	if len(in.Secret) == 0 {
		return fmt.Errorf("%w: %s: secret", ErrMissingInput, purpose)
	}

	switch purpose {
	case ContinuedSession:
		if len(in.Secret) != SessionKeySize {
			return fmt.Errorf("%w: %s: session key is %d bytes, want %d", ErrMalformedInput, purpose, len(in.Secret), SessionKeySize)
		}

		if err := checkSize(purpose, "token", in.Token, TokenSize); err != nil {
			return err
		}
	case EncryptionKey:
		if len(in.Secret) != SessionKeySize {
			return fmt.Errorf("%w: %s: session key is %d bytes, want %d", ErrMalformedInput, purpose, len(in.Secret), SessionKeySize)
		}
	case EnableEncryption:
		if len(in.Secret) != EncryptionKeySize {
			return fmt.Errorf("%w: %s: encryption key is %d bytes, want %d", ErrMalformedInput, purpose, len(in.Secret), EncryptionKeySize)
		}

		return nil
	case RealmAuth:
		return nil
	}

	if err := checkSize(purpose, "client nonce", in.ClientNonce, NonceSize); err != nil {
		return err
	}

	return checkSize(purpose, "server nonce", in.ServerNonce, NonceSize)
}

func checkSize(purpose Purpose, field string, value []byte, size int) error {
	if len(value) == 0 {
		return fmt.Errorf("%w: %s: %s", ErrMissingInput, purpose, field)
	}

	if len(value) != size {
		return fmt.Errorf("%w: %s: %s is %d bytes, want %d", ErrMalformedInput, purpose, field, len(value), size)
	}

	return nil
}

func hmacSum(key []byte, parts ...[]byte) []byte {
	mac := hmac.New(sha256.New, key)

	for _, part := range parts {
		mac.Write(part)
	}

	return mac.Sum(nil)
}
