package sessionkeys

import (
	"crypto/subtle"
	"encoding/binary"
)

// Material is the key material owned by one connection.
type Material struct {
	// HMAC the peer must reproduce: the auth check for fresh sessions,
	// the continued-session digest for resumed ones
	AuthCheck []byte
	// 40-byte session key, stored by the session store for later continuation
	SessionKey []byte
	// 16-byte packet encryption key
	EncryptionKey []byte
}

// NewSession derives the material for a fresh login from the account secret and both nonces.
func NewSession(secret, clientNonce, serverNonce []byte) (*Material, error) {
	in := NonceSet{
		Secret:      secret,
		ClientNonce: clientNonce,
		ServerNonce: serverNonce,
	}

	authCheck, err := Derive(AuthCheck, in)

	if err != nil {
		return nil, err
	}

	sessionKey, err := Derive(SessionKey, in)

	if err != nil {
		return nil, err
	}

	encryptionKey, err := Derive(EncryptionKey, NonceSet{
		Secret:      sessionKey,
		ClientNonce: clientNonce,
		ServerNonce: serverNonce,
	})

	if err != nil {
		return nil, err
	}

	return &Material{
		AuthCheck:     authCheck,
		SessionKey:    sessionKey,
		EncryptionKey: encryptionKey,
	}, nil
}

// ContinueSession derives the material for a resumed connection from the stored session key
// and the continuation token the session store issued.
func ContinueSession(sessionKey []byte, token uint64, clientNonce, serverNonce []byte) (*Material, error) {
	in := NonceSet{
		Secret:      sessionKey,
		Token:       TokenBytes(token),
		ClientNonce: clientNonce,
		ServerNonce: serverNonce,
	}

	digest, err := Derive(ContinuedSession, in)

	if err != nil {
		return nil, err
	}

	in.Token = nil
	encryptionKey, err := Derive(EncryptionKey, in)

	if err != nil {
		return nil, err
	}

	return &Material{
		AuthCheck:     digest,
		SessionKey:    append([]byte(nil), sessionKey...),
		EncryptionKey: encryptionKey,
	}, nil
}

// TokenBytes is the wire form of a continuation token.
func TokenBytes(token uint64) []byte {
	return binary.LittleEndian.AppendUint64(nil, token)
}

// VerifyDigest compares the digest a peer sent against the locally derived value. Peers send
// a prefix of the HMAC (DigestSize bytes); anything shorter never matches.
func VerifyDigest(expected, peer []byte) bool {
	if len(peer) < DigestSize || len(peer) > len(expected) {
		return false
	}

	return subtle.ConstantTimeCompare(expected[:len(peer)], peer) == 1
}

// Wipe zeroes every key. The material must not be used afterwards.
func (material *Material) Wipe() {
	if material == nil {
		return
	}

	for _, key := range [][]byte{material.AuthCheck, material.SessionKey, material.EncryptionKey} {
		clear(key)
	}

	material.AuthCheck = nil
	material.SessionKey = nil
	material.EncryptionKey = nil
}
