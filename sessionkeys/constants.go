// Protocol constants shared with existing clients. None of these may change.

package sessionkeys

import _ "embed"

// Directional identification lines, exchanged in clear before anything else.
const (
	ServerToClient = "WORLD OF WARCRAFT CONNECTION - SERVER TO CLIENT - V2\n"
	ClientToServer = "WORLD OF WARCRAFT CONNECTION - CLIENT TO SERVER - V2\n"

	PreambleSize = 53
)

const (
	SeedSize = 16

	// Client and server nonces (auth challenges)
	NonceSize = 16
	// Continuation token (ConnectToKey)
	TokenSize = 8

	AuthCheckSize     = 32
	DigestSize        = 24
	SessionKeySize    = 40
	EncryptionKeySize = 16
)

// Seeds are byte-reversed relative to the client binary.
var (
	authCheckSeed = [SeedSize]byte{
		0xC5, 0xC6, 0x98, 0x95, 0x76, 0x3F, 0x1D, 0xCD, 0xB6, 0xA1, 0x37, 0x28, 0xB3, 0x12, 0xFF, 0x8A,
	}
	sessionKeySeed = [SeedSize]byte{
		0x58, 0xCB, 0xCF, 0x40, 0xFE, 0x2E, 0xCE, 0xA6, 0x5A, 0x90, 0xB8, 0x01, 0x68, 0x6C, 0x28, 0x0B,
	}
	continuedSessionSeed = [SeedSize]byte{
		0x16, 0xAD, 0x0C, 0xD4, 0x46, 0xF9, 0x4F, 0xB2, 0xEF, 0x7D, 0xEA, 0x2A, 0x17, 0x66, 0x4D, 0x2F,
	}
	encryptionKeySeed = [SeedSize]byte{
		0xE9, 0x75, 0x3C, 0x50, 0x90, 0x93, 0x61, 0xDA, 0x3B, 0x07, 0xEE, 0xFA, 0xFF, 0x9D, 0x41, 0xB8,
	}
	realmAuthSeed = [SeedSize]byte{
		0xDD, 0xE8, 0x06, 0x53, 0x2C, 0x77, 0x04, 0xFF, 0xB7, 0x5F, 0x25, 0x6D, 0xC5, 0xF1, 0xF3, 0xD9,
	}
	enableEncryptionSeed = [SeedSize]byte{
		0x90, 0x9C, 0xD0, 0x50, 0x5A, 0x2C, 0x14, 0xDD, 0x5C, 0x2C, 0xC0, 0x64, 0x14, 0xF3, 0xFE, 0xC9,
	}
)

// PKCS#1 RSA key used to sign EnterEncryptedMode. It is the key existing clients were
// built against, so it is not a secret.
//
//go:embed identity.pem
var identityPEM []byte

// Seed returns a copy of the seed for the given purpose. The boolean is false for unknown purposes.
func Seed(purpose Purpose) ([SeedSize]byte, bool) {
	switch purpose {
	case AuthCheck:
		return authCheckSeed, true
	case SessionKey:
		return sessionKeySeed, true
	case ContinuedSession:
		return continuedSessionSeed, true
	case EncryptionKey:
		return encryptionKeySeed, true
	case RealmAuth:
		return realmAuthSeed, true
	case EnableEncryption:
		return enableEncryptionSeed, true
	}

	return [SeedSize]byte{}, false
}
