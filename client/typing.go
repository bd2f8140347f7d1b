package client

import (
	"crypto/rsa"

	"git.greysoh.dev/imterah/worldsockd/status"
)

// World socket client
type WorldClient struct {
	// Key the server signs EnterEncryptedMode with. Defaults to the compiled-in identity.
	ServerKey *rsa.PublicKey

	// Game account name, as issued by the login service
	RealmJoinTicket string
	// Authentication secret shared with the login service
	Secret []byte

	RegionID      uint32
	BattlegroupID uint32
	RealmID       uint32
}

// Result of a handshake.
type Result struct {
	// Status the server answered with
	Status status.StatusCode

	// Copies of the negotiated keys. Only set if Status is Ok.
	SessionKey    []byte
	EncryptionKey []byte
}

// Wipe zeroes the keys held by the result.
func (result *Result) Wipe() {
	if result == nil {
		return
	}

	clear(result.SessionKey)
	clear(result.EncryptionKey)

	result.SessionKey = nil
	result.EncryptionKey = nil
}
