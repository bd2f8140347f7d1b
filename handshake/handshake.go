package handshake

import (
	"crypto/subtle"
	"errors"
	"fmt"

	core "git.greysoh.dev/imterah/worldsockd/commons"
	"git.greysoh.dev/imterah/worldsockd/sessionkeys"
)

var (
	ErrPreambleMismatch = errors.New("connection preamble mismatch")
	ErrBadTransition    = errors.New("invalid handshake transition")
	ErrHandshakeFailed  = errors.New("handshake failed")
)

// Handshake tracks one connection's progress and owns its key material. It is not safe
// for concurrent use; a connection drives its own handshake.
type Handshake struct {
	role     core.Role
	state    State
	material *sessionkeys.Material
	err      error
}

func New(role core.Role) *Handshake {
	return &Handshake{role: role}
}

func (handshake *Handshake) State() State {
	return handshake.state
}

func (handshake *Handshake) Role() core.Role {
	return handshake.role
}

// Err returns the error that moved the handshake to Failed, if any.
func (handshake *Handshake) Err() error {
	return handshake.err
}

// OutboundPreamble is the line this end sends.
func (handshake *Handshake) OutboundPreamble() []byte {
	if handshake.role == core.RoleServer {
		return []byte(sessionkeys.ServerToClient)
	}

	return []byte(sessionkeys.ClientToServer)
}

// InboundPreamble is the line this end expects from the peer.
func (handshake *Handshake) InboundPreamble() []byte {
	if handshake.role == core.RoleServer {
		return []byte(sessionkeys.ClientToServer)
	}

	return []byte(sessionkeys.ServerToClient)
}

// VerifyPreamble checks the peer's identification line. Anything but an exact match fails
// the handshake.
func (handshake *Handshake) VerifyPreamble(line []byte) error {
	if err := handshake.expect(AwaitingPreamble); err != nil {
		return err
	}

	if subtle.ConstantTimeCompare(line, handshake.InboundPreamble()) != 1 {
		return handshake.Fail(fmt.Errorf("%w: got %q", ErrPreambleMismatch, line))
	}

	handshake.state = PreambleVerified
	return nil
}

// ExchangeKeys takes ownership of material derived for this connection.
func (handshake *Handshake) ExchangeKeys(material *sessionkeys.Material) error {
	if err := handshake.expect(PreambleVerified); err != nil {
		material.Wipe()
		return err
	}

	if material == nil || len(material.EncryptionKey) != sessionkeys.EncryptionKeySize {
		return handshake.Fail(fmt.Errorf("%w: incomplete key material", ErrHandshakeFailed))
	}

	handshake.material = material
	handshake.state = KeyExchanged

	return nil
}

func (handshake *Handshake) EnableEncryption() error {
	if err := handshake.expect(KeyExchanged); err != nil {
		return err
	}

	handshake.state = EncryptionEnabled
	return nil
}

func (handshake *Handshake) Establish() error {
	if err := handshake.expect(EncryptionEnabled); err != nil {
		return err
	}

	handshake.state = Established
	return nil
}

// Fail moves the handshake to Failed and wipes any key material. It returns err wrapped
// with ErrHandshakeFailed unless it already is.
func (handshake *Handshake) Fail(err error) error {
	if err == nil {
		err = ErrHandshakeFailed
	} else if !errors.Is(err, ErrHandshakeFailed) {
		err = fmt.Errorf("%w: %w", ErrHandshakeFailed, err)
	}

	if handshake.state != Failed {
		handshake.err = err
	}

	handshake.state = Failed
	handshake.material.Wipe()
	handshake.material = nil

	return err
}

// Close wipes the key material of an established connection.
func (handshake *Handshake) Close() {
	handshake.material.Wipe()
	handshake.material = nil

	if handshake.state != Established {
		handshake.state = Failed
	}
}

// Material returns the connection's key material once keys have been exchanged, or nil.
func (handshake *Handshake) Material() *sessionkeys.Material {
	if handshake.state < KeyExchanged || handshake.state == Failed {
		return nil
	}

	return handshake.material
}

func (handshake *Handshake) expect(state State) error {
	if handshake.state == state {
		return nil
	}

	return handshake.Fail(fmt.Errorf("%w: %s while %s expected", ErrBadTransition, handshake.state, state))
}
