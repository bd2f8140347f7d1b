package handshake

import (
	"encoding/binary"
	"fmt"

	core "git.greysoh.dev/imterah/worldsockd/commons"
	"git.greysoh.dev/imterah/worldsockd/sessionkeys"
	"git.greysoh.dev/imterah/worldsockd/status"
	"golang.org/x/crypto/cryptobyte"
)

// Longest realm join ticket accepted
const MaxRealmJoinTicketSize = 256

// A single bit field is flushed as a whole byte, first bit in the high position.
const bitTrue = 0x80

// AuthChallenge is sent by the server right after the preamble exchange.
type AuthChallenge struct {
	DosChallenge [32]byte
	// Server nonce
	Challenge   [sessionkeys.NonceSize]byte
	DosZeroBits uint8
}

// AuthSession is the client's answer for a fresh login.
type AuthSession struct {
	DosResponse   uint64
	RegionID      uint32
	BattlegroupID uint32
	RealmID       uint32
	// Client nonce
	LocalChallenge [sessionkeys.NonceSize]byte
	// First DigestSize bytes of the auth check HMAC
	Digest  [sessionkeys.DigestSize]byte
	UseIPv6 bool
	// Game account name, as issued by the login service
	RealmJoinTicket string
}

// AuthContinuedSession is the client's answer when resuming with a continuation key.
type AuthContinuedSession struct {
	DosResponse    uint64
	Key            uint64
	LocalChallenge [sessionkeys.NonceSize]byte
	// First DigestSize bytes of the continued-session HMAC
	Digest [sessionkeys.DigestSize]byte
}

// EnterEncryptedMode asks the client to switch on packet encryption.
type EnterEncryptedMode struct {
	Signature [sessionkeys.SignatureSize]byte
	Enabled   bool
}

// EnterEncryptedModeAck has no body.
type EnterEncryptedModeAck struct{}

// AuthResponse ends the handshake. The status code is the last field of the envelope.
type AuthResponse struct {
	Result status.StatusCode
}

func addUint32(b *cryptobyte.Builder, v uint32) {
	b.AddBytes(binary.LittleEndian.AppendUint32(nil, v))
}

func addUint64(b *cryptobyte.Builder, v uint64) {
	b.AddBytes(binary.LittleEndian.AppendUint64(nil, v))
}

func addBit(b *cryptobyte.Builder, v bool) {
	if v {
		b.AddUint8(bitTrue)
	} else {
		b.AddUint8(0)
	}
}

func readUint32(s *cryptobyte.String, out *uint32) bool {
	var raw []byte

	if !s.ReadBytes(&raw, 4) {
		return false
	}

	*out = binary.LittleEndian.Uint32(raw)
	return true
}

func readUint64(s *cryptobyte.String, out *uint64) bool {
	var raw []byte

	if !s.ReadBytes(&raw, 8) {
		return false
	}

	*out = binary.LittleEndian.Uint64(raw)
	return true
}

func readBit(s *cryptobyte.String, out *bool) bool {
	var v uint8

	if !s.ReadUint8(&v) {
		return false
	}

	*out = v&bitTrue != 0
	return true
}

func build(opcode core.Opcode, fill func(b *cryptobyte.Builder)) (*core.Packet, error) {
	b := cryptobyte.NewBuilder(nil)
	fill(b)

	payload, err := b.Bytes()

	if err != nil {
		return nil, status.Encode(fmt.Errorf("encode opcode 0x%04X: %w", uint16(opcode), err))
	}

	return &core.Packet{Opcode: opcode, Payload: payload}, nil
}

func payloadOf(packet *core.Packet, opcode core.Opcode) (cryptobyte.String, error) {
	if packet == nil {
		return nil, status.Decode(fmt.Errorf("expected opcode 0x%04X, got no packet", uint16(opcode)))
	}

	if packet.Opcode != opcode {
		return nil, status.Decode(fmt.Errorf("expected opcode 0x%04X, got 0x%04X", uint16(opcode), uint16(packet.Opcode)))
	}

	return cryptobyte.String(packet.Payload), nil
}

func decodeError(opcode core.Opcode, reason string) error {
	return status.Decode(fmt.Errorf("decode opcode 0x%04X: %s", uint16(opcode), reason))
}

func (challenge *AuthChallenge) Encode() (*core.Packet, error) {
	return build(core.SmsgAuthChallenge, func(b *cryptobyte.Builder) {
		b.AddBytes(challenge.DosChallenge[:])
		b.AddBytes(challenge.Challenge[:])
		b.AddUint8(challenge.DosZeroBits)
	})
}

func DecodeAuthChallenge(packet *core.Packet) (*AuthChallenge, error) {
	s, err := payloadOf(packet, core.SmsgAuthChallenge)

	if err != nil {
		return nil, err
	}

	var challenge AuthChallenge

	if !s.CopyBytes(challenge.DosChallenge[:]) || !s.CopyBytes(challenge.Challenge[:]) ||
		!s.ReadUint8(&challenge.DosZeroBits) {
		return nil, decodeError(core.SmsgAuthChallenge, "truncated")
	}

	if !s.Empty() {
		return nil, decodeError(core.SmsgAuthChallenge, "trailing bytes")
	}

	return &challenge, nil
}

func (session *AuthSession) Encode() (*core.Packet, error) {
	ticket, err := core.NameBytes(session.RealmJoinTicket)

	if err != nil {
		return nil, err
	}

	return build(core.CmsgAuthSession, func(b *cryptobyte.Builder) {
		addUint64(b, session.DosResponse)
		addUint32(b, session.RegionID)
		addUint32(b, session.BattlegroupID)
		addUint32(b, session.RealmID)
		b.AddBytes(session.LocalChallenge[:])
		b.AddBytes(session.Digest[:])
		addBit(b, session.UseIPv6)

		if len(ticket) > MaxRealmJoinTicketSize {
			b.SetError(fmt.Errorf("realm join ticket is %d bytes, limit is %d", len(ticket), MaxRealmJoinTicketSize))
			return
		}

		addUint32(b, uint32(len(ticket)))
		b.AddBytes(ticket)
	})
}

func DecodeAuthSession(packet *core.Packet) (*AuthSession, error) {
	s, err := payloadOf(packet, core.CmsgAuthSession)

	if err != nil {
		return nil, err
	}

	var session AuthSession
	var ticketSize uint32
	var ticket []byte

	if !readUint64(&s, &session.DosResponse) || !readUint32(&s, &session.RegionID) ||
		!readUint32(&s, &session.BattlegroupID) || !readUint32(&s, &session.RealmID) ||
		!s.CopyBytes(session.LocalChallenge[:]) || !s.CopyBytes(session.Digest[:]) ||
		!readBit(&s, &session.UseIPv6) || !readUint32(&s, &ticketSize) {
		return nil, decodeError(core.CmsgAuthSession, "truncated")
	}

	if ticketSize > MaxRealmJoinTicketSize {
		return nil, decodeError(core.CmsgAuthSession, fmt.Sprintf("realm join ticket size %d out of range", ticketSize))
	}

	if !s.ReadBytes(&ticket, int(ticketSize)) {
		return nil, decodeError(core.CmsgAuthSession, "truncated realm join ticket")
	}

	if !s.Empty() {
		return nil, decodeError(core.CmsgAuthSession, "trailing bytes")
	}

	session.RealmJoinTicket = string(ticket)
	return &session, nil
}

func (session *AuthContinuedSession) Encode() (*core.Packet, error) {
	return build(core.CmsgAuthContinuedSession, func(b *cryptobyte.Builder) {
		addUint64(b, session.DosResponse)
		addUint64(b, session.Key)
		b.AddBytes(session.LocalChallenge[:])
		b.AddBytes(session.Digest[:])
	})
}

func DecodeAuthContinuedSession(packet *core.Packet) (*AuthContinuedSession, error) {
	s, err := payloadOf(packet, core.CmsgAuthContinuedSession)

	if err != nil {
		return nil, err
	}

	var session AuthContinuedSession

	if !readUint64(&s, &session.DosResponse) || !readUint64(&s, &session.Key) ||
		!s.CopyBytes(session.LocalChallenge[:]) || !s.CopyBytes(session.Digest[:]) {
		return nil, decodeError(core.CmsgAuthContinuedSession, "truncated")
	}

	if !s.Empty() {
		return nil, decodeError(core.CmsgAuthContinuedSession, "trailing bytes")
	}

	return &session, nil
}

func (mode *EnterEncryptedMode) Encode() (*core.Packet, error) {
	return build(core.SmsgEnterEncryptedMode, func(b *cryptobyte.Builder) {
		b.AddBytes(mode.Signature[:])
		addBit(b, mode.Enabled)
	})
}

func DecodeEnterEncryptedMode(packet *core.Packet) (*EnterEncryptedMode, error) {
	s, err := payloadOf(packet, core.SmsgEnterEncryptedMode)

	if err != nil {
		return nil, err
	}

	var mode EnterEncryptedMode

	if !s.CopyBytes(mode.Signature[:]) || !readBit(&s, &mode.Enabled) {
		return nil, decodeError(core.SmsgEnterEncryptedMode, "truncated")
	}

	if !s.Empty() {
		return nil, decodeError(core.SmsgEnterEncryptedMode, "trailing bytes")
	}

	return &mode, nil
}

func (EnterEncryptedModeAck) Encode() (*core.Packet, error) {
	return &core.Packet{Opcode: core.CmsgEnterEncryptedModeAck}, nil
}

func DecodeEnterEncryptedModeAck(packet *core.Packet) (*EnterEncryptedModeAck, error) {
	s, err := payloadOf(packet, core.CmsgEnterEncryptedModeAck)

	if err != nil {
		return nil, err
	}

	if !s.Empty() {
		return nil, decodeError(core.CmsgEnterEncryptedModeAck, "trailing bytes")
	}

	return &EnterEncryptedModeAck{}, nil
}

func (response *AuthResponse) Encode() (*core.Packet, error) {
	return build(core.SmsgAuthResponse, func(b *cryptobyte.Builder) {
		b.AddBytes(response.Result.AppendWire(nil))
	})
}

func DecodeAuthResponse(packet *core.Packet) (*AuthResponse, error) {
	s, err := payloadOf(packet, core.SmsgAuthResponse)

	if err != nil {
		return nil, err
	}

	var raw []byte

	if !s.ReadBytes(&raw, status.WireSize) || !s.Empty() {
		return nil, decodeError(core.SmsgAuthResponse, "expected a single status code")
	}

	result, err := status.ReadWire(raw)

	if err != nil {
		return nil, status.Decode(err)
	}

	return &AuthResponse{Result: result}, nil
}
