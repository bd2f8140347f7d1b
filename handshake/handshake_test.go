package handshake

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	core "git.greysoh.dev/imterah/worldsockd/commons"
	"git.greysoh.dev/imterah/worldsockd/sessionkeys"
	"git.greysoh.dev/imterah/worldsockd/status"
)

func testMaterial(t *testing.T) *sessionkeys.Material {
	t.Helper()

	material, err := sessionkeys.NewSession(bytes.Repeat([]byte{1}, 32), bytes.Repeat([]byte{2}, 16), bytes.Repeat([]byte{3}, 16))

	if err != nil {
		t.Fatalf("failed to derive material (%s)", err.Error())
	}

	return material
}

func TestClientPreambleAccepted(t *testing.T) {
	handshake := New(core.RoleServer)

	if err := handshake.VerifyPreamble([]byte(sessionkeys.ClientToServer)); err != nil {
		t.Fatalf("valid preamble rejected (%s)", err.Error())
	}

	if handshake.State() != PreambleVerified {
		t.Fatalf("expected %s, got %s", PreambleVerified, handshake.State())
	}
}

func TestWrongDirectionPreambleRejected(t *testing.T) {
	handshake := New(core.RoleServer)
	err := handshake.VerifyPreamble([]byte(sessionkeys.ServerToClient))

	if !errors.Is(err, ErrPreambleMismatch) {
		t.Fatalf("expected ErrPreambleMismatch, got %v", err)
	}

	if handshake.State() != Failed {
		t.Fatalf("expected %s, got %s", Failed, handshake.State())
	}

	client := New(core.RoleClient)

	if err := client.VerifyPreamble([]byte(sessionkeys.ServerToClient)); err != nil {
		t.Fatalf("client rejected the server preamble (%s)", err.Error())
	}
}

func TestPreambleSingleByteMutation(t *testing.T) {
	valid := []byte(sessionkeys.ClientToServer)

	for index := range valid {
		mutated := bytes.Clone(valid)
		mutated[index] ^= 0x01

		handshake := New(core.RoleServer)

		if err := handshake.VerifyPreamble(mutated); err == nil {
			t.Fatalf("mutation at byte %d accepted", index)
		}

		if handshake.State() != Failed {
			t.Fatalf("mutation at byte %d left state %s", index, handshake.State())
		}
	}

	for _, line := range [][]byte{valid[:52], append(bytes.Clone(valid), '\n'), nil} {
		if err := New(core.RoleServer).VerifyPreamble(line); err == nil {
			t.Fatalf("preamble of length %d accepted", len(line))
		}
	}
}

func TestFullProgression(t *testing.T) {
	handshake := New(core.RoleServer)

	steps := []struct {
		run  func() error
		want State
	}{
		{func() error { return handshake.VerifyPreamble([]byte(sessionkeys.ClientToServer)) }, PreambleVerified},
		{func() error { return handshake.ExchangeKeys(testMaterial(t)) }, KeyExchanged},
		{handshake.EnableEncryption, EncryptionEnabled},
		{handshake.Establish, Established},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			t.Fatalf("transition to %s failed (%s)", step.want, err.Error())
		}

		if handshake.State() != step.want {
			t.Fatalf("expected %s, got %s", step.want, handshake.State())
		}
	}

	if !handshake.State().Terminal() {
		t.Fatal("established is not terminal")
	}

	if handshake.Material() == nil {
		t.Fatal("established handshake has no material")
	}

	handshake.Close()

	if handshake.Material() != nil {
		t.Fatal("material survived close")
	}
}

func TestOutOfOrderTransitionFails(t *testing.T) {
	handshake := New(core.RoleServer)
	material := testMaterial(t)
	sessionKey := material.SessionKey

	if err := handshake.ExchangeKeys(material); !errors.Is(err, ErrBadTransition) {
		t.Fatalf("expected ErrBadTransition, got %v", err)
	}

	if handshake.State() != Failed {
		t.Fatalf("expected %s, got %s", Failed, handshake.State())
	}

	if !bytes.Equal(sessionKey, make([]byte, len(sessionKey))) {
		t.Fatal("rejected material was not wiped")
	}

	if err := handshake.VerifyPreamble([]byte(sessionkeys.ClientToServer)); err == nil {
		t.Fatal("failed handshake accepted a preamble")
	}
}

func TestCancellationWipesMaterial(t *testing.T) {
	handshake := New(core.RoleServer)

	if err := handshake.VerifyPreamble([]byte(sessionkeys.ClientToServer)); err != nil {
		t.Fatalf("preamble rejected (%s)", err.Error())
	}

	material := testMaterial(t)
	encryptionKey := material.EncryptionKey

	if err := handshake.ExchangeKeys(material); err != nil {
		t.Fatalf("key exchange failed (%s)", err.Error())
	}

	cause := errors.New("peer disconnected")
	err := handshake.Fail(cause)

	if !errors.Is(err, ErrHandshakeFailed) || !errors.Is(err, cause) {
		t.Fatalf("unexpected fail error %v", err)
	}

	if handshake.Material() != nil {
		t.Fatal("failed handshake still exposes material")
	}

	if !bytes.Equal(encryptionKey, make([]byte, len(encryptionKey))) {
		t.Fatal("encryption key was not zeroed")
	}

	if !errors.Is(handshake.Err(), cause) {
		t.Fatalf("Err() lost the cause: %v", handshake.Err())
	}
}

func TestPacketsRoundTrip(t *testing.T) {
	challenge := AuthChallenge{DosZeroBits: 1}
	copy(challenge.Challenge[:], bytes.Repeat([]byte{0xAB}, 16))

	packet, err := challenge.Encode()

	if err != nil {
		t.Fatalf("failed to encode challenge (%s)", err.Error())
	}

	if len(packet.Payload) != 32+16+1 {
		t.Fatalf("unexpected challenge size %d", len(packet.Payload))
	}

	decodedChallenge, err := DecodeAuthChallenge(packet)

	if err != nil || *decodedChallenge != challenge {
		t.Fatalf("challenge round trip failed (%+v, %v)", decodedChallenge, err)
	}

	session := AuthSession{DosResponse: 9, RegionID: 1, BattlegroupID: 2, RealmID: 3, UseIPv6: true, RealmJoinTicket: "1#1"}
	packet, err = session.Encode()

	if err != nil {
		t.Fatalf("failed to encode session (%s)", err.Error())
	}

	decodedSession, err := DecodeAuthSession(packet)

	if err != nil || *decodedSession != session {
		t.Fatalf("session round trip failed (%+v, %v)", decodedSession, err)
	}

	response := AuthResponse{Result: status.GameAccountBanned}
	packet, err = response.Encode()

	if err != nil {
		t.Fatalf("failed to encode response (%s)", err.Error())
	}

	if !bytes.Equal(packet.Payload, []byte{0x34, 0, 0, 0}) {
		t.Fatalf("unexpected response payload % X", packet.Payload)
	}
}

func TestDecodeFailuresMapToMalformedRequest(t *testing.T) {
	session := AuthSession{RealmJoinTicket: "account"}
	packet, _ := session.Encode()

	cases := []struct {
		name   string
		decode func() error
	}{
		{"truncated", func() error {
			_, err := DecodeAuthSession(&core.Packet{Opcode: core.CmsgAuthSession, Payload: packet.Payload[:20]})
			return err
		}},
		{"trailing", func() error {
			_, err := DecodeAuthSession(&core.Packet{Opcode: core.CmsgAuthSession, Payload: append(bytes.Clone(packet.Payload), 0)})
			return err
		}},
		{"wrong_opcode", func() error {
			_, err := DecodeAuthContinuedSession(packet)
			return err
		}},
		{"missing_enabled", func() error {
			_, err := DecodeEnterEncryptedMode(&core.Packet{Opcode: core.SmsgEnterEncryptedMode, Payload: make([]byte, 256)})
			return err
		}},
		{"oversized_ticket", func() error {
			payload := append(bytes.Clone(packet.Payload[:len(packet.Payload)-len("account")-4]), 0x01, 0x01, 0, 0)
			_, err := DecodeAuthSession(&core.Packet{Opcode: core.CmsgAuthSession, Payload: append(payload, make([]byte, 257)...)})
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.decode()

			if failure, ok := status.Classify(err); !ok || failure != status.FailureDecode {
				t.Fatalf("expected decode failure, got %v", err)
			}
		})
	}
}

func TestEncodeRejectsBadTicket(t *testing.T) {
	_, err := (&AuthSession{RealmJoinTicket: "bad\x00ticket"}).Encode()

	if failure, _ := status.Classify(err); failure != status.FailureNulByte {
		t.Fatalf("expected nul byte failure, got %v", err)
	}

	_, err = (&AuthSession{RealmJoinTicket: strings.Repeat("x", MaxRealmJoinTicketSize+1)}).Encode()

	if got := status.FromError(err); got != status.RpcMalformedResponse {
		t.Fatalf("expected %s, got %s (%v)", status.RpcMalformedResponse, got, err)
	}
}

func TestBitFieldsUseHighBit(t *testing.T) {
	mode := EnterEncryptedMode{Enabled: true}
	packet, err := mode.Encode()

	if err != nil {
		t.Fatalf("failed to encode mode (%s)", err.Error())
	}

	if len(packet.Payload) != sessionkeys.SignatureSize+1 || packet.Payload[sessionkeys.SignatureSize] != 0x80 {
		t.Fatalf("unexpected enabled byte 0x%02X", packet.Payload[len(packet.Payload)-1])
	}

	mode.Enabled = false
	packet, _ = mode.Encode()

	if packet.Payload[sessionkeys.SignatureSize] != 0x00 {
		t.Fatalf("unexpected disabled byte 0x%02X", packet.Payload[sessionkeys.SignatureSize])
	}

	for _, tc := range []struct {
		flag byte
		want bool
	}{{0x80, true}, {0x81, true}, {0x01, false}, {0x00, false}} {
		payload := append(make([]byte, sessionkeys.SignatureSize), tc.flag)
		decoded, err := DecodeEnterEncryptedMode(&core.Packet{Opcode: core.SmsgEnterEncryptedMode, Payload: payload})

		if err != nil || decoded.Enabled != tc.want {
			t.Fatalf("flag 0x%02X decoded as %v (%v)", tc.flag, decoded, err)
		}
	}
}

func TestAuthSessionWireLayout(t *testing.T) {
	session := AuthSession{UseIPv6: true, RealmJoinTicket: "1#1x"}
	packet, err := session.Encode()

	if err != nil {
		t.Fatalf("failed to encode session (%s)", err.Error())
	}

	// DosResponse, RegionID, BattlegroupID, RealmID, LocalChallenge, Digest
	const fixed = 8 + 4 + 4 + 4 + sessionkeys.NonceSize + sessionkeys.DigestSize

	tail := packet.Payload[fixed:]
	want := []byte{0x80, 4, 0, 0, 0, '1', '#', '1', 'x'}

	if !bytes.Equal(tail, want) {
		t.Fatalf("unexpected tail % X, want % X", tail, want)
	}

	decoded, err := DecodeAuthSession(packet)

	if err != nil {
		t.Fatalf("failed to decode unterminated ticket (%s)", err.Error())
	}

	if decoded.RealmJoinTicket != "1#1x" || !decoded.UseIPv6 {
		t.Fatalf("unexpected session %+v", decoded)
	}

	empty, err := DecodeAuthSession(&core.Packet{Opcode: core.CmsgAuthSession, Payload: append(bytes.Clone(packet.Payload[:fixed]), 0, 0, 0, 0, 0)})

	if err != nil || empty.RealmJoinTicket != "" || empty.UseIPv6 {
		t.Fatalf("unexpected empty ticket session (%+v, %v)", empty, err)
	}
}
