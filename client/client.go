package client

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"net"
	"time"

	core "git.greysoh.dev/imterah/worldsockd/commons"
	"git.greysoh.dev/imterah/worldsockd/handshake"
	"git.greysoh.dev/imterah/worldsockd/sessionkeys"
	"git.greysoh.dev/imterah/worldsockd/status"
)

// Builds the client's answer to the server challenge, and the key material it commits to.
type answerFunc func(clientNonce, serverNonce []byte) (encoder, *sessionkeys.Material, error)

// Logs in to a world server. This wraps an existing net.Conn interface.
//
// The returned WorldConn is encrypted and ready for game packets. If the server refuses the
// login, the error is the StatusCode it answered with, and the Result carries it too. conn is
// closed on any failure.
func (world *WorldClient) Conn(ctx context.Context, conn net.Conn) (*core.WorldConn, *Result, error) {
	return world.run(ctx, conn, func(clientNonce, serverNonce []byte) (encoder, *sessionkeys.Material, error) {
		material, err := sessionkeys.NewSession(world.Secret, clientNonce, serverNonce)

		if err != nil {
			return nil, nil, err
		}

		session := handshake.AuthSession{
			RegionID:        world.RegionID,
			BattlegroupID:   world.BattlegroupID,
			RealmID:         world.RealmID,
			RealmJoinTicket: world.RealmJoinTicket,
		}

		copy(session.LocalChallenge[:], clientNonce)
		copy(session.Digest[:], material.AuthCheck)

		return &session, material, nil
	})
}

// Resumes a session on a new connection, using the session key of an earlier handshake and
// the continuation key the server issued for it.
func (world *WorldClient) ContinueConn(ctx context.Context, conn net.Conn, sessionKey []byte, key uint64) (*core.WorldConn, *Result, error) {
	return world.run(ctx, conn, func(clientNonce, serverNonce []byte) (encoder, *sessionkeys.Material, error) {
		material, err := sessionkeys.ContinueSession(sessionKey, key, clientNonce, serverNonce)

		if err != nil {
			return nil, nil, err
		}

		continued := handshake.AuthContinuedSession{
			Key: key,
		}

		copy(continued.LocalChallenge[:], clientNonce)
		copy(continued.Digest[:], material.AuthCheck)

		return &continued, material, nil
	})
}

func (world *WorldClient) run(ctx context.Context, conn net.Conn, answer answerFunc) (*core.WorldConn, *Result, error) {
	if err := applyDeadline(ctx, conn); err != nil {
		conn.Close()
		return nil, nil, err
	}

	worldConn := core.NewWorldConn(conn, core.RoleClient)

	result, err := core.Go(ctx, func(ctx context.Context) (*Result, error) {
		return world.handshake(ctx, worldConn, answer)
	}).Join()

	if err != nil {
		conn.Close()
		return nil, result, err
	}

	conn.SetDeadline(time.Time{})
	return worldConn, result, nil
}

func (world *WorldClient) handshake(ctx context.Context, worldConn *core.WorldConn, answer answerFunc) (result *Result, err error) {
	state := handshake.New(core.RoleClient)

	defer func() {
		if err != nil {
			err = state.Fail(err)
		}

		state.Close()
	}()

	if err = worldConn.WriteRaw(state.OutboundPreamble()); err != nil {
		return nil, err
	}

	line, err := worldConn.ReadRaw(sessionkeys.PreambleSize)

	if err != nil {
		return nil, err
	}

	if err = state.VerifyPreamble(line); err != nil {
		return nil, err
	}

	packet, err := worldConn.ReadPacket()

	if err != nil {
		return nil, err
	}

	challenge, err := handshake.DecodeAuthChallenge(packet)

	if err != nil {
		return nil, err
	}

	clientNonce := make([]byte, sessionkeys.NonceSize)

	if _, err = rand.Read(clientNonce); err != nil {
		return nil, err
	}

	message, material, err := answer(clientNonce, challenge.Challenge[:])

	if err != nil {
		return nil, err
	}

	if err = state.ExchangeKeys(material); err != nil {
		return nil, err
	}

	if err = writePacket(worldConn, message); err != nil {
		return nil, err
	}

	packet, err = worldConn.ReadPacket()

	if err != nil {
		return nil, err
	}

	// A refusal arrives in the clear, before encryption is negotiated.
	if packet.Opcode == core.SmsgAuthResponse {
		return refused(packet)
	}

	mode, err := handshake.DecodeEnterEncryptedMode(packet)

	if err != nil {
		return nil, err
	}

	if !mode.Enabled {
		return nil, status.Decode(fmt.Errorf("server declined packet encryption"))
	}

	serverKey, err := world.serverKey()

	if err != nil {
		return nil, err
	}

	if err = sessionkeys.VerifyEnableEncryption(serverKey, material.EncryptionKey, mode.Enabled, mode.Signature[:]); err != nil {
		return nil, err
	}

	if err = writePacket(worldConn, handshake.EnterEncryptedModeAck{}); err != nil {
		return nil, err
	}

	if err = worldConn.EnableEncryption(material.EncryptionKey); err != nil {
		return nil, err
	}

	if err = state.EnableEncryption(); err != nil {
		return nil, err
	}

	packet, err = worldConn.ReadPacket()

	if err != nil {
		return nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	response, err := handshake.DecodeAuthResponse(packet)

	if err != nil {
		return nil, err
	}

	if response.Result != status.Ok {
		return &Result{Status: response.Result}, response.Result
	}

	if err = state.Establish(); err != nil {
		return nil, err
	}

	return &Result{
		Status:        status.Ok,
		SessionKey:    bytes.Clone(material.SessionKey),
		EncryptionKey: bytes.Clone(material.EncryptionKey),
	}, nil
}

func refused(packet *core.Packet) (*Result, error) {
	response, err := handshake.DecodeAuthResponse(packet)

	if err != nil {
		return nil, err
	}

	if response.Result == status.Ok {
		return nil, status.Decode(fmt.Errorf("auth response arrived before encryption was enabled"))
	}

	return &Result{Status: response.Result}, response.Result
}
