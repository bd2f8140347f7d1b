package server

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	core "git.greysoh.dev/imterah/worldsockd/commons"
	"git.greysoh.dev/imterah/worldsockd/handshake"
	"git.greysoh.dev/imterah/worldsockd/sessionkeys"
	"git.greysoh.dev/imterah/worldsockd/status"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var (
	ErrRateLimited = errors.New("handshake rate limit exceeded")
	errAbandoned   = errors.New("handshake abandoned after its deadline")
)

// Time allowed to deliver a failing auth response
const responseGrace = time.Second

// Serve accepts connections until ctx is done or the listener fails.
func (world *WorldServer) Serve(ctx context.Context, listener net.Listener) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			listener.Close()
		case <-done:
		}
	}()

	for {
		conn, err := listener.Accept()

		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			if errors.Is(err, net.ErrClosed) {
				return err
			}

			log.Warn(err.Error())
			continue
		}

		log.Debugf("Received connection from '%s'", conn.RemoteAddr().String())

		go func() {
			err := world.HandleConn(ctx, conn)

			if err != nil && !errors.Is(err, io.EOF) {
				log.Warnf("Connection dropped: '%s'", err.Error())
			}
		}()
	}
}

// HandleConn runs the handshake on conn and, if it succeeds, hands the session to
// HandleConnection. conn is always closed when HandleConn returns.
func (world *WorldServer) HandleConn(ctx context.Context, conn net.Conn) error {
	id := uuid.New().String()
	logger := log.With("conn", id, "remote", conn.RemoteAddr().String())

	if !world.allow(conn.RemoteAddr()) {
		conn.Close()
		return ErrRateLimited
	}

	worldConn := core.NewWorldConn(conn, core.RoleServer)
	deadline := time.Now().Add(world.HandshakeTimeout)

	if err := conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return err
	}

	handshakeCtx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	answer := &responder{}

	session, err := core.Go(handshakeCtx, func(ctx context.Context) (*Session, error) {
		return world.handshake(ctx, id, worldConn, answer)
	}).Join()

	if err != nil {
		world.reject(worldConn, answer, err, logger)
		return err
	}

	// The handshake deadline no longer applies.
	conn.SetDeadline(time.Time{})
	logger.Info("Session established", "account", session.Account.Name, "continued", session.Continued)

	go func() {
		if err := session.writeLoop(ctx); err != nil {
			logger.Warnf("failed to write to client: '%s'", err.Error())
			session.Conn.Close()
		}
	}()

	defer session.Close()

	if world.HandleConnection == nil {
		return nil
	}

	return world.HandleConnection(session)
}

// reject answers a failed handshake with its status code and closes the connection. A wrong
// preamble gets no answer at all, and neither does a handshake that already switched on
// encryption.
func (world *WorldServer) reject(worldConn *core.WorldConn, answer *responder, err error, logger *log.Logger) {
	defer worldConn.Close()

	if errors.Is(err, handshake.ErrPreambleMismatch) {
		logger.Warn("Dropping connection with bad preamble")
		return
	}

	code := world.Converter.FromError(err)
	logger.Warn("Handshake failed", "status", code.String(), "err", err.Error())

	if answer.abandon() {
		return
	}

	response := handshake.AuthResponse{Result: code}
	packet, encodeErr := response.Encode()

	if encodeErr != nil {
		return
	}

	worldConn.SetWriteDeadline(time.Now().Add(responseGrace))
	worldConn.WritePacket(packet)
}

func (world *WorldServer) handshake(ctx context.Context, id string, worldConn *core.WorldConn, answer *responder) (session *Session, err error) {
	state := handshake.New(core.RoleServer)

	defer func() {
		if err != nil {
			err = state.Fail(err)
		}
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

	// Fresh per connection, so a retried handshake never reuses key material.
	challenge := handshake.AuthChallenge{DosZeroBits: 1}

	if _, err = rand.Read(challenge.Challenge[:]); err != nil {
		return nil, err
	}

	if _, err = rand.Read(challenge.DosChallenge[:]); err != nil {
		return nil, err
	}

	if err = writePacket(worldConn, &challenge); err != nil {
		return nil, err
	}

	packet, err := worldConn.ReadPacket()

	if err != nil {
		return nil, err
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	session = &Session{
		ID:        id,
		Conn:      worldConn,
		handshake: state,
	}

	switch packet.Opcode {
	case core.CmsgAuthSession:
		err = world.authSession(ctx, session, packet, challenge.Challenge[:])
	case core.CmsgAuthContinuedSession:
		err = world.authContinuedSession(ctx, session, packet, challenge.Challenge[:])
	default:
		err = status.Decode(fmt.Errorf("unexpected opcode 0x%04X during handshake", uint16(packet.Opcode)))
	}

	if err != nil {
		return nil, err
	}

	identity, err := world.identity()

	if err != nil {
		return nil, err
	}

	material := state.Material()
	signature, err := sessionkeys.SignEnableEncryption(identity, material.EncryptionKey, true)

	if err != nil {
		return nil, err
	}

	mode := handshake.EnterEncryptedMode{Enabled: true}
	copy(mode.Signature[:], signature)

	if err = writePacket(worldConn, &mode); err != nil {
		return nil, err
	}

	packet, err = worldConn.ReadPacket()

	if err != nil {
		return nil, err
	}

	if _, err = handshake.DecodeEnterEncryptedModeAck(packet); err != nil {
		return nil, err
	}

	err = answer.claim(func() error {
		if err := worldConn.EnableEncryption(material.EncryptionKey); err != nil {
			return err
		}

		if err := state.EnableEncryption(); err != nil {
			return err
		}

		if err := writePacket(worldConn, &handshake.AuthResponse{Result: status.Ok}); err != nil {
			return err
		}

		return state.Establish()
	})

	if err != nil {
		return nil, err
	}

	session.outbox = core.NewOutbox[*core.Packet](64)
	return session, nil
}

func (world *WorldServer) authSession(ctx context.Context, session *Session, packet *core.Packet, serverNonce []byte) error {
	authSession, err := handshake.DecodeAuthSession(packet)

	if err != nil {
		return err
	}

	account, err := world.Accounts.LookupGameAccount(ctx, authSession.RealmJoinTicket)

	if err != nil {
		return err
	}

	if account.Banned {
		return fmt.Errorf("account '%s' is banned: %w", account.Name, status.GameAccountBanned)
	}

	material, err := sessionkeys.NewSession(account.KeyData, authSession.LocalChallenge[:], serverNonce)

	if err != nil {
		return err
	}

	if !sessionkeys.VerifyDigest(material.AuthCheck, authSession.Digest[:]) {
		material.Wipe()
		return fmt.Errorf("auth digest mismatch for '%s': %w", account.Name, status.Denied)
	}

	if err := session.handshake.ExchangeKeys(material); err != nil {
		return err
	}

	key, err := world.Sessions.Issue(ctx, account, material.SessionKey)

	if err != nil {
		return err
	}

	session.Account = account
	session.ContinuationKey = key

	return nil
}

func (world *WorldServer) authContinuedSession(ctx context.Context, session *Session, packet *core.Packet, serverNonce []byte) error {
	continued, err := handshake.DecodeAuthContinuedSession(packet)

	if err != nil {
		return err
	}

	account, sessionKey, err := world.Sessions.Resume(ctx, continued.Key)

	if err != nil {
		return err
	}

	material, err := sessionkeys.ContinueSession(sessionKey, continued.Key, continued.LocalChallenge[:], serverNonce)
	clear(sessionKey)

	if err != nil {
		return err
	}

	if !sessionkeys.VerifyDigest(material.AuthCheck, continued.Digest[:]) {
		material.Wipe()
		return fmt.Errorf("continued session digest mismatch for '%s': %w", account.Name, status.Denied)
	}

	if account.Banned {
		material.Wipe()
		return fmt.Errorf("account '%s' is banned: %w", account.Name, status.GameAccountBanned)
	}

	if err := session.handshake.ExchangeKeys(material); err != nil {
		return err
	}

	session.Account = account
	session.ContinuationKey = continued.Key
	session.Continued = true

	return nil
}
