package server

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"git.greysoh.dev/imterah/worldsockd/client"
	core "git.greysoh.dev/imterah/worldsockd/commons"
	"git.greysoh.dev/imterah/worldsockd/handshake"
	"git.greysoh.dev/imterah/worldsockd/sessionkeys"
	"git.greysoh.dev/imterah/worldsockd/status"
	"golang.org/x/time/rate"
)

func testAccount() *GameAccount {
	return &GameAccount{
		ID:      7,
		Name:    "1#1",
		KeyData: bytes.Repeat([]byte{0x5A}, 32),
	}
}

// Starts world on a loopback listener and returns its address.
func serve(t *testing.T, world *WorldServer) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")

	if err != nil {
		t.Fatalf("failed to listen on TCP for localhost (%s)", err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go world.Serve(ctx, listener)

	return listener.Addr().String()
}

func TestMemoryAccountsLookup(t *testing.T) {
	account := testAccount()
	accounts := NewMemoryAccounts(account)

	// Stored accounts are copies.
	account.KeyData[0] = 0

	found, err := accounts.LookupGameAccount(context.Background(), "1#1")

	if err != nil {
		t.Fatalf("failed to look up account (%s)", err.Error())
	}

	if found.ID != 7 || found.KeyData[0] != 0x5A {
		t.Fatalf("unexpected account %+v", found)
	}

	_, err = accounts.LookupGameAccount(context.Background(), "nobody")

	if code := status.FromError(err); code != status.Denied {
		t.Fatalf("expected %s for unknown account, got %s", status.Denied, code)
	}
}

func TestMemorySessionsIssueResume(t *testing.T) {
	sessions := NewMemorySessions()
	sessionKey := bytes.Repeat([]byte{0x11}, sessionkeys.SessionKeySize)

	key, err := sessions.Issue(context.Background(), testAccount(), sessionKey)

	if err != nil {
		t.Fatalf("failed to issue session (%s)", err.Error())
	}

	accountID, connectionType, _ := core.UnpackConnectToKey(key)

	if accountID != 7 || connectionType != core.ConnectionTypeRealm {
		t.Fatalf("unexpected continuation key 0x%016X", key)
	}

	account, resumedKey, err := sessions.Resume(context.Background(), key)

	if err != nil {
		t.Fatalf("failed to resume session (%s)", err.Error())
	}

	if account.ID != 7 || account.KeyData != nil {
		t.Fatalf("unexpected resumed account %+v", account)
	}

	if !bytes.Equal(resumedKey, sessionKey) {
		t.Fatal("resumed session key differs from the issued one")
	}

	// The caller may wipe its copy.
	clear(resumedKey)
	_, resumedKey, _ = sessions.Resume(context.Background(), key)

	if !bytes.Equal(resumedKey, sessionKey) {
		t.Fatal("wiping a resumed key changed the stored one")
	}

	sessions.Forget(key)
	_, _, err = sessions.Resume(context.Background(), key)

	if code := status.FromError(err); code != status.SessionNotFound {
		t.Fatalf("expected %s after forget, got %s", status.SessionNotFound, code)
	}
}

func TestRateLimitPerAddress(t *testing.T) {
	world := WorldServer{
		RateLimit: &RateLimitConfig{
			HandshakesPerSecond: rate.Every(time.Hour),
			Burst:               1,
			Enabled:             true,
		},
	}

	first := &net.TCPAddr{IP: net.IPv4(10, 0, 0, 1), Port: 1000}
	samePeer := &net.TCPAddr{IP: net.IPv4(10, 0, 0, 1), Port: 2000}
	other := &net.TCPAddr{IP: net.IPv4(10, 0, 0, 2), Port: 1000}

	if !world.allow(first) {
		t.Fatal("first handshake was limited")
	}

	if world.allow(samePeer) {
		t.Fatal("second handshake from the same address was allowed")
	}

	if !world.allow(other) {
		t.Fatal("handshake from another address was limited")
	}

	world.RateLimit.Enabled = false

	if !world.allow(samePeer) {
		t.Fatal("disabled rate limit still limits")
	}
}

func TestBadPreambleIsDropped(t *testing.T) {
	world, err := NewWorldServer(NewMemoryAccounts(testAccount()), nil, time.Second, nil)

	if err != nil {
		t.Fatalf("failed to create world server (%s)", err.Error())
	}

	conn, err := net.Dial("tcp", serve(t, world))

	if err != nil {
		t.Fatalf("failed to dial world server (%s)", err.Error())
	}

	defer conn.Close()
	conn.SetDeadline(time.Now().Add(5 * time.Second))

	preamble := make([]byte, sessionkeys.PreambleSize)

	if _, err := io.ReadFull(conn, preamble); err != nil {
		t.Fatalf("failed to read server preamble (%s)", err.Error())
	}

	if string(preamble) != sessionkeys.ServerToClient {
		t.Fatalf("unexpected server preamble %q", preamble)
	}

	// Echoing the server's own line back is the wrong direction.
	if _, err := conn.Write(preamble); err != nil {
		t.Fatalf("failed to write preamble (%s)", err.Error())
	}

	if _, err := conn.Read(make([]byte, 1)); !errors.Is(err, io.EOF) {
		t.Fatalf("expected the server to hang up, got %v", err)
	}
}

func TestHandshakeTimeout(t *testing.T) {
	world, err := NewWorldServer(NewMemoryAccounts(testAccount()), nil, 200*time.Millisecond, nil)

	if err != nil {
		t.Fatalf("failed to create world server (%s)", err.Error())
	}

	conn, err := net.Dial("tcp", serve(t, world))

	if err != nil {
		t.Fatalf("failed to dial world server (%s)", err.Error())
	}

	defer conn.Close()
	conn.SetDeadline(time.Now().Add(5 * time.Second))

	worldConn := core.NewWorldConn(conn, core.RoleClient)

	if _, err := worldConn.ReadRaw(sessionkeys.PreambleSize); err != nil {
		t.Fatalf("failed to read server preamble (%s)", err.Error())
	}

	if err := worldConn.WriteRaw([]byte(sessionkeys.ClientToServer)); err != nil {
		t.Fatalf("failed to write preamble (%s)", err.Error())
	}

	packet, err := worldConn.ReadPacket()

	if err != nil {
		t.Fatalf("failed to read challenge (%s)", err.Error())
	}

	if _, err := handshake.DecodeAuthChallenge(packet); err != nil {
		t.Fatalf("failed to decode challenge (%s)", err.Error())
	}

	// Never answer the challenge.
	packet, err = worldConn.ReadPacket()

	if err != nil {
		t.Fatalf("failed to read auth response (%s)", err.Error())
	}

	response, err := handshake.DecodeAuthResponse(packet)

	if err != nil {
		t.Fatalf("failed to decode auth response (%s)", err.Error())
	}

	if response.Result != status.TimedOut {
		t.Fatalf("expected %s, got %s", status.TimedOut, response.Result)
	}
}

func TestUnexpectedOpcodeIsMalformed(t *testing.T) {
	world, err := NewWorldServer(NewMemoryAccounts(testAccount()), nil, 5*time.Second, nil)

	if err != nil {
		t.Fatalf("failed to create world server (%s)", err.Error())
	}

	conn, err := net.Dial("tcp", serve(t, world))

	if err != nil {
		t.Fatalf("failed to dial world server (%s)", err.Error())
	}

	defer conn.Close()
	conn.SetDeadline(time.Now().Add(5 * time.Second))

	worldConn := core.NewWorldConn(conn, core.RoleClient)

	if _, err := worldConn.ReadRaw(sessionkeys.PreambleSize); err != nil {
		t.Fatalf("failed to read server preamble (%s)", err.Error())
	}

	if err := worldConn.WriteRaw([]byte(sessionkeys.ClientToServer)); err != nil {
		t.Fatalf("failed to write preamble (%s)", err.Error())
	}

	if _, err := worldConn.ReadPacket(); err != nil {
		t.Fatalf("failed to read challenge (%s)", err.Error())
	}

	if err := worldConn.WritePacket(&core.Packet{Opcode: core.CmsgEnterEncryptedModeAck}); err != nil {
		t.Fatalf("failed to write packet (%s)", err.Error())
	}

	packet, err := worldConn.ReadPacket()

	if err != nil {
		t.Fatalf("failed to read auth response (%s)", err.Error())
	}

	response, err := handshake.DecodeAuthResponse(packet)

	if err != nil {
		t.Fatalf("failed to decode auth response (%s)", err.Error())
	}

	if response.Result != status.RpcMalformedRequest {
		t.Fatalf("expected %s, got %s", status.RpcMalformedRequest, response.Result)
	}
}

func TestResponderAbandonStopsClaim(t *testing.T) {
	answer := &responder{}

	if answer.abandon() {
		t.Fatal("abandon reported an answer before any claim")
	}

	called := false
	err := answer.claim(func() error {
		called = true
		return nil
	})

	if !errors.Is(err, errAbandoned) || called {
		t.Fatalf("claim ran after abandon (%v, %v)", called, err)
	}
}

func TestResponderClaimSilencesRejection(t *testing.T) {
	answer := &responder{}
	cause := errors.New("write failed")

	if err := answer.claim(func() error { return cause }); !errors.Is(err, cause) {
		t.Fatalf("claim lost the error: %v", err)
	}

	if !answer.abandon() {
		t.Fatal("abandon after a claim must keep the rejection silent")
	}
}

func TestIdentityValidation(t *testing.T) {
	world := WorldServer{}
	compiled, err := world.identity()

	if err != nil || compiled == nil {
		t.Fatalf("failed to load the compiled-in identity (%v)", err)
	}

	small, err := rsa.GenerateKey(rand.Reader, 1024)

	if err != nil {
		t.Fatalf("failed to generate key (%s)", err.Error())
	}

	world.Identity = small

	if _, err := world.identity(); err == nil {
		t.Fatal("1024-bit identity accepted")
	}
}

func TestBadIdentityRefusesHandshake(t *testing.T) {
	account := testAccount()
	world, err := NewWorldServer(NewMemoryAccounts(account), nil, 5*time.Second, func(session *Session) error {
		t.Errorf("handshake with a bad identity reached the handler")
		return nil
	})

	if err != nil {
		t.Fatalf("failed to create world server (%s)", err.Error())
	}

	small, err := rsa.GenerateKey(rand.Reader, 1024)

	if err != nil {
		t.Fatalf("failed to generate key (%s)", err.Error())
	}

	world.Identity = small

	conn, err := net.Dial("tcp", serve(t, world))

	if err != nil {
		t.Fatalf("failed to dial world server (%s)", err.Error())
	}

	worldClient, err := client.New(account.Name, account.KeyData)

	if err != nil {
		t.Fatalf("failed to initialize world client (%s)", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, result, err := worldClient.Conn(ctx, conn)

	if code := status.FromError(err); code != status.Internal {
		t.Fatalf("expected %s, got %v", status.Internal, err)
	}

	if result == nil || result.Status != status.Internal {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestServeReturnsOnListenerError(t *testing.T) {
	world, err := NewWorldServer(NewMemoryAccounts(), nil, time.Second, nil)

	if err != nil {
		t.Fatalf("failed to create world server (%s)", err.Error())
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")

	if err != nil {
		t.Fatalf("failed to listen on TCP for localhost (%s)", err.Error())
	}

	served := make(chan error, 1)

	go func() {
		served <- world.Serve(context.Background(), listener)
	}()

	listener.Close()

	select {
	case err := <-served:
		if !errors.Is(err, net.ErrClosed) {
			t.Fatalf("expected net.ErrClosed, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after its listener closed")
	}
}
