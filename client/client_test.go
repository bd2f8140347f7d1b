package client

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"net"
	"testing"
	"time"

	"git.greysoh.dev/imterah/worldsockd/server"
	"git.greysoh.dev/imterah/worldsockd/sessionkeys"
)

func TestRejectsUnknownServerKey(t *testing.T) {
	account := &server.GameAccount{ID: 3, Name: "3#1", KeyData: bytes.Repeat([]byte{3}, 32)}

	world, err := server.NewWorldServer(server.NewMemoryAccounts(account), nil, 5*time.Second, nil)

	if err != nil {
		t.Fatalf("failed to initialize world server (%s)", err.Error())
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")

	if err != nil {
		t.Fatalf("failed to listen on TCP for localhost (%s)", err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	go world.Serve(ctx, listener)

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)

	if err != nil {
		t.Fatalf("failed to generate key (%s)", err.Error())
	}

	worldClient, err := New(account.Name, account.KeyData)

	if err != nil {
		t.Fatalf("failed to initialize world client (%s)", err.Error())
	}

	worldClient.ServerKey = &otherKey.PublicKey

	conn, err := net.Dial("tcp", listener.Addr().String())

	if err != nil {
		t.Fatalf("failed to connect to world server (%s)", err.Error())
	}

	_, result, err := worldClient.Conn(ctx, conn)

	if !errors.Is(err, sessionkeys.ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}

	if result != nil {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestResultWipe(t *testing.T) {
	sessionKey := bytes.Repeat([]byte{9}, sessionkeys.SessionKeySize)
	result := &Result{SessionKey: sessionKey}

	result.Wipe()

	if result.SessionKey != nil || !bytes.Equal(sessionKey, make([]byte, len(sessionKey))) {
		t.Fatal("session key was not wiped")
	}

	var empty *Result
	empty.Wipe()
}
