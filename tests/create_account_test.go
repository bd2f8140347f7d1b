package worldsockd_test

import (
	"context"
	"crypto/rand"
	"net"
	"testing"
	"time"

	"git.greysoh.dev/imterah/worldsockd/server"
)

// Creates a game account with a random 32 byte secret
func CreateAccount(id uint32, name string) (*server.GameAccount, error) {
	secret := make([]byte, 32)

	if _, err := rand.Read(secret); err != nil {
		return nil, err
	}

	account := server.GameAccount{
		ID:      id,
		Name:    name,
		KeyData: secret,
	}

	return &account, nil
}

// Serves world on a loopback listener until the test ends, and returns a dialer for it.
func StartWorldServer(t *testing.T, world *server.WorldServer) func() net.Conn {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")

	if err != nil {
		t.Fatalf("failed to listen on TCP for localhost (%s)", err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go world.Serve(ctx, listener)

	return func() net.Conn {
		conn, err := net.DialTimeout("tcp", listener.Addr().String(), 5*time.Second)

		if err != nil {
			t.Fatalf("failed to connect to world server (%s)", err.Error())
		}

		return conn
	}
}
