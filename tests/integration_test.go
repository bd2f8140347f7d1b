package worldsockd_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"testing"
	"time"

	"git.greysoh.dev/imterah/worldsockd/client"
	"git.greysoh.dev/imterah/worldsockd/commons"
	"git.greysoh.dev/imterah/worldsockd/server"
	"git.greysoh.dev/imterah/worldsockd/status"
)

var testProtocolTxRxPacketCount = 32

// Opcode used for game traffic after the handshake
const testOpcode commons.Opcode = 0x1234

func newWorld(t *testing.T, accounts *server.MemoryAccounts, handler func(session *server.Session) error) *server.WorldServer {
	t.Helper()

	world, err := server.NewWorldServer(accounts, server.NewMemorySessions(), 5*time.Second, handler)

	if err != nil {
		t.Fatalf("failed to initialize world server (%s)", err.Error())
	}

	return world
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	return ctx
}

// Tests protocol transmitting and receiving over an established session
func TestProtocolTxRx(t *testing.T) {
	account, err := CreateAccount(1, "1#1")

	if err != nil {
		t.Fatalf("failed to create account (%s)", err.Error())
	}

	randomPayloads := [][]byte{}

	for index := 0; index < testProtocolTxRxPacketCount; index++ {
		payload := make([]byte, 1+index*997)

		if _, err := rand.Read(payload); err != nil {
			t.Fatalf("failed to generate random data (%s)", err.Error())
		}

		randomPayloads = append(randomPayloads, payload)
	}

	world := newWorld(t, server.NewMemoryAccounts(account), func(session *server.Session) error {
		for index, payload := range randomPayloads {
			if err := session.Send(context.Background(), &commons.Packet{Opcode: testOpcode, Payload: payload}); err != nil {
				t.Errorf("failed to send packet #%d (%s)", index+1, err.Error())
				return err
			}
		}

		packet, err := session.Read()

		if err != nil {
			t.Errorf("failed to read client packet (%s)", err.Error())
			return err
		}

		if packet.Opcode != testOpcode || string(packet.Payload) != "done" {
			t.Errorf("unexpected client packet %+v", packet)
		}

		return nil
	})

	dial := StartWorldServer(t, world)

	worldClient, err := client.New(account.Name, account.KeyData)

	if err != nil {
		t.Fatalf("failed to initialize world client (%s)", err.Error())
	}

	conn, result, err := worldClient.Conn(testContext(t), dial())

	if err != nil {
		t.Fatalf("world client failed to handshake (%s)", err.Error())
	}

	defer conn.Close()

	if result.Status != status.Ok || len(result.SessionKey) != 40 || len(result.EncryptionKey) != 16 {
		t.Fatalf("unexpected handshake result %+v", result)
	}

	if !conn.Encrypted() {
		t.Fatal("connection is not encrypted after the handshake")
	}

	conn.SetDeadline(time.Now().Add(10 * time.Second))

	for index, payload := range randomPayloads {
		packet, err := conn.ReadPacket()

		if err != nil {
			t.Fatalf("world client failed to read packet #%d (%s)", index+1, err.Error())
		}

		if packet.Opcode != testOpcode || !bytes.Equal(packet.Payload, payload) {
			t.Fatalf("packets are different (packet #%d)", index+1)
		}
	}

	if err := conn.WritePacket(&commons.Packet{Opcode: testOpcode, Payload: []byte("done")}); err != nil {
		t.Fatalf("failed to write final packet (%s)", err.Error())
	}
}

func TestLoginRefusals(t *testing.T) {
	account, err := CreateAccount(1, "1#1")

	if err != nil {
		t.Fatalf("failed to create account (%s)", err.Error())
	}

	banned, err := CreateAccount(2, "2#1")

	if err != nil {
		t.Fatalf("failed to create account (%s)", err.Error())
	}

	banned.Banned = true

	world := newWorld(t, server.NewMemoryAccounts(account, banned), func(session *server.Session) error {
		t.Errorf("refused login reached the connection handler (%s)", session.Account.Name)
		return nil
	})

	dial := StartWorldServer(t, world)

	cases := []struct {
		name   string
		ticket string
		secret []byte
		want   status.StatusCode
	}{
		{"wrong_secret", account.Name, bytes.Repeat([]byte{1}, 32), status.Denied},
		{"unknown_account", "9#1", account.KeyData, status.Denied},
		{"banned", banned.Name, banned.KeyData, status.GameAccountBanned},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			worldClient, err := client.New(tc.ticket, tc.secret)

			if err != nil {
				t.Fatalf("failed to initialize world client (%s)", err.Error())
			}

			_, result, err := worldClient.Conn(testContext(t), dial())

			var code status.StatusCode

			if !errors.As(err, &code) || code != tc.want {
				t.Fatalf("expected %s, got %v", tc.want, err)
			}

			if result == nil || result.Status != tc.want || result.SessionKey != nil {
				t.Fatalf("unexpected result %+v", result)
			}
		})
	}
}

func TestContinuedSession(t *testing.T) {
	account, err := CreateAccount(5, "5#1")

	if err != nil {
		t.Fatalf("failed to create account (%s)", err.Error())
	}

	type established struct {
		key       uint64
		continued bool
	}

	sessions := make(chan established, 2)

	world := newWorld(t, server.NewMemoryAccounts(account), func(session *server.Session) error {
		sessions <- established{session.ContinuationKey, session.Continued}
		return nil
	})

	dial := StartWorldServer(t, world)

	worldClient, err := client.New(account.Name, account.KeyData)

	if err != nil {
		t.Fatalf("failed to initialize world client (%s)", err.Error())
	}

	conn, result, err := worldClient.Conn(testContext(t), dial())

	if err != nil {
		t.Fatalf("world client failed to handshake (%s)", err.Error())
	}

	conn.Close()
	first := <-sessions

	if first.continued {
		t.Fatal("fresh login reported as continued")
	}

	accountID, _, _ := commons.UnpackConnectToKey(first.key)

	if accountID != account.ID {
		t.Fatalf("continuation key carries account %d, want %d", accountID, account.ID)
	}

	conn, resumed, err := worldClient.ContinueConn(testContext(t), dial(), result.SessionKey, first.key)

	if err != nil {
		t.Fatalf("world client failed to resume (%s)", err.Error())
	}

	conn.Close()
	second := <-sessions

	if !second.continued || second.key != first.key {
		t.Fatalf("unexpected resumed session %+v", second)
	}

	if bytes.Equal(resumed.EncryptionKey, result.EncryptionKey) {
		t.Fatal("resumed connection reused the encryption key")
	}

	_, _, err = worldClient.ContinueConn(testContext(t), dial(), result.SessionKey, first.key^(1<<40))

	if code := status.FromError(err); code != status.SessionNotFound {
		t.Fatalf("expected %s for an unknown continuation key, got %v", status.SessionNotFound, err)
	}

	wrongKey := bytes.Clone(result.SessionKey)
	wrongKey[0] ^= 0xFF

	_, _, err = worldClient.ContinueConn(testContext(t), dial(), wrongKey, first.key)

	if code := status.FromError(err); code != status.Denied {
		t.Fatalf("expected %s for a wrong session key, got %v", status.Denied, err)
	}
}
