package server

import (
	"context"

	core "git.greysoh.dev/imterah/worldsockd/commons"
)

// Send queues packet for the session's writer. It fails once the session is closed.
func (session *Session) Send(ctx context.Context, packet *core.Packet) error {
	return session.outbox.Send(ctx, packet)
}

// Read blocks for the next packet from the client.
func (session *Session) Read() (*core.Packet, error) {
	return session.Conn.ReadPacket()
}

func (session *Session) writeLoop(ctx context.Context) error {
	for {
		packet, ok := session.outbox.Receive(ctx)

		if !ok {
			return nil
		}

		if err := session.Conn.WritePacket(packet); err != nil {
			session.outbox.Close()
			return err
		}
	}
}

// Close stops the writer, wipes the session's key material and closes the connection.
func (session *Session) Close() error {
	session.outbox.Close()
	session.handshake.Close()

	return session.Conn.Close()
}
