package client

import (
	"bytes"
	"context"
	"crypto/rsa"
	"net"
	"time"

	core "git.greysoh.dev/imterah/worldsockd/commons"
	"git.greysoh.dev/imterah/worldsockd/sessionkeys"
)

type encoder interface {
	Encode() (*core.Packet, error)
}

func writePacket(worldConn *core.WorldConn, message encoder) error {
	packet, err := message.Encode()

	if err != nil {
		return err
	}

	return worldConn.WritePacket(packet)
}

func (world *WorldClient) serverKey() (*rsa.PublicKey, error) {
	if world.ServerKey != nil {
		return world.ServerKey, nil
	}

	identity, err := sessionkeys.ServerIdentity()

	if err != nil {
		return nil, err
	}

	return &identity.PublicKey, nil
}

// Applies the context deadline to conn, if there is one.
func applyDeadline(ctx context.Context, conn net.Conn) error {
	deadline, ok := ctx.Deadline()

	if !ok {
		deadline = time.Time{}
	}

	return conn.SetDeadline(deadline)
}

// Creates a new WorldClient that logs in as `realmJoinTicket` with `secret`.
func New(realmJoinTicket string, secret []byte) (*WorldClient, error) {
	identity, err := sessionkeys.ServerIdentity()

	if err != nil {
		return nil, err
	}

	world := WorldClient{
		ServerKey:       &identity.PublicKey,
		RealmJoinTicket: realmJoinTicket,
		Secret:          bytes.Clone(secret),
	}

	return &world, nil
}
