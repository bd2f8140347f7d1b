package server

import (
	"crypto/rsa"
	"fmt"
	"net"
	"sync"
	"time"

	core "git.greysoh.dev/imterah/worldsockd/commons"
	"git.greysoh.dev/imterah/worldsockd/sessionkeys"
	"golang.org/x/time/rate"
)

// Default time allowed for a handshake
const DefaultHandshakeTimeout = 30 * time.Second

// Remote addresses tracked before the limiter table is reset
const maxTrackedAddresses = 4096

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

func (world *WorldServer) identity() (*rsa.PrivateKey, error) {
	if world.Identity == nil {
		return sessionkeys.ServerIdentity()
	}

	if world.Identity.Size() != sessionkeys.SignatureSize {
		return nil, fmt.Errorf("identity key is %d bytes, want %d", world.Identity.Size(), sessionkeys.SignatureSize)
	}

	return world.Identity, nil
}

// Decides whether the handshake or the deadline handler answers the client. Once the
// handshake starts switching on encryption the rejection stays silent, and once the
// connection is abandoned the handshake may no longer switch it on.
type responder struct {
	lock      sync.Mutex
	answered  bool
	abandoned bool
}

// claim runs fn unless the connection was abandoned.
func (answer *responder) claim(fn func() error) error {
	answer.lock.Lock()
	defer answer.lock.Unlock()

	if answer.abandoned {
		return errAbandoned
	}

	answer.answered = true
	return fn()
}

// abandon stops later claims and reports whether one already ran.
func (answer *responder) abandon() bool {
	answer.lock.Lock()
	defer answer.lock.Unlock()

	answer.abandoned = true
	return answer.answered
}

// allow reports whether addr may start another handshake.
func (world *WorldServer) allow(addr net.Addr) bool {
	if world.RateLimit == nil || !world.RateLimit.Enabled {
		return true
	}

	host := addr.String()

	if tcpAddr, ok := addr.(*net.TCPAddr); ok {
		host = tcpAddr.IP.String()
	} else if parsedHost, _, err := net.SplitHostPort(host); err == nil {
		host = parsedHost
	}

	world.limiterLock.Lock()
	defer world.limiterLock.Unlock()

	if world.limiters == nil || len(world.limiters) >= maxTrackedAddresses {
		world.limiters = make(map[string]*rate.Limiter)
	}

	limiter, ok := world.limiters[host]

	if !ok {
		limiter = rate.NewLimiter(world.RateLimit.HandshakesPerSecond, world.RateLimit.Burst)
		world.limiters[host] = limiter
	}

	return limiter.Allow()
}

// Initializes a world server.
//
// If `timeout` is zero, DefaultHandshakeTimeout is used. The server signs with the
// compiled-in identity unless Identity is set afterwards.
func NewWorldServer(accounts AccountStore, sessions SessionStore, timeout time.Duration, connHandler func(session *Session) error) (*WorldServer, error) {
	identity, err := sessionkeys.ServerIdentity()

	if err != nil {
		return nil, err
	}

	if timeout <= 0 {
		timeout = DefaultHandshakeTimeout
	}

	if sessions == nil {
		sessions = NewMemorySessions()
	}

	world := WorldServer{
		Accounts:         accounts,
		Sessions:         sessions,
		Identity:         identity,
		HandshakeTimeout: timeout,
		HandleConnection: connHandler,
	}

	return &world, nil
}
