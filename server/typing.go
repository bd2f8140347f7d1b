package server

import (
	"context"
	"crypto/rsa"
	"sync"
	"time"

	core "git.greysoh.dev/imterah/worldsockd/commons"
	"git.greysoh.dev/imterah/worldsockd/handshake"
	"git.greysoh.dev/imterah/worldsockd/status"
	"golang.org/x/time/rate"
)

// World socket server
type WorldServer struct {
	// Game accounts, looked up by realm join ticket
	Accounts AccountStore
	// Session keys of established connections, for continued sessions
	Sessions SessionStore

	// Key used to sign EnterEncryptedMode. Defaults to the compiled-in identity.
	Identity *rsa.PrivateKey

	// Time allowed from accept until the auth response is sent
	HandshakeTimeout time.Duration
	// Per remote address limit on handshake attempts. Nil disables limiting.
	RateLimit *RateLimitConfig

	// Converts handshake errors into the auth response status code
	Converter status.Converter

	// Called after a successful handshake. The session is closed when it returns.
	HandleConnection func(session *Session) error

	limiterLock sync.Mutex
	limiters    map[string]*rate.Limiter
}

// RateLimitConfig defines the handshake rate limit per remote address
type RateLimitConfig struct {
	// HandshakesPerSecond is the sustained number of handshakes allowed
	HandshakesPerSecond rate.Limit
	// Burst is the token bucket capacity
	Burst int
	// Enabled determines if rate limiting is active
	Enabled bool
}

// GameAccount is the part of an account the handshake needs.
type GameAccount struct {
	ID   uint32
	Name string
	// Authentication secret shared with the login service
	KeyData []byte
	Banned  bool
}

// AccountStore looks up game accounts. Errors may carry a status.StatusCode, which is sent
// to the client unchanged.
type AccountStore interface {
	LookupGameAccount(ctx context.Context, realmJoinTicket string) (*GameAccount, error)
}

// SessionStore keeps session keys so a client can resume on a new connection without
// presenting the account secret again.
type SessionStore interface {
	// Issue stores a copy of sessionKey and returns the continuation key for it.
	Issue(ctx context.Context, account *GameAccount, sessionKey []byte) (uint64, error)
	// Resume returns the account and a copy of the session key for a continuation key.
	Resume(ctx context.Context, key uint64) (*GameAccount, []byte, error)
}

// Session is an established, encrypted connection.
type Session struct {
	// Connection id used in logs
	ID      string
	Conn    *core.WorldConn
	Account *GameAccount
	// Continuation key the client can resume with
	ContinuationKey uint64
	// True if the connection was resumed with AuthContinuedSession
	Continued bool

	outbox    *core.Outbox[*core.Packet]
	handshake *handshake.Handshake
}
