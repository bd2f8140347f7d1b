// Enums used internally

package commons

// Opcode identifies a world packet. Only the opcodes the handshake needs are listed.
type Opcode uint16

const (
	// SmsgAuthChallenge: server nonce and DoS challenge, first packet after the preamble
	SmsgAuthChallenge Opcode = 0x3048
	// SmsgEnterEncryptedMode: signed request to switch on packet encryption
	SmsgEnterEncryptedMode Opcode = 0x3049
	// SmsgAuthResponse: final StatusCode of the handshake
	SmsgAuthResponse Opcode = 0x256D

	// CmsgAuthSession: client nonce, digest and realm join ticket for a fresh login
	CmsgAuthSession Opcode = 0x3765
	// CmsgAuthContinuedSession: client nonce, digest and continuation key for a resumed connection
	CmsgAuthContinuedSession Opcode = 0x3766
	// CmsgEnterEncryptedModeAck: client switched on encryption
	CmsgEnterEncryptedModeAck Opcode = 0x3767
)

// Role of the local end of a connection
type Role uint8

const (
	RoleServer Role = iota
	RoleClient
)

func (role Role) String() string {
	if role == RoleServer {
		return "server"
	}

	return "client"
}

// Connection types, stored in bit 32 of a continuation key
const (
	ConnectionTypeRealm = iota
	ConnectionTypeInstance
)

// IV magics for the packet crypt
const (
	ServerMagic uint32 = 0x52565253 // "SRVR"
	ClientMagic uint32 = 0x544E4C43 // "CLNT"
)
