package commons

import (
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"git.greysoh.dev/imterah/worldsockd/status"
)

// Max payload size accepted from the network (opcode included)
var ConnStandardMaxPacketSize = 0x40000

// Packet is a decoded world packet.
type Packet struct {
	Opcode  Opcode
	Payload []byte
}

// WorldConn frames world packets over a net.Conn, encrypting them once EnableEncryption
// has been called.
type WorldConn struct {
	PassedConn net.Conn
	Role       Role

	MaxPacketSize int

	readLock  sync.Mutex
	writeLock sync.Mutex

	readCrypt  *PacketCrypt
	writeCrypt *PacketCrypt
}

func NewWorldConn(conn net.Conn, role Role) *WorldConn {
	return &WorldConn{
		PassedConn:    conn,
		Role:          role,
		MaxPacketSize: ConnStandardMaxPacketSize,
	}
}

// EnableEncryption switches both directions to the packet crypt. Everything written or read
// afterwards is encrypted.
func (worldConn *WorldConn) EnableEncryption(key []byte) error {
	crypt, err := NewPacketCrypt(key, worldConn.Role)

	if err != nil {
		return err
	}

	worldConn.readLock.Lock()
	worldConn.writeLock.Lock()

	worldConn.readCrypt = crypt
	worldConn.writeCrypt = crypt

	worldConn.writeLock.Unlock()
	worldConn.readLock.Unlock()

	return nil
}

func (worldConn *WorldConn) Encrypted() bool {
	worldConn.writeLock.Lock()
	defer worldConn.writeLock.Unlock()

	return worldConn.writeCrypt != nil
}

// WriteRaw writes b without framing. Only used for the preamble.
func (worldConn *WorldConn) WriteRaw(b []byte) error {
	worldConn.writeLock.Lock()
	defer worldConn.writeLock.Unlock()

	if _, err := worldConn.PassedConn.Write(b); err != nil {
		return fmt.Errorf("write raw: %w", err)
	}

	return nil
}

// ReadRaw reads exactly n unframed bytes. Only used for the preamble.
func (worldConn *WorldConn) ReadRaw(n int) ([]byte, error) {
	worldConn.readLock.Lock()
	defer worldConn.readLock.Unlock()

	b := make([]byte, n)

	if _, err := io.ReadFull(worldConn.PassedConn, b); err != nil {
		return nil, fmt.Errorf("read raw: %w", err)
	}

	return b, nil
}

func (worldConn *WorldConn) ReadPacket() (*Packet, error) {
	worldConn.readLock.Lock()
	defer worldConn.readLock.Unlock()

	header := make([]byte, HeaderSize)

	if _, err := io.ReadFull(worldConn.PassedConn, header); err != nil {
		return nil, fmt.Errorf("read packet header: %w", err)
	}

	size, tag := ParseHeader(header)

	// Check the size before allocating, a hostile peer controls it.
	if size < OpcodeSize || int(size) > worldConn.MaxPacketSize {
		return nil, status.Decode(fmt.Errorf("packet size %d out of range", size))
	}

	payload := make([]byte, size)

	if _, err := io.ReadFull(worldConn.PassedConn, payload); err != nil {
		return nil, fmt.Errorf("read packet payload: %w", err)
	}

	if worldConn.readCrypt != nil {
		if err := worldConn.readCrypt.Decrypt(payload, tag); err != nil {
			return nil, status.Decode(fmt.Errorf("decrypt packet: %w", err))
		}
	}

	return &Packet{
		Opcode:  Opcode(uint16(payload[0]) | uint16(payload[1])<<8),
		Payload: payload[OpcodeSize:],
	}, nil
}

func (worldConn *WorldConn) WritePacket(packet *Packet) error {
	worldConn.writeLock.Lock()
	defer worldConn.writeLock.Unlock()

	size := OpcodeSize + len(packet.Payload)

	if size > worldConn.MaxPacketSize {
		return status.Encode(fmt.Errorf("packet size %d exceeds %d", size, worldConn.MaxPacketSize))
	}

	buf := make([]byte, HeaderSize+size)
	body := buf[HeaderSize:]

	body[0] = byte(packet.Opcode)
	body[1] = byte(packet.Opcode >> 8)
	copy(body[OpcodeSize:], packet.Payload)

	var tag [TagSize]byte

	if worldConn.writeCrypt != nil {
		tag = worldConn.writeCrypt.Encrypt(body)
	}

	PutHeader(buf, uint32(size), tag)

	if _, err := worldConn.PassedConn.Write(buf); err != nil {
		return fmt.Errorf("write packet: %w", err)
	}

	return nil
}

func (worldConn *WorldConn) Close() error {
	return worldConn.PassedConn.Close()
}

func (worldConn *WorldConn) LocalAddr() net.Addr {
	return worldConn.PassedConn.LocalAddr()
}

func (worldConn *WorldConn) RemoteAddr() net.Addr {
	return worldConn.PassedConn.RemoteAddr()
}

func (worldConn *WorldConn) SetDeadline(time time.Time) error {
	return worldConn.PassedConn.SetDeadline(time)
}

func (worldConn *WorldConn) SetReadDeadline(time time.Time) error {
	return worldConn.PassedConn.SetReadDeadline(time)
}

func (worldConn *WorldConn) SetWriteDeadline(time time.Time) error {
	return worldConn.PassedConn.SetWriteDeadline(time)
}
