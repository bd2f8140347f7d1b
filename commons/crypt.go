package commons

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
)

// PacketCrypt encrypts world packet payloads with AES-128-GCM and a 12-byte tag.
//
// Each direction keeps its own counter. The IV is the counter (uint64 LE) followed by the
// sender's magic (uint32 LE), so both ends stay in lockstep without sending IVs.
type PacketCrypt struct {
	aead cipher.AEAD

	sendMagic   uint32
	recvMagic   uint32
	sendCounter uint64
	recvCounter uint64
}

func NewPacketCrypt(key []byte, role Role) (*PacketCrypt, error) {
	if len(key) != 16 {
		return nil, fmt.Errorf("packet crypt key must be 16 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)

	if err != nil {
		return nil, err
	}

	aead, err := cipher.NewGCMWithTagSize(block, TagSize)

	if err != nil {
		return nil, err
	}

	crypt := PacketCrypt{
		aead:      aead,
		sendMagic: ServerMagic,
		recvMagic: ClientMagic,
	}

	if role == RoleClient {
		crypt.sendMagic, crypt.recvMagic = ClientMagic, ServerMagic
	}

	return &crypt, nil
}

func iv(counter uint64, magic uint32) []byte {
	nonce := make([]byte, 12)
	binary.LittleEndian.PutUint64(nonce[0:8], counter)
	binary.LittleEndian.PutUint32(nonce[8:12], magic)

	return nonce
}

// Encrypt encrypts data in place and returns the tag for the packet header.
func (crypt *PacketCrypt) Encrypt(data []byte) [TagSize]byte {
	sealed := crypt.aead.Seal(nil, iv(crypt.sendCounter, crypt.sendMagic), data, nil)
	crypt.sendCounter++

	var tag [TagSize]byte
	copy(data, sealed[:len(data)])
	copy(tag[:], sealed[len(data):])

	return tag
}

// Decrypt decrypts data in place, checking it against tag. The receive counter only advances
// on success; a failed packet is fatal for the connection.
func (crypt *PacketCrypt) Decrypt(data []byte, tag [TagSize]byte) error {
	sealed := make([]byte, 0, len(data)+TagSize)
	sealed = append(sealed, data...)
	sealed = append(sealed, tag[:]...)

	plain, err := crypt.aead.Open(sealed[:0], iv(crypt.recvCounter, crypt.recvMagic), sealed, nil)

	if err != nil {
		return err
	}

	crypt.recvCounter++
	copy(data, plain)

	return nil
}
