package commons

import "encoding/binary"

const (
	TagSize = 12
	// Size + Tag
	HeaderSize = 4 + TagSize
	OpcodeSize = 2
)

func PutHeader(b []byte, size uint32, tag [TagSize]byte) {
	binary.LittleEndian.PutUint32(b[0:4], size)
	copy(b[4:HeaderSize], tag[:])
}

func ParseHeader(b []byte) (size uint32, tag [TagSize]byte) {
	size = binary.LittleEndian.Uint32(b[0:4])
	copy(tag[:], b[4:HeaderSize])

	return size, tag
}

// Packs a continuation key: account id in the low 32 bits, connection type in bit 32,
// the random part in the upper 31 bits.
func PackConnectToKey(accountID uint32, connectionType uint8, random uint32) uint64 {
	return uint64(accountID) | uint64(connectionType&1)<<32 | uint64(random&0x7FFFFFFF)<<33
}

func UnpackConnectToKey(key uint64) (accountID uint32, connectionType uint8, random uint32) {
	return uint32(key), uint8(key>>32) & 1, uint32(key >> 33)
}
