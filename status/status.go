// Outcome codes returned by every RPC exchange and by the world socket auth response.
//
// Most codes are produced by higher level services and are only stored and serialized here.
// Internal failures are converted with FromError.

package status

import (
	"encoding/binary"
	"fmt"
)

// Size of a StatusCode on the wire
const WireSize = 4

// StatusCode is a wire-stable outcome code. It is serialized as a little-endian uint32.
type StatusCode uint32

var (
	byCode = make(map[StatusCode]string, len(table))
	byName = make(map[string]StatusCode, len(table))
)

func init() {
	for _, entry := range table {
		byCode[entry.code] = entry.name
		byName[entry.name] = entry.code
	}
}

// Lookup returns the named code for a raw wire value. The boolean is false if the value
// is not part of the taxonomy; the returned code still carries the raw value.
func Lookup(value uint32) (StatusCode, bool) {
	code := StatusCode(value)
	_, ok := byCode[code]

	return code, ok
}

// ByName returns the code with the given name, e.g. "RpcMalformedRequest".
func ByName(name string) (StatusCode, bool) {
	code, ok := byName[name]
	return code, ok
}

// Known reports whether the code is part of the taxonomy.
func (code StatusCode) Known() bool {
	_, ok := byCode[code]
	return ok
}

func (code StatusCode) String() string {
	if name, ok := byCode[code]; ok {
		return name
	}

	return fmt.Sprintf("StatusCode(0x%08X)", uint32(code))
}

// Error lets services return a StatusCode directly as an error. FromError passes it through unchanged.
func (code StatusCode) Error() string {
	return fmt.Sprintf("status %s (0x%08X)", code.String(), uint32(code))
}

// AppendWire appends the little-endian wire form of the code to b.
func (code StatusCode) AppendWire(b []byte) []byte {
	return binary.LittleEndian.AppendUint32(b, uint32(code))
}

// ReadWire reads a code from the first 4 bytes of b. Unknown values are returned as-is.
func ReadWire(b []byte) (StatusCode, error) {
	if len(b) < WireSize {
		return 0, fmt.Errorf("status code needs %d bytes, got %d", WireSize, len(b))
	}

	return StatusCode(binary.LittleEndian.Uint32(b)), nil
}

// Codes returns every named code in declaration order.
func Codes() []StatusCode {
	codes := make([]StatusCode, len(table))

	for index, entry := range table {
		codes[index] = entry.code
	}

	return codes
}
