package commons

import (
	"fmt"
	"strings"

	"git.greysoh.dev/imterah/worldsockd/status"
)

// NameBytes returns s as the raw bytes of a length-prefixed name field. Account names are
// NUL-terminated strings on the login side, so a name with an embedded NUL can never match.
func NameBytes(s string) ([]byte, error) {
	if index := strings.IndexByte(s, 0); index != -1 {
		return nil, status.NulByte(fmt.Errorf("nul byte found at position %d", index))
	}

	return []byte(s), nil
}
