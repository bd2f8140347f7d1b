package handshake

import "fmt"

// State is the progress of a single connection's handshake.
type State uint8

const (
	AwaitingPreamble State = iota
	PreambleVerified
	KeyExchanged
	EncryptionEnabled
	Established
	Failed
)

var stateNames = [...]string{
	AwaitingPreamble:  "awaiting preamble",
	PreambleVerified:  "preamble verified",
	KeyExchanged:      "key exchanged",
	EncryptionEnabled: "encryption enabled",
	Established:       "established",
	Failed:            "failed",
}

func (state State) String() string {
	if int(state) < len(stateNames) {
		return stateNames[state]
	}

	return fmt.Sprintf("state(%d)", uint8(state))
}

// Terminal reports whether no further transition is possible.
func (state State) Terminal() bool {
	return state == Established || state == Failed
}
