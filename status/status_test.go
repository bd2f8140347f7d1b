package status

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/charmbracelet/log"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestFromErrorMapping(t *testing.T) {
	converter := Converter{Logger: log.New(io.Discard)}

	cases := []struct {
		name string
		err  error
		want StatusCode
	}{
		{"nil", nil, Ok},
		{"encode", Encode(errors.New("field too long")), RpcMalformedResponse},
		{"io", IO(errors.New("broken pipe")), RpcMalformedRequest},
		{"decode", Decode(errors.New("truncated")), RpcMalformedRequest},
		{"timeout", Timeout(errors.New("handshake")), TimedOut},
		{"nul_byte", NulByte(errors.New("nul at 3")), Internal},
		{"channel_closed", ChannelClosed(errors.New("receiver gone")), Internal},
		{"task_join", TaskJoin(errors.New("panic")), Internal},
		{"context_deadline", context.DeadlineExceeded, TimedOut},
		{"os_deadline", os.ErrDeadlineExceeded, TimedOut},
		{"net_timeout", &net.OpError{Op: "read", Net: "tcp", Err: timeoutError{}}, TimedOut},
		{"context_canceled", context.Canceled, Internal},
		{"eof", io.EOF, RpcMalformedRequest},
		{"unexpected_eof", fmt.Errorf("read header: %w", io.ErrUnexpectedEOF), RpcMalformedRequest},
		{"net_closed", net.ErrClosed, RpcMalformedRequest},
		{"errno", syscall.ECONNRESET, RpcMalformedRequest},
		{"passthrough", GameAccountBanned, GameAccountBanned},
		{"wrapped_passthrough", fmt.Errorf("lookup: %w", SessionNotFound), SessionNotFound},
		{"unknown", errors.New("x"), Internal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := converter.FromError(tc.err); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestFromErrorIsDeterministic(t *testing.T) {
	converter := Converter{Logger: log.New(io.Discard)}
	errs := []error{Encode(nil), IO(nil), Decode(nil), Timeout(nil), NulByte(nil), ChannelClosed(nil), TaskJoin(nil)}

	for _, err := range errs {
		first := converter.FromError(err)

		for i := 0; i < 16; i++ {
			if got := converter.FromError(err); got != first {
				t.Fatalf("conversion of %v changed from %s to %s", err, first, got)
			}
		}

		if first == Ok {
			t.Fatalf("failure %v converted to Ok", err)
		}
	}
}

func TestDecodeFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	converter := Converter{Logger: log.New(&buf)}

	code := converter.FromError(Decode(errors.New("unexpected end of auth session at byte 17")))

	if code != RpcMalformedRequest {
		t.Fatalf("expected %s, got %s", RpcMalformedRequest, code)
	}

	if !strings.Contains(buf.String(), "unexpected end of auth session at byte 17") {
		t.Fatalf("decode diagnostic missing original error text: %q", buf.String())
	}
}

func TestOtherFailuresAreNotLogged(t *testing.T) {
	var buf bytes.Buffer
	converter := Converter{Logger: log.New(&buf)}

	converter.FromError(IO(errors.New("reset")))
	converter.FromError(Timeout(errors.New("slow")))

	if buf.Len() != 0 {
		t.Fatalf("expected no log output, got %q", buf.String())
	}
}

func TestUnknownFailureCategory(t *testing.T) {
	if got := Failure(200).Code(); got != Internal {
		t.Fatalf("expected %s, got %s", Internal, got)
	}

	if got := FromError(&Error{Failure: Failure(200)}); got != Internal {
		t.Fatalf("expected %s, got %s", Internal, got)
	}
}

func TestWireValues(t *testing.T) {
	cases := []struct {
		code StatusCode
		wire []byte
	}{
		{Ok, []byte{0x00, 0x00, 0x00, 0x00}},
		{TimedOut, []byte{0x02, 0x00, 0x00, 0x00}},
		{GameAccountBanned, []byte{0x34, 0x00, 0x00, 0x00}},
		{RpcMalformedResponse, []byte{0xC0, 0x0B, 0x00, 0x00}},
		{RpcMalformedRequest, []byte{0xC5, 0x0B, 0x00, 0x00}},
		{WowServicesCantConnect, []byte{0x48, 0x01, 0x00, 0x80}},
	}

	for _, tc := range cases {
		for i := 0; i < 3; i++ {
			if got := tc.code.AppendWire(nil); !bytes.Equal(got, tc.wire) {
				t.Fatalf("%s: expected % X, got % X", tc.code, tc.wire, got)
			}
		}

		decoded, err := ReadWire(tc.wire)

		if err != nil {
			t.Fatalf("%s: failed to read wire value (%s)", tc.code, err.Error())
		}

		if decoded != tc.code {
			t.Fatalf("expected %s, got %s", tc.code, decoded)
		}
	}
}

func TestReadWireShort(t *testing.T) {
	if _, err := ReadWire([]byte{0x01, 0x02}); err == nil {
		t.Fatal("expected error for short buffer")
	}
}

func TestTableIsConsistent(t *testing.T) {
	codes := Codes()

	if len(codes) != 601 {
		t.Fatalf("expected 601 codes, got %d", len(codes))
	}

	if len(byCode) != len(table) || len(byName) != len(table) {
		t.Fatalf("duplicate value or name in table (%d values, %d names, %d entries)", len(byCode), len(byName), len(table))
	}

	for _, code := range codes {
		name := code.String()
		back, ok := ByName(name)

		if !ok || back != code {
			t.Fatalf("name lookup for %s returned (%s, %v)", name, back, ok)
		}

		raw, ok := Lookup(uint32(code))

		if !ok || raw != code {
			t.Fatalf("value lookup for 0x%08X returned (%s, %v)", uint32(code), raw, ok)
		}
	}
}

func TestUnknownValue(t *testing.T) {
	code, ok := Lookup(0x00000012)

	if ok {
		t.Fatalf("0x00000012 is not assigned but lookup returned %s", code)
	}

	if code.Known() {
		t.Fatal("unknown code reports Known")
	}

	if got := code.String(); got != "StatusCode(0x00000012)" {
		t.Fatalf("unexpected string %q", got)
	}
}
