package status

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net"
	"os"
	"syscall"

	"github.com/charmbracelet/log"
)

// Failure is a category of internal failure that may cross the RPC boundary.
type Failure uint8

const (
	// FailureEncode: an outgoing message could not be encoded
	FailureEncode Failure = iota + 1
	// FailureIO: local I/O failed while reading or writing a message
	FailureIO
	// FailureDecode: an incoming message could not be decoded. Logged before conversion.
	FailureDecode
	// FailureTimeout: an operation deadline elapsed
	FailureTimeout
	// FailureNulByte: a NUL-terminated string contained an embedded NUL byte
	FailureNulByte
	// FailureChannelClosed: a bounded channel send failed because the receiver is gone
	FailureChannelClosed
	// FailureTaskJoin: a concurrent task panicked or was cancelled
	FailureTaskJoin
)

var failureCodes = map[Failure]StatusCode{
	FailureEncode:        RpcMalformedResponse,
	FailureIO:            RpcMalformedRequest,
	FailureDecode:        RpcMalformedRequest,
	FailureTimeout:       TimedOut,
	FailureNulByte:       Internal,
	FailureChannelClosed: Internal,
	FailureTaskJoin:      Internal,
}

var failureNames = map[Failure]string{
	FailureEncode:        "encode",
	FailureIO:            "io",
	FailureDecode:        "decode",
	FailureTimeout:       "timeout",
	FailureNulByte:       "nul byte",
	FailureChannelClosed: "channel closed",
	FailureTaskJoin:      "task join",
}

// Code returns the wire code for the failure category. Unrecognized categories map to Internal.
func (failure Failure) Code() StatusCode {
	if code, ok := failureCodes[failure]; ok {
		return code
	}

	return Internal
}

func (failure Failure) String() string {
	if name, ok := failureNames[failure]; ok {
		return name
	}

	return "unknown"
}

// Error tags an internal error with its failure category.
type Error struct {
	Failure Failure
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Failure.String() + " failure"
	}

	return e.Failure.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Encode(err error) error        { return &Error{Failure: FailureEncode, Err: err} }
func IO(err error) error            { return &Error{Failure: FailureIO, Err: err} }
func Decode(err error) error        { return &Error{Failure: FailureDecode, Err: err} }
func Timeout(err error) error       { return &Error{Failure: FailureTimeout, Err: err} }
func NulByte(err error) error       { return &Error{Failure: FailureNulByte, Err: err} }
func ChannelClosed(err error) error { return &Error{Failure: FailureChannelClosed, Err: err} }
func TaskJoin(err error) error      { return &Error{Failure: FailureTaskJoin, Err: err} }

// Converter turns internal errors into StatusCodes, logging decode failures to Logger.
type Converter struct {
	// Logger receiving decode diagnostics. If nil, log.Default() is used.
	Logger *log.Logger
}

// FromError converts err using the default logger.
func FromError(err error) StatusCode {
	return Converter{}.FromError(err)
}

// Classify returns the failure category for err. The boolean is false for errors that
// carry no recognizable category (including bare StatusCodes).
func Classify(err error) (Failure, bool) {
	var tagged *Error

	if errors.As(err, &tagged) {
		return tagged.Failure, true
	}

	if isTimeout(err) {
		return FailureTimeout, true
	}

	if errors.Is(err, context.Canceled) {
		return FailureTaskJoin, true
	}

	if isIO(err) {
		return FailureIO, true
	}

	return 0, false
}

// FromError converts any error into a StatusCode. It never fails: nil becomes Ok, a
// StatusCode in the chain is passed through, and anything unrecognized becomes Internal.
func (converter Converter) FromError(err error) StatusCode {
	if err == nil {
		return Ok
	}

	var tagged *Error
	var code StatusCode

	if !errors.As(err, &tagged) && errors.As(err, &code) {
		return code
	}

	failure, ok := Classify(err)

	if !ok {
		return Internal
	}

	if failure == FailureDecode {
		converter.logger().Error("failed to decode message", "err", err.Error())
	}

	return failure.Code()
}

func (converter Converter) logger() *log.Logger {
	if converter.Logger != nil {
		return converter.Logger
	}

	return log.Default()
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isIO(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.ErrShortWrite) ||
		errors.Is(err, io.ErrClosedPipe) || errors.Is(err, net.ErrClosed) {
		return true
	}

	var opErr *net.OpError
	var pathErr *fs.PathError
	var errno syscall.Errno

	return errors.As(err, &opErr) || errors.As(err, &pathErr) || errors.As(err, &errno)
}
