package inchi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chemkit/inchi-go/internal/bindings"
)

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary (CGO disabled).
	ErrNotBuilt = bindings.ErrNotBuilt

	// ErrLibraryClosed is returned by calls on a closed Library and by a
	// second Close.
	ErrLibraryClosed = errors.New("inchi: library closed")

	// ErrInvalidInput is returned when an Input does not fit the layout the
	// native library expects. Validation errors wrap it.
	ErrInvalidInput = errors.New("inchi: invalid input")
)

// Sentinels for the structure conversion return codes. An *Error unwraps to
// the sentinel matching its Code.
var (
	ErrError   = errors.New("inchi: error")
	ErrFatal   = errors.New("inchi: fatal error")
	ErrUnknown = errors.New("inchi: unknown error")
	ErrBusy    = errors.New("inchi: previous call has not returned yet")
	ErrEOF     = errors.New("inchi: no structural data has been provided")
)

// Sentinels for the InChIKey return codes.
var (
	ErrKeyUnknown         = errors.New("inchikey: unknown error")
	ErrKeyEmptyInput      = errors.New("inchikey: empty input")
	ErrKeyInvalidPrefix   = errors.New("inchikey: invalid InChI prefix")
	ErrKeyNotEnoughMemory = errors.New("inchikey: not enough memory")
	ErrKeyInvalidInChI    = errors.New("inchikey: invalid InChI")
	ErrKeyInvalidStdInChI = errors.New("inchikey: invalid standard InChI")
)

// Error carries a failing structure conversion status together with the
// message and log text the library produced for it.
type Error struct {
	Op      string
	Code    Ret
	Message string
	Log     string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(retSentinel(e.Code).Error())
	fmt.Fprintf(&b, " (code %d)", int(e.Code))
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return retSentinel(e.Code) }

// KeyError carries a failing InChIKey status.
type KeyError struct {
	Code  KeyRet
	InChI string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s (code %d)", keySentinel(e.Code).Error(), int(e.Code))
}

func (e *KeyError) Unwrap() error { return keySentinel(e.Code) }

func retSentinel(code Ret) error {
	switch code {
	case RetError:
		return ErrError
	case RetFatal:
		return ErrFatal
	case RetBusy:
		return ErrBusy
	case RetEOF:
		return ErrEOF
	default:
		return ErrUnknown
	}
}

func keySentinel(code KeyRet) error {
	switch code {
	case KeyEmptyInput:
		return ErrKeyEmptyInput
	case KeyInvalidPrefix:
		return ErrKeyInvalidPrefix
	case KeyNotEnoughMemory:
		return ErrKeyNotEnoughMemory
	case KeyInvalidInChI:
		return ErrKeyInvalidInChI
	case KeyInvalidStdInChI:
		return ErrKeyInvalidStdInChI
	default:
		return ErrKeyUnknown
	}
}

// statusError returns nil for OK and Warning, an *Error otherwise.
func statusError(op string, code Ret, message, log string) error {
	if code.Success() {
		return nil
	}
	return &Error{Op: op, Code: code, Message: message, Log: log}
}

func keyStatusError(code KeyRet, inchi string) error {
	if code == KeyOK {
		return nil
	}
	return &KeyError{Code: code, InChI: inchi}
}

// validationError wraps ErrInvalidInput with a location.
func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
