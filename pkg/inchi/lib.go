package inchi

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/chemkit/inchi-go/internal/bindings"
	"github.com/chemkit/inchi-go/pkg/inchi/logging"
)

// The native library keeps process-global state and is not reentrant: every
// call into it holds callSem, whichever Library issued it.
var callSem = semaphore.NewWeighted(1)

// logAbbrev bounds InChI strings in log records.
const logAbbrev = 96

// Library is an opened handle to the native InChI library. A Library is safe
// for concurrent use; calls are serialized process-wide.
type Library struct {
	cfg    Config
	log    logging.Logger
	mu     sync.Mutex
	closed bool
}

// Open prepares a handle to the native library. It returns ErrNotBuilt when
// the binary was built without cgo.
func Open(cfg Config) (*Library, error) {
	if !bindings.Available() {
		return nil, ErrNotBuilt
	}
	cfg.Options = NormalizeOptions(cfg.Options)
	return &Library{cfg: cfg, log: cfg.logger()}, nil
}

// Close marks the handle closed. Calling Close twice returns
// ErrLibraryClosed.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrLibraryClosed
	}
	l.closed = true
	return nil
}

func (l *Library) check() error {
	if l == nil {
		return ErrLibraryClosed
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrLibraryClosed
	}
	return nil
}

// Version returns the version string of the linked native library.
func (l *Library) Version() string {
	return LibraryVersion()
}

// Settings returns the normalized defaults l applies to FromStructure.
func (l *Library) Settings() Settings {
	return Settings{Options: l.cfg.Options, ComputeKey: l.cfg.ComputeKey}
}

// acquire waits for exclusive access to the native library.
func acquire(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := callSem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("inchi: waiting for library: %w", err)
	}
	return nil
}

// FromStructure computes the InChI of in. Options on in take precedence over
// Config.Options. An input without atoms yields an *Error with code RetEOF
// and never reaches the native library.
func (l *Library) FromStructure(ctx context.Context, in *Input) (*Result, error) {
	if err := l.check(); err != nil {
		return nil, err
	}
	if in == nil {
		return nil, validationError("nil input")
	}
	if len(in.Atoms) == 0 {
		return nil, &Error{Op: "GetINCHI", Code: RetEOF}
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	options := l.Settings().Effective(in).Options

	if err := acquire(ctx); err != nil {
		return nil, err
	}
	out, err := bindings.GetINCHI(in.toBindings(options))
	callSem.Release(1)
	if err != nil {
		return nil, fmt.Errorf("inchi: GetINCHI: %w", err)
	}

	res, err := l.result(ctx, out)
	if err != nil {
		return nil, err
	}
	if l.cfg.ComputeKey {
		l.attachKey(ctx, res, l.Key)
	}
	return res, nil
}

// result turns a GetINCHI output into a Result, or into an *Error when the
// status is a failure or a successful call produced no InChI.
func (l *Library) result(ctx context.Context, out *bindings.Output) (*Result, error) {
	code := Ret(out.Code)
	if err := statusError("GetINCHI", code, out.Message, out.Log); err != nil {
		l.log.Debug(ctx, "GetINCHI failed", "code", code, "message", out.Message)
		return nil, err
	}
	if out.InChI == "" {
		l.log.Debug(ctx, "GetINCHI produced no InChI", "code", code, "message", out.Message)
		return nil, &Error{Op: "GetINCHI", Code: RetError, Message: "no InChI produced", Log: out.Log}
	}
	res := &Result{
		InChI:   out.InChI,
		AuxInfo: out.AuxInfo,
		Code:    code,
		Message: out.Message,
		Log:     out.Log,
	}
	if code == RetWarning && out.Message != "" {
		res.Warnings = append(res.Warnings, out.Message)
		l.log.Warn(ctx, "GetINCHI warning", "message", out.Message, logging.Abbrev("inchi", out.InChI, logAbbrev))
	}
	return res, nil
}

type keyFunc func(ctx context.Context, inchi string, opts KeyOptions) (*Key, error)

// attachKey fills res.Key. A failure is recorded as a warning on res.
func (l *Library) attachKey(ctx context.Context, res *Result, key keyFunc) {
	k, err := key(ctx, res.InChI, KeyOptions{})
	if err != nil {
		res.Warnings = append(res.Warnings, "InChIKey: "+err.Error())
		l.log.Warn(ctx, "InChIKey generation failed", "error", err)
		return
	}
	res.Key = k.Key
}

// ToStructure parses an InChI string back into a structure. options uses
// the NormalizeOptions syntax.
func (l *Library) ToStructure(ctx context.Context, inchi, options string) (*Structure, error) {
	if err := l.check(); err != nil {
		return nil, err
	}
	if inchi == "" {
		return nil, &Error{Op: "GetStructFromINCHI", Code: RetEOF}
	}

	if err := acquire(ctx); err != nil {
		return nil, err
	}
	out, err := bindings.GetStructFromINCHI(inchi, NormalizeOptions(options))
	callSem.Release(1)
	if err != nil {
		return nil, fmt.Errorf("inchi: GetStructFromINCHI: %w", err)
	}

	code := Ret(out.Code)
	if err := statusError("GetStructFromINCHI", code, out.Message, out.Log); err != nil {
		l.log.Debug(ctx, "GetStructFromINCHI failed", "code", code, logging.Abbrev("inchi", inchi, logAbbrev))
		return nil, err
	}
	if code == RetWarning && out.Message != "" {
		l.log.Warn(ctx, "GetStructFromINCHI warning", "message", out.Message, logging.Abbrev("inchi", inchi, logAbbrev))
	}
	return structureFromBindings(out), nil
}

// Key computes the InChIKey of inchi, plus the requested hash extensions.
func (l *Library) Key(ctx context.Context, inchi string, opts KeyOptions) (*Key, error) {
	if err := l.check(); err != nil {
		return nil, err
	}
	if inchi == "" {
		return nil, &KeyError{Code: KeyEmptyInput}
	}

	if err := acquire(ctx); err != nil {
		return nil, err
	}
	out, err := bindings.GetINCHIKeyFromINCHI(inchi, opts.Extra1, opts.Extra2)
	callSem.Release(1)
	if err != nil {
		return nil, fmt.Errorf("inchi: GetINCHIKeyFromINCHI: %w", err)
	}

	if err := keyStatusError(KeyRet(out.Code), inchi); err != nil {
		l.log.Debug(ctx, "GetINCHIKeyFromINCHI failed", "code", KeyRet(out.Code), logging.Abbrev("inchi", inchi, logAbbrev))
		return nil, err
	}
	return &Key{Key: out.Key, Extra1: out.Extra1, Extra2: out.Extra2}, nil
}

// IsInChIError reports whether err came from a library status code rather
// than from the wrapper or the caller's context.
func IsInChIError(err error) bool {
	var e *Error
	var k *KeyError
	return errors.As(err, &e) || errors.As(err, &k)
}
