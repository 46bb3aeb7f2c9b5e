//go:build cgo

package inchi

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemkit/inchi-go/pkg/inchi/logging"
)

const methaneInChI = "InChI=1S/CH4/h1H4"

var keyRE = regexp.MustCompile(`^[A-Z]{14}-[A-Z]{10}-[A-Z]$`)

func openTest(t *testing.T, cfg Config) *Library {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	lib, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = lib.Close() })
	return lib
}

func methane() *Input {
	return &Input{Atoms: []Atom{{Element: "C", ImplicitH: AutoHydrogens}}}
}

func TestMethaneRoundTrip(t *testing.T) {
	lib := openTest(t, Config{})
	ctx := context.Background()

	res, err := lib.FromStructure(ctx, methane())
	require.NoError(t, err)
	assert.True(t, res.Code.Success())
	assert.Equal(t, methaneInChI, res.InChI)
	assert.Empty(t, res.Key)

	st, err := lib.ToStructure(ctx, res.InChI, "")
	require.NoError(t, err)
	require.Len(t, st.Atoms, 1)
	assert.Equal(t, "C", st.Atoms[0].Element)
	assert.Equal(t, 4, st.Atoms[0].ImplicitH)
}

func TestEthanolWithKey(t *testing.T) {
	lib := openTest(t, Config{ComputeKey: true})

	res, err := lib.FromStructure(context.Background(), ethanol())
	require.NoError(t, err)
	assert.Equal(t, "InChI=1S/C2H6O/c1-2-3/h3H,2H2,1H3", res.InChI)
	assert.Equal(t, "LFQSCWFLJHTTHZ-UHFFFAOYSA-N", res.Key)
	assert.Empty(t, res.Warnings)
}

func TestKeyFormat(t *testing.T) {
	lib := openTest(t, Config{})

	k, err := lib.Key(context.Background(), methaneInChI, KeyOptions{Extra1: true, Extra2: true})
	require.NoError(t, err)
	assert.Regexp(t, keyRE, k.Key)
	assert.Equal(t, "VNWKTOKETHGBQD-UHFFFAOYSA-N", k.Key)
	assert.NotEmpty(t, k.Extra1)
	assert.NotEmpty(t, k.Extra2)

	k, err = lib.Key(context.Background(), methaneInChI, KeyOptions{})
	require.NoError(t, err)
	assert.Empty(t, k.Extra1)
	assert.Empty(t, k.Extra2)
}

func TestKeyErrors(t *testing.T) {
	lib := openTest(t, Config{})
	ctx := context.Background()

	_, err := lib.Key(ctx, "", KeyOptions{})
	require.ErrorIs(t, err, ErrKeyEmptyInput)

	_, err = lib.Key(ctx, "notAnInChI", KeyOptions{})
	var ke *KeyError
	require.True(t, errors.As(err, &ke), "got %v", err)
	assert.NotEqual(t, KeyOK, ke.Code)
}

func TestEmptyInputIsEOF(t *testing.T) {
	lib := openTest(t, Config{})

	_, err := lib.FromStructure(context.Background(), &Input{})
	require.ErrorIs(t, err, ErrEOF)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, RetEOF, e.Code)
}

func TestInvalidInChIFreesAndFails(t *testing.T) {
	lib := openTest(t, Config{})

	for i := 0; i < 50; i++ {
		_, err := lib.ToStructure(context.Background(), "InChI=1S/garbage/!!", "")
		require.Error(t, err)
		require.True(t, IsInChIError(err), "got %v", err)
	}
}

func TestInvalidInputNeverReachesLibrary(t *testing.T) {
	lib := openTest(t, Config{})

	in := methane()
	in.Atoms[0].Bonds = []Bond{{Neighbor: 0, Type: BondSingle}}
	_, err := lib.FromStructure(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestClosedLibrary(t *testing.T) {
	lib, err := Open(Config{Logger: logging.Discard()})
	require.NoError(t, err)
	require.NoError(t, lib.Close())
	require.ErrorIs(t, lib.Close(), ErrLibraryClosed)

	_, err = lib.FromStructure(context.Background(), methane())
	require.ErrorIs(t, err, ErrLibraryClosed)
	_, err = lib.ToStructure(context.Background(), methaneInChI, "")
	require.ErrorIs(t, err, ErrLibraryClosed)
	_, err = lib.Key(context.Background(), methaneInChI, KeyOptions{})
	require.ErrorIs(t, err, ErrLibraryClosed)
}

func TestContextBoundsWait(t *testing.T) {
	lib := openTest(t, Config{})

	require.NoError(t, callSem.Acquire(context.Background(), 1))
	defer callSem.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := lib.Key(ctx, methaneInChI, KeyOptions{})
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConcurrentCallsAreSerialized(t *testing.T) {
	a := openTest(t, Config{ComputeKey: true})
	b := openTest(t, Config{})

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 32; i++ {
		lib := a
		if i%2 == 1 {
			lib = b
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := lib.FromStructure(context.Background(), ethanol())
			if err != nil {
				errs <- err
				return
			}
			if _, err := lib.ToStructure(context.Background(), res.InChI, ""); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent call: %v", err)
	}
}

func TestVersions(t *testing.T) {
	lib := openTest(t, Config{})
	assert.NotEmpty(t, lib.Version())
	assert.Equal(t, Version, WrapperVersion())
}
