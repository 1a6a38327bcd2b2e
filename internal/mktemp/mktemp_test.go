package mktemp

import (
	"errors"
	"io/fs"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/debtools/tempfile/internal/testutil"
)

// step replays one generator advance so tests can predict candidates.
func step(state uint32) (uint32, string) {
	r := state*1664525 + 1013904223
	return r, strconv.Itoa(int(1e9 + r%1e9))[1:]
}

func TestCreateDefaults(t *testing.T) {
	dir := t.TempDir()
	var c Creator

	f, err := c.Create(Options{Dir: dir, Mode: 0o600})
	testutil.MustNoErr(t, err, "create")
	path := f.Name()
	if _, err := f.WriteString("x"); err != nil {
		t.Fatalf("write: %v", err)
	}
	testutil.MustNoErr(t, f.Close(), "close")

	if got := filepath.Dir(path); got != dir {
		t.Errorf("file created in %q, want %q", got, dir)
	}
	base := filepath.Base(path)
	if ok, _ := regexp.MatchString(`^file\d{9}$`, base); !ok {
		t.Errorf("name %q, want file + nine digits", base)
	}
	testutil.MustExist(t, path)
	testutil.AssertPermNoMoreThan(t, path, 0o600)
}

func TestCreatePrefixSuffix(t *testing.T) {
	var c Creator

	f, err := c.Create(Options{Dir: t.TempDir(), Prefix: "ab", Suffix: ".tmp", Mode: 0o600})
	testutil.MustNoErr(t, err, "create")
	testutil.MustNoErr(t, f.Close(), "close")

	base := filepath.Base(f.Name())
	if ok, _ := regexp.MatchString(`^ab\d{9}\.tmp$`, base); !ok {
		t.Errorf("name %q, want ab + nine digits + .tmp", base)
	}
}

func TestCreateDistinct(t *testing.T) {
	dir := t.TempDir()
	var c Creator

	seen := make(map[string]bool)
	for i := 0; i < 64; i++ {
		f, err := c.Create(Options{Dir: dir, Mode: 0o600})
		testutil.MustNoErr(t, err, "create")
		testutil.MustNoErr(t, f.Close(), "close")
		if seen[f.Name()] {
			t.Fatalf("path %q handed out twice", f.Name())
		}
		seen[f.Name()] = true
	}
}

func TestCreateRetriesTakenName(t *testing.T) {
	dir := t.TempDir()
	c := &Creator{}
	c.gen.state = 42

	// Occupy the first candidate the seeded generator will produce.
	state, digits := step(42)
	taken := testutil.WriteFile(t, dir, "ab"+digits+".txt", []byte("keep"))
	_, nextDigits := step(state)

	f, err := c.Create(Options{Dir: dir, Prefix: "ab", Suffix: ".txt", Mode: 0o600})
	testutil.MustNoErr(t, err, "create")
	testutil.MustNoErr(t, f.Close(), "close")

	if f.Name() == taken {
		t.Fatalf("create returned the occupied path %q", taken)
	}
	if want := filepath.Join(dir, "ab"+nextDigits+".txt"); f.Name() != want {
		t.Errorf("retry produced %q, want next candidate %q", f.Name(), want)
	}
	testutil.AssertFileContent(t, taken, "keep")
}

func TestCreateExhausted(t *testing.T) {
	dir := t.TempDir()
	c := &Creator{}
	c.gen.state = 7

	state := uint32(7)
	for i := 0; i < 3; i++ {
		var digits string
		state, digits = step(state)
		testutil.WriteFile(t, dir, "file"+digits, nil)
	}

	_, err := c.Create(Options{Dir: dir, Mode: 0o600, MaxAttempts: 3})
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("error = %v, want ErrExhausted", err)
	}
}

func TestCreateStopsOnFatalError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := (&Creator{}).Create(Options{Dir: missing, Mode: 0o600})
	if err == nil {
		t.Fatal("create succeeded in a missing directory")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
	if errors.Is(err, ErrExhausted) {
		t.Errorf("error = %v; a missing directory must not be retried", err)
	}
}

func TestCreateNamed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exact.cfg")

	f, err := CreateNamed(path, 0o600)
	testutil.MustNoErr(t, err, "create")
	testutil.MustNoErr(t, f.Close(), "close")

	if f.Name() != path {
		t.Errorf("created %q, want %q", f.Name(), path)
	}
	testutil.MustExist(t, path)
}

func TestCreateNamedTaken(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "exact.cfg", []byte("keep"))

	_, err := CreateNamed(path, 0o600)
	if !errors.Is(err, fs.ErrExist) {
		t.Fatalf("error = %v, want fs.ErrExist", err)
	}
	testutil.AssertFileContent(t, path, "keep")
}

func TestCreateConcurrent(t *testing.T) {
	dir := t.TempDir()
	var c Creator

	var mu sync.Mutex
	seen := make(map[string]bool)
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 16; j++ {
				f, err := c.Create(Options{Dir: dir, Mode: 0o600})
				if err != nil {
					return err
				}
				if err := f.Close(); err != nil {
					return err
				}
				mu.Lock()
				dup := seen[f.Name()]
				seen[f.Name()] = true
				mu.Unlock()
				if dup {
					t.Errorf("path %q handed out twice", f.Name())
				}
			}
			return nil
		})
	}
	testutil.MustNoErr(t, g.Wait(), "concurrent create")
	if len(seen) != 8*16 {
		t.Errorf("created %d distinct files, want %d", len(seen), 8*16)
	}
}
