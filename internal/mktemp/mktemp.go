// Package mktemp creates new files at paths no other process is using.
//
// A candidate name is the configured prefix, nine random digits, and the
// configured suffix. Each candidate is claimed with a single atomic
// create-exclusive operation; a candidate that turns out to exist is
// discarded and a fresh one generated. There is never a look-before-create
// step, so two racing processes cannot be handed the same file.
package mktemp

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/debtools/tempfile/internal/fileutil"
)

// DefaultPrefix is used when Options.Prefix is empty. Generated names then
// look like file123456789, matching what tempnam produced.
const DefaultPrefix = "file"

// DefaultMaxAttempts bounds the create loop when Options.MaxAttempts is
// zero. Exhausting it with nine random digits means the directory itself is
// the problem, not luck.
const DefaultMaxAttempts = 10000

// ErrExhausted reports that every tried candidate name was already taken.
var ErrExhausted = eris.New("gave up finding an unused name")

// Options configure a single create operation. The zero value of a field
// means its default; a Creator never mutates them.
type Options struct {
	// Dir is the directory the file is created in. It must already be
	// resolved; Create does not consult TMPDIR.
	Dir string
	// Prefix starts the file name. Empty means DefaultPrefix.
	Prefix string
	// Suffix ends the file name, after the random digits. The digits alone
	// carry the uniqueness: "file123456789.txt" can collide even though a
	// bare "file123456789" would not have, and the retry loop absorbs that.
	Suffix string
	// Mode holds the permission bits for the new file, subject to the
	// process umask.
	Mode os.FileMode
	// MaxAttempts bounds the number of candidates tried. Zero means
	// DefaultMaxAttempts.
	MaxAttempts int
}

// Creator generates candidate names and claims them. The zero value is
// ready to use and safe for concurrent use; a single Creator shared by many
// goroutines hands out distinct files.
type Creator struct {
	gen generator
}

// Create makes a new, empty file per opts and opens it for reading and
// writing. Only "already exists" is retried; any other creation failure
// aborts immediately, since trying further names in a broken directory
// cannot help. The caller owns the returned file and its path.
func (c *Creator) Create(opts Options) (*os.File, error) {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	for i := 0; i < maxAttempts; i++ {
		path := filepath.Join(opts.Dir, prefix+c.gen.next()+opts.Suffix)
		f, err := fileutil.CreateExclusive(path, opts.Mode)
		if err == nil {
			return f, nil
		}
		if errors.Is(err, fs.ErrExist) {
			c.gen.noteConflict()
			continue
		}
		return nil, eris.Wrap(err, "create")
	}
	return nil, eris.Wrapf(ErrExhausted, "%d attempts in %s", maxAttempts, opts.Dir)
}

// CreateNamed makes the exact file the caller asked for, in one attempt.
// The caller claimed that specific path, so an existing file is a hard
// error: retrying under another name would not be the file they asked for,
// and retrying under the same name cannot succeed.
func CreateNamed(path string, mode os.FileMode) (*os.File, error) {
	f, err := fileutil.CreateExclusive(path, mode)
	if err != nil {
		return nil, eris.Wrap(err, "create")
	}
	return f, nil
}
