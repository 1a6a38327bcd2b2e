// Package filemode parses the octal permission strings accepted by --mode.
package filemode

import (
	"os"
	"strconv"

	"github.com/rotisserie/eris"
)

// Default is the permission mask used when no mode is given: read/write for
// the owner only.
const Default os.FileMode = 0o600

// MaxBits is the highest accepted mode value: setuid, setgid and sticky on
// top of rwxrwxrwx.
const MaxBits = 0o7777

// ErrInvalidMode reports a mode string that is not octal or out of range.
var ErrInvalidMode = eris.New("invalid mode")

// Parse converts an octal permission string such as "0644" or "4755" into an
// os.FileMode. The accepted range is [0, 07777]. The three high octal digits
// are mapped onto os.ModeSetuid, os.ModeSetgid and os.ModeSticky; passing
// the raw bits through would silently lose them in os.OpenFile, which keeps
// them in different positions than chmod(2) does.
func Parse(s string) (os.FileMode, error) {
	n, err := strconv.ParseInt(s, 8, 32)
	if err != nil {
		return 0, eris.Wrapf(ErrInvalidMode, "%q is not an octal number", s)
	}
	if n < 0 || n > MaxBits {
		return 0, eris.Wrapf(ErrInvalidMode, "%q is outside [0, 7777]", s)
	}
	return fromUnixBits(uint32(n)), nil
}

func fromUnixBits(m uint32) os.FileMode {
	mode := os.FileMode(m & 0o777)
	if m&0o4000 != 0 {
		mode |= os.ModeSetuid
	}
	if m&0o2000 != 0 {
		mode |= os.ModeSetgid
	}
	if m&0o1000 != 0 {
		mode |= os.ModeSticky
	}
	return mode
}
