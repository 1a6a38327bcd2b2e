//go:build windows

package fileutil

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sys/windows"
)

// CreateExclusive creates path with the given permissions and opens it for
// reading and writing, failing if the path already exists. For owner-only
// modes the file also gets a DACL granting access to the current user
// alone. The DACL is best effort: the file was already created with
// exclusive semantics, so a failure here is logged rather than fatal.
func CreateExclusive(path string, perm os.FileMode) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return nil, err
	}
	if isOwnerOnly(perm) {
		if err := restrictToCurrentUser(path); err != nil {
			slog.Warn("could not restrict file to current user", "path", path, "error", err)
		}
	}
	return f, nil
}

// isOwnerOnly reports whether perm grants nothing to group or other.
func isOwnerOnly(perm os.FileMode) bool {
	return perm&0o077 == 0
}

// restrictToCurrentUser replaces the DACL on path with one granting
// GENERIC_ALL to the current user only, and blocks ACE inheritance from the
// parent directory.
func restrictToCurrentUser(path string) error {
	token := windows.GetCurrentProcessToken()

	user, err := token.GetTokenUser()
	if err != nil {
		return fmt.Errorf("get current user SID: %w", err)
	}

	entries := []windows.EXPLICIT_ACCESS{{
		AccessPermissions: windows.GENERIC_ALL,
		AccessMode:        windows.SET_ACCESS,
		Inheritance:       windows.NO_INHERITANCE,
		Trustee: windows.TRUSTEE{
			TrusteeForm:  windows.TRUSTEE_IS_SID,
			TrusteeType:  windows.TRUSTEE_IS_USER,
			TrusteeValue: windows.TrusteeValueFromSID(user.User.Sid),
		},
	}}

	acl, err := windows.ACLFromEntries(entries, nil)
	if err != nil {
		return fmt.Errorf("build ACL: %w", err)
	}

	secInfo := windows.DACL_SECURITY_INFORMATION | windows.PROTECTED_DACL_SECURITY_INFORMATION
	err = windows.SetNamedSecurityInfo(
		path,
		windows.SE_FILE_OBJECT,
		windows.SECURITY_INFORMATION(secInfo),
		nil,
		nil,
		acl,
		nil,
	)
	if err != nil {
		return fmt.Errorf("set DACL: %w", err)
	}
	return nil
}
