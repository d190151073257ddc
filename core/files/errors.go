package files

import (
	"io/fs"
	"syscall"

	"github.com/cockroachdb/errors"
)

// Operation names carried by Error.
const (
	OpRead   = "read"
	OpWrite  = "write"
	OpCopy   = "copy"
	OpMkdir  = "mkdir"
	OpDelete = "delete"
)

var (
	// ErrIsDir is returned by ReadFile when the path names a directory.
	ErrIsDir = errors.New("is a directory")
	// ErrSameFile is returned by Copy when source and target are the same entry.
	ErrSameFile = errors.New("source and target are the same file")
	// ErrTargetInSource is returned by Copy when a directory would be copied into itself.
	ErrTargetInSource = errors.New("target is inside source directory")
)

// Error reports the first path at which a file operation failed.
// Tree operations stop at the first failure, so Path is the deepest entry reached.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op, path string, err error) error {
	return &Error{Op: op, Path: path, Err: err}
}

// FailedPath returns the path recorded in err, or "" when err is not an *Error.
func FailedPath(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Path
	}
	return ""
}

// isNotExist reports whether err means the path does not exist. A path running
// through a regular file (ENOTDIR) does not exist either.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
