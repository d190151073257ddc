package files

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Copy copies source to target. Directories are copied recursively, entry by entry
// under the same names; files are streamed in ChunkSize pieces.
//
// A missing source is not an error. Copying an entry onto itself or a directory into
// its own subtree is refused. The first failure aborts the copy and is
// returned as an *Error; entries copied before it are left in place.
func (s *Service) Copy(source, target string) error {
	s.logger.Debug("Copying", zap.String("source", source), zap.String("target", target))

	if err := s.copy(source, target); err != nil {
		s.logger.Warn("Copy failed",
			zap.String("source", source),
			zap.String("target", target),
			zap.String("failed_path", FailedPath(err)),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) copy(source, target string) error {
	info, err := s.fs.Stat(source)
	if err != nil {
		if isNotExist(err) {
			return nil
		}
		return newError(OpCopy, source, err)
	}

	if same, err := s.sameEntry(source, target, info); err != nil {
		return newError(OpCopy, target, err)
	} else if same {
		return newError(OpCopy, target, ErrSameFile)
	}

	if !info.IsDir() {
		return s.copyFile(source, target)
	}

	if within(source, target) {
		return newError(OpCopy, target, ErrTargetInSource)
	}

	if err := s.fs.MkdirAll(target, fs.FileMode(s.cfg.DirMode)); err != nil {
		return newError(OpMkdir, target, err)
	}

	entries, err := afero.ReadDir(s.fs, source)
	if err != nil {
		return newError(OpCopy, source, err)
	}
	for _, entry := range entries {
		if err := s.copy(filepath.Join(source, entry.Name()), filepath.Join(target, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// sameEntry reports whether target already names the entry described by info.
func (s *Service) sameEntry(source, target string, info fs.FileInfo) (bool, error) {
	if filepath.Clean(source) == filepath.Clean(target) {
		return true, nil
	}
	tinfo, err := s.fs.Stat(target)
	if err != nil {
		if isNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return os.SameFile(info, tinfo), nil
}

// within reports whether target lies below the source directory.
func within(source, target string) bool {
	src, err := filepath.Abs(source)
	if err != nil {
		return false
	}
	dst, err := filepath.Abs(target)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(src, dst)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (s *Service) copyFile(source, target string) error {
	parent := filepath.Dir(target)
	if err := s.fs.MkdirAll(parent, fs.FileMode(s.cfg.DirMode)); err != nil {
		return newError(OpMkdir, parent, err)
	}

	in, err := s.fs.Open(source)
	if err != nil {
		return newError(OpCopy, source, err)
	}
	defer in.Close()

	out, err := s.fs.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fs.FileMode(s.cfg.FileMode))
	if err != nil {
		return newError(OpCopy, target, err)
	}

	if _, err := io.CopyBuffer(out, in, make([]byte, s.cfg.ChunkSize)); err != nil {
		_ = out.Close()
		return newError(OpCopy, target, err)
	}
	if err := out.Close(); err != nil {
		return newError(OpCopy, target, err)
	}
	return nil
}

// Delete removes path. Directories are emptied child by child before being removed;
// the first failing child aborts the walk and leaves its ancestors in place.
// A missing path is not an error.
func (s *Service) Delete(path string) error {
	s.logger.Debug("Deleting", zap.String("path", path))

	if err := s.delete(path); err != nil {
		s.logger.Warn("Delete failed",
			zap.String("path", path),
			zap.String("failed_path", FailedPath(err)),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) delete(path string) error {
	info, err := s.lstat(path)
	if err != nil {
		if isNotExist(err) {
			return nil
		}
		return newError(OpDelete, path, err)
	}

	if info.IsDir() {
		entries, err := afero.ReadDir(s.fs, path)
		if err != nil {
			return newError(OpDelete, path, err)
		}
		for _, entry := range entries {
			if err := s.delete(filepath.Join(path, entry.Name())); err != nil {
				return err
			}
		}
	}

	if err := s.fs.Remove(path); err != nil {
		return newError(OpDelete, path, err)
	}
	return nil
}
