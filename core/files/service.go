package files

import (
	"io"
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Service performs file operations against an afero filesystem.
// It holds no mutable state; callers serialize access to shared paths.
type Service struct {
	fs     afero.Fs
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new file service. A nil logger disables logging.
func NewService(fsys afero.Fs, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fs:     fsys,
		cfg:    cfg.withDefaults(),
		logger: logger.Named("files"),
	}
}

// Default returns a Service on the OS filesystem using the global zap logger.
func Default() *Service {
	return NewService(afero.NewOsFs(), DefaultConfig(), zap.L())
}

// ReadFile reads the whole file at path.
// A missing path yields (nil, nil). The buffer is sized from the length reported
// when the file is opened; a file that grows afterwards is truncated to that length.
func (s *Service) ReadFile(path string) ([]byte, error) {
	s.logger.Debug("Reading file", zap.String("path", path))

	f, err := s.fs.Open(path)
	if err != nil {
		if isNotExist(err) {
			s.logger.Debug("File not found", zap.String("path", path))
			return nil, nil
		}
		return nil, newError(OpRead, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, newError(OpRead, path, err)
	}
	if info.IsDir() {
		return nil, newError(OpRead, path, ErrIsDir)
	}

	data := make([]byte, info.Size())
	n, err := io.ReadFull(f, data)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, newError(OpRead, path, err)
	}

	s.logger.Debug("File read", zap.String("path", path), zap.Int("size", n))
	return data[:n], nil
}

// WriteFile replaces the contents of the file at path with data, creating the file
// if needed. The parent directory must already exist.
func (s *Service) WriteFile(path string, data []byte) error {
	s.logger.Debug("Writing file", zap.String("path", path), zap.Int("size", len(data)))

	f, err := s.fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fs.FileMode(s.cfg.FileMode))
	if err != nil {
		return newError(OpWrite, path, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return newError(OpWrite, path, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return newError(OpWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return newError(OpWrite, path, err)
	}
	return nil
}

// lstat avoids following symlinks when the filesystem supports it.
func (s *Service) lstat(path string) (fs.FileInfo, error) {
	if l, ok := s.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return s.fs.Stat(path)
}
