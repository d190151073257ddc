// Package files provides whole-file reads and writes plus recursive copy and delete.
//
// All operations run on an afero.Fs through a Service, so the OS filesystem can be
// swapped for an in-memory one in tests. The package-level functions use the OS
// filesystem and the global zap logger.
//
// # Missing Paths
//
// Non-existence is expected, not exceptional:
//   - ReadFile returns (nil, nil) for a missing path.
//   - Copy with a missing source does nothing and succeeds.
//   - Delete of a missing path succeeds.
//
// # Failures
//
// Failures are returned as *Error, carrying the operation and the first path that
// failed. Copy and Delete stop at that path; nothing already copied or deleted is
// rolled back.
//
// # Concurrency
//
// Nothing is locked. ReadFile sizes its buffer from the length reported at open
// time, and tree operations are not transactional, so callers must serialize
// access to shared paths themselves.
//
// # Usage
//
//	svc := files.NewService(afero.NewOsFs(), cfg.Files, logg)
//	if err := svc.Copy("assets", "backup/assets"); err != nil {
//	    logg.Error("Copy failed", zap.String("path", files.FailedPath(err)), zap.Error(err))
//	}
package files
