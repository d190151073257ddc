package files

// Config holds tunables for file operations.
type Config struct {
	// ChunkSize is the buffer size used when streaming file contents during Copy.
	ChunkSize int `mapstructure:"chunk_size" default:"1024"`
	// FileMode is the permission used for files created by WriteFile and Copy (420 = 0644).
	FileMode uint32 `mapstructure:"file_mode" default:"420"`
	// DirMode is the permission used for directories created by Copy (493 = 0755).
	DirMode uint32 `mapstructure:"dir_mode" default:"493"`
}

// DefaultConfig returns the configuration used by the package-level helpers.
func DefaultConfig() Config {
	return Config{
		ChunkSize: 1024,
		FileMode:  0o644,
		DirMode:   0o755,
	}
}

// withDefaults fills zero values from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ChunkSize <= 0 {
		c.ChunkSize = d.ChunkSize
	}
	if c.FileMode == 0 {
		c.FileMode = d.FileMode
	}
	if c.DirMode == 0 {
		c.DirMode = d.DirMode
	}
	return c
}
