package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds the resolved directory layout the application works in.
type Paths struct {
	BaseDir    string
	DataDir    string
	ExportsDir string
	LogsDir    string
}

// NewPaths resolves the directory layout rooted at baseDir, falling
// back to the current working directory when baseDir is empty.
func NewPaths(baseDir string, cfg PathsConfig) (*Paths, error) {
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		baseDir = wd
	}

	return &Paths{
		BaseDir:    baseDir,
		DataDir:    resolve(baseDir, cfg.DataDir, DefaultDataDir),
		ExportsDir: resolve(baseDir, cfg.ExportsDir, DefaultExportsDir),
		LogsDir:    resolve(baseDir, cfg.LogsDir, DefaultLogsDir),
	}, nil
}

func resolve(baseDir, configured, fallback string) string {
	dir := configured
	if dir == "" {
		dir = fallback
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(baseDir, dir)
}

// EnsureDirectories creates every directory of the layout.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.ExportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetExportPath returns the full path for an export file name.
func (p *Paths) GetExportPath(filename string) string {
	return filepath.Join(p.ExportsDir, filename)
}

// GetLogPath returns the full path for a log file name.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
