package contrib

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesrmoro/commits-invaders/internal/calendar"
)

// FileSource reads calendars from disk. Path is either a single calendar
// file, returned for every user, or a directory holding <user>.json,
// <user>.yaml or <user>.yml files.
type FileSource struct {
	Path string
}

// Contributions implements Source.
func (f *FileSource) Contributions(_ context.Context, user string) ([]calendar.Week, error) {
	path, err := f.resolve(user)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("contrib: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return calendar.DecodeYAML(data)
	default:
		return calendar.DecodeJSON(data)
	}
}

func (f *FileSource) resolve(user string) (string, error) {
	info, err := os.Stat(f.Path)
	if err != nil {
		return "", fmt.Errorf("contrib: %w", err)
	}
	if !info.IsDir() {
		return f.Path, nil
	}

	for _, ext := range []string{".json", ".yaml", ".yml"} {
		p := filepath.Join(f.Path, user+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("contrib: no calendar file for %s in %s", user, f.Path)
}
