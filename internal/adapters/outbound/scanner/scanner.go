package scanner

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// FileScanner implements domain.FileFinder and domain.SourceReader on the
// local filesystem.
type FileScanner struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *FileScanner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &FileScanner{logger: logger}
}

// FindFiles recursively collects regular files under root whose extension
// equals extension. Extensionless files never match. Entries that cannot be
// read are skipped. Results are sorted.
func (s *FileScanner) FindFiles(root, extension string) ([]string, error) {
	extension = strings.TrimPrefix(extension, ".")

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("finding files in %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("finding files in %s: not a directory", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			s.logger.Debug("skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if ext, ok := Extension(d.Name()); ok && ext == extension {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("finding files in %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// Extension returns the suffix after the final "." of name. Names without a
// dot, or whose only dot is leading (".gitignore"), have no extension.
func Extension(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", false
	}
	return name[i+1:], true
}

// ReadSource returns the content of path. Content that is not valid UTF-8 is
// rejected.
func (s *FileScanner) ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("stream did not contain valid UTF-8")
	}
	return string(data), nil
}
