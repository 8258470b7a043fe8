package application

import (
	"fmt"
	"os"

	"github.com/openkraft/devtool/internal/domain"
	"github.com/openkraft/devtool/internal/domain/check"
)

// ExpandTargets turns command-line targets into the list of files to check.
// Directories are expanded with finder using ext; plain files are kept even
// when their extension differs. Paths matching any ignore pattern are
// dropped. Order follows targets, with each directory's files sorted.
func ExpandTargets(finder domain.FileFinder, targets []string, ext string, ignore []string) ([]string, error) {
	var files []string
	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil || !info.IsDir() {
			// Unreadable plain files surface later as a ReadError.
			files = append(files, target)
			continue
		}
		found, err := finder.FindFiles(target, ext)
		if err != nil {
			return nil, fmt.Errorf("discovering files: %w", err)
		}
		files = append(files, found...)
	}
	return check.FilterIgnored(files, ignore), nil
}
