// Package corpus loads source documents from the corpus directory.
package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/SolarisSy/iast/internal/extract"
	"github.com/SolarisSy/iast/internal/models"
	"go.uber.org/zap"
)

// Loader walks a corpus directory and extracts document text.
type Loader struct {
	path       string
	extensions []string
	extractor  *extract.Extractor
	logger     *zap.Logger
}

// NewLoader creates a loader for the directory at path. Only files whose
// extension is in extensions are loaded (case-insensitive, leading dot
// optional). logger may be nil.
func NewLoader(path string, extensions []string, extractor *extract.Extractor, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		path:       path,
		extensions: extensions,
		extractor:  extractor,
		logger:     logger,
	}
}

// Load walks the corpus directory recursively and returns all loadable
// documents. A file that cannot be extracted is logged and skipped, so it is
// simply absent from the result; no partially extracted document is ever
// returned. A missing or empty corpus directory yields an empty slice.
func (l *Loader) Load() ([]models.Document, error) {
	absDir, err := filepath.Abs(l.path)
	if err != nil {
		return nil, fmt.Errorf("absolute path: %w", err)
	}
	info, err := os.Stat(absDir)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Warn("corpus directory does not exist", zap.String("path", absDir))
			return nil, nil
		}
		return nil, fmt.Errorf("stat corpus: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", absDir)
	}

	var docs []models.Document
	err = filepath.WalkDir(absDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !extensionAllowed(ext, l.extensions) {
			return nil
		}
		// Resolve symlinks so only regular files are loaded.
		finfo, statErr := os.Stat(path)
		if statErr != nil || !finfo.Mode().IsRegular() {
			return nil
		}
		text, extractErr := l.extractor.Extract(path)
		if extractErr != nil {
			l.logger.Warn("skipping unreadable document",
				zap.String("path", path), zap.Error(extractErr))
			return nil
		}
		docs = append(docs, models.Document{SourcePath: path, Content: text})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk corpus: %w", err)
	}
	return docs, nil
}

func extensionAllowed(ext string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	extNorm := strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, a := range allowed {
		if strings.ToLower(strings.TrimPrefix(a, ".")) == extNorm {
			return true
		}
	}
	return false
}
