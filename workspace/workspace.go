// Package workspace tracks a directory of designer files, keeping the
// parsed document for each one current as files change. It backs both
// the language server and the preview UI.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dhamidi/winform/designer"
)

type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileState
}

// FileState is the tracked state of one designer file.
type FileState struct {
	Path     string
	Dialect  designer.Dialect
	Content  []byte
	Doc      *designer.Document
	ParseErr error
}

func New(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		files:   make(map[string]*FileState),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// IsDesignerFile reports whether a path looks like a designer file:
// a known extension on a name carrying the .Designer. marker.
func IsDesignerFile(path string) bool {
	if _, ok := designer.DialectForPath(path); !ok {
		return false
	}
	return strings.Contains(strings.ToLower(filepath.Base(path)), ".designer.")
}

// ScanAll walks the root directory and parses every designer file.
func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != w.rootDir {
				return filepath.SkipDir
			}
			return nil
		}
		if IsDesignerFile(path) {
			w.ScanFile(path)
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return w.UpdateFile(path, content)
}

// UpdateFile replaces the tracked content for a path and reparses. A
// parse failure keeps the file tracked with ParseErr set and no
// document.
func (w *Workspace) UpdateFile(path string, content []byte) error {
	dialect, _ := designer.DialectForPath(path)
	doc, parseErr := designer.ParseSource(content, path, dialect)
	if parseErr != nil {
		doc = nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = &FileState{
		Path:     path,
		Dialect:  dialect,
		Content:  content,
		Doc:      doc,
		ParseErr: parseErr,
	}
	return parseErr
}

func (w *Workspace) Remove(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

// Get returns the tracked state for a path, or nil.
func (w *Workspace) Get(path string) *FileState {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns the tracked paths, sorted.
func (w *Workspace) Files() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Documents returns the states that parsed successfully, sorted by path.
func (w *Workspace) Documents() []*FileState {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var states []*FileState
	for _, state := range w.files {
		if state.Doc != nil {
			states = append(states, state)
		}
	}
	sort.Slice(states, func(i, j int) bool {
		return states[i].Path < states[j].Path
	})
	return states
}
