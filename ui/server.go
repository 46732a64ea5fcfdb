// Package ui serves a browser preview of the forms in a workspace:
// controls are laid out from their Location and Size properties, so the
// rendered page approximates what the designer canvas would show.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/dhamidi/winform/designer"
	"github.com/dhamidi/winform/format"
	"github.com/dhamidi/winform/lint"
	"github.com/dhamidi/winform/workspace"
)

//go:embed static templates
var embeddedFS embed.FS

type Server struct {
	workspace  *workspace.Workspace
	watcher    *workspace.FileWatcher
	staticFS   fs.FS
	mux        *http.ServeMux
	templateFS fs.FS
	funcMap    template.FuncMap
}

func NewServer(rootDir string) (*Server, error) {
	staticFS := overlayFS("ui/static", mustSub(embeddedFS, "static"))
	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))

	funcMap := template.FuncMap{
		"geometry": geometryStyle,
		"caption":  caption,
		"shortType": func(typeName string) string {
			if idx := strings.LastIndexByte(typeName, '.'); idx >= 0 {
				return typeName[idx+1:]
			}
			return typeName
		},
		"node": func(doc *designer.Document, id designer.NodeID) *designer.Node {
			return doc.Node(id)
		},
		"ref": func(doc *designer.Document, id designer.NodeID) nodeRef {
			return nodeRef{Doc: doc, ID: id}
		},
		"lintIssues": func(doc *designer.Document) []lint.Issue {
			return lint.Check(doc)
		},
	}

	if _, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "*.html"); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	ws := workspace.New(rootDir)
	s := &Server{
		workspace:  ws,
		watcher:    workspace.NewFileWatcher(ws),
		staticFS:   staticFS,
		mux:        http.NewServeMux(),
		templateFS: templateFS,
		funcMap:    funcMap,
	}

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.HandleFunc("GET /f/{path...}", s.handleForm)
	s.mux.HandleFunc("GET /", s.handleIndex)

	s.watcher.Start()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	// Templates reparse per request so edits under ui/templates show up
	// without a restart.
	tmpl, err := template.New("").Funcs(s.funcMap).ParseFS(s.templateFS, "*.html")
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	tmpl.ExecuteTemplate(w, name, data)
}

type indexData struct {
	RootDir string
	Files   []*workspace.FileState
	Broken  []*workspace.FileState
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := indexData{RootDir: s.workspace.RootDir()}
	for _, path := range s.workspace.Files() {
		state := s.workspace.Get(path)
		if state == nil {
			continue
		}
		if state.Doc != nil {
			data.Files = append(data.Files, state)
		} else {
			data.Broken = append(data.Broken, state)
		}
	}
	s.render(w, "index.html", data)
}

type formData struct {
	Path   string
	Doc    *designer.Document
	Width  int
	Height int
}

// nodeRef pairs a document with one node ID for the recursive control
// template.
type nodeRef struct {
	Doc *designer.Document
	ID  designer.NodeID
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	path := r.PathValue("path")
	state := s.workspace.Get(path)
	if state == nil || state.Doc == nil {
		http.Error(w, "form not found", http.StatusNotFound)
		return
	}

	if r.Header.Get("Accept") == "application/json" {
		w.Header().Set("Content-Type", "application/json")
		format.NewJSONEncoder(w).Encode(state.Doc)
		return
	}

	width, height := 640, 480
	if size, ok := state.Doc.FormProperty("ClientSize"); ok {
		if sw, sh, err := designer.ParsePair(size); err == nil {
			width, height = sw, sh
		}
	}

	s.render(w, "form.html", formData{
		Path:   path,
		Doc:    state.Doc,
		Width:  width,
		Height: height,
	})
}

// geometryStyle turns Location and Size properties into an inline CSS
// position. Controls without parseable geometry flow in document order.
func geometryStyle(n *designer.Node) template.CSS {
	var parts []string
	if loc, ok := n.Property("Location"); ok {
		if x, y, err := designer.ParsePair(loc); err == nil {
			parts = append(parts, fmt.Sprintf("position:absolute;left:%dpx;top:%dpx", x, y))
		}
	}
	if size, ok := n.Property("Size"); ok {
		if w, h, err := designer.ParsePair(size); err == nil {
			parts = append(parts, fmt.Sprintf("width:%dpx;height:%dpx", w, h))
		}
	}
	return template.CSS(strings.Join(parts, ";"))
}

// caption strips the quotes off a raw Text property value.
func caption(n *designer.Node) string {
	text, ok := n.Property("Text")
	if !ok {
		return n.Name
	}
	return strings.Trim(text, "\"")
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	if rd, ok := o.secondary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	if rd, ok := o.primary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}

// ScanAll loads every designer file under the root before the first
// request; the watcher keeps them current afterwards.
func (s *Server) ScanAll() error {
	return s.workspace.ScanAll()
}
