package designer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Parse reads a designer file and builds its Document. The caller picks
// the dialect; DialectForPath maps extensions for callers that want the
// convention.
func Parse(path string, dialect Dialect) (*Document, error) {
	return ParseContext(context.Background(), path, dialect)
}

// ParseContext is Parse with an external cancellation signal, honored
// before the file read begins. There is no interruption point after
// that; a parse either completes or fails with no partial state.
func ParseContext(ctx context.Context, path string, dialect Dialect) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read designer file: %w", err)
	}
	return ParseSource(src, path, dialect)
}

// ParseSource parses in-memory file text. A fresh Document is built on
// every call; the result is a plain value owned by the caller.
func ParseSource(src []byte, file string, dialect Dialect) (*Document, error) {
	g := grammarFor(dialect)
	layout, members := g.scan(src, file)
	if layout.TypeName == "" {
		return nil, fmt.Errorf("%s: %w", file, ErrNoTypeDecl)
	}
	if !layout.HasMethod {
		return nil, fmt.Errorf("%s: %w", file, ErrNoManagedMethod)
	}
	body := src[layout.Method.Start:layout.Method.End]
	stmts := g.parse(body, file)
	return buildDocument(layout, members, stmts), nil
}

// Render produces the full new file content for a Document. When the
// original text contains the managed anchors, only the managed spans
// are replaced; otherwise a complete minimal file is generated.
func Render(original []byte, doc *Document, dialect Dialect) []byte {
	g := grammarFor(dialect)
	if len(original) == 0 {
		return g.render(doc)
	}
	layout, _ := g.scan(original, "")
	if layout.TypeName == "" || !layout.HasMethod {
		return g.render(doc)
	}
	return splice(original, layout, doc, g)
}

// Write regenerates the managed region of the file at path from doc and
// writes the result back. A missing file gets full generation. Callers
// must serialize concurrent writes to the same path; the engine reads,
// modifies, and writes without a lock.
func Write(path string, doc *Document, dialect Dialect) error {
	original, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read designer file: %w", err)
	}
	out := Render(original, doc, dialect)
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("write designer file: %w", err)
	}
	return nil
}
