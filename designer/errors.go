package designer

import "errors"

var (
	// ErrNoTypeDecl means the file has no recognizable top-level type
	// declaration. Fatal to a parse; no partial Document is returned.
	ErrNoTypeDecl = errors.New("no type declaration found")

	// ErrNoManagedMethod means the managed method is absent. Fatal to a
	// parse; a write falls back to full-file generation instead.
	ErrNoManagedMethod = errors.New("no managed method found")
)
