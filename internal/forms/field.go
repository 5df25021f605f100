// Package forms is the declarative form engine behind every create/edit
// dialog in the console: a field descriptor list in, required/validator
// checks and the submit lifecycle out. Entity screens only supply
// descriptors and a submit callback.
package forms

import "strings"

// Kind is a closed set; every switch over it lists all variants so a new
// kind fails to compile until each renderer and rule handles it.
type Kind string

const (
	Text         Kind = "text"
	Number       Kind = "number"
	Password     Kind = "password"
	URL          Kind = "url"
	Textarea     Kind = "textarea"
	Select       Kind = "select"
	File         Kind = "file"
	FileMultiple Kind = "file-multiple"
	Switch       Kind = "switch"
)

// FileRef is one uploaded file handle: the client-side name plus the staged
// storage location its URL-bearing submit payload uses.
type FileRef struct {
	Name string
	Key  string
	URL  string
	Size int64
}

// Field describes one form input.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	Options  []string // select only
	Default  any
	// Validate inspects the field's value after the required check; a
	// non-empty return aborts the submit with that message.
	Validate func(v any) string
}

// zeroValue is the seed when neither the edit target nor the descriptor
// supplies one.
func zeroValue(k Kind) any {
	switch k {
	case Switch:
		return false
	case File:
		return (*FileRef)(nil)
	case FileMultiple:
		return []FileRef(nil)
	case Text, Number, Password, URL, Textarea, Select:
		return ""
	default:
		return ""
	}
}

// empty is the per-kind required rule: a file field must hold exactly one
// handle, a multi-file field a non-empty list, everything else a truthy
// value.
func empty(k Kind, v any) bool {
	switch k {
	case File:
		fr, ok := v.(*FileRef)
		return !ok || fr == nil
	case FileMultiple:
		frs, ok := v.([]FileRef)
		return !ok || len(frs) == 0
	case Text, Number, Password, URL, Textarea, Select, Switch:
		return !truthy(v)
	default:
		return !truthy(v)
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
