package zendesk

import (
	"encoding/json"
)

// Descriptor identifies a resource type: its singular and plural envelope
// field names and the URL path segment for its collection. It is a pure
// value, constructed once per resource type at client-build time and never
// mutated afterwards.
type Descriptor struct {
	Singular string
	Plural   string
	Path     string
}

// NewDescriptor creates a descriptor whose URL path segment equals the plural
// name, which is the common case.
func NewDescriptor(singular, plural string) Descriptor {
	return Descriptor{Singular: singular, Plural: plural, Path: plural}
}

// WithPath returns a copy of the descriptor with a different URL path
// segment. Used where the path diverges from the plural envelope field, such
// as search (path "search", envelope field "results").
func (d Descriptor) WithPath(path string) Descriptor {
	d.Path = path

	return d
}

// Envelope is the raw decoded JSON response: the top-level object keyed by
// the resource's singular or plural name per API convention. Absence of the
// expected key is a shape error, surfaced by the operation layer.
type Envelope map[string]json.RawMessage
