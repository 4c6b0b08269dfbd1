package casref

import "strings"

// Reference is a named bag of string attributes describing a cluster
// connection, the in-process rendition of a hosting environment's
// resource declaration.
//
// A Reference is the sole input surface of a Factory. Attribute content
// is free-form text; coercion to typed configuration happens during
// resolution. Use the loader package to build References from
// context.xml-style or YAML declarations.
type Reference struct {
	name    string
	resType string
	factory string
	attrs   map[string]string
}

// NewReference creates a reference with the given resource name and
// attributes. The attribute map is copied.
//
// Parameters:
//   - name: The resource name (e.g., "cassandra/Tracker")
//   - attrs: Attribute name to raw string content
//
// Returns:
//   - *Reference: A reference ready to be resolved
func NewReference(name string, attrs map[string]string) *Reference {
	r := &Reference{
		name:  name,
		attrs: make(map[string]string, len(attrs)),
	}
	for k, v := range attrs {
		r.attrs[k] = v
	}
	return r
}

// Name returns the resource name.
func (r *Reference) Name() string {
	return r.name
}

// ResourceType returns the declared resource type, if any.
func (r *Reference) ResourceType() string {
	return r.resType
}

// FactoryName returns the declared factory identifier, if any.
func (r *Reference) FactoryName() string {
	return r.factory
}

// SetResourceType records the declared resource type.
func (r *Reference) SetResourceType(t string) {
	r.resType = t
}

// SetFactoryName records the declared factory identifier.
func (r *Reference) SetFactoryName(f string) {
	r.factory = f
}

// Set stores an attribute, replacing any previous content.
func (r *Reference) Set(attr, content string) {
	r.attrs[attr] = content
}

// Get returns the trimmed content of an attribute.
//
// An attribute whose content is empty or whitespace-only is reported as
// absent, matching the requirement that required attributes carry
// non-empty values.
//
// Parameters:
//   - attr: The attribute name
//
// Returns:
//   - string: Trimmed attribute content
//   - bool: true if the attribute is present with non-empty content
func (r *Reference) Get(attr string) (string, bool) {
	raw, ok := r.attrs[attr]
	if !ok {
		return "", false
	}
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", false
	}
	return content, true
}

// Attrs returns a copy of all attributes with non-empty content.
func (r *Reference) Attrs() map[string]string {
	out := make(map[string]string, len(r.attrs))
	for k := range r.attrs {
		if v, ok := r.Get(k); ok {
			out[k] = v
		}
	}
	return out
}
