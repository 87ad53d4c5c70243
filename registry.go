package semtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"reflect"
	"strings"

	"github.com/npillmayer/semtree/sdom"
)

// ElementDef is a registry entry for a caller-defined semantic element.
// Tag name and voidness are derived once at definition time from a
// throwaway instance and never recomputed; constructors are therefore
// assumed to be side-effect-free.
type ElementDef struct {
	tagName   string
	voidType  bool
	kind      reflect.Type
	construct func() sdom.Element
}

// Def creates an element definition from a constructor. The constructor
// is invoked once to probe the tag name and the container capability of
// the produced instances.
func Def[T sdom.Element](construct func() T) ElementDef {
	probe := construct()
	_, isContainer := sdom.Node(probe).(sdom.Container)
	return ElementDef{
		tagName:   strings.ToLower(probe.TagName()),
		voidType:  !isContainer,
		kind:      reflect.TypeOf(probe),
		construct: func() sdom.Element { return construct() },
	}
}

// TagName returns the tag name claimed by this definition, lowercased.
func (d ElementDef) TagName() string { return d.tagName }

// IsVoid tells whether instances of this definition refuse children.
func (d ElementDef) IsVoid() bool { return d.voidType }

// New produces a fresh instance.
func (d ElementDef) New() sdom.Element { return d.construct() }

// Registry maps tag names to semantic element definitions. A Registry is
// an explicitly constructed, caller-owned object—never a process-wide
// singleton—so multiple independent conversion pipelines can coexist.
//
// Registries follow a single-writer-then-many-readers discipline: populate
// before the first conversion, then treat as read-only. This is not
// enforced internally.
type Registry struct {
	defs map[string]ElementDef
	tags map[reflect.Type]string
}

// NewRegistry creates a registry holding the given definitions.
func NewRegistry(defs ...ElementDef) *Registry {
	r := &Registry{
		defs: make(map[string]ElementDef),
		tags: make(map[reflect.Type]string),
	}
	for _, d := range defs {
		r.Register(d)
	}
	return r
}

// Register stores a definition, keyed by the tag name it claims.
// Re-registering a tag name silently replaces the prior definition.
func (r *Registry) Register(def ElementDef) {
	if old, ok := r.defs[def.tagName]; ok {
		delete(r.tags, old.kind)
	}
	r.defs[def.tagName] = def
	r.tags[def.kind] = def.tagName
}

// Lookup returns the definition registered for a tag name, if any.
// Matching is case-insensitive, consistent with the catalog.
func (r *Registry) Lookup(tagName string) (ElementDef, bool) {
	if r == nil {
		return ElementDef{}, false
	}
	def, ok := r.defs[strings.ToLower(tagName)]
	return def, ok
}

// TagNameFor is the reverse lookup: the tag name under which an element
// kind was registered. It fails for kinds that were never registered, or
// whose registration has since been replaced.
func (r *Registry) TagNameFor(kind reflect.Type) (string, bool) {
	if r == nil {
		return "", false
	}
	tag, ok := r.tags[kind]
	return tag, ok
}
