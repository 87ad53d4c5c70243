/*
Package semtree converts parsed HTML into a strongly-typed semantic tree.

Overview

Clients receive arbitrary, possibly malformed HTML, parsed into the
generic node tree of golang.org/x/net/html, and want to work with it
through a small, closed set of node variants (package sdom): containers,
void elements, text, comments and raw data, optionally extended with
caller-defined semantic element kinds keyed by tag name.

A Converter walks the parsed tree recursively. For each element it first
consults a caller-owned Registry of semantic element definitions; if the
tag is not registered, it falls back to the standard HTML classification
of package catalog. Unknown, unregistered tags are most plausibly custom
elements the caller forgot to register, so they degrade to block
containers—a block container can hold arbitrary children without data
loss, which a void default would silently drop.

	reg := semtree.NewRegistry(semtree.Def(NewCallout))
	conv := semtree.New(reg)
	frag, err := conv.ConvertFragment(`<div>a<callout>b</callout></div>`)

Conversion is a pure, synchronous tree transform: no I/O, no suspension
points. A Registry must be fully populated before the first conversion
and not mutated concurrently with reads; independent registries and
converters may run concurrently without restriction.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package semtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'semtree.convert'.
func tracer() tracing.Trace {
	return tracing.Select("semtree.convert")
}
