/*
Package sdom provides a semantic document tree with a closed set of node
variants.

Overview

Nodes are polymorphic over {element, text, comment, raw data}. Elements are
further polymorphic over {container, void} × {block, inline}, plus any
caller-defined semantic element kind. A node's variant and its capability
to own children are fixed at construction and never change: void elements
expose no child sequence at all.

Clients discriminate nodes with a type switch over the concrete variants,
or coarsely via Node.Type:

    switch n := node.(type) {
    case sdom.Container:
        …
    case *sdom.Text:
        …
    }

Caller-defined semantic elements embed one of the standard element types
and thereby inherit capability and attribute handling:

    type Callout struct {
        *sdom.ContainerElement
    }

    func NewCallout() Callout {
        return Callout{sdom.BlockContainer("callout")}
    }

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sdom
