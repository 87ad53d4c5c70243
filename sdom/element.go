package sdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// DisplayMode is the layout classification of an element variant.
// It carries layout intent into variant selection and is not enforced
// as a rendering rule.
type DisplayMode uint8

const (
	NoMode     DisplayMode = iota // unset or error condition
	BlockMode                     // block-level layout
	InlineMode                    // inline layout
)

func (d DisplayMode) String() string {
	switch d {
	case BlockMode:
		return "block"
	case InlineMode:
		return "inline"
	}
	return "<none>"
}

// Element is the variant interface common to container and void elements.
type Element interface {
	Node
	TagName() string
	Display() DisplayMode
	Attributes() *AttrList
}

// Container is an element which owns an ordered sequence of child nodes.
// Whether an element is a container is fixed at construction; a type
// assertion against Container is the capability check.
type Container interface {
	Element
	Children() []Node
	AppendChild(Node)
}

// --- Container elements ----------------------------------------------------

// ContainerElement is an element owning child nodes.
type ContainerElement struct {
	tag      string
	display  DisplayMode
	attrs    AttrList
	children []Node
}

// BlockContainer creates an empty block-level container element.
func BlockContainer(tag string) *ContainerElement {
	return &ContainerElement{tag: tag, display: BlockMode}
}

// InlineContainer creates an empty inline container element.
func InlineContainer(tag string) *ContainerElement {
	return &ContainerElement{tag: tag, display: InlineMode}
}

// Type returns ElementNode.
func (e *ContainerElement) Type() NodeType { return ElementNode }

// TagName returns the element's tag name.
func (e *ContainerElement) TagName() string { return e.tag }

// Display returns the element's layout classification.
func (e *ContainerElement) Display() DisplayMode { return e.display }

// Attributes returns the element's attribute list for reading and writing.
func (e *ContainerElement) Attributes() *AttrList { return &e.attrs }

// Children returns the child nodes in document order.
func (e *ContainerElement) Children() []Node { return e.children }

// AppendChild attaches a child node at the end of the child sequence.
// Nil children are ignored.
func (e *ContainerElement) AppendChild(n Node) {
	if n != nil {
		e.children = append(e.children, n)
	}
}

func (e *ContainerElement) String() string {
	return fmt.Sprintf("<%s %s #ch=%d>", e.tag, e.display, len(e.children))
}

// --- Void elements ---------------------------------------------------------

// VoidElement is an element which never owns children. There is no child
// sequence to speak of, not even an empty one.
type VoidElement struct {
	tag     string
	display DisplayMode
	attrs   AttrList
}

// BlockVoid creates a block-level void element.
func BlockVoid(tag string) *VoidElement {
	return &VoidElement{tag: tag, display: BlockMode}
}

// InlineVoid creates an inline void element.
func InlineVoid(tag string) *VoidElement {
	return &VoidElement{tag: tag, display: InlineMode}
}

// Type returns ElementNode.
func (e *VoidElement) Type() NodeType { return ElementNode }

// TagName returns the element's tag name.
func (e *VoidElement) TagName() string { return e.tag }

// Display returns the element's layout classification.
func (e *VoidElement) Display() DisplayMode { return e.display }

// Attributes returns the element's attribute list for reading and writing.
func (e *VoidElement) Attributes() *AttrList { return &e.attrs }

func (e *VoidElement) String() string {
	return fmt.Sprintf("<%s/ %s>", e.tag, e.display)
}

var _ Container = &ContainerElement{}
var _ Element = &VoidElement{}
