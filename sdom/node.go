package sdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// NodeType is the coarse discriminant over semantic tree nodes.
type NodeType uint8

const (
	NoNodeType  NodeType = iota // unset or error condition
	ElementNode                 // an element, container or void
	TextNode                    // trimmed character data
	CommentNode                 // a comment, block-level by convention
	RawDataNode                 // CDATA-like raw data, block-level by convention
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "#text"
	case CommentNode:
		return "#comment"
	case RawDataNode:
		return "#raw"
	}
	return "<none>"
}

// Node is the base variant of the semantic tree.
type Node interface {
	Type() NodeType
}

// --- Leaf nodes ------------------------------------------------------------

// Text is a character-data leaf node. Converters store trimmed text;
// whitespace-only text does not become a node at all.
type Text struct {
	text string
}

// NewText creates a text node.
func NewText(text string) *Text {
	return &Text{text: text}
}

// Type returns TextNode.
func (t *Text) Type() NodeType { return TextNode }

// Text returns the character data.
func (t *Text) Text() string { return t.text }

func (t *Text) String() string { return fmt.Sprintf("#text(%q)", t.text) }

// Comment is a comment leaf node. Comments are always block-level: the
// source format offers no reliable signal to distinguish inline comments,
// and the distinction is cosmetic for rendering, not semantic.
type Comment struct {
	data string
}

// NewComment creates a comment node.
func NewComment(data string) *Comment {
	return &Comment{data: data}
}

// Type returns CommentNode.
func (c *Comment) Type() NodeType { return CommentNode }

// Data returns the comment text.
func (c *Comment) Data() string { return c.data }

// Display returns BlockMode; see the type comment.
func (c *Comment) Display() DisplayMode { return BlockMode }

func (c *Comment) String() string { return fmt.Sprintf("#comment(%q)", c.data) }

// RawData is a CDATA-like leaf node, block-level by the same convention
// as Comment.
type RawData struct {
	data string
}

// NewRawData creates a raw-data node.
func NewRawData(data string) *RawData {
	return &RawData{data: data}
}

// Type returns RawDataNode.
func (r *RawData) Type() NodeType { return RawDataNode }

// Data returns the raw content.
func (r *RawData) Data() string { return r.data }

// Display returns BlockMode.
func (r *RawData) Display() DisplayMode { return BlockMode }

func (r *RawData) String() string { return fmt.Sprintf("#raw(%q)", r.data) }
