package catalog

import "strings"

// ElementType tells whether elements of a tag may own child nodes.
type ElementType uint8

const (
	NoElementType    ElementType = iota // unset or error condition
	Container                          // element owns child nodes
	Void                               // element never has children
	RawText                            // container whose text content is not re-parsed
	EscapableRawText                   // like RawText, but character references apply
)

// DisplayType tells how elements of a tag participate in layout.
type DisplayType uint8

const (
	NoDisplayType DisplayType = iota // unset or error condition
	Block
	Inline
	InlineBlock
)

func (t ElementType) String() string {
	switch t {
	case Container:
		return "container"
	case Void:
		return "void"
	case RawText:
		return "raw-text"
	case EscapableRawText:
		return "escapable-raw-text"
	}
	return "<none>"
}

func (d DisplayType) String() string {
	switch d {
	case Block:
		return "block"
	case Inline:
		return "inline"
	case InlineBlock:
		return "inline-block"
	}
	return "<none>"
}

// IsContainerLike returns true for element types which structurally own
// child nodes. RawText and EscapableRawText elements carry text children,
// even though a renderer will treat their content specially.
func (t ElementType) IsContainerLike() bool {
	return t == Container || t == RawText || t == EscapableRawText
}

// Classify looks up the classification for a standard HTML tag.
// Tag names are matched case-insensitively. For tags unknown to the
// standard, ok is false and both classifications are the zero value.
func Classify(tagName string) (t ElementType, d DisplayType, ok bool) {
	c, ok := htmlTags[strings.ToLower(tagName)]
	if !ok {
		return NoElementType, NoDisplayType, false
	}
	return c.element, c.display, true
}

// IsVoid returns true if tagName denotes a standard void element.
func IsVoid(tagName string) bool {
	t, _, ok := Classify(tagName)
	return ok && t == Void
}

// KnownTags returns all tag names present in the catalog, in unspecified
// order. It is intended for tooling and tests.
func KnownTags() []string {
	tags := make([]string, 0, len(htmlTags))
	for tag := range htmlTags {
		tags = append(tags, tag)
	}
	return tags
}
