package semtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/semtree/catalog"
	"github.com/npillmayer/semtree/sdom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Converter turns parsed HTML nodes into semantic tree nodes. It consults
// its registry first and falls back to the standard element catalog.
// Converters are cheap; create one per registry.
type Converter struct {
	registry *Registry
}

// New creates a converter for a registry. A nil registry is valid and
// leaves only the catalog fallback, i.e. purely standard HTML conversion.
func New(registry *Registry) *Converter {
	return &Converter{registry: registry}
}

// ConvertFragment parses an HTML fragment in body context and converts
// each top-level element, in document order, into a semantic node.
// A single element never aborts the whole fragment: elements either yield
// a node or are skipped silently.
func (c *Converter) ConvertFragment(markup string) (sdom.Fragment, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return nil, fmt.Errorf("cannot parse HTML fragment: %w", err)
	}
	var elements []*html.Node
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			elements = append(elements, n)
		}
	}
	return c.ConvertElements(elements), nil
}

// ConvertElements converts a sequence of parsed elements into a fragment,
// preserving order and dropping elements that convert to nothing.
func (c *Converter) ConvertElements(elements []*html.Node) sdom.Fragment {
	var frag sdom.Fragment
	for _, n := range elements {
		if converted := c.ConvertElement(n); converted != nil {
			frag = append(frag, converted)
		}
	}
	return frag
}

// ConvertDocument converts the body of a parsed HTML document into a
// block container.
func (c *Converter) ConvertDocument(doc *html.Node) (sdom.Node, error) {
	body := findBody(doc)
	if body == nil {
		return nil, fmt.Errorf("document has no body")
	}
	return c.ConvertElement(body), nil
}

func findBody(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if body := findBody(ch); body != nil {
			return body
		}
	}
	return nil
}

// ConvertElement converts a single parsed element into a semantic element
// node. Registered tags take precedence over the standard catalog, even
// where they collide with standard HTML tags. A nil or non-element input
// yields nil, which propagates as an absence, not an error.
func (c *Converter) ConvertElement(n *html.Node) sdom.Node {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	tag := strings.ToLower(n.Data)
	if def, ok := c.registry.Lookup(tag); ok {
		element := def.New()
		c.copyAttributes(n, element)
		if container, ok := element.(sdom.Container); ok {
			c.convertChildren(n, container)
		}
		return element
	}
	element := c.standardElement(tag)
	c.copyAttributes(n, element)
	if container, ok := element.(sdom.Container); ok {
		c.convertChildren(n, container)
	}
	return element
}

// standardElement selects one of the four standard element shapes from
// the catalog classification. Raw-text and escapable-raw-text elements
// are structurally containers for this conversion, whatever a renderer
// makes of their content.
func (c *Converter) standardElement(tag string) sdom.Element {
	elementType, displayType, known := catalog.Classify(tag)
	if !known {
		// most plausibly an unregistered custom element
		tracer().Debugf("unknown tag <%s>, treating as block container", tag)
		return sdom.BlockContainer(tag)
	}
	switch elementType {
	case catalog.Void:
		switch displayType {
		case catalog.Block:
			return sdom.BlockVoid(tag)
		case catalog.Inline, catalog.InlineBlock:
			return sdom.InlineVoid(tag)
		default:
			return sdom.InlineVoid(tag)
		}
	case catalog.Container, catalog.RawText, catalog.EscapableRawText:
		switch displayType {
		case catalog.Block:
			return sdom.BlockContainer(tag)
		case catalog.Inline, catalog.InlineBlock:
			return sdom.InlineContainer(tag)
		default:
			return sdom.BlockContainer(tag)
		}
	default:
		return sdom.BlockContainer(tag)
	}
}

// convertNode discriminates a parsed child node. Absences are expected
// outcomes: whitespace-only text, and node kinds the semantic tree has no
// variant for.
func (c *Converter) convertNode(n *html.Node) sdom.Node {
	switch n.Type {
	case html.ElementNode:
		return c.ConvertElement(n)
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return nil
		}
		return sdom.NewText(text)
	case html.CommentNode:
		return sdom.NewComment(n.Data)
	case html.RawNode:
		return sdom.NewRawData(n.Data)
	default:
		// doctype nodes and the like; skipping is intentional, but
		// observable through the trace
		tracer().Infof("no semantic variant for HTML node type %d, skipping", n.Type)
		return nil
	}
}

func (c *Converter) convertChildren(n *html.Node, parent sdom.Container) {
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if converted := c.convertNode(ch); converted != nil {
			parent.AppendChild(converted)
		}
	}
}

// copyAttributes copies all input attributes onto a freshly constructed
// element, container or void alike. Later duplicates from the input
// overwrite earlier ones.
func (c *Converter) copyAttributes(n *html.Node, element sdom.Element) {
	for _, a := range n.Attr {
		element.Attributes().Set(a.Key, a.Val)
	}
}
