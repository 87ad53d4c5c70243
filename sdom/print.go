package sdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	tp "github.com/xlab/treeprint"
)

// Fragment is an ordered sequence of top-level semantic nodes, without an
// enclosing root.
type Fragment []Node

func (f Fragment) String() string {
	var b strings.Builder
	for i, n := range f {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Dump(n))
	}
	return b.String()
}

// Dump returns an ASCII tree diagram of a semantic (sub-)tree, suitable
// for test logs and debugging.
func Dump(node Node) string {
	p := tp.New()
	ppn(p, node)
	return p.String()
}

func ppn(p tp.Tree, node Node) {
	if node == nil {
		return
	}
	label := nodeLabel(node)
	container, ok := node.(Container)
	if !ok || len(container.Children()) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range container.Children() {
		ppn(branch, ch)
	}
}

func nodeLabel(node Node) string {
	var b strings.Builder
	switch n := node.(type) {
	case Element:
		b.WriteString("<")
		b.WriteString(n.TagName())
		for _, a := range n.Attributes().All() {
			b.WriteString(" ")
			b.WriteString(a.Key)
			b.WriteString("=\"")
			b.WriteString(a.Value)
			b.WriteString("\"")
		}
		b.WriteString(">")
	case *Text:
		b.WriteString(n.String())
	case *Comment:
		b.WriteString(n.String())
	case *RawData:
		b.WriteString(n.String())
	default:
		b.WriteString(node.Type().String())
	}
	return b.String()
}
