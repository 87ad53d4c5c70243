package sdom_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/semtree/sdom"
)

func TestElementVariants(t *testing.T) {
	p := sdom.BlockContainer("p")
	if p.Type() != sdom.ElementNode || p.Display() != sdom.BlockMode {
		t.Errorf("expected <p> to be a block element, is %s/%s", p.Type(), p.Display())
	}
	em := sdom.InlineContainer("em")
	if em.Display() != sdom.InlineMode {
		t.Errorf("expected <em> to be inline, is %s", em.Display())
	}
	img := sdom.InlineVoid("img")
	if _, ok := sdom.Node(img).(sdom.Container); ok {
		t.Error("expected void <img> not to be a container, is")
	}
	if _, ok := sdom.Node(p).(sdom.Container); !ok {
		t.Error("expected <p> to be a container, isn't")
	}
}

func TestAppendChildKeepsOrder(t *testing.T) {
	div := sdom.BlockContainer("div")
	div.AppendChild(sdom.NewText("a"))
	div.AppendChild(sdom.InlineContainer("em"))
	div.AppendChild(sdom.NewText("b"))
	div.AppendChild(nil) // ignored
	if len(div.Children()) != 3 {
		t.Fatalf("expected 3 children, are %d", len(div.Children()))
	}
	if txt, ok := div.Children()[2].(*sdom.Text); !ok || txt.Text() != "b" {
		t.Errorf("expected last child to be #text(b), is %v", div.Children()[2])
	}
}

func TestAttrListOrderAndOverwrite(t *testing.T) {
	var attrs sdom.AttrList
	attrs.Set("id", "x")
	attrs.Set("class", "y")
	attrs.Set("id", "z") // overwrite in place, keeps position
	if attrs.Length() != 2 {
		t.Fatalf("expected 2 attributes, are %d", attrs.Length())
	}
	if a := attrs.Item(0); a.Key != "id" || a.Value != "z" {
		t.Errorf("expected first attribute id=z, is %s=%s", a.Key, a.Value)
	}
	if v, ok := attrs.Get("class"); !ok || v != "y" {
		t.Errorf("expected class=y, is %q", v)
	}
	if _, ok := attrs.Get("missing"); ok {
		t.Error("expected 'missing' to be absent, isn't")
	}
}

func TestLeafNodes(t *testing.T) {
	c := sdom.NewComment(" hi ")
	if c.Type() != sdom.CommentNode || c.Display() != sdom.BlockMode {
		t.Error("expected comments to be block-level comment nodes, aren't")
	}
	r := sdom.NewRawData("var x;")
	if r.Type() != sdom.RawDataNode || r.Data() != "var x;" {
		t.Error("expected raw-data node to keep its content, doesn't")
	}
}

func TestDump(t *testing.T) {
	div := sdom.BlockContainer("div")
	div.Attributes().Set("id", "root")
	div.AppendChild(sdom.NewText("hello"))
	div.AppendChild(sdom.InlineVoid("br"))
	out := sdom.Dump(div)
	t.Logf("dump =\n%s", out)
	if !strings.Contains(out, `<div id="root">`) {
		t.Error("expected dump to contain the div label, doesn't")
	}
	if !strings.Contains(out, "<br>") {
		t.Error("expected dump to contain the br leaf, doesn't")
	}
}
