package catalog_test

import (
	"testing"

	"github.com/npillmayer/semtree/catalog"
)

func TestClassifyKnownTags(t *testing.T) {
	et, dt, ok := catalog.Classify("div")
	if !ok {
		t.Fatal("expected 'div' to be a standard tag, isn't")
	}
	if et != catalog.Container || dt != catalog.Block {
		t.Errorf("expected div to be container/block, is %s/%s", et, dt)
	}
	et, dt, ok = catalog.Classify("span")
	if !ok || et != catalog.Container || dt != catalog.Inline {
		t.Errorf("expected span to be container/inline, is %s/%s", et, dt)
	}
	et, dt, ok = catalog.Classify("img")
	if !ok || et != catalog.Void || dt != catalog.InlineBlock {
		t.Errorf("expected img to be void/inline-block, is %s/%s", et, dt)
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	et1, dt1, ok1 := catalog.Classify("DIV")
	et2, dt2, ok2 := catalog.Classify("div")
	if !ok1 || !ok2 || et1 != et2 || dt1 != dt2 {
		t.Error("expected classification of 'DIV' and 'div' to agree, doesn't")
	}
}

func TestClassifyUnknownTag(t *testing.T) {
	_, _, ok := catalog.Classify("my-widget")
	if ok {
		t.Error("expected 'my-widget' to have no catalog entry, has one")
	}
}

func TestClassificationIsTotal(t *testing.T) {
	for _, tag := range catalog.KnownTags() {
		et, dt, ok := catalog.Classify(tag)
		if !ok {
			t.Fatalf("tag %q listed as known but not classifiable", tag)
		}
		if et == catalog.NoElementType {
			t.Errorf("tag %q has no element type", tag)
		}
		if dt == catalog.NoDisplayType {
			t.Errorf("tag %q has no display type", tag)
		}
	}
	t.Logf("catalog covers %d tags", len(catalog.KnownTags()))
}

func TestVoidElements(t *testing.T) {
	voids := []string{"area", "base", "br", "col", "embed", "hr", "img",
		"input", "link", "meta", "source", "track", "wbr"}
	for _, tag := range voids {
		if !catalog.IsVoid(tag) {
			t.Errorf("expected %q to be a void element, isn't", tag)
		}
	}
	if catalog.IsVoid("div") {
		t.Error("expected 'div' not to be a void element, is")
	}
}

func TestRawTextIsContainerLike(t *testing.T) {
	for _, tag := range []string{"script", "style", "title", "textarea"} {
		et, _, ok := catalog.Classify(tag)
		if !ok {
			t.Fatalf("expected %q to be a standard tag, isn't", tag)
		}
		if !et.IsContainerLike() {
			t.Errorf("expected %q (%s) to be container-like, isn't", tag, et)
		}
	}
	if catalog.Void.IsContainerLike() {
		t.Error("expected void not to be container-like, is")
	}
}
