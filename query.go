package semtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/semtree/sdom"
	"golang.org/x/net/html"
)

// ErrNotRegistered is returned when a query names an element kind that
// was never registered with the converter's registry.
var ErrNotRegistered = errors.New("element kind is not registered")

// ParseDocument parses a complete HTML document, for use with
// ConvertDocument and AllOfType.
func ParseDocument(markup string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("cannot parse HTML document: %w", err)
	}
	return doc, nil
}

// AllOfType selects all occurrences of a registered semantic element kind
// from a parsed document and converts each of them. The kind must have
// been registered, otherwise ErrNotRegistered is returned.
func AllOfType[T sdom.Element](c *Converter, doc *html.Node) ([]T, error) {
	kind := reflect.TypeOf((*T)(nil)).Elem()
	tag, ok := c.registry.TagNameFor(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, kind)
	}
	sel, err := cascadia.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("cannot select tag %q: %w", tag, err)
	}
	var found []T
	for _, n := range cascadia.QueryAll(doc, sel) {
		converted := c.ConvertElement(n)
		if instance, ok := converted.(T); ok {
			found = append(found, instance)
		}
	}
	return found, nil
}
