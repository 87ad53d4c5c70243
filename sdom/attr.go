package sdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Attr is a single element attribute.
type Attr struct {
	Key   string
	Value string
}

// AttrList is an ordered set of attributes with unique keys. Insertion
// order is preserved; setting an existing key overwrites its value in
// place without moving the attribute.
type AttrList struct {
	attrs []Attr
}

// Set adds an attribute or overwrites the value of an existing one.
func (l *AttrList) Set(key, value string) {
	for i := range l.attrs {
		if l.attrs[i].Key == key {
			l.attrs[i].Value = value
			return
		}
	}
	l.attrs = append(l.attrs, Attr{Key: key, Value: value})
}

// Get returns the value for a key, if present.
func (l *AttrList) Get(key string) (string, bool) {
	for _, a := range l.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Length returns the number of attributes.
func (l *AttrList) Length() int {
	return len(l.attrs)
}

// Item returns the attribute at position i, in insertion order.
func (l *AttrList) Item(i int) Attr {
	return l.attrs[i]
}

// All returns the attributes in insertion order. The returned slice is
// shared with the list and must not be modified.
func (l *AttrList) All() []Attr {
	return l.attrs
}
