// Package doctree is a small XML document tree, trimmed from the
// teacher's xmltree.Element: it keeps the shape the front end walks
// (name, attributes, children, text) and drops the Scope/namespace-
// prefix-resolution machinery that full QName support would need,
// since the resolver works entirely on local names (schema.Ref.Local)
// once parsing is done.
package doctree

import (
	"encoding/xml"
	"io"

	"golang.org/x/net/html/charset"
)

// Element is one node of a parsed XML document.
type Element struct {
	Space, Name string
	Attrs       []xml.Attr
	Children    []*Element
	Text        string
}

// Attr returns the value of the first attribute named local,
// ignoring namespace. The empty string is returned if no such
// attribute is present.
func (e *Element) Attr(local string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// Children named local returns e's immediate child elements whose
// local name matches, in document order.
func (e *Element) ChildrenNamed(local string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == local {
			out = append(out, c)
		}
	}
	return out
}

// Parse decodes an XML document from r into a tree of *Element,
// wiring golang.org/x/net/html/charset so that documents declaring a
// non-UTF-8 encoding (e.g. iso-8859-1) decode instead of failing,
// exactly as the teacher's xsd front end and xuri-xgen's parser both
// do.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var stack []*Element
	var root *Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				Space: t.Name.Space,
				Name:  t.Name.Local,
				Attrs: append([]xml.Attr(nil), t.Attr...),
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			} else {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}
	return root, nil
}
