// Package page builds the static page that sits on top of the animated
// background: a wrapper with header, main and footer, plus the full-viewport
// background element the animation is mounted into.
package page

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Profile is the text shown in the page header and footer.
type Profile struct {
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Footer string `yaml:"footer"`
}

// Props are the inputs of Layout.
type Props struct {
	Profile  Profile
	Children []*html.Node
}

// BackgroundID is the element id of the mounted background.
const BackgroundID = "bg-animation"

// backgroundStyle pins the background behind all content and keeps it from
// receiving pointer events.
var backgroundStyle = []string{
	"position: fixed",
	"inset: 0",
	"width: 100vw",
	"height: 100vh",
	"z-index: -1",
	"pointer-events: none",
}

// Element creates an element node with an optional class and children.
func Element(tag, class string, children ...*html.Node) *html.Node {
	a := atom.Lookup([]byte(tag))
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: a}
	if class != "" {
		SetAttr(n, "class", class)
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// Text creates a text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// SetAttr sets or replaces an attribute.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Attr returns the value of an attribute, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Render builds a tree and appends it to container.
func Render(build func() *html.Node, container *html.Node) {
	container.AppendChild(build())
}

// Header returns the page header with the profile name and role.
func Header(p Profile) *html.Node {
	return Element("header", "header-content",
		Element("h1", "", Text(p.Name)),
		Element("p", "", Text(p.Role)),
	)
}

// Layout wraps the children in the site structure:
// div.site-wrapper > header, main.site-main, footer.site-footer.
func Layout(props Props) *html.Node {
	mainEl := Element("main", "site-main", props.Children...)
	footer := Element("footer", "site-footer", Text(props.Profile.Footer))
	return Element("div", "site-wrapper", Header(props.Profile), mainEl, footer)
}

// Background returns the element the animation is shown in: a canvas, or an
// image when src points at a pre-rendered mosaic.
func Background(src string) *html.Node {
	var n *html.Node
	if src != "" {
		n = Element("img", "")
		SetAttr(n, "src", src)
		SetAttr(n, "alt", "")
	} else {
		n = Element("canvas", "")
	}
	SetAttr(n, "id", BackgroundID)
	SetAttr(n, "style", strings.Join(backgroundStyle, "; "))
	return n
}

// Mount inserts el as the first child of parent so it sits behind
// everything rendered after it.
func Mount(parent, el *html.Node) {
	parent.InsertBefore(el, parent.FirstChild)
}

// Document returns a complete HTML document with an empty <div id="app">
// in the body.
func Document(title string) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	meta := Element("meta", "")
	SetAttr(meta, "charset", "utf-8")
	head := Element("head", "", meta, Element("title", "", Text(title)))

	app := Element("div", "")
	SetAttr(app, "id", "app")
	body := Element("body", "", app)

	doc.AppendChild(Element("html", "", head, body))
	return doc
}

// Find returns the first node in the tree rooted at n for which match is
// true, searching depth-first.
func Find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := Find(c, match); found != nil {
			return found
		}
	}
	return nil
}

// ByID matches element nodes with the given id.
func ByID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && Attr(n, "id") == id
	}
}

// ByTag matches element nodes with the given tag name.
func ByTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

// Write serializes the tree rooted at n.
func Write(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// Build assembles the full portfolio page: a document whose body starts with
// the background element and whose #app holds Layout(props).
func Build(title, backgroundSrc string, props Props) *html.Node {
	doc := Document(title)
	body := Find(doc, ByTag("body"))
	Mount(body, Background(backgroundSrc))
	Render(func() *html.Node { return Layout(props) }, Find(doc, ByID("app")))
	return doc
}
