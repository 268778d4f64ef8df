package iconc

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ExtractedIcon is the geometry and minified inner markup of one icon
type ExtractedIcon struct {
	ViewBox string
	Content string
}

var whitespaceRun = regexp.MustCompile(`[ \t\n\r\f]+`)

// ExtractSVG locates the first <svg> element in content, reads its viewBox
// and returns its inner markup with whitespace collapsed.
// A missing <svg> element or a missing/blank viewBox yields a *MalformedSVGError.
func ExtractSVG(content []byte) (ExtractedIcon, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return ExtractedIcon{}, &MalformedSVGError{Err: err}
	}

	root := doc.Find("svg").First()
	if root.Length() == 0 {
		return ExtractedIcon{}, &MalformedSVGError{Err: ErrNoSVGElement}
	}

	viewBox, ok := root.Attr("viewBox")
	viewBox = collapse(viewBox)
	if !ok || viewBox == "" {
		return ExtractedIcon{}, &MalformedSVGError{Err: ErrMissingViewBox}
	}

	collapseWhitespace(root.Get(0))

	inner, err := root.Html()
	if err != nil {
		return ExtractedIcon{}, &MalformedSVGError{Err: err}
	}

	return ExtractedIcon{ViewBox: viewBox, Content: inner}, nil
}

// collapse replaces whitespace runs with a single space and trims the ends
func collapse(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// collapseWhitespace minifies the subtree under n in place.
// Whitespace-only text nodes are removed, other text has its whitespace runs
// collapsed to one space and is trimmed where it touches the parent's start
// or end tag. Attribute values are collapsed and trimmed. Comments are kept.
func collapseWhitespace(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
			n.RemoveChild(c)
		}
		c = next
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			text := whitespaceRun.ReplaceAllString(c.Data, " ")
			if c.PrevSibling == nil {
				text = strings.TrimLeft(text, " ")
			}
			if c.NextSibling == nil {
				text = strings.TrimRight(text, " ")
			}
			c.Data = text
		case html.ElementNode:
			for i := range c.Attr {
				c.Attr[i].Val = collapse(c.Attr[i].Val)
			}
			collapseWhitespace(c)
		}
	}
}
