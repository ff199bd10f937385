package markdown

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// calloutPattern matches the first line of a callout blockquote:
// [!TYPE] optional-title.
var calloutPattern = regexp.MustCompile(`^\[!([A-Za-z]+)\][ \t]*(.*)$`)

// rewriteCallouts scans the converted HTML for blockquotes whose first
// paragraph starts with a [!TYPE] marker and rewrites them into titled
// callout containers. Blockquotes without the expected inner structure are
// left untouched; any parse or render failure returns the input unchanged.
func rewriteCallouts(in string) string {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(in), body)
	if err != nil {
		return in
	}
	var buf bytes.Buffer
	for _, n := range nodes {
		walkCallouts(n)
		if err := html.Render(&buf, n); err != nil {
			return in
		}
	}
	return buf.String()
}

func walkCallouts(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Blockquote {
		rewriteBlockquote(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkCallouts(c)
	}
}

// rewriteBlockquote turns a single marked blockquote into a callout div.
// The marker line is removed from the first paragraph; the title defaults to
// the TYPE uppercased when no title text follows. Each structural check
// bails out without modifying the element.
func rewriteBlockquote(bq *html.Node) {
	p := firstElementChild(bq)
	if p == nil || p.DataAtom != atom.P {
		return
	}
	txt := p.FirstChild
	if txt == nil || txt.Type != html.TextNode {
		return
	}

	line, rest, hasRest := strings.Cut(txt.Data, "\n")
	m := calloutPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return
	}
	typ := strings.ToLower(m[1])
	title := strings.TrimSpace(m[2])
	if title == "" {
		title = strings.ToUpper(typ)
	}

	// Strip the marker line; drop the paragraph if nothing else is in it.
	if hasRest {
		txt.Data = rest
	} else {
		p.RemoveChild(txt)
		if p.FirstChild == nil {
			bq.RemoveChild(p)
		}
	}

	bq.Data = "div"
	bq.DataAtom = atom.Div
	bq.Attr = []html.Attribute{{Key: "class", Val: "callout callout-" + typ}}

	titleNode := &html.Node{
		Type:     html.ElementNode,
		Data:     "p",
		DataAtom: atom.P,
		Attr:     []html.Attribute{{Key: "class", Val: "callout-title"}},
	}
	titleNode.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	bq.InsertBefore(titleNode, bq.FirstChild)
}

// firstElementChild skips whitespace-only text nodes between the blockquote
// open tag and its first paragraph.
func firstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return nil
		}
	}
	return nil
}
