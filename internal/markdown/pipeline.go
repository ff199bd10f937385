// Package markdown converts raw documentation text into sanitized, highlighted,
// callout-annotated HTML. The pipeline is an ordered, total transform: each
// stage fails open, so malformed input still yields best-effort HTML.
package markdown

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Pipeline renders markdown to HTML. Safe for concurrent use; goldmark
// instances are reusable.
type Pipeline struct {
	md goldmark.Markdown
}

// NewPipeline configures the converter: GitHub-flavored syntax, soft line
// breaks not significant, auto heading ids, raw HTML passed through, and
// class-based chroma output so the highlight stylesheet can be swapped
// between light and dark without re-rendering.
func NewPipeline() *Pipeline {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Pipeline{md: md}
}

// Render runs the full transform: inline-highlight preprocessing, markdown
// conversion, callout extraction. Code highlighting happens inside the
// conversion; unrecognized languages come out as plain text.
func (p *Pipeline) Render(src []byte) (string, error) {
	src = rewriteMarks(src)

	var buf bytes.Buffer
	if err := p.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return rewriteCallouts(buf.String()), nil
}

// markPattern is the custom ==text== inline-highlight span marker. It is not
// part of the markdown grammar, so it is rewritten in the raw text before
// conversion.
var markPattern = regexp.MustCompile(`==([^=\n]+)==`)

// rewriteMarks replaces ==text== spans with <mark> elements. Lines inside
// fenced code blocks are left untouched.
func rewriteMarks(src []byte) []byte {
	lines := strings.Split(string(src), "\n")
	inFence := false
	fence := ""
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if inFence {
			if strings.HasPrefix(trimmed, fence) {
				inFence = false
			}
			continue
		}
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = true
			fence = trimmed[:3]
			continue
		}
		lines[i] = markPattern.ReplaceAllString(line, "<mark>$1</mark>")
	}
	return []byte(strings.Join(lines, "\n"))
}
