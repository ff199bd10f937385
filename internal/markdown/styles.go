package markdown

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightCSS generates the stylesheet for a chroma style, matching the
// class-based output the pipeline produces. The shell serves one sheet per
// theme and the client toggles between them.
func HighlightCSS(styleName string) (string, error) {
	style := styles.Get(styleName)
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return "", fmt.Errorf("writing css for style %s: %w", styleName, err)
	}
	return buf.String(), nil
}
