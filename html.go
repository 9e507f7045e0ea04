package justify

import (
	"fmt"

	"github.com/mudler/xlog"
	"jaytaylor.com/html2text"
)

// FormatHTML converts an HTML fragment to plain text and justifies the
// result like Format. Block elements come out as blank-line separated
// paragraphs, which the default paragraph separator picks up, and tables are
// rendered as pretty text tables. The error is the converter's; a justifier
// itself never fails.
func (j *Justifier) FormatHTML(html string, width, maxSpace int) (string, error) {
	text, err := html2text.FromString(html, html2text.Options{PrettyTables: true})
	if err != nil {
		return "", fmt.Errorf("failed to convert HTML to text: %w", err)
	}
	xlog.Debug("Converted HTML fragment to text", "htmlBytes", len(html), "textBytes", len(text))
	return j.Format(text, width, maxSpace), nil
}
