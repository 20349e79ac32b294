package content

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// RichText renders long form fields written as markdown into sanitised
// HTML.
type RichText struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRichText returns a renderer with the GFM extensions and the UGC
// sanitising policy.
func NewRichText() *RichText {
	return &RichText{
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts src. Blank input renders to "".
func (r *RichText) Render(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(r.policy.Sanitize(buf.String())), nil
}
