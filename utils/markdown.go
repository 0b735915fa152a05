package utils

import (
	"bytes"
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md       goldmark.Markdown
	policy   *bluemonday.Policy
	initOnce sync.Once
)

func initMarkdown() {
	initOnce.Do(func() {
		md = goldmark.New(goldmark.WithExtensions(extension.GFM))
		policy = bluemonday.UGCPolicy()
	})
}

// RenderMarkdown converts post markdown to HTML and sanitizes the result
// so user content cannot inject scripts into rendered pages.
func RenderMarkdown(source string) template.HTML {
	initMarkdown()

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}
