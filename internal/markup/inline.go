// Package markup turns the few trusted, inline-formatted strings of the
// content document (contributor labels) into sanitized HTML.
package markup

import (
	"bytes"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	inlineOnce   sync.Once
	inlineMD     goldmark.Markdown
	inlinePolicy *bluemonday.Policy
)

func setup() {
	inlineOnce.Do(func() {
		inlineMD = goldmark.New(
			goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
			// raw inline tags reach the sanitizer instead of being dropped
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		)

		policy := bluemonday.NewPolicy()
		policy.AllowElements("strong", "b", "em", "i", "code", "del", "br")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoReferrerOnLinks(true)
		policy.AddTargetBlankToFullyQualifiedLinks(true)
		inlinePolicy = policy
	})
}

// Inline renders s as inline HTML. Block wrappers are removed and anything
// outside a small set of inline tags is stripped.
func Inline(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	setup()

	var buf bytes.Buffer
	if err := inlineMD.Convert([]byte(s), &buf); err != nil {
		return inlinePolicy.Sanitize(s)
	}
	return strings.TrimSpace(inlinePolicy.Sanitize(buf.String()))
}
