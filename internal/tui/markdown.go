package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/n0roo/workshop/internal/idea"
)

// tagGroups lists the tag categories shown in the detail view, in order
var tagGroups = []struct {
	category string
	label    string
}{
	{idea.TagProductType, "Тип изделия"},
	{idea.TagTechnique, "Техника"},
	{idea.TagMaterial, "Материал"},
}

// IdeaMarkdown renders the detail view of an idea as markdown. Empty or
// absent tag groups are left out.
func IdeaMarkdown(it idea.Idea) string {
	var b strings.Builder

	b.WriteString("## Детали идеи\n\n")
	if it.ImageURL != "" {
		fmt.Fprintf(&b, "![%s](%s)\n\n", it.ID, it.ImageURL)
	}

	b.WriteString("### Описание\n\n")
	b.WriteString(it.Description)
	b.WriteString("\n")

	for _, g := range tagGroups {
		values, ok := it.Tags.Get(g.category)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n### %s\n\n", g.label)
		quoted := make([]string, len(values))
		for i, v := range values {
			quoted[i] = codeSpan(v)
		}
		b.WriteString(strings.Join(quoted, " "))
		b.WriteString("\n")
	}

	return b.String()
}

// codeSpan wraps s in an inline code span whose fence is longer than any
// backtick run inside s
func codeSpan(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	fence := strings.Repeat("`", longest+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return fence + s + fence
}

var (
	mdRendererMu sync.Mutex
	// renderers are cached by style and wrap width
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// RenderMarkdown renders md for a terminal. styled=false uses the plain
// notty style. On renderer failure the source text is returned.
func RenderMarkdown(md string, width int, styled bool) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	style := styles.NoTTYStyle
	if styled {
		// WithAutoStyle는 터미널 질의로 블록될 수 있음
		style = styles.DarkStyle
	}
	key := fmt.Sprintf("%s:%d", style, width)

	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()

	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
