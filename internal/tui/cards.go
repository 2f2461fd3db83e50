package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/n0roo/workshop/internal/idea"
)

// cardTags returns the badges shown under a card: every product type and at
// most techniqueLimit techniques.
func cardTags(it idea.Idea, techniqueLimit int) (productTypes, techniques []string) {
	productTypes, _ = it.Tags.Get(idea.TagProductType)
	techniques, _ = it.Tags.Get(idea.TagTechnique)
	if techniqueLimit >= 0 && len(techniques) > techniqueLimit {
		techniques = techniques[:techniqueLimit]
	}
	return productTypes, techniques
}

func renderCard(it idea.Idea, width, techniqueLimit int, selected bool) string {
	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	desc := ansi.Truncate(it.Description, inner, "…")

	productTypes, techniques := cardTags(it, techniqueLimit)
	var badges []string
	for _, t := range productTypes {
		badges = append(badges, tagSecondaryStyle.Render(t))
	}
	for _, t := range techniques {
		badges = append(badges, tagOutlineStyle.Render("["+t+"]"))
	}

	body := desc
	if len(badges) > 0 {
		body += "\n" + ansi.Truncate(strings.Join(badges, " "), inner, "…")
	}
	return style.Width(inner + style.GetHorizontalPadding()).Render(body)
}
