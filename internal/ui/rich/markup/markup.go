// Package markup renders cchat rich text into Pango markup.
package markup

import (
	"bytes"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/diamondburned/cchat-bubble/internal/log"
	"github.com/diamondburned/cchat-bubble/internal/ui/config"
	"github.com/diamondburned/cchat-bubble/internal/ui/rich/markup/attrmap"
	"github.com/diamondburned/cchat-bubble/internal/ui/rich/markup/hl"
	"github.com/diamondburned/cchat/text"
)

// QuoteColor is the foreground of quote blocks.
const QuoteColor = "#789922"

var highlightStyle = hl.DefaultStyle

func init() {
	config.AppearanceAdd("Code Highlight Style", config.Combo(
		&highlightStyle,
		hl.StyleNames(),
		func(style string) {
			if err := hl.ChangeStyle(style); err != nil {
				log.Error(err)
			}
		},
	))
}

// Render renders content into Pango markup. Empty segments, segments with
// out-of-range bounds and segments crossing an earlier one are ignored.
func Render(content text.Rich) string {
	// Fast path.
	if len(content.Segments) == 0 {
		return html.EscapeString(content.Content)
	}

	segments := nested(content)

	appended := attrmap.NewAppendedMap()

	for _, segment := range segments {
		start, end := segment.Bounds()

		if segment, ok := segment.(text.Linker); ok {
			appended.Openf(start, `<a href="%s">`, html.EscapeString(segment.Link()))
			appended.Close(end, "</a>")
		}

		if segment, ok := segment.(text.Colorer); ok {
			covered := start == 0 && end == len(content.Content)
			appended.Span(start, end, color(segment.Color(), !covered)...)
		}

		if segment, ok := segment.(text.Attributor); ok {
			appended.Span(start, end, attrMarkup(segment.Attribute()))
		}

		if segment, ok := segment.(text.Codeblocker); ok {
			hl.Segments(&appended, content.Content, start, end, segment.CodeblockLanguage())
		}

		if _, ok := segment.(text.Quoteblocker); ok {
			appended.Span(start, end, fmt.Sprintf(`color="%s"`, QuoteColor))
		}
	}

	var buf bytes.Buffer
	buf.Grow(len(content.Content))

	var lastIndex = 0

	for _, index := range appended.Finalize(len(content.Content)) {
		buf.WriteString(html.EscapeString(content.Content[lastIndex:index]))
		buf.WriteString(appended.Get(index))
		lastIndex = index
	}

	return buf.String()
}

// nested returns the valid segments of content sorted by start, outer ones
// first. A segment that starts inside another and ends past it cannot be
// expressed as nested tags, so it is dropped.
func nested(content text.Rich) []text.Segment {
	segments := make([]text.Segment, 0, len(content.Segments))
	for _, segment := range content.Segments {
		start, end := segment.Bounds()
		if start < 0 || end > len(content.Content) || start >= end {
			continue
		}
		segments = append(segments, segment)
	}

	sort.SliceStable(segments, func(i, j int) bool {
		istart, iend := segments[i].Bounds()
		jstart, jend := segments[j].Bounds()
		if istart != jstart {
			return istart < jstart
		}
		return iend > jend
	})

	// ends holds the ends of the enclosing segments, innermost last.
	ends := make([]int, 0, 4)
	kept := segments[:0]

	for _, segment := range segments {
		start, end := segment.Bounds()

		for len(ends) > 0 && ends[len(ends)-1] <= start {
			ends = ends[:len(ends)-1]
		}

		if len(ends) > 0 && end > ends[len(ends)-1] {
			continue
		}

		ends = append(ends, end)
		kept = append(kept, segment)
	}

	return kept
}

// color returns the span attributes of a coloured segment. A background tint
// is added if the segment does not cover the whole text.
func color(c uint32, bg bool) []string {
	var hex = fmt.Sprintf("#%06X", c)

	var attrs = []string{
		fmt.Sprintf(`color="%s"`, hex),
	}

	if bg {
		attrs = append(
			attrs,
			`bgalpha="10%"`,
			fmt.Sprintf(`bgcolor="%s"`, hex),
		)
	}

	return attrs
}

func attrMarkup(attr text.Attribute) string {
	if attr == 0 {
		return ""
	}

	var attrs = make([]string, 0, 1)
	if attr.Has(text.AttrBold) {
		attrs = append(attrs, `weight="bold"`)
	}
	if attr.Has(text.AttrItalics) {
		attrs = append(attrs, `style="italic"`)
	}
	if attr.Has(text.AttrUnderline) {
		attrs = append(attrs, `underline="single"`)
	}
	if attr.Has(text.AttrStrikethrough) {
		attrs = append(attrs, `strikethrough="true"`)
	}
	if attr.Has(text.AttrSpoiler) {
		attrs = append(attrs, `alpha="35%"`) // no fancy click here
	}
	if attr.Has(text.AttrMonospace) {
		attrs = append(attrs, `font_family="monospace"`)
	}

	return strings.Join(attrs, " ")
}
