package markup

import (
	"strings"
	"testing"

	"github.com/diamondburned/cchat-mock/segments"
	"github.com/diamondburned/cchat/text"
	"github.com/stretchr/testify/assert"
)

type linkSegment struct {
	start, end int
	url        string
}

func (l linkSegment) Bounds() (int, int) { return l.start, l.end }
func (l linkSegment) Link() string        { return l.url }

type attrSegment struct {
	start, end int
	attr       text.Attribute
}

func (a attrSegment) Bounds() (int, int)        { return a.start, a.end }
func (a attrSegment) Attribute() text.Attribute { return a.attr }

type codeSegment struct {
	start, end int
}

func (c codeSegment) Bounds() (int, int)        { return c.start, c.end }
func (c codeSegment) CodeblockLanguage() string { return "go" }

var (
	_ text.Linker      = linkSegment{}
	_ text.Attributor  = attrSegment{}
	_ text.Codeblocker = codeSegment{}
)

func TestRenderPlainEscapes(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; &amp; c", Render(text.Rich{Content: "a <b> & c"}))
}

func TestRenderColoredFull(t *testing.T) {
	content := text.Rich{Content: "astolfo is the best"}
	content.Segments = []text.Segment{
		segments.NewColored(content.Content, 0x55CDFC),
	}

	assert.Equal(t, `<span color="#55CDFC">astolfo is the best</span>`, Render(content))
}

func TestRenderLinkAndBold(t *testing.T) {
	content := text.Rich{Content: "go to example now"}
	content.Segments = []text.Segment{
		attrSegment{0, 2, text.AttrBold},
		linkSegment{6, 13, "https://example.com/?a=1&b=2"},
	}

	assert.Equal(t,
		`<span weight="bold">go</span> to `+
			`<a href="https://example.com/?a=1&amp;b=2">example</a> now`,
		Render(content),
	)
}

func TestRenderCodeblock(t *testing.T) {
	content := text.Rich{Content: "x := 1"}
	content.Segments = []text.Segment{codeSegment{0, len(content.Content)}}

	out := Render(content)
	assert.True(t, strings.HasPrefix(out, `<span font_family="monospace"`), out)
	assert.True(t, strings.HasSuffix(out, "</span>"), out)
}

func TestRenderIgnoresInvalidBounds(t *testing.T) {
	content := text.Rich{Content: "short"}
	content.Segments = []text.Segment{
		attrSegment{2, 100, text.AttrBold},
		attrSegment{4, 1, text.AttrItalics},
	}

	assert.Equal(t, "short", Render(content))
}

func TestRenderDropsCrossingSegment(t *testing.T) {
	content := text.Rich{Content: "hello world"}
	content.Segments = []text.Segment{
		attrSegment{3, 8, text.AttrBold},
		linkSegment{0, 5, "https://example.com"},
	}

	assert.Equal(t, `<a href="https://example.com">hello</a> world`, Render(content))
}

func TestRenderKeepsNestedSegments(t *testing.T) {
	content := text.Rich{Content: "hello world"}
	content.Segments = []text.Segment{
		linkSegment{6, 11, "https://example.com"},
		attrSegment{0, 11, text.AttrBold},
		attrSegment{0, 5, text.AttrItalics},
	}

	assert.Equal(t,
		`<span weight="bold"><span style="italic">hello</span> `+
			`<a href="https://example.com">world</a></span>`,
		Render(content),
	)
}
