package fixture

import (
	"strconv"
	"strings"

	"github.com/diamondburned/cchat/text"
	"github.com/pkg/errors"
)

// Segment is the JSON form of a rich text segment. Exactly one of the styling
// fields is expected, but any combination is accepted.
type Segment struct {
	Start int `json:"start"`
	End   int `json:"end"`

	// Attributes is a comma-separated list of bold, italics, underline,
	// strikethrough, spoiler and monospace.
	Attributes string `json:"attributes,omitempty"`
	Link       string `json:"link,omitempty"`
	// Color is a #RRGGBB colour.
	Color string `json:"color,omitempty"`
	// Code is the language of a code block.
	Code string `json:"code,omitempty"`
	// Quote marks a quote block.
	Quote bool `json:"quote,omitempty"`
}

type span struct{ start, end int }

func (s span) Bounds() (int, int) { return s.start, s.end }

type attrSegment struct {
	span
	attr text.Attribute
}

func (s attrSegment) Attribute() text.Attribute { return s.attr }

type linkSegment struct {
	span
	url string
}

func (s linkSegment) Link() string { return s.url }

type colorSegment struct {
	span
	color uint32
}

func (s colorSegment) Color() uint32 { return s.color }

type codeSegment struct {
	span
	lang string
}

func (s codeSegment) CodeblockLanguage() string { return s.lang }

type quoteSegment struct{ span }

func (quoteSegment) QuotePrefix() string { return ">" }

var attrNames = map[string]text.Attribute{
	"bold":          text.AttrBold,
	"italics":       text.AttrItalics,
	"underline":     text.AttrUnderline,
	"strikethrough": text.AttrStrikethrough,
	"spoiler":       text.AttrSpoiler,
	"monospace":     text.AttrMonospace,
}

// segments converts s into zero or more cchat segments over content.
func (s Segment) segments(content string) ([]text.Segment, error) {
	if s.Start < 0 || s.End > len(content) || s.Start >= s.End {
		return nil, errors.Errorf("segment [%d, %d) out of bounds", s.Start, s.End)
	}

	sp := span{s.Start, s.End}
	var segs []text.Segment

	if s.Attributes != "" {
		var attr text.Attribute
		for _, name := range strings.Split(s.Attributes, ",") {
			a, ok := attrNames[strings.TrimSpace(name)]
			if !ok {
				return nil, errors.Errorf("unknown attribute %q", name)
			}
			attr |= a
		}
		segs = append(segs, attrSegment{sp, attr})
	}

	if s.Link != "" {
		segs = append(segs, linkSegment{sp, s.Link})
	}

	if s.Color != "" {
		c, err := parseColor(s.Color)
		if err != nil {
			return nil, err
		}
		segs = append(segs, colorSegment{sp, c})
	}

	if s.Code != "" {
		segs = append(segs, codeSegment{sp, s.Code})
	}

	if s.Quote {
		segs = append(segs, quoteSegment{sp})
	}

	return segs, nil
}

func parseColor(s string) (uint32, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, errors.Errorf("invalid colour %q", s)
	}

	c, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid colour %q", s)
	}

	return uint32(c), nil
}
