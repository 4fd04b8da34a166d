package bubble

import "github.com/diamondburned/cchat/text"

// Layout constants, in pixels unless noted.
const (
	// WideTextRatio is the fraction of the viewport width at which a message
	// body is considered long enough to push the timestamp onto its own line.
	WideTextRatio = 0.7
	// AttachmentsWidth is the fixed bubble width when attachments are shown.
	AttachmentsWidth = 204
	CornerRadius     = 20
	// BubbleInset is the outer horizontal inset on one side of the bubble.
	BubbleInset = 20
	// AvatarMargin is the horizontal margin on both sides of the avatar slot.
	AvatarMargin = 8

	TopPadding      = 8
	TightTopPadding = 4

	// TextInsetX and TextInsetY pad the body text inside the bubble.
	TextInsetX = 12
	TextInsetY = 8

	TimestampInsetEnd    = 12
	TimestampInsetBottom = 8
	TimestampOpacity     = 0.4

	// GridPriority is the layout priority of the attachment grid over the
	// text, which has priority 0.
	GridPriority = 2
)

// Context carries ambient layout state that the host injects.
type Context struct {
	// ViewportWidth is the width of the surface showing the message list.
	ViewportWidth float64
}

// WideThreshold returns the body width at or above which text is stacked.
func (ctx Context) WideThreshold() float64 {
	return ctx.ViewportWidth * WideTextRatio
}

// Measurer measures the rendered single-line width of a rich text in the body
// font, styling included.
type Measurer interface {
	MeasureWidth(rich text.Rich) float64
}

// MeasurerFunc is a function implementing Measurer.
type MeasurerFunc func(rich text.Rich) float64

func (fn MeasurerFunc) MeasureWidth(rich text.Rich) float64 { return fn(rich) }

// Variant is the shape of the bubble content.
type Variant uint8

const (
	// Empty has neither text nor attachments.
	Empty Variant = iota
	// TextInline places a short text and the timestamp side by side.
	TextInline
	// TextStacked places a long text above the timestamp.
	TextStacked
	// AttachmentsOnly overlays the timestamp on the grid.
	AttachmentsOnly
	// AttachmentsWithText puts the text and timestamp below the grid.
	AttachmentsWithText
)

func (v Variant) String() string {
	switch v {
	case Empty:
		return "Empty"
	case TextInline:
		return "TextInline"
	case TextStacked:
		return "TextStacked"
	case AttachmentsOnly:
		return "AttachmentsOnly"
	case AttachmentsWithText:
		return "AttachmentsWithText"
	default:
		return "Variant(?)"
	}
}

// Arrangement is how the text and the timestamp sit relative to each other.
type Arrangement uint8

const (
	NoText Arrangement = iota
	Inline
	Stacked
)

// Side is the edge of the row the bubble is anchored to.
type Side uint8

const (
	// Leading anchors the bubble to the start of the row, for other authors.
	Leading Side = iota
	// Trailing anchors the bubble to the end of the row, for own messages.
	Trailing
)

// Scheme selects one of the two colour pairs.
type Scheme uint8

const (
	SchemeOther Scheme = iota
	SchemeOwn
)

// Insets are paddings around an element.
type Insets struct {
	Top, Bottom int
	Start, End  int
}

// Layout is the full set of decisions made for one bubble.
type Layout struct {
	Variant Variant
	Text    Arrangement
	Side    Side
	Scheme  Scheme

	// ShowAvatar is true if the row has an avatar slot. AvatarHidden is true
	// if that slot is a blank of the same width.
	ShowAvatar   bool
	AvatarHidden bool
	// ShowStatus is true if the status indicator trails the bubble.
	ShowStatus bool
	Status     Status

	// Fill is true if the bubble draws its rounded background.
	Fill bool
	// Width is the fixed bubble width, or 0 for the intrinsic width.
	Width int
	// TimestampOverlay is true if the timestamp is drawn over the grid.
	TimestampOverlay bool

	Attachments int
	// BodyWidth is the measured width of the text, or 0 without text.
	BodyWidth float64

	// Padding is the outer padding of the whole row. BubbleInsets are the
	// insets around the bubble itself.
	Padding      Insets
	BubbleInsets Insets
}

// Decide computes the layout of a message. It is a pure function of its
// inputs; m is only consulted when the message has text.
func Decide(msg Message, hideAvatar bool, ctx Context, m Measurer) Layout {
	own := msg.User.IsCurrentUser

	l := Layout{
		Attachments: len(msg.Attachments),
		Padding:     Insets{Top: TopPadding},
	}

	if hideAvatar {
		l.Padding.Top = TightTopPadding
	}

	if own {
		l.Side = Trailing
		l.Scheme = SchemeOwn
		l.BubbleInsets.Start = BubbleInset
		l.ShowStatus = msg.Status.IsValid()
		if l.ShowStatus {
			l.Status = msg.Status
		}
	} else {
		l.Side = Leading
		l.Scheme = SchemeOther
		l.BubbleInsets.End = BubbleInset
		l.ShowAvatar = true
		l.AvatarHidden = hideAvatar
	}

	hasText := msg.HasText()
	hasAttachments := msg.HasAttachments()

	if hasText {
		l.Fill = true
		l.BodyWidth = m.MeasureWidth(msg.Text)

		if l.BodyWidth >= ctx.WideThreshold() {
			l.Text = Stacked
		} else {
			l.Text = Inline
		}
	}

	if hasAttachments {
		l.Width = AttachmentsWidth
		l.TimestampOverlay = !hasText
	}

	switch {
	case hasAttachments && hasText:
		l.Variant = AttachmentsWithText
	case hasAttachments:
		l.Variant = AttachmentsOnly
	case l.Text == Stacked:
		l.Variant = TextStacked
	case l.Text == Inline:
		l.Variant = TextInline
	default:
		l.Variant = Empty
	}

	return l
}
