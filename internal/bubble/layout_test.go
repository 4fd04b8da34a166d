package bubble

import (
	"testing"

	"github.com/diamondburned/cchat"
	"github.com/diamondburned/cchat/text"
	"github.com/stretchr/testify/assert"
)

var (
	friend = User{ID: "friend", Name: "Astolfo"}
	me     = User{ID: "me", Name: "Diamond", IsCurrentUser: true}

	viewport = Context{ViewportWidth: 400}
)

func plain(s string) text.Rich {
	return text.Rich{Content: s}
}

// widthOf measures every text as the given width.
func widthOf(w float64) Measurer {
	return MeasurerFunc(func(text.Rich) float64 { return w })
}

// panicMeasurer fails the test if text is measured at all.
func panicMeasurer(t *testing.T) Measurer {
	return MeasurerFunc(func(r text.Rich) float64 {
		t.Fatalf("unexpected measurement of %q", r.Content)
		return 0
	})
}

func image(id string) Attachment {
	return ImageAttachment{ID: cchat.ID(id), URL: "https://example.com/" + id + ".png"}
}

func TestDecideVariants(t *testing.T) {
	tests := []struct {
		name    string
		msg     Message
		width   float64
		variant Variant
		text    Arrangement
	}{
		{
			name:    "empty",
			msg:     Message{User: friend},
			variant: Empty,
		},
		{
			name:    "short text",
			msg:     Message{User: friend, Text: plain("Hi, buddy!")},
			width:   60,
			variant: TextInline,
			text:    Inline,
		},
		{
			name:    "long text",
			msg:     Message{User: me, Text: plain("hello hello hello")},
			width:   300,
			variant: TextStacked,
			text:    Stacked,
		},
		{
			name:    "text exactly at threshold",
			msg:     Message{User: me, Text: plain("hello")},
			width:   280, // 0.7 * 400
			variant: TextStacked,
			text:    Stacked,
		},
		{
			name:    "attachments only",
			msg:     Message{User: friend, Attachments: []Attachment{image("a")}},
			variant: AttachmentsOnly,
		},
		{
			name: "attachments with short text",
			msg: Message{
				User:        friend,
				Text:        plain("look"),
				Attachments: []Attachment{image("a"), image("b")},
			},
			width:   30,
			variant: AttachmentsWithText,
			text:    Inline,
		},
		{
			name: "attachments with long text",
			msg: Message{
				User:        me,
				Text:        plain("look at all of these"),
				Attachments: []Attachment{image("a")},
			},
			width:   399,
			variant: AttachmentsWithText,
			text:    Stacked,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			l := Decide(test.msg, false, viewport, widthOf(test.width))
			assert.Equal(t, test.variant, l.Variant)
			assert.Equal(t, test.text, l.Text)
		})
	}
}

func TestDecideDoesNotMeasureEmptyText(t *testing.T) {
	msg := Message{User: friend, Attachments: []Attachment{image("a")}}
	l := Decide(msg, false, viewport, panicMeasurer(t))

	assert.Equal(t, 0.0, l.BodyWidth)
}

func TestDecideOwnMessage(t *testing.T) {
	for status := StatusNone; status < statusLen; status++ {
		msg := Message{User: me, Status: status, Text: plain("hey")}
		l := Decide(msg, false, viewport, widthOf(10))

		assert.Equal(t, Trailing, l.Side, status)
		assert.Equal(t, SchemeOwn, l.Scheme, status)
		assert.False(t, l.ShowAvatar, status)
		assert.Equal(t, status != StatusNone, l.ShowStatus, status)
		assert.Equal(t, BubbleInset, l.BubbleInsets.Start)
		assert.Zero(t, l.BubbleInsets.End)
	}
}

func TestDecideOtherAuthorNeverShowsStatus(t *testing.T) {
	for status := StatusNone; status < statusLen; status++ {
		msg := Message{User: friend, Status: status, Text: plain("hey")}
		l := Decide(msg, false, viewport, widthOf(10))

		assert.Equal(t, Leading, l.Side, status)
		assert.Equal(t, SchemeOther, l.Scheme, status)
		assert.True(t, l.ShowAvatar, status)
		assert.False(t, l.ShowStatus, status)
		assert.Equal(t, BubbleInset, l.BubbleInsets.End)
		assert.Zero(t, l.BubbleInsets.Start)
	}
}

func TestDecideFillAndWidth(t *testing.T) {
	withText := Message{User: friend, Text: plain("hey")}
	l := Decide(withText, false, viewport, widthOf(10))
	assert.True(t, l.Fill)
	assert.Zero(t, l.Width)
	assert.False(t, l.TimestampOverlay)

	gridOnly := Message{User: friend, Attachments: []Attachment{image("a")}}
	l = Decide(gridOnly, false, viewport, widthOf(10))
	assert.False(t, l.Fill)
	assert.Equal(t, AttachmentsWidth, l.Width)
	assert.True(t, l.TimestampOverlay)

	both := Message{
		User:        friend,
		Text:        plain("hey"),
		Attachments: []Attachment{image("a")},
	}
	l = Decide(both, false, viewport, widthOf(10))
	assert.True(t, l.Fill)
	assert.Equal(t, AttachmentsWidth, l.Width)
	assert.False(t, l.TimestampOverlay)
}

func TestDecideTopPadding(t *testing.T) {
	msg := Message{User: friend, Text: plain("hey")}

	l := Decide(msg, false, viewport, widthOf(10))
	assert.Equal(t, TopPadding, l.Padding.Top)
	assert.False(t, l.AvatarHidden)

	l = Decide(msg, true, viewport, widthOf(10))
	assert.Equal(t, TightTopPadding, l.Padding.Top)
	assert.True(t, l.ShowAvatar, "hidden avatars keep their slot")
	assert.True(t, l.AvatarHidden)
}

func TestDecideViewportDependent(t *testing.T) {
	msg := Message{User: friend, Text: plain("a reasonably long line")}
	m := widthOf(200)

	narrow := Decide(msg, false, Context{ViewportWidth: 250}, m)
	wide := Decide(msg, false, Context{ViewportWidth: 1000}, m)

	assert.Equal(t, TextStacked, narrow.Variant)
	assert.Equal(t, TextInline, wide.Variant)
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "AttachmentsWithText", AttachmentsWithText.String())
	assert.Equal(t, "Variant(?)", Variant(42).String())
}
