package fixture

import (
	"time"

	"github.com/diamondburned/cchat"
	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/diamondburned/cchat-mock/segments"
	"github.com/diamondburned/cchat/text"
)

var (
	Me = bubble.User{
		ID:            "me",
		Name:          "Me",
		IsCurrentUser: true,
	}
	Friend = bubble.User{
		ID:   "friend",
		Name: "Buddy Holly",
	}
	Stranger = bubble.User{
		ID:   "stranger",
		Name: "Alan Smithee",
	}
)

const longText = "This message is long enough that it cannot share a line with " +
	"its timestamp, so the time goes below it instead."

const codeText = "Check this out:\nfunc main() {\n\tprintln(\"hi\")\n}"

// Builtin returns a conversation that covers every bubble variant and every
// delivery status. Messages are a minute apart, the last one at now.
func Builtin(now time.Time) []bubble.Message {
	msgs := []bubble.Message{
		{User: Friend, Text: plain("Hi, buddy!")},
		{User: Friend, Text: plain(longText)},
		{User: Me, Status: bubble.StatusRead, Text: plain("Hey! How are you?")},
		{User: Me, Status: bubble.StatusSent, Text: codeRich()},
		{User: Friend, Attachments: images("sunset", 1)},
		{User: Friend, Text: plain("From the trip"), Attachments: images("trip", 3)},
		{User: Stranger, Text: coloredRich("Colourful hello from a stranger")},
		{User: Stranger},
		{User: Me, Status: bubble.StatusSending, Attachments: []bubble.Attachment{
			bubble.VideoAttachment{
				ID:       "clip",
				Width:    1280,
				Height:   720,
				Duration: 42 * time.Second,
			},
		}},
		{User: Me, Status: bubble.StatusSent, Text: plain("All of them"), Attachments: images("dump", 7)},
		{User: Me, Status: bubble.StatusFailed, Text: plain(longText)},
	}

	for i := range msgs {
		msgs[i].ID = cchat.ID(string(rune('a' + i)))
		msgs[i].CreatedAt = now.Add(-time.Duration(len(msgs)-1-i) * time.Minute)
	}

	return msgs
}

func plain(s string) text.Rich {
	return text.Rich{Content: s}
}

func coloredRich(s string) text.Rich {
	return text.Rich{
		Content:  s,
		Segments: []text.Segment{segments.NewColored(s, 0xE01B24)},
	}
}

func codeRich() text.Rich {
	start := len("Check this out:\n")
	return text.Rich{
		Content: codeText,
		Segments: []text.Segment{
			codeSegment{span{start, len(codeText)}, "go"},
		},
	}
}

func images(prefix string, n int) []bubble.Attachment {
	atts := make([]bubble.Attachment, n)
	for i := range atts {
		atts[i] = bubble.ImageAttachment{
			ID:     cchat.ID(prefix + "-" + string(rune('0'+i))),
			Width:  800,
			Height: 600,
		}
	}
	return atts
}
