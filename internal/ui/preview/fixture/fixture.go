// Package fixture provides the messages shown by the preview window, either
// read from a JSON file in the config directory or built in.
package fixture

import (
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/diamondburned/cchat"
	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/diamondburned/cchat-bubble/internal/ui/config"
	"github.com/diamondburned/cchat/text"
	"github.com/pkg/errors"
)

// File is the name of the fixture file inside the config directory.
const File = "preview.json"

// Set is the JSON form of a list of messages.
type Set struct {
	Users    []User    `json:"users"`
	Messages []Message `json:"messages"`
}

// User is the JSON form of bubble.User.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Me        bool   `json:"me,omitempty"`
}

// Message is the JSON form of bubble.Message. Author refers to a user ID in
// the same set.
type Message struct {
	ID          string        `json:"id"`
	Author      string        `json:"author"`
	Status      bubble.Status `json:"status,omitempty"`
	Text        string        `json:"text,omitempty"`
	Segments    []Segment     `json:"segments,omitempty"`
	Attachments []Attachment  `json:"attachments,omitempty"`
	// Time is an RFC 3339 timestamp. If omitted, messages are spaced a minute
	// apart ending at the load time.
	Time time.Time `json:"time,omitempty"`
}

// Attachment is the JSON form of an image or video attachment.
type Attachment struct {
	Kind      string `json:"kind"` // "image" or "video"
	ID        string `json:"id"`
	URL       string `json:"url,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	// Duration is a Go duration string, such as "1m30s".
	Duration string `json:"duration,omitempty"`
}

// Load reads the fixture file from the config directory. If the file does
// not exist or has no messages, the built-in set is returned.
func Load(now time.Time) ([]bubble.Message, error) {
	var set Set

	if err := config.UnmarshalFromFile(File, &set); err != nil {
		return nil, errors.Wrap(err, "failed to read fixtures")
	}

	if len(set.Messages) == 0 {
		return Builtin(now), nil
	}

	return set.Build(now)
}

// Decode reads a set from r and builds its messages.
func Decode(r io.Reader, now time.Time) ([]bubble.Message, error) {
	var set Set

	if err := json.NewDecoder(r).Decode(&set); err != nil {
		return nil, errors.Wrap(err, "failed to decode fixtures")
	}

	return set.Build(now)
}

// Build converts the set into messages.
func (s Set) Build(now time.Time) ([]bubble.Message, error) {
	users := make(map[string]bubble.User, len(s.Users))
	for _, u := range s.Users {
		if u.ID == "" {
			return nil, errors.New("user with an empty ID")
		}
		users[u.ID] = bubble.User{
			ID:            cchat.ID(u.ID),
			Name:          u.Name,
			AvatarURL:     u.AvatarURL,
			IsCurrentUser: u.Me,
		}
	}

	msgs := make([]bubble.Message, len(s.Messages))

	for i, m := range s.Messages {
		user, ok := users[m.Author]
		if !ok {
			return nil, errors.Errorf("message %d: unknown author %q", i, m.Author)
		}

		msg, err := m.build(user)
		if err != nil {
			return nil, errors.Wrapf(err, "message %d", i)
		}

		if msg.CreatedAt.IsZero() {
			msg.CreatedAt = now.Add(-time.Duration(len(s.Messages)-1-i) * time.Minute)
		}

		msgs[i] = msg
	}

	return msgs, nil
}

func (m Message) build(user bubble.User) (bubble.Message, error) {
	msg := bubble.Message{
		ID:        cchat.ID(m.ID),
		User:      user,
		Status:    m.Status,
		Text:      text.Rich{Content: m.Text},
		CreatedAt: m.Time,
	}

	if m.Status != bubble.StatusNone && !user.IsCurrentUser {
		return msg, errors.New("only own messages can have a status")
	}

	for _, seg := range m.Segments {
		segs, err := seg.segments(m.Text)
		if err != nil {
			return msg, err
		}
		msg.Text.Segments = append(msg.Text.Segments, segs...)
	}

	for _, a := range m.Attachments {
		att, err := a.build()
		if err != nil {
			return msg, err
		}
		msg.Attachments = append(msg.Attachments, att)
	}

	return msg, nil
}

func (a Attachment) build() (bubble.Attachment, error) {
	switch strings.ToLower(a.Kind) {
	case "", "image":
		return bubble.ImageAttachment{
			ID:        cchat.ID(a.ID),
			URL:       a.URL,
			Thumbnail: a.Thumbnail,
			Width:     a.Width,
			Height:    a.Height,
		}, nil

	case "video":
		var d time.Duration
		if a.Duration != "" {
			v, err := time.ParseDuration(a.Duration)
			if err != nil {
				return nil, errors.Wrap(err, "invalid video duration")
			}
			d = v
		}

		return bubble.VideoAttachment{
			ID:        cchat.ID(a.ID),
			URL:       a.URL,
			Thumbnail: a.Thumbnail,
			Width:     a.Width,
			Height:    a.Height,
			Duration:  d,
		}, nil

	default:
		return nil, errors.Errorf("unknown attachment kind %q", a.Kind)
	}
}
