// Package bubble decides how a single chat message bubble is laid out. It
// knows nothing about GTK: Decide turns a message snapshot into a Layout, and
// Tree turns a Layout into a framework-neutral visual tree that widget code
// interprets.
package bubble

import (
	"fmt"
	"strings"
	"time"

	"github.com/diamondburned/cchat"
	"github.com/diamondburned/cchat/text"
)

// Message is an immutable snapshot of a chat message. It is owned by the
// caller and never mutated here.
type Message struct {
	ID          cchat.ID
	User        User
	Status      Status
	Text        text.Rich
	Attachments []Attachment
	CreatedAt   time.Time
}

// HasText returns true if the message has a non-empty body.
func (msg Message) HasText() bool {
	return msg.Text.Content != ""
}

// HasAttachments returns true if the message carries any attachment.
func (msg Message) HasAttachments() bool {
	return len(msg.Attachments) > 0
}

// User is the author of a message.
type User struct {
	ID        cchat.ID
	Name      string
	AvatarURL string // may be empty
	// IsCurrentUser is true if the user is the one operating the client.
	IsCurrentUser bool
}

// Status is the delivery state of a message. The zero value means the message
// has no status.
type Status uint8

const (
	StatusNone Status = iota
	StatusSending
	StatusSent
	StatusRead
	StatusFailed
	statusLen
)

var statusNames = [statusLen]string{
	StatusNone:    "",
	StatusSending: "sending",
	StatusSent:    "sent",
	StatusRead:    "read",
	StatusFailed:  "failed",
}

// ParseStatus parses the textual form of a status. An empty string parses to
// StatusNone.
func ParseStatus(s string) (Status, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range statusNames {
		if name == s {
			return Status(i), nil
		}
	}
	return StatusNone, fmt.Errorf("unknown status %q", s)
}

func (s Status) String() string {
	if s < statusLen {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// IsValid returns true if s is a known status other than StatusNone.
func (s Status) IsValid() bool {
	return s > StatusNone && s < statusLen
}

func (s Status) MarshalText() ([]byte, error) {
	if s >= statusLen {
		return nil, fmt.Errorf("unknown status %d", uint8(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Attachment is a piece of tappable visual media attached to a message.
type Attachment interface {
	AttachmentID() cchat.ID
	// ThumbnailURL returns the URL of the preview image. It may be empty, in
	// which case the grid draws a placeholder.
	ThumbnailURL() string
	// FullURL returns the URL of the full media.
	FullURL() string
	// Size returns the intrinsic dimensions of the media, or zeroes if
	// unknown.
	Size() (w, h int)
}

// ImageAttachment is an image attached to a message.
type ImageAttachment struct {
	ID        cchat.ID
	URL       string
	Thumbnail string // falls back to URL if empty
	Width     int
	Height    int
}

var _ Attachment = (*ImageAttachment)(nil)

func (img ImageAttachment) AttachmentID() cchat.ID { return img.ID }
func (img ImageAttachment) FullURL() string        { return img.URL }
func (img ImageAttachment) Size() (w, h int)       { return img.Width, img.Height }

func (img ImageAttachment) ThumbnailURL() string {
	if img.Thumbnail != "" {
		return img.Thumbnail
	}
	return img.URL
}

// VideoAttachment is a video attached to a message. Its thumbnail is a still
// frame.
type VideoAttachment struct {
	ID        cchat.ID
	URL       string
	Thumbnail string
	Width     int
	Height    int
	Duration  time.Duration
}

var _ Attachment = (*VideoAttachment)(nil)

func (vid VideoAttachment) AttachmentID() cchat.ID { return vid.ID }
func (vid VideoAttachment) ThumbnailURL() string   { return vid.Thumbnail }
func (vid VideoAttachment) FullURL() string        { return vid.URL }
func (vid VideoAttachment) Size() (w, h int)       { return vid.Width, vid.Height }
