package fixture

import (
	"image"
	"image/color"

	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/disintegration/imaging"
	"github.com/twmb/murmur3"
)

// Placeholder draws a two-tone image standing in for an attachment without a
// fetchable thumbnail. The colours are derived from the attachment, so the
// same attachment always looks the same.
func Placeholder(att bubble.Attachment, w, h int) *image.NRGBA {
	if w <= 0 || h <= 0 {
		return imaging.New(1, 1, color.Transparent)
	}

	top, bottom := placeholderColors(att)

	img := imaging.New(w, h, top)
	lower := imaging.New(w, h-h/2, bottom)
	img = imaging.Overlay(img, lower, image.Pt(0, h/2), 1)

	// Soften the edge between the two halves.
	sigma := float64(h) / 8
	if sigma < 1 {
		sigma = 1
	}

	return imaging.Blur(img, sigma)
}

func placeholderColors(att bubble.Attachment) (top, bottom color.NRGBA) {
	h1, h2 := murmur3.StringSum128(string(att.AttachmentID()) + "\x00" + att.FullURL())
	return hashColor(h1), hashColor(h2)
}

// hashColor picks a muted opaque colour from the low bytes of h.
func hashColor(h uint64) color.NRGBA {
	return color.NRGBA{
		R: 0x40 + uint8(h)%0x80,
		G: 0x40 + uint8(h>>8)%0x80,
		B: 0x40 + uint8(h>>16)%0x80,
		A: 0xFF,
	}
}
