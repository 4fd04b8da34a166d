package gts

import (
	"bytes"
	"image"

	"github.com/diamondburned/cchat-bubble/internal/log"
	"github.com/disintegration/imaging"
	"github.com/gotk3/gotk3/gdk"
	"github.com/pkg/errors"
)

// RenderPixbuf encodes img into a pixbuf. It returns nil on failure, which is
// logged.
func RenderPixbuf(img image.Image) *gdk.Pixbuf {
	var buf bytes.Buffer

	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		log.Error(errors.Wrap(err, "failed to encode image"))
		return nil
	}

	l, err := gdk.PixbufLoaderNew()
	if err != nil {
		log.Error(errors.Wrap(err, "failed to create a pixbuf loader"))
		return nil
	}

	p, err := l.WriteAndReturnPixbuf(buf.Bytes())
	if err != nil {
		log.Error(errors.Wrap(err, "failed to load pixbuf"))
		return nil
	}

	return p
}
