package bubbleview

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/diamondburned/cchat-bubble/internal/bubble"
	"github.com/diamondburned/cchat-bubble/internal/log"
	"github.com/diamondburned/cchat-bubble/internal/ui/config"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
	"github.com/pkg/errors"
)

// ColorPair is the fill and text colour of one kind of bubble.
type ColorPair struct {
	Fill string
	Text string
}

// Theme holds the colours for own messages and for everyone else's.
type Theme struct {
	Own   ColorPair
	Other ColorPair
}

// DefaultTheme is used until the config says otherwise.
var DefaultTheme = Theme{
	Own:   ColorPair{Fill: "#4962FF", Text: "#FFFFFF"},
	Other: ColorPair{Fill: "#EBEDF0", Text: "#000000"},
}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// ValidateColor returns an error if s is not a #RGB, #RRGGBB or #RRGGBBAA
// colour.
func ValidateColor(s string) error {
	if !hexColor.MatchString(s) {
		return errors.Errorf("invalid colour %q", s)
	}
	return nil
}

// Validate checks every colour of the theme.
func (t Theme) Validate() error {
	for name, c := range map[string]string{
		"own fill":   t.Own.Fill,
		"own text":   t.Own.Text,
		"other fill": t.Other.Fill,
		"other text": t.Other.Text,
	} {
		if err := ValidateColor(c); err != nil {
			return errors.Wrap(err, name)
		}
	}
	return nil
}

// CSS generates the stylesheet for bubbles. The rounded fill only applies to
// bubbles with the "filled" class.
func (t Theme) CSS() string {
	return fmt.Sprintf(`
		.message-bubble.own   { color: %[1]s; }
		.message-bubble.other { color: %[2]s; }
		.message-bubble.filled {
			border-radius: %[5]dpx;
		}
		.message-bubble.own.filled   { background-color: %[3]s; }
		.message-bubble.other.filled { background-color: %[4]s; }
		.message-time {
			font-size: 0.8em;
		}
		.message-attachments button {
			padding: 0;
			border-radius: 12px;
		}
	`,
		t.Own.Text, t.Other.Text, t.Own.Fill, t.Other.Fill, bubble.CornerRadius,
	)
}

var theme struct {
	sync.Mutex
	Theme
	provider *gtk.CssProvider
}

func init() {
	theme.Theme = DefaultTheme

	config.AppearanceAdd("Own Bubble Colour", themeEntry(&theme.Own.Fill))
	config.AppearanceAdd("Own Text Colour", themeEntry(&theme.Own.Text))
	config.AppearanceAdd("Other Bubble Colour", themeEntry(&theme.Other.Fill))
	config.AppearanceAdd("Other Text Colour", themeEntry(&theme.Other.Text))
}

func themeEntry(field *string) config.EntryValue {
	return config.InputEntry(field, func(v string) error {
		if err := ValidateColor(v); err != nil {
			return err
		}
		reloadTheme()
		return nil
	})
}

// CurrentTheme returns a copy of the active theme.
func CurrentTheme() Theme {
	theme.Lock()
	defer theme.Unlock()

	return theme.Theme
}

// OrDefault returns t if it is valid, or DefaultTheme along with the reason t
// was rejected.
func (t Theme) OrDefault() (Theme, error) {
	if err := t.Validate(); err != nil {
		return DefaultTheme, err
	}
	return t, nil
}

// loadTheme adds the theme stylesheet to the default screen on first use.
// Reloading it restyles all bubbles at once.
func loadTheme() {
	theme.Lock()
	defer theme.Unlock()

	if theme.provider != nil {
		return
	}

	t, err := theme.OrDefault()
	if err != nil {
		log.Warn(errors.Wrap(err, "invalid bubble theme, using the default"))
	}

	theme.provider, _ = gtk.CssProviderNew()
	if err := theme.provider.LoadFromData(t.CSS()); err != nil {
		log.Error(errors.Wrap(err, "failed to load bubble theme"))
	}

	s, err := gdk.ScreenGetDefault()
	if err != nil {
		log.Error(errors.Wrap(err, "failed to get default screen"))
		return
	}

	gtk.AddProviderForScreen(s, theme.provider, uint(gtk.STYLE_PROVIDER_PRIORITY_APPLICATION))
}

func reloadTheme() {
	theme.Lock()
	defer theme.Unlock()

	// Don't load a half-typed colour.
	if theme.Validate() != nil || theme.provider == nil {
		return
	}

	if err := theme.provider.LoadFromData(theme.CSS()); err != nil {
		log.Error(errors.Wrap(err, "failed to reload bubble theme"))
	}
}
