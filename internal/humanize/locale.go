package humanize

import (
	"strings"
	"sync"
	"unicode"

	"github.com/Xuanwo/go-locale"
	"github.com/diamondburned/cchat-bubble/internal/log"
	"github.com/goodsign/monday"
)

var Locale monday.Locale = monday.LocaleEnUS // changed on first use

var localeOnce sync.Once

func lettersOnly(str string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, str)
}

func ensureLocale() {
	localeOnce.Do(func() {
		tag, err := locale.Detect()
		if err != nil {
			return
		}

		if l, ok := supported(tag.String()); ok {
			Locale = l
			return
		}

		log.Printlnf("Locale %s not found, defaulting to %s", tag, monday.LocaleEnUS)
	})
}

// supported looks up a monday locale matching the given BCP 47 tag, ignoring
// separators.
func supported(tag string) (monday.Locale, bool) {
	want := lettersOnly(tag)

	for _, l := range monday.ListLocales() {
		if strings.EqualFold(lettersOnly(string(l)), want) {
			return l, true
		}
	}

	return "", false
}
