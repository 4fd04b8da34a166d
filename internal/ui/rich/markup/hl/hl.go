// Package hl highlights code blocks into Pango markup with chroma.
package hl

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/chroma"
	"github.com/alecthomas/chroma/lexers"
	"github.com/alecthomas/chroma/styles"
	"github.com/diamondburned/cchat-bubble/internal/ui/rich/markup/attrmap"
)

// DefaultStyle is the chroma style used until ChangeStyle is called.
const DefaultStyle = "algol_nu"

var state struct {
	sync.RWMutex
	lexers map[string]chroma.Lexer
	// tokenType -> span attrs
	attrs map[chroma.TokenType]string
}

func init() {
	state.lexers = map[string]chroma.Lexer{}
	ChangeStyle(DefaultStyle)
}

// StyleNames returns the names of every known style.
func StyleNames() []string {
	return styles.Names()
}

func Tokenize(language, source string) chroma.Iterator {
	var lexer = getLexer(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	i, _ := lexer.Tokenise(nil, source)
	return i
}

// Segments highlights src[start:end] as the given language and adds the
// resulting spans into the map.
func Segments(appendmap *attrmap.AppendMap, src string, start, end int, lang string) {
	appendmap.Span(
		start, end,
		`font_family="monospace"`,
		`insert_hyphens="false"`,
	)

	i := Tokenize(lang, src[start:end])
	if i == nil {
		return
	}

	state.RLock()
	defer state.RUnlock()

	offset := start

	for _, token := range i.Tokens() {
		if offset >= end {
			break
		}
		if token.Value == "" {
			continue
		}

		attr := styleAttr(token.Type)

		if attr != "" {
			appendmap.Openf(offset, `<span %s>`, attr)
		}

		offset += len(token.Value)
		// Lexers may append a trailing newline that isn't in the source.
		if offset > end {
			offset = end
		}

		if attr != "" {
			appendmap.Close(offset, "</span>")
		}
	}
}

// ChangeStyle changes the highlighting style. An empty name disables
// highlighting.
func ChangeStyle(styleName string) error {
	if styleName == "" {
		state.Lock()
		state.attrs = map[chroma.TokenType]string{}
		state.Unlock()
		return nil
	}

	s := styles.Get(styleName)
	if s == styles.Fallback && styleName != "swapoff" {
		return errors.New("unknown style " + styleName)
	}

	attrs := styleToAttrs(s)

	state.Lock()
	state.attrs = attrs
	state.Unlock()

	return nil
}

func getLexer(lang string) chroma.Lexer {
	state.Lock()
	defer state.Unlock()

	v, ok := state.lexers[lang]
	if ok {
		return v
	}

	v = lexers.Get(lang)
	if v != nil {
		state.lexers[lang] = v
	}

	return v
}

// styleAttr must be called with state held.
func styleAttr(tt chroma.TokenType) string {
	if _, ok := state.attrs[tt]; !ok {
		tt = tt.SubCategory()
	}
	if _, ok := state.attrs[tt]; !ok {
		tt = tt.Category()
	}
	return state.attrs[tt]
}

func styleToAttrs(style *chroma.Style) map[chroma.TokenType]string {
	classes := map[chroma.TokenType]string{}
	bg := style.Get(chroma.Background)

	for t := range chroma.StandardTypes {
		var entry = style.Get(t)
		if t != chroma.Background {
			entry = entry.Sub(bg)
		}
		if entry.IsZero() {
			continue
		}
		classes[t] = styleEntryToTag(entry)
	}
	return classes
}

func styleEntryToTag(e chroma.StyleEntry) string {
	var attrs = make([]string, 0, 1)

	if e.Colour.IsSet() {
		attrs = append(attrs, fmt.Sprintf(`foreground="%s"`, e.Colour.String()))
	}
	if e.Bold == chroma.Yes {
		attrs = append(attrs, `weight="bold"`)
	}
	if e.Italic == chroma.Yes {
		attrs = append(attrs, `style="italic"`)
	}
	if e.Underline == chroma.Yes {
		attrs = append(attrs, `underline="single"`)
	}

	return strings.Join(attrs, " ")
}
