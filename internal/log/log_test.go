package log

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppendEntryBounded(t *testing.T) {
	var entries []Entry
	for i := 0; i < MaxEntries+10; i++ {
		entries = appendEntry(entries, Entry{Msg: string(rune('a' + i%26))})
	}

	assert.Len(t, entries, MaxEntries)
	// The first 10 entries were dropped.
	assert.Equal(t, string(rune('a'+10%26)), entries[0].Msg)
}

func TestTrimNewline(t *testing.T) {
	assert.Equal(t, "hello", trimNewline("hello\n\n"))
	assert.Equal(t, "", trimNewline("\n"))
	assert.Equal(t, "a\nb", trimNewline("a\nb"))
}

func TestEntryString(t *testing.T) {
	tm := time.Date(2020, time.December, 30, 7, 15, 27, 0, time.UTC)
	e := Entry{Time: tm, Msg: "Error: oops"}

	assert.Equal(t, "Dec 30 07:15:27: Error: oops", e.String())
}
