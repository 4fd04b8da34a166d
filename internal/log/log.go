package log

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// MaxEntries is the number of entries kept in memory.
const MaxEntries = 256

var globalBuffer struct {
	sync.Mutex
	entries  []Entry
	handlers []func(Entry)
}

func init() {
	AddEntryHandler(func(entry Entry) {
		fmt.Fprintln(os.Stderr, entry)
	})
}

type Entry struct {
	Time time.Time
	Msg  string
}

func (entry Entry) String() string {
	return entry.Time.Format(time.Stamp) + ": " + entry.Msg
}

// AddEntryHandler adds a handler, which will run asynchronously.
func AddEntryHandler(fn func(Entry)) {
	globalBuffer.Lock()
	globalBuffer.handlers = append(globalBuffer.handlers, fn)
	globalBuffer.Unlock()
}

// Entries returns a copy of the most recent entries, oldest first.
func Entries() []Entry {
	globalBuffer.Lock()
	defer globalBuffer.Unlock()

	return append([]Entry(nil), globalBuffer.entries...)
}

func Error(err error) {
	Write("Error: " + err.Error())
}

func Warn(err error) {
	Write("Warn: " + err.Error())
}

func Println(v ...interface{}) {
	Write(fmt.Sprintln(v...))
}

func Printlnf(f string, v ...interface{}) {
	Write(fmt.Sprintf(f, v...))
}

func Write(msg string) {
	WriteEntry(Entry{
		Time: time.Now(),
		Msg:  trimNewline(msg),
	})
}

func WriteEntry(entry Entry) {
	go func() {
		globalBuffer.Lock()
		globalBuffer.entries = appendEntry(globalBuffer.entries, entry)
		handlers := globalBuffer.handlers
		globalBuffer.Unlock()

		for _, fn := range handlers {
			fn(entry)
		}
	}()
}

// appendEntry appends entry and drops the oldest ones past MaxEntries.
func appendEntry(entries []Entry, entry Entry) []Entry {
	entries = append(entries, entry)
	if over := len(entries) - MaxEntries; over > 0 {
		entries = append(entries[:0], entries[over:]...)
	}
	return entries
}

func trimNewline(msg string) string {
	for len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	return msg
}
