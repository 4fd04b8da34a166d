// Package config provides the repository for configuration and preferences.
package config

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ConfigFile is the name of the file holding all sections.
const ConfigFile = "config.json"

// List of config sections.
type Section uint8

const (
	Appearance Section = iota
	Layout
	sectionLen
)

func (s Section) String() string {
	switch s {
	case Appearance:
		return "Appearance"
	case Layout:
		return "Layout"
	default:
		return "???"
	}
}

type Entry struct {
	Name  string
	Value EntryValue
}

var sections struct {
	sync.Mutex
	entries [sectionLen][]Entry
}

// Sections returns a copy of every section's entries, indexed by Section, in
// the order they were added.
func Sections() [][]Entry {
	sections.Lock()
	defer sections.Unlock()

	copied := make([][]Entry, sectionLen)
	for i, entries := range sections.entries {
		copied[i] = append([]Entry(nil), entries...)
	}
	return copied
}

// Add registers a new entry into the section. Entries with a duplicate name
// replace the old one.
func Add(section Section, name string, value EntryValue) {
	sections.Lock()
	defer sections.Unlock()

	entries := sections.entries[section]
	for i, entry := range entries {
		if entry.Name == name {
			entries[i].Value = value
			return
		}
	}

	sections.entries[section] = append(entries, Entry{name, value})
}

func AppearanceAdd(name string, value EntryValue) { Add(Appearance, name, value) }
func LayoutAdd(name string, value EntryValue)     { Add(Layout, name, value) }

// marshalSections builds the on-disk representation: section name to entry
// name to value.
func marshalSections() map[string]map[string]EntryValue {
	sections.Lock()
	defer sections.Unlock()

	out := make(map[string]map[string]EntryValue, sectionLen)
	for i, entries := range sections.entries {
		values := make(map[string]EntryValue, len(entries))
		for _, entry := range entries {
			values[entry.Name] = entry.Value
		}
		out[Section(i).String()] = values
	}
	return out
}

// Save writes every section into ConfigFile.
func Save() error {
	return MarshalToFile(ConfigFile, marshalSections())
}

// Restore reads ConfigFile and updates the values of known entries. Unknown
// sections and entries are ignored, and a missing file is not an error. An
// invalid value keeps the entry's current value; the other entries are still
// restored and all errors are returned together.
func Restore() error {
	var raw map[string]map[string]json.RawMessage

	if err := UnmarshalFromFile(ConfigFile, &raw); err != nil {
		return errors.Wrap(err, "failed to read config")
	}

	sections.Lock()
	defer sections.Unlock()

	var errs error

	for i, entries := range sections.entries {
		values, ok := raw[Section(i).String()]
		if !ok {
			continue
		}

		for _, entry := range entries {
			v, ok := values[entry.Name]
			if !ok {
				continue
			}

			if err := entry.Value.UnmarshalJSON(v); err != nil {
				errs = multierr.Append(errs, errors.Wrapf(err, "invalid value for %q", entry.Name))
			}
		}
	}

	return errs
}
