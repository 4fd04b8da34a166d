package config

import (
	"encoding/json"

	"github.com/gotk3/gotk3/gtk"
)

// EntryValue with JSON serde capabilities. Unmarshaling a value also applies
// it through the entry's change callback.
type EntryValue interface {
	json.Marshaler
	json.Unmarshaler
	Construct() gtk.IWidget
}

type _combo struct {
	value   *string
	options []string
	change  func(string)
}

// Combo creates a drop-down of options. The value is stored by text, so the
// options may be reordered without breaking saved configs.
func Combo(value *string, options []string, change func(string)) EntryValue {
	return &_combo{value, options, change}
}

func (c *_combo) Construct() gtk.IWidget {
	var combo, _ = gtk.ComboBoxTextNew()
	for _, opt := range c.options {
		combo.Append(opt, opt)
	}

	combo.Connect("changed", func() {
		v := combo.GetActiveText()
		*c.value = v

		if c.change != nil {
			c.change(v)
		}
	})

	combo.SetActiveID(*c.value)
	combo.SetHAlign(gtk.ALIGN_END)
	combo.Show()

	return combo
}

func (c *_combo) MarshalJSON() ([]byte, error) {
	return json.Marshal(*c.value)
}

func (c *_combo) UnmarshalJSON(b []byte) error {
	var value string
	if err := json.Unmarshal(b, &value); err != nil {
		return err
	}
	*c.value = value

	if c.change != nil {
		c.change(value)
	}
	return nil
}

type _switch struct {
	value  *bool
	change func(bool)
}

func Switch(value *bool, change func(bool)) EntryValue {
	return &_switch{value, change}
}

func (s *_switch) Construct() gtk.IWidget {
	sw, _ := gtk.SwitchNew()
	sw.SetActive(*s.value)

	sw.Connect("notify::active", func() {
		v := sw.GetActive()
		*s.value = v

		if s.change != nil {
			s.change(v)
		}
	})

	sw.SetHAlign(gtk.ALIGN_END)
	sw.Show()

	return sw
}

func (s *_switch) MarshalJSON() ([]byte, error) {
	return json.Marshal(*s.value)
}

func (s *_switch) UnmarshalJSON(b []byte) error {
	var value bool
	if err := json.Unmarshal(b, &value); err != nil {
		return err
	}
	*s.value = value

	if s.change != nil {
		s.change(value)
	}
	return nil
}

type _inputentry struct {
	value  *string
	change func(string) error
}

// InputEntry creates a text entry. If change returns an error, the value is
// not kept and the entry shows an error icon with the message as its tooltip.
func InputEntry(value *string, change func(string) error) EntryValue {
	return &_inputentry{value, change}
}

func (e *_inputentry) Construct() gtk.IWidget {
	entry, _ := gtk.EntryNew()
	entry.SetHExpand(true)
	entry.SetText(*e.value)

	entry.Connect("changed", func() {
		v, err := entry.GetText()
		if err != nil {
			return
		}

		if err := e.set(v); err != nil {
			entry.SetIconFromIconName(gtk.ENTRY_ICON_SECONDARY, "dialog-error")
			entry.SetIconTooltipText(gtk.ENTRY_ICON_SECONDARY, err.Error())
		} else {
			entry.RemoveIcon(gtk.ENTRY_ICON_SECONDARY)
		}
	})

	entry.Show()

	return entry
}

func (e *_inputentry) MarshalJSON() ([]byte, error) {
	return json.Marshal(*e.value)
}

func (e *_inputentry) UnmarshalJSON(b []byte) error {
	var value string
	if err := json.Unmarshal(b, &value); err != nil {
		return err
	}

	return e.set(value)
}

// set stores v if change accepts it. A rejected value leaves the old one in
// place.
func (e *_inputentry) set(v string) error {
	old := *e.value
	*e.value = v

	if e.change != nil {
		if err := e.change(v); err != nil {
			*e.value = old
			return err
		}
	}

	return nil
}
