package item

import (
	"bytes"
	"encoding/json"
)

const (
	EntryTypeAbility    = "ability"
	EntryTypeAffliction = "affliction"
)

// Entry is one rich-text block of an item description: either plain text or
// a typed object that may nest further entries.
type Entry struct {
	Text    string
	Type    string
	Name    string
	Entries []Entry

	object bool
}

// TextEntry builds a plain text entry
func TextEntry(text string) Entry {
	return Entry{Text: text}
}

// ObjectEntry builds a typed entry
func ObjectEntry(entryType, name string, children ...Entry) Entry {
	return Entry{Type: entryType, Name: name, Entries: children, object: true}
}

// IsObject reports whether the entry was an object rather than a string
func (e Entry) IsObject() bool {
	return e.object
}

type entryObject struct {
	Type    string  `json:"type,omitempty"`
	Name    string  `json:"name,omitempty"`
	Entries []Entry `json:"entries,omitempty"`
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	*e = Entry{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		return json.Unmarshal(data, &e.Text)
	case '{':
		var obj entryObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*e = Entry{Type: obj.Type, Name: obj.Name, Entries: obj.Entries, object: true}
	}

	return nil
}

func (e Entry) MarshalJSON() ([]byte, error) {
	if !e.object {
		return json.Marshal(e.Text)
	}
	return json.Marshal(entryObject{Type: e.Type, Name: e.Name, Entries: e.Entries})
}
