package sections

import (
	"bytes"
	"encoding/json"
)

// Overrides is the open field bag attached to a section instance.
type Overrides map[string]any

// Clone returns a shallow copy of o. Nil stays nil.
func (o Overrides) Clone() Overrides {
	if o == nil {
		return nil
	}
	out := make(Overrides, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Entry is one stored section. It accepts both the bare string form and the
// {type, overrides} object form; Inline records which one was read so writes
// keep the editor's choice.
type Entry struct {
	Type      string
	Overrides Overrides
	Inline    bool
	// Malformed is set for entries of an unrecognised shape; they are kept
	// on read and dropped by Normalize.
	Malformed bool
}

// Bare returns the string form entry for t.
func Bare(t Kind) Entry {
	return Entry{Type: string(t)}
}

// Instance returns the object form entry for t.
func Instance(t Kind, overrides Overrides) Entry {
	return Entry{Type: string(t), Overrides: overrides, Inline: true}
}

type entryObject struct {
	Type      string    `json:"type"`
	Overrides Overrides `json:"overrides,omitempty"`
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*e = Entry{}
	if len(trimmed) == 0 {
		e.Malformed = true
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			e.Malformed = true
			return nil
		}
		e.Type = s
	case '{':
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			e.Malformed = true
			return nil
		}
		var t string
		if err := json.Unmarshal(raw["type"], &t); err != nil {
			e.Malformed = true
			return nil
		}
		e.Type = t
		e.Inline = true
		if ov, ok := raw["overrides"]; ok {
			var overrides Overrides
			if err := json.Unmarshal(ov, &overrides); err == nil {
				e.Overrides = overrides
			}
		}
	default:
		e.Malformed = true
	}
	return nil
}

func (e Entry) MarshalJSON() ([]byte, error) {
	if !e.Inline && len(e.Overrides) == 0 {
		return json.Marshal(e.Type)
	}
	return json.Marshal(entryObject{Type: e.Type, Overrides: e.Overrides})
}

// EntryList decodes leniently: anything other than a JSON array reads as an
// empty list.
type EntryList []Entry

func (l *EntryList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		*l = nil
		return nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(trimmed, &raws); err != nil {
		*l = nil
		return nil
	}
	out := make(EntryList, 0, len(raws))
	for _, raw := range raws {
		var entry Entry
		_ = entry.UnmarshalJSON(raw)
		out = append(out, entry)
	}
	*l = out
	return nil
}

// PageDefinition is the document stored under page-<slug>.
type PageDefinition struct {
	Title     string               `json:"title"`
	Sections  EntryList            `json:"sections"`
	Overrides map[string]Overrides `json:"overrides,omitempty"`
}

// Types lists the section types in stored order.
func (d PageDefinition) Types() []string {
	out := make([]string, 0, len(d.Sections))
	for _, entry := range d.Sections {
		out = append(out, entry.Type)
	}
	return out
}
