package content

import (
	"encoding/json"
	"strconv"
	"strings"
)

// fields is a decoded JSON object read with "first non-empty wins" rules.
type fields map[string]any

func asFields(v any) fields {
	switch typed := v.(type) {
	case map[string]any:
		return fields(typed)
	case fields:
		return typed
	}
	return nil
}

// str returns the first non-empty scalar under keys.
func (f fields) str(keys ...string) string {
	for _, key := range keys {
		if s := scalar(f[key]); s != "" {
			return s
		}
	}
	return ""
}

// list returns the value under key when it is a non-empty array.
func (f fields) list(key string) []any {
	items, _ := f[key].([]any)
	if len(items) == 0 {
		return nil
	}
	return items
}

func (f fields) object(key string) fields {
	return asFields(f[key])
}

func scalar(v any) string {
	switch typed := v.(type) {
	case string:
		return strings.TrimSpace(typed)
	case json.Number:
		return typed.String()
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case bool:
		if typed {
			return "true"
		}
	}
	return ""
}

// pick returns the first non-empty candidate.
func pick(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// pickList chooses a whole list: a non-empty override beats a non-empty
// shared list. A nil result means the fallback list wins.
func pickList(override, shared []any) []any {
	if len(override) > 0 {
		return override
	}
	if len(shared) > 0 {
		return shared
	}
	return nil
}

// completeList maps the winning list onto T, completing each element from
// fallback[i % len(fallback)]. A nil winner yields a copy of fallback.
func completeList[T any](winner []any, fallback []T, complete func(item fields, raw any, fb T) T) []T {
	if winner == nil {
		out := make([]T, len(fallback))
		copy(out, fallback)
		return out
	}
	out := make([]T, 0, len(winner))
	for i, raw := range winner {
		var fb T
		if len(fallback) > 0 {
			fb = fallback[i%len(fallback)]
		}
		out = append(out, complete(asFields(raw), raw, fb))
	}
	return out
}

func completeString(_ fields, raw any, fb string) string {
	return pick(scalar(raw), fb)
}

func completeLink(item fields, _ any, fb Link) Link {
	return Link{
		Text: pick(item.str("text"), fb.Text),
		Link: pick(item.str("link"), fb.Link),
	}
}
