package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const sectionEntrySchema = `{
  "oneOf": [
    {"type": "string"},
    {
      "type": "object",
      "required": ["type"],
      "properties": {
        "type": {"type": "string", "minLength": 1},
        "overrides": {"type": ["object", "null"]}
      }
    }
  ]
}`

var documentSchemas = map[string]string{
	"page": `{
  "type": "object",
  "properties": {
    "title": {"type": "string"},
    "sections": {"type": "array", "items": ` + sectionEntrySchema + `},
    "overrides": {
      "type": ["object", "null"],
      "additionalProperties": {"type": ["object", "null"]}
    }
  }
}`,
	"pages": `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["slug"],
    "properties": {
      "id": {"type": "string"},
      "name": {"type": "string"},
      "slug": {"type": "string", "minLength": 1, "pattern": "^[A-Za-z0-9][A-Za-z0-9_-]*$"}
    }
  }
}`,
	"navbar": `{
  "type": "object",
  "properties": {
    "logo": {"type": "string"},
    "menuItems": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "text": {"type": "string"},
          "link": {"type": "string"},
          "isPrimary": {"type": "boolean"},
          "submenu": {"type": ["array", "null"], "items": {"type": "object"}}
        }
      }
    }
  }
}`,
}

// DocumentValidator checks the structural documents of the page model
// (page definitions, the page registry, the navbar) before they are stored.
// Other keys are free form and pass through.
type DocumentValidator struct {
	once     sync.Once
	err      error
	compiled map[string]*jsonschema.Schema
}

// NewDocumentValidator returns a validator with lazily compiled schemas.
func NewDocumentValidator() *DocumentValidator {
	return &DocumentValidator{}
}

// Validate implements contentstore.Validator.
func (v *DocumentValidator) Validate(key string, value json.RawMessage) error {
	name := schemaFor(key)
	if name == "" {
		return nil
	}
	v.once.Do(v.compile)
	if v.err != nil {
		return v.err
	}
	if isNull(value) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(value))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return &PayloadValidationError{Key: key, Cause: err}
	}
	if err := v.compiled[name].Validate(payload); err != nil {
		return &PayloadValidationError{Key: key, Issues: Issues(err), Cause: err}
	}
	return nil
}

func (v *DocumentValidator) compile() {
	v.compiled = make(map[string]*jsonschema.Schema, len(documentSchemas))
	for name, src := range documentSchemas {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		url := name + ".json"
		if err := compiler.AddResource(url, strings.NewReader(src)); err != nil {
			v.err = fmt.Errorf("%w: %s: %v", ErrSchemaInvalid, name, err)
			return
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			v.err = fmt.Errorf("%w: %s: %v", ErrSchemaInvalid, name, err)
			return
		}
		v.compiled[name] = schema
	}
}

func schemaFor(key string) string {
	switch {
	case strings.HasPrefix(key, "page-"):
		return "page"
	case key == "pages":
		return "pages"
	case key == "navbar":
		return "navbar"
	}
	return ""
}

func isNull(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
