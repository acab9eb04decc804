package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

// Field is one labelled entry of a credits or tools block. A JSON value
// may be a single string or a list of strings.
type Field struct {
	Key    string
	Values []string
}

// Label turns a snake_case key into display words: "mix_engineer"
// becomes "Mix Engineer".
func (f Field) Label() string {
	words := strings.Fields(strings.ReplaceAll(f.Key, "_", " "))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Value joins the values for display.
func (f Field) Value() string { return strings.Join(f.Values, ", ") }

// Fields keeps a JSON object's keys in document order.
type Fields []Field

// UnmarshalJSON decodes an object of string or string-list values.
func (fs *Fields) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*fs = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	out := Fields{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		values, err := decodeValues(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		out = append(out, Field{Key: key, Values: values})
	}
	*fs = out
	return nil
}

func decodeValues(raw json.RawMessage) ([]string, error) {
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return []string{one}, nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, fmt.Errorf("want string or list of strings")
	}
	return many, nil
}
