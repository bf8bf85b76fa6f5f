// Package jsonvalue parses JSON documents without losing member order and
// inspects raw entries with strict type checks.
package jsonvalue

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/buger/jsonparser"

	"github.com/anujrohit1/pubfilter/internal/domain"
)

var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// Parse validates data as a single JSON value and splits its root into raw
// entries. Arrays and objects keep their order; anything else is a scalar.
func Parse(data []byte) (domain.Document, error) {
	if !utf8.Valid(data) {
		return domain.Document{}, ErrInvalidUTF8
	}

	var root json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return domain.Document{}, withPosition(data, err)
	}

	switch kindOf(root) {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(root, &items); err != nil {
			return domain.Document{}, err
		}
		return domain.NewListDocument(items), nil
	case '{':
		return parseObject(root)
	default:
		return domain.NewScalarDocument(root), nil
	}
}

func parseObject(root []byte) (domain.Document, error) {
	doc := domain.NewObjectDocument()
	// ObjectEach hands over keys already unescaped, in a reused buffer.
	err := jsonparser.ObjectEach(root, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		// A repeated key keeps its first position and takes the last value.
		doc.Object.Set(string(key), rawValue(value, typ))
		return nil
	})
	if err != nil {
		return domain.Document{}, err
	}
	return doc, nil
}

// IsObject reports whether raw holds a JSON object.
func IsObject(raw []byte) bool {
	return kindOf(raw) == '{'
}

// BoolField looks up a top-level member of a JSON object. ok is false unless
// raw is an object and the member is the literal true or false; strings,
// numbers and null never count as booleans. The last occurrence of a repeated
// member wins.
func BoolField(raw []byte, field string) (value bool, ok bool) {
	if !IsObject(raw) {
		return false, false
	}

	_ = jsonparser.ObjectEach(raw, func(key, v []byte, typ jsonparser.ValueType, _ int) error {
		if string(key) != field {
			return nil
		}
		if typ != jsonparser.Boolean {
			value, ok = false, false
			return nil
		}
		b, err := jsonparser.ParseBoolean(v)
		if err != nil {
			value, ok = false, false
			return nil
		}
		value, ok = b, true
		return nil
	})
	return value, ok
}

// IsBool reports whether raw is an object whose member field is exactly want.
func IsBool(raw []byte, field string, want bool) bool {
	v, ok := BoolField(raw, field)
	return ok && v == want
}

// rawValue turns a value handed out by jsonparser back into standalone JSON.
// jsonparser strips the quotes of string values.
func rawValue(value []byte, typ jsonparser.ValueType) json.RawMessage {
	if typ == jsonparser.String {
		out := make([]byte, 0, len(value)+2)
		out = append(out, '"')
		out = append(out, value...)
		return append(out, '"')
	}
	return bytes.Clone(value)
}

func kindOf(raw []byte) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}

// withPosition adds a line/column hint to syntax errors.
func withPosition(data []byte, err error) error {
	var se *json.SyntaxError
	if !errors.As(err, &se) {
		return err
	}
	line, col := position(data, se.Offset)
	return fmt.Errorf("%w (line %d, column %d)", err, line, col)
}

// position converts a SyntaxError offset, which counts the offending byte,
// into a 1-based line and column of that byte.
func position(data []byte, offset int64) (line, col int) {
	end := offset - 1
	if end < 0 {
		end = 0
	}
	if end > int64(len(data)) {
		end = int64(len(data))
	}
	line, col = 1, 1
	for _, b := range data[:end] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
