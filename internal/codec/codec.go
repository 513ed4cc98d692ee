// Package codec converts question collections to and from their file encodings.
// It only performs syntactic decoding; shape checks live in DecodeBatch.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/qbank/internal/models"
)

// Format names a file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultFilename is offered when exporting without an explicit name.
const DefaultFilename = "questions.json"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FormatForPath picks the encoding from the file extension. Anything that is
// not .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Marshal encodes value as pretty-printed text with a two-space indent and
// a trailing newline. Struct fields keep declaration order; map keys are sorted.
func Marshal(value any, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, value, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the pretty-printed encoding of value to w.
func Encode(w io.Writer, value any, format Format) error {
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	default:
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	}
}

// Parse decodes a single document into a generic value.
func Parse(data []byte, format Format) (any, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	switch format {
	case FormatYAML:
		return parseYAML(data)
	default:
		return parseJSON(data)
	}
}

func parseJSON(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var value any
	if err := decoder.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, &ParseError{Format: FormatJSON, Err: err}
	}
	var extra any
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			err = errors.New("multiple documents are not supported")
		}
		return nil, &ParseError{Format: FormatJSON, Err: err}
	}
	return value, nil
}

func parseYAML(data []byte) (any, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	var value any
	if err := decoder.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, &ParseError{Format: FormatYAML, Err: err}
	}
	var extra any
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			err = errors.New("multiple documents are not supported")
		}
		return nil, &ParseError{Format: FormatYAML, Err: err}
	}
	return value, nil
}

// DecodeBatch maps a parsed value onto question drafts. The top-level value
// must be a sequence. Elements are decoded field by field without validation,
// so missing fields become zero values and an incoming id is discarded.
func DecodeBatch(value any) ([]models.Draft, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, &ShapeError{Index: -1, Err: fmt.Errorf("top-level value is %s", describe(value))}
	}

	drafts := make([]models.Draft, 0, len(items))
	for i, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, &ShapeError{Index: i, Err: err}
		}
		var draft models.Draft
		if err := json.Unmarshal(raw, &draft); err != nil {
			return nil, &ShapeError{Index: i, Err: err}
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "an object"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case json.Number, int, int64, float64:
		return "a number"
	default:
		return fmt.Sprintf("%T", value)
	}
}
