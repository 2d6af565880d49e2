package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// HTML parses raw bytes into a goquery document for CSS-selector extraction.
func HTML(raw []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// JSON decodes raw bytes into a generic JSON value.
func JSON(raw []byte) (map[string]any, error) {
	var value map[string]any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return value, nil
}

// Dig walks a fixed key path into nested JSON objects. The second return is
// false when any step is missing or not an object.
func Dig(value map[string]any, path ...string) (any, bool) {
	var current any = value
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// DigSlice walks a key path and asserts the leaf is a JSON array.
func DigSlice(value map[string]any, path ...string) ([]any, bool) {
	leaf, ok := Dig(value, path...)
	if !ok {
		return nil, false
	}
	slice, ok := leaf.([]any)
	return slice, ok
}

// Str reads a string field from a JSON object; absent or non-string fields
// yield the empty string.
func Str(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// Num reads a numeric field from a JSON object.
func Num(obj map[string]any, key string) (float64, bool) {
	n, ok := obj[key].(float64)
	return n, ok
}
