package plugin

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// document is an ordered JSON object backing a record. Reads go through
// gjson, writes through sjson, so keys this version of the model does not
// interpret survive a read-modify-write cycle verbatim and in order.
type document struct {
	raw []byte
}

func newDocument() *document {
	return &document{raw: []byte("{}")}
}

// parseDocument accepts only a syntactically valid JSON object.
func parseDocument(data []byte) (*document, error) {
	trimmed := bytes.TrimSpace(data)
	if !gjson.ValidBytes(trimmed) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrMalformedInput)
	}
	if !gjson.ParseBytes(trimmed).IsObject() {
		return nil, fmt.Errorf("%w: not a JSON object", ErrMalformedInput)
	}
	raw := make([]byte, len(trimmed))
	copy(raw, trimmed)
	return &document{raw: raw}, nil
}

func (d *document) has(key string) bool {
	return gjson.GetBytes(d.raw, key).Exists()
}

func (d *document) getString(key string) string {
	return gjson.GetBytes(d.raw, key).String()
}

func (d *document) getInt(key string) int {
	return int(gjson.GetBytes(d.raw, key).Int())
}

func (d *document) getInt64(key string) int64 {
	return gjson.GetBytes(d.raw, key).Int()
}

func (d *document) getBool(key string) bool {
	return gjson.GetBytes(d.raw, key).Bool()
}

// object returns an independent copy of the nested object under key, or nil
// when the key is absent or not an object.
func (d *document) object(key string) *document {
	res := gjson.GetBytes(d.raw, key)
	if !res.IsObject() {
		return nil
	}
	return &document{raw: []byte(res.Raw)}
}

// The set/delete helpers ignore the sjson error: every key written by this
// package is a fixed identifier, never a path expression that could fail.

func (d *document) setString(key, value string) {
	if raw, err := sjson.SetBytes(d.raw, key, value); err == nil {
		d.raw = raw
	}
}

func (d *document) setInt(key string, value int) {
	if raw, err := sjson.SetBytes(d.raw, key, value); err == nil {
		d.raw = raw
	}
}

func (d *document) setInt64(key string, value int64) {
	if raw, err := sjson.SetBytes(d.raw, key, value); err == nil {
		d.raw = raw
	}
}

func (d *document) setBool(key string, value bool) {
	if raw, err := sjson.SetBytes(d.raw, key, value); err == nil {
		d.raw = raw
	}
}

// setRaw stores pre-serialized JSON under key, used for nested records.
func (d *document) setRaw(key string, value []byte) {
	if raw, err := sjson.SetRawBytes(d.raw, key, value); err == nil {
		d.raw = raw
	}
}

func (d *document) delete(key string) {
	if raw, err := sjson.DeleteBytes(d.raw, key); err == nil {
		d.raw = raw
	}
}

func (d *document) clone() *document {
	raw := make([]byte, len(d.raw))
	copy(raw, d.raw)
	return &document{raw: raw}
}
