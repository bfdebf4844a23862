// internal/jsonutil/json.go
package jsonutil

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
)

// Indent returns an indentation unit of n spaces.
func Indent(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func newEncoder(w io.Writer, prefix, indent string) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, indent)
	return enc
}

// EncodePretty writes v as indented JSON to w, followed by a newline.
func EncodePretty(w io.Writer, v any, indent string) error {
	return newEncoder(w, "", indent).Encode(v)
}

// EncodeMember writes a single `"key": value` member the way it appears one
// level deep inside an indented object, without the enclosing braces.
// The member line itself is not indented; nested lines are.
func EncodeMember(w io.Writer, key string, v any, indent string) error {
	var buf bytes.Buffer
	if err := newEncoder(&buf, "", "").Encode(key); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // Encode's newline
	buf.WriteString(": ")
	if err := newEncoder(&buf, indent, indent).Encode(v); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
