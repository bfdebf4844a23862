package jsonutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type pair struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

func TestEncodePretty(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, EncodePretty(&b, pair{"vector", "a&b"}, Indent(4)))
	require.Equal(t, "{\n    \"type\": \"vector\",\n    \"url\": \"a&b\"\n}\n", b.String())
}

func TestEncodeMember(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, EncodeMember(&b, "k_1", pair{"vector", "x"}, Indent(4)))
	want := "\"k_1\": {\n" +
		"        \"type\": \"vector\",\n" +
		"        \"url\": \"x\"\n" +
		"    }\n"
	require.Equal(t, want, b.String())
}

func TestEncodeMemberScalar(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, EncodeMember(&b, "<k>", 0.8, Indent(2)))
	require.Equal(t, "\"<k>\": 0.8\n", b.String())
}

func TestIndent(t *testing.T) {
	require.Equal(t, "", Indent(0))
	require.Equal(t, "", Indent(-1))
	require.Equal(t, "  ", Indent(2))
}
