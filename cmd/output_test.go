package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	ID    string   `json:"id"`
	Flag  string   `json:"flag"`
	Tags  []string `json:"tags"`
	Count int      `json:"count"`
}

func TestRender(t *testing.T) {
	v := sample{ID: "c1", Flag: "true", Tags: []string{"a", "b"}, Count: 2}
	table := func(w io.Writer) {
		io.WriteString(w, "A\tB\n")
		io.WriteString(w, "xx\tyyy\n")
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, "json", v, table))

		var got sample
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, v, got)
		assert.Contains(t, buf.String(), "\n  \"id\"")
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, "yaml", v, table))

		out := buf.String()
		assert.True(t, strings.HasPrefix(out, "id: c1\n"), out)
		assert.NotContains(t, out, "{")
		assert.NotContains(t, out, "[")

		var got map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "true", got["flag"])
		assert.Equal(t, 2, got["count"])
		assert.Equal(t, []any{"a", "b"}, got["tags"])
	})

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, "table", v, table))
		assert.Equal(t, "A   B\nxx  yyy\n", buf.String())
	})
}

func TestParseDue(t *testing.T) {
	got, err := parseDue("2024-03-01T12:00:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))

	got, err = parseDue("2024-03-01")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)))

	_, err = parseDue("next tuesday")
	assert.Error(t, err)
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "-", formatDate(nil))
	assert.Equal(t, "-", orDash(""))
	assert.Equal(t, "x", orDash("x"))
	assert.Equal(t, "-", joinOrDash(nil))
	assert.Equal(t, "a, b", joinOrDash([]string{"a", "b"}))
}
