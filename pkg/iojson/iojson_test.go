package iojson

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLine(&buf, map[string]any{"name": "a.md", "size": 3}))
	require.NoError(t, WriteLine(&buf, map[string]any{"name": "b.md", "size": 4}))

	assert.Equal(t, "{\"name\":\"a.md\",\"size\":3}\n{\"name\":\"b.md\",\"size\":4}\n", buf.String())
}

func TestWriteIndent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteIndent(&buf, struct {
		Valid bool `json:"valid"`
	}{Valid: true}))

	assert.Equal(t, "{\n  \"valid\": true\n}\n", buf.String())
}

func TestWriteLine_Unmarshalable(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, WriteLine(&buf, make(chan int)))
	assert.Empty(t, buf.String())
}
