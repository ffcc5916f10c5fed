package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/mdpad/internal/core/document"
	"github.com/colonyops/mdpad/pkg/tuitest"
)

func TestRenderDocument_Modes(t *testing.T) {
	doc := document.FromLines([]string{"# Title", "", "a **b**"})

	tests := []struct {
		mode string
		want string
	}{
		{mode: renderPlain, want: "# Title\n\na **b**\n"},
		{mode: renderStyled, want: "# Title\n\na **b**"},
		{
			mode: renderSpans,
			want: `{"row":0,"spans":[{"style":"h1","text":"# Title"}]}` + "\n" +
				`{"row":1,"spans":[]}` + "\n" +
				`{"row":2,"spans":[{"style":"normal","text":"a "},{"style":"bold","text":"**b**"}]}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, renderDocument(&buf, doc, tt.mode, 80))

			got := buf.String()
			if tt.mode == renderStyled {
				got = tuitest.StripANSI(got)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderDocument_Glamour(t *testing.T) {
	doc := document.FromLines([]string{"# Title", "some *words*"})

	var buf bytes.Buffer
	require.NoError(t, renderDocument(&buf, doc, renderGlamour, 60))

	out := tuitest.StripANSI(buf.String())
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "words")
}

func TestRenderCmd_Mode(t *testing.T) {
	cmd := &RenderCmd{}
	assert.Equal(t, renderPlain, cmd.mode(false))
	assert.Equal(t, renderStyled, cmd.mode(true))

	cmd.glamour = true
	assert.Equal(t, renderGlamour, cmd.mode(true))
	assert.Equal(t, renderPlain, cmd.mode(false))

	cmd.force = true
	assert.Equal(t, renderGlamour, cmd.mode(false))

	cmd.spans = true
	assert.Equal(t, renderSpans, cmd.mode(false))
}
