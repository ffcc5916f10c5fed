package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		want    []KeyEvent
		wantErr string
	}{
		{
			name:   "characters and newline",
			script: "ab\nc",
			want:   []KeyEvent{Char('a'), Char('b'), Key(KeyEnter), Char('c')},
		},
		{
			name:   "named keys",
			script: "<left><BS><save><lt>",
			want:   []KeyEvent{Key(KeyLeft), Key(KeyBackspace), Key(KeySave), Char('<')},
		},
		{
			name:   "carriage return ignored",
			script: "a\r\n",
			want:   []KeyEvent{Char('a'), Key(KeyEnter)},
		},
		{
			name:    "unknown key",
			script:  "<bogus>",
			wantErr: `unknown key "bogus"`,
		},
		{
			name:    "unterminated",
			script:  "ab<left",
			wantErr: "unterminated key name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScript(tt.script)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun_ProcessesUntilEOF(t *testing.T) {
	s, r := newTestSession(t)
	events, err := ParseScript("# Notes\n**bold**")
	require.NoError(t, err)

	err = s.Run(context.Background(), NewScriptInput(events), nil)

	require.NoError(t, err)
	assert.Equal(t, "# Notes", s.Line(0))
	assert.Equal(t, "**bold**", s.Line(1))
	assert.NotEmpty(t, r.statuses)
}

func TestRun_StopsOnQuit(t *testing.T) {
	s, _ := newTestSession(t)
	events, err := ParseScript("ab<quit>cd")
	require.NoError(t, err)

	require.NoError(t, s.Run(context.Background(), NewScriptInput(events), nil))
	assert.Equal(t, "ab", s.Line(0))
}

func TestRun_DispatchesRequests(t *testing.T) {
	ctx := context.Background()
	st := newMemStorage()
	s, _ := newTestSession(t)
	events, err := ParseScript("hello<save><new>x<load>")
	require.NoError(t, err)

	var seen []Request
	handle := func(ctx context.Context, s *Session, req Request) error {
		seen = append(seen, req)
		switch req {
		case RequestSave:
			return s.Save(ctx, st, "a.md")
		case RequestNew:
			s.Reset()
		case RequestLoad:
			return s.Load(ctx, st, "a.md")
		}
		return nil
	}

	require.NoError(t, s.Run(ctx, NewScriptInput(events), handle))
	assert.Equal(t, []Request{RequestSave, RequestNew, RequestLoad}, seen)
	assert.Equal(t, "hello", s.Line(0))
}

func TestRun_HandlerErrorStops(t *testing.T) {
	s, _ := newTestSession(t)
	events, err := ParseScript("<save>abc")
	require.NoError(t, err)
	boom := errors.New("boom")

	err = s.Run(context.Background(), NewScriptInput(events), func(context.Context, *Session, Request) error {
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, "", s.Line(0))
}

func TestRun_ContextCancelled(t *testing.T) {
	s, _ := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, NewScriptInput([]KeyEvent{Char('a')}), nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "", s.Line(0))
}
