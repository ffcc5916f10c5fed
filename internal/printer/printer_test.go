package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/mdpad/pkg/tuitest"
)

func TestPrinter_Lines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("saved %s", "a.md")
	p.Errorf("failed")
	p.Printf("  detail")
	p.Section("Checks")

	assert.Equal(t, "✔ saved a.md\n✘ failed\n  detail\nChecks", tuitest.StripANSI(buf.String()))
}

func TestCtx_DefaultsAndCarries(t *testing.T) {
	assert.NotNil(t, Ctx(context.Background()))

	var buf bytes.Buffer
	p := New(&buf)
	assert.Same(t, p, Ctx(NewContext(context.Background(), p)))
}
