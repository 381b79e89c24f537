package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/toaster/pkg/tuitest"
)

func TestPrinter_levels(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("saved %d", 2)
	p.Errorf("failed")
	p.Printf("plain")

	out := tuitest.StripANSI(buf.String())
	assert.Contains(t, out, "saved 2")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "\nplain")
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithPrinter(context.Background(), New(&buf))

	Ctx(ctx).Infof("hello")
	assert.Contains(t, buf.String(), "hello")

	assert.NotNil(t, Ctx(context.Background()))
}
