package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrintsAccessorLine(t *testing.T) {
	var buf bytes.Buffer
	run(&buf)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, 1, countLines(lines, "x is: 3, y is: 3"))
}

func TestRunSectionOrder(t *testing.T) {
	var buf bytes.Buffer
	run(&buf)
	out := buf.String()

	titles := []string{"━━━ Types", "━━━ Functions", "━━━ Implementations", "━━━ Traits"}
	last := -1
	for _, title := range titles {
		idx := strings.Index(out, title)
		require.NotEqual(t, -1, idx, "missing section %q", title)
		assert.Greater(t, idx, last, "section %q out of order", title)
		last = idx
	}

	// The traits section has a header and nothing else.
	assert.True(t, strings.HasSuffix(out, "━━━ Traits ━━━\n"))
}

func TestDemoTypesShowsInstantiations(t *testing.T) {
	var buf bytes.Buffer
	demoTypes(&buf)
	out := buf.String()

	assert.Contains(t, out, "wrap.Single\n")
	// reflect spells type arguments with their full import path.
	assert.Contains(t, out, "/wrap.Marker]")
	assert.Contains(t, out, "wrap.SingleGen[int] = 6")
	assert.Contains(t, out, "wrap.SingleGen[int32] = 'a'")
}

func countLines(lines []string, want string) int {
	n := 0
	for _, l := range lines {
		if l == want {
			n++
		}
	}
	return n
}
