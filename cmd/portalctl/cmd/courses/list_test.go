package courses

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaalawyers/trainingportal/pkg/sdk"
)

func TestWriteCourseTable(t *testing.T) {
	var buf bytes.Buffer
	writeCourseTable(&buf, []sdk.Course{
		{ID: "c1", Status: sdk.StatusPublished, Title: "Ethics", Description: "Professional\nresponsibility"},
		{ID: "c2", Status: sdk.StatusDraft, Title: "Contracts"},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "Professional responsibility")
	assert.Contains(t, lines[2], "draft")
}
