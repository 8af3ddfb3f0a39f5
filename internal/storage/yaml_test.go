package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportImportYAML(t *testing.T) {
	gs := sampleState()

	var buf bytes.Buffer
	require.NoError(t, ExportYAML(&buf, gs))
	assert.Contains(t, buf.String(), "country: Türkiye")
	assert.Contains(t, buf.String(), "staged_decisions:")

	imported, err := ImportYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, gs.ID, imported.ID)
	assert.Equal(t, gs.CurrentStats, imported.CurrentStats)
	assert.Equal(t, gs.Ministries, imported.Ministries)
	assert.Equal(t, gs.Relations, imported.Relations)
}

func TestExportYAML_NilState(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, ExportYAML(&buf, nil))
}

func TestImportYAML_Invalid(t *testing.T) {
	_, err := ImportYAML(strings.NewReader("country: [unterminated"))
	assert.Error(t, err)
}
