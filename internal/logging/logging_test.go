package logging

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"debug": LevelDebug, "INFO": LevelInfo, "": LevelInfo, "warn": LevelWarn, "error": LevelError} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)
	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestInit_JSON(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, LevelInfo, FormatJSON)
	t.Cleanup(func() { Init(&bytes.Buffer{}, LevelInfo, FormatText) })

	Enumerated("flat", 4, 24, 3*time.Millisecond)
	LevelBuilt("flat", 4, 24, time.Millisecond) // below level, dropped

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "enumerated", rec["msg"])
	assert.Equal(t, "flat", rec["kind"])
	assert.EqualValues(t, 24, rec["count"])
}

func TestInit_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, LevelWarn, FormatText)
	t.Cleanup(func() { Init(&bytes.Buffer{}, LevelInfo, FormatText) })

	Enumerated("typeb", 2, 6, 0)
	assert.Empty(t, buf.String())

	Mismatch("roundtrip", 3, "1122")
	assert.Contains(t, buf.String(), "verify_mismatch")
	assert.Same(t, Logger(), Logger())
}
