package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLogger_JSON(t *testing.T) {
	require.NoError(t, SetLogger("debug", true, false))
	var buf bytes.Buffer
	SetOutput(&buf)

	Info("modexp done", "bits", 1024, "odd", true)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "modexp done", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 1024, entry["bits"])
	assert.Equal(t, true, entry["odd"])
}

func TestSetLogger_Level(t *testing.T) {
	require.NoError(t, SetLogger("warn", false, false))
	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("hidden")
	Info("hidden")
	assert.Empty(t, buf.String())

	Warn("shown", "key", "value")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")
}

func TestError_Fields(t *testing.T) {
	require.NoError(t, SetLogger("error", true, false))
	var buf bytes.Buffer
	SetOutput(&buf)

	Warn("hidden")
	assert.Empty(t, buf.String())

	Error("selftest failed", "failed", 2)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.EqualValues(t, 2, entry["failed"])
}

func TestSetLogger_BadLevel(t *testing.T) {
	assert.Error(t, SetLogger("loud", false, false))
}

func TestWithFields_OddCount(t *testing.T) {
	require.NoError(t, SetLogger("info", true, false))
	var buf bytes.Buffer
	SetOutput(&buf)

	WithFields("a", 1, "dangling").Info("odd fields")
	WithFields(42, "non-string key").Info("bad key")
	assert.Contains(t, buf.String(), "odd fields")
	assert.Contains(t, buf.String(), "bad key")
}
