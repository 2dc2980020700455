package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0644))

	log, err := Create(path)
	require.NoError(t, err)
	assert.Equal(t, path, log.Path())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"session\": []\n}\n", string(data))

	records, err := log.Records()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	log, err := Create(path)
	require.NoError(t, err)

	ts := time.Date(2024, 3, 1, 12, 30, 45, 123456000, time.Local)
	log.now = func() time.Time { return ts }

	require.NoError(t, log.Append("ls", "root\nroot/a.txt"))
	require.NoError(t, log.Append("rev <привет>", ">тевирп<"))

	records, err := log.Records()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Record{Time: "2024-03-01T12:30:45.123456", Command: "ls", Result: "root\nroot/a.txt"}, records[0])
	assert.Equal(t, "rev <привет>", records[1].Command)
	assert.Equal(t, ">тевирп<", records[1].Result)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "\"command\": \"rev <привет>\""))
}

func TestAppendCountsEveryCommand(t *testing.T) {
	log, err := Create(filepath.Join(t.TempDir(), "log.json"))
	require.NoError(t, err)

	for i := 0; i < 25; i++ {
		require.NoError(t, log.Append("", "Неизвестная команда"))
	}

	records, err := log.Records()
	require.NoError(t, err)
	assert.Len(t, records, 25)
}

func TestAppendMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	log, err := Create(path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	assert.Error(t, log.Append("ls", ""))
}
