package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Level      string            `json:"level"`
	Time       string            `json:"time"`
	Message    string            `json:"message"`
	Properties map[string]string `json:"properties"`
	Trace      string            `json:"trace"`
}

func decodeEntries(t *testing.T, buf *bytes.Buffer) []entry {
	t.Helper()
	var entries []entry
	dec := json.NewDecoder(buf)
	for dec.More() {
		var e entry
		require.NoError(t, dec.Decode(&e))
		entries = append(entries, e)
	}
	return entries
}

func TestJSONLogger(t *testing.T) {
	t.Run("INFO level with properties", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)
		l.PrintInfo("starting server", map[string]string{"addr": ":4000", "env": "development"})

		entries := decodeEntries(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "INFO", entries[0].Level)
		assert.Equal(t, "starting server", entries[0].Message)
		assert.Equal(t, ":4000", entries[0].Properties["addr"])
		assert.NotEmpty(t, entries[0].Time)
		assert.Empty(t, entries[0].Trace)
	})

	t.Run("ERROR level carries a trace", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)
		l.PrintError(errors.New("database unreachable"), nil)

		entries := decodeEntries(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "ERROR", entries[0].Level)
		assert.Equal(t, "database unreachable", entries[0].Message)
		assert.NotEmpty(t, entries[0].Trace)
	})

	t.Run("entries below the minimum level are dropped", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelError)
		l.PrintDebug("noise", nil)
		l.PrintInfo("noise", nil)
		l.PrintFatal(errors.New("fatal"), nil)

		entries := decodeEntries(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "FATAL", entries[0].Level)
	})

	t.Run("io.Writer writes at ERROR level", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, LevelInfo)
		_, err := l.Write([]byte("http: TLS handshake error\n"))
		require.NoError(t, err)

		entries := decodeEntries(t, &buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "ERROR", entries[0].Level)
		assert.Equal(t, "http: TLS handshake error", entries[0].Message)
	})
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": LevelDebug,
		"INFO":  LevelInfo,
		"":      LevelInfo,
		"error": LevelError,
		"Fatal": LevelFatal,
		"off":   LevelOff,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
