package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionEscribeJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Out: &buf})

	l.Info().Msg("ignorado por nivel")
	l.Warn().Str("op", "load").Msg("fallo remoto")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "load", line["op"])
	assert.Equal(t, "fallo remoto", line["message"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("desconocido"))
}
