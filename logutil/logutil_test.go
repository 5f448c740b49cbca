package logutil_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/symnmf/logutil"
)

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logutil.New("info", "json", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("factorized", zap.Int("iterations", 12))
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "factorized", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.EqualValues(t, 12, entry["iterations"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logutil.New("debug", "console", &buf)
	require.NoError(t, err)

	logger.Warn("relabeled", zap.Int("row", 3))
	require.NoError(t, logger.Sync())
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "relabeled")
	assert.Contains(t, buf.String(), `"row": 3`)
}

func TestNew_Errors(t *testing.T) {
	_, err := logutil.New("loud", "json", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = logutil.New("info", "xml", &bytes.Buffer{})
	assert.ErrorIs(t, err, logutil.ErrUnknownFormat)
}
