package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("verbose"))
}

func TestWithContext_TagsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logrus.SetOutput(&buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() { logrus.SetOutput(os.Stdout) })

	ctx := ContextWithRequestID(context.Background(), "req-42")
	WithContext(ctx).WithField("operation", "export").Info("done")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, "export", entry["operation"])
	assert.Equal(t, "done", entry["msg"])
}

func TestWithContext_NoRequestID(t *testing.T) {
	l := WithContext(context.Background())
	_, ok := l.Data["request_id"]
	assert.False(t, ok)
}

func TestSetup_WritesToRotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	Setup(Options{Level: "debug", File: path, MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})
	t.Cleanup(func() {
		logrus.SetOutput(os.Stdout)
		logrus.SetLevel(logrus.InfoLevel)
	})

	New().Debug("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
