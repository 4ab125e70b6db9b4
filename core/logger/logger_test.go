package logger_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/epochlab/protopatch/core/logger"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    logger.LogLevel
		expected string
	}{
		{logger.DEBUG, "DEBUG"},
		{logger.INFO, "INFO"},
		{logger.WARN, "WARN"},
		{logger.ERROR, "ERROR"},
		{logger.FATAL, "FATAL"},
		{logger.LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.level.String())
	}
}

func TestDebugGatedBehindVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger.SetWriterForAll(&buf)
	defer logger.SetWriterForAll(os.Stdout)

	logger.SetVerbose(false)
	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.SetVerbose(true)
	defer logger.SetVerbose(false)
	assert.True(t, logger.IsVerbose())

	logger.Debug("shown %d", 1)
	assert.Contains(t, buf.String(), "shown 1")
	assert.Contains(t, buf.String(), "DEBUG")
}

func TestAddWriterForAllTeesOutput(t *testing.T) {
	var primary, tee bytes.Buffer
	logger.SetWriterForAll(&primary)
	defer logger.SetWriterForAll(os.Stdout)

	logger.AddWriterForAll(&tee)
	logger.Info("fixed %s", "foo_pb2.py")

	assert.Contains(t, primary.String(), "fixed foo_pb2.py")
	assert.Contains(t, tee.String(), "fixed foo_pb2.py")
}

func TestMultiWriter(t *testing.T) {
	var a, b bytes.Buffer
	mw := logger.NewMultiWriter(&a)
	mw.Add(&b)

	n, err := mw.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", a.String())
	assert.Equal(t, "hello", b.String())
}
