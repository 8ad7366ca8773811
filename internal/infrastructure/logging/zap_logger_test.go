package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_KeyValues(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := &ZapLogger{logger: zap.New(core).Sugar()}

	logger.With("request_id", "abc").Info("employee created", "employee_id", 7)
	logger.Debug("debug message")
	logger.Warn("warn message")
	logger.Error("error message", "error", "boom")

	entries := logs.All()
	assert.Len(t, entries, 4)

	fields := entries[0].ContextMap()
	assert.Equal(t, "employee created", entries[0].Message)
	assert.Equal(t, "abc", fields["request_id"])
	assert.EqualValues(t, 7, fields["employee_id"])
	assert.Equal(t, "boom", entries[3].ContextMap()["error"])
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger, err := NewZapLogger("verbose")
	assert.NoError(t, err)
	assert.NotNil(t, logger)
}
