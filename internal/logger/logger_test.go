package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, log)
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Info("payment recorded", "user_id", "u-1")

	output := buf.String()
	assert.Contains(t, output, "payment recorded")
	assert.Contains(t, output, "u-1")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Error("classification failed")

	assert.Contains(t, buf.String(), "classification failed")
}

func TestDebug(t *testing.T) {
	var buf bytes.Buffer
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	log = New(NewJSONHandler(&buf, opts))

	Debug("ledger snapshot loaded")

	assert.Contains(t, buf.String(), "ledger snapshot loaded")
}

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Infof("marked %d members present", 12)

	assert.Contains(t, buf.String(), "marked 12 members present")
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	Errorf("bad date %q", "2024-13-01")

	assert.Contains(t, buf.String(), "2024-13-01")
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	WithError(assert.AnError).Info("suggestion failed")

	output := buf.String()
	assert.Contains(t, output, "suggestion failed")
	assert.Contains(t, output, "error")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log = New(NewJSONHandler(&buf, nil))

	WithFields(map[string]interface{}{
		"user_id": "u-9",
		"days":    7,
	}).Info("inactivity alert")

	output := buf.String()
	assert.Contains(t, output, "inactivity alert")
	assert.Contains(t, output, "user_id")
	assert.Contains(t, output, "u-9")
}
