package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestInitLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	config := NewConfig("info", "json", "test-service", "1.0.0", "test", false)
	InitLoggerWithWriter(config, &buf)

	FromContext(context.Background()).Info("test message", "key", "value")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}
	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}
	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}
	if logEntry["key"] != "value" {
		t.Errorf("Expected key=value, got %v", logEntry["key"])
	}
}

func TestFromContextIncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	config := NewConfig("info", "json", "test-service", "1.0.0", "test", false)
	InitLoggerWithWriter(config, &buf)

	id := GenerateRequestID()
	ctx := WithRequestID(context.Background(), id)
	FromContext(ctx).Info("with request id")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry[AttrKeyRequestID] != id {
		t.Errorf("Expected request_id=%s, got %v", id, logEntry[AttrKeyRequestID])
	}
}

func TestRequestIDFromContextMissing(t *testing.T) {
	if _, ok := RequestIDFromContext(context.Background()); ok {
		t.Error("Expected no request ID in empty context")
	}
}

func TestLogLevelParsing(t *testing.T) {
	cases := map[string]string{
		"debug":   "DEBUG",
		"info":    "INFO",
		"warn":    "WARN",
		"warning": "WARN",
		"error":   "ERROR",
		"bogus":   "INFO",
	}
	for input, want := range cases {
		cfg := Config{Level: input}
		if got := cfg.LogLevel().String(); got != want {
			t.Errorf("Level %q: expected %s, got %s", input, want, got)
		}
	}
}
