package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	. "github.com/fulldump/biff"
)

func TestParseLevel(t *testing.T) {

	level, err := ParseLevel("")
	AssertNil(err)
	AssertEqual(level, slog.LevelInfo)

	level, err = ParseLevel("DEBUG")
	AssertNil(err)
	AssertEqual(level, slog.LevelDebug)

	level, err = ParseLevel("warning")
	AssertNil(err)
	AssertEqual(level, slog.LevelWarn)

	_, err = ParseLevel("verbose")
	AssertNotNil(err)
}

func TestNewWithWriter(t *testing.T) {

	buf := &bytes.Buffer{}
	logger := NewWithWriter(buf, slog.LevelInfo, true)

	logger.Debug("hidden")
	logger.Info("request", "method", "GET", "user", "")

	out := buf.String()
	AssertFalse(strings.Contains(out, "hidden"))
	AssertTrue(strings.Contains(out, "request"))
	AssertTrue(strings.Contains(out, "method=GET"))
	AssertFalse(strings.Contains(out, "user="))
}
