package obs

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestTimeLogsRequestIDAndError(t *testing.T) {
	buf := captureLog(t)

	ctx, id := WithRequestID(context.Background())
	if RequestID(ctx) != id {
		t.Fatalf("RequestID = %q, want %q", RequestID(ctx), id)
	}

	err := errors.New("boom")
	Time(ctx, "api.test")(&err)

	line := buf.String()
	if !strings.Contains(line, "req_id="+id) || !strings.Contains(line, "op=api.test") || !strings.Contains(line, "err=boom") {
		t.Fatalf("unexpected log line: %q", line)
	}
}

func TestTimeWithoutRequestID(t *testing.T) {
	buf := captureLog(t)

	var err error
	Time(context.Background(), "noop")(&err)

	if !strings.Contains(buf.String(), "req_id=- op=noop") {
		t.Fatalf("unexpected log line: %q", buf.String())
	}
	if strings.Contains(buf.String(), "err=") {
		t.Fatalf("nil error logged: %q", buf.String())
	}
}
