package services

import (
	"os/exec"
	"strings"
)

// RunQuiet executes a prepared command with both output streams suppressed.
// A bounded tail of stderr is retained and returned alongside any run error
// so callers can surface a diagnostic without streaming tool output.
func RunQuiet(cmd *exec.Cmd) (string, error) {
	tail := &tailBuffer{limit: 2048}
	cmd.Stdout = nil
	cmd.Stderr = tail
	err := cmd.Run()
	return tail.String(), err
}

// tailBuffer keeps only the last limit bytes written to it.
type tailBuffer struct {
	limit int
	buf   []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.buf = append(t.buf, p...)
	if len(t.buf) > t.limit {
		t.buf = t.buf[len(t.buf)-t.limit:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	return strings.TrimSpace(string(t.buf))
}
