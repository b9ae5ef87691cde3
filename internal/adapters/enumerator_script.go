package adapters

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"check-compromised/internal/ports"
	"check-compromised/internal/shared"
)

// InventoryEnv is exported to the enumerator script with the path it is
// expected to write.
const InventoryEnv = "CHECK_COMPROMISED_INVENTORY"

const stderrTailLimit = 512

// ScriptEnumeratorAdapter runs an external script through a shell. The
// script inherits the adapter's stdout and stderr and receives the
// inventory path both as its first argument and in InventoryEnv.
type ScriptEnumeratorAdapter struct {
	Shell  string
	Script string
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

func NewScriptEnumeratorAdapter(shell string, script string, dir string) ScriptEnumeratorAdapter {
	return ScriptEnumeratorAdapter{
		Shell:  shell,
		Script: script,
		Dir:    dir,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func (a ScriptEnumeratorAdapter) Enumerate(ctx context.Context, outputPath string) error {
	if strings.TrimSpace(a.Shell) == "" || strings.TrimSpace(a.Script) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("enumerator shell and script are required")
	}
	tail := &tailBuffer{limit: stderrTailLimit}
	cmd := exec.CommandContext(ctx, a.Shell, "-c", a.Script+` "$@"`, a.Script, outputPath)
	cmd.Dir = a.Dir
	cmd.Env = append(os.Environ(), InventoryEnv+"="+outputPath)
	cmd.Stdout = a.Stdout
	cmd.Stderr = io.MultiWriter(writerOrDiscard(a.Stderr), tail)

	log.Debug().
		Str("shell", a.Shell).
		Str("script", a.Script).
		Str("dir", a.Dir).
		Str("output", outputPath).
		Msg("running enumerator")
	if err := cmd.Run(); err != nil {
		cause := shared.CommandError(tail.Bytes(), err)
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("error when retrieving the versions of the affected packages: %v", cause)).
			WithCause(cause)
	}
	return nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	limit int
	buf   bytes.Buffer
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	n := len(p)
	t.buf.Write(p)
	if over := t.buf.Len() - t.limit; over > 0 {
		t.buf.Next(over)
	}
	return n, nil
}

func (t *tailBuffer) Bytes() []byte {
	return t.buf.Bytes()
}

var _ ports.EnumeratorPort = ScriptEnumeratorAdapter{}
