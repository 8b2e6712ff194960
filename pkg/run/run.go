/*
Package run executes external commands on behalf of the detection code
and hands back their captured standard output. It is the single place
the module spawns processes from.
*/
package run

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mohak852/chapel/pkg/ctxlog"
)

var execCommandContext = exec.CommandContext

// Command runs the named program with the given arguments and returns its
// standard output with trailing whitespace trimmed. Standard error is not
// captured. There is no timeout of its own: a hung program hangs the
// caller unless the context is cancelled.
func Command(ctx context.Context, name string, args ...string) (string, error) {
	ctxlog.FromContext(ctx).Debug("running command", "name", name, "args", args)

	cmd := execCommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("run: %s: %w", name, err)
	}

	return strings.TrimRight(string(out), " \t\r\n"), nil
}

// Shell runs the given script through `sh -c`, for probes that need a
// pipeline rather than a single program.
func Shell(ctx context.Context, script string) (string, error) {
	return Command(ctx, "sh", "-c", script)
}
