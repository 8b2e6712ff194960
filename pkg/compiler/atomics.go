package compiler

import (
	"context"
	"strconv"
	"strings"

	"github.com/mohak852/chapel/pkg/run"
)

var runShell = run.Shell

// HasStdAtomics reports whether the compiler's default compilation mode
// provides C11 standard atomics. It pipes the __STDC_VERSION__ and
// __STDC_NO_ATOMICS__ feature-test macros through the compiler's
// preprocessor and inspects how they expand: support is claimed only
// when the reported language version is C11 or later and the compiler
// left __STDC_NO_ATOMICS__ unexpanded, meaning the negative indicator
// was not defined.
//
// The assumption is that atomics present in the default mode actually
// work, and that a compiler defining __STDC_NO_ATOMICS__ (or expanding
// it unexpectedly) cannot be trusted to provide them. The command-line
// options used work for GCC, Clang and the Intel compiler; identifiers
// that resolve to Other are reported unsupported without running
// anything.
//
// The probe never fails: spawn errors, malformed output and parse errors
// all come back as false.
func HasStdAtomics(ctx context.Context, compiler string) bool {
	name := Name(compiler)
	if name == Other {
		return false
	}

	script := "echo __STDC_VERSION__ __STDC_NO_ATOMICS__ | " + name + " -E -x c - | sed -e '/^#/d'"
	out, err := runShell(ctx, script)
	if err != nil {
		return false
	}

	fields := strings.Fields(out)
	if len(fields) < 2 {
		return false
	}

	version := strings.TrimRight(fields[0], "L")
	atomics := fields[1]

	if version == "__STDC_VERSION__" {
		return false
	}
	n, err := strconv.Atoi(version)
	if err != nil || n < 201112 {
		return false
	}

	// If the atomics macro was expanded, there is no support.
	return atomics == "__STDC_NO_ATOMICS__"
}
