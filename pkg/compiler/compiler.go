/*
Package compiler detects properties of the backend C compiler toolchain
used by the build configuration: its canonical executable name, its
version, whether it belongs to the Cray programming-environment family
and whether its default compilation mode provides C11 standard atomics.

Compiler identifiers are the short vendor/toolchain tags used by the
configuration layer ("gnu", "clang", "cray-prgenv-intel", ...). They are
matched only by prefix or substring; unrecognized identifiers are not an
error and resolve to Other.
*/
package compiler

import (
	"os"
	"strings"

	"github.com/mohak852/chapel/pkg/memoize"
)

// Other is the canonical name reported for compiler identifiers that do
// not belong to any known toolchain family.
const Other = "other"

// Environment variables consulted by this package.
const (
	// crayVersionEnv holds the Cray compiler version inside a
	// PrgEnv-cray programming environment.
	crayVersionEnv = "CRAY_CC_VERSION"
	// origTargetCompilerEnv records the target compiler the
	// configuration started out with, before any overrides.
	origTargetCompilerEnv = "CHPL_ORIG_TARGET_COMPILER"
	// prgEnvPrefix marks identifiers from the Cray PrgEnv family. The
	// resolver matches the dashed form so that "cray-prgenv" alone does
	// not map to the Cray wrapper.
	prgEnvPrefix = "cray-prgenv"
)

var names memoize.Cache[string]

// Name resolves a compiler identifier to the canonical executable name
// used to invoke the backend compiler. The first matching rule wins; the
// GNU substring rule fires before the PrgEnv prefix rule, so
// "cray-prgenv-gnu" resolves to "gcc". Unrecognized identifiers resolve
// to Other.
func Name(compiler string) string {
	name, _ := names.Do(compiler, func() (string, error) {
		return resolveName(compiler), nil
	})
	return name
}

func resolveName(compiler string) string {
	switch {
	case compiler == "aarch64-gnu":
		return "aarch64-unknown-linux-gnu-gcc"
	case strings.Contains(compiler, "gnu"):
		return "gcc"
	case strings.HasPrefix(compiler, prgEnvPrefix+"-"):
		return "cc"
	case compiler == "clang":
		return "clang"
	case compiler == "intel":
		return "icc"
	case compiler == "pgi":
		return "pgcc"
	}
	return Other
}

// IsPrgEnv reports whether the identifier belongs to the Cray
// programming-environment family, either directly or because the
// original target compiler recorded in the environment does.
//
// Not memoized: the environment branch would make cached answers stale
// across environment changes.
func IsPrgEnv(compiler string) bool {
	return strings.HasPrefix(compiler, prgEnvPrefix) ||
		strings.HasPrefix(os.Getenv(origTargetCompilerEnv), prgEnvPrefix)
}
