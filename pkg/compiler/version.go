package compiler

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mohak852/chapel/pkg/memoize"
	"github.com/mohak852/chapel/pkg/run"
)

// Version is a normalized compiler version. Components a compiler does
// not report default to 0.
type Version struct {
	Major    int
	Minor    int
	Revision int
	Build    int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Revision, v.Build)
}

// Compare returns -1, 0 or 1 depending on whether v is ordered before,
// equal to or after o.
func (v Version) Compare(o Version) int {
	pairs := [4][2]int{
		{v.Major, o.Major},
		{v.Minor, o.Minor},
		{v.Revision, o.Revision},
		{v.Build, o.Build},
	}
	for _, p := range pairs {
		if p[0] != p[1] {
			if p[0] < p[1] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// AtLeast reports whether v is o or newer. Useful for gating compiler
// flags on a minimum toolchain version.
func (v Version) AtLeast(o Version) bool {
	return v.Compare(o) >= 0
}

func (v Version) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

func (v *Version) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// versionPattern finds the first digit run and up to three dot-separated
// numeric groups after it. It is a search, not a full match, so strings
// like "gcc 8.3.1" parse fine.
var versionPattern = regexp.MustCompile(`(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:\.(\d+))?`)

var parsedVersions memoize.Cache[Version]

// ParseVersion parses a loosely structured version string of the form
// "major", "major.minor", "major.minor.revision" or
// "major.minor.revision.build" into a Version. Missing components are 0.
// A string with no digits at all is an error.
func ParseVersion(s string) (Version, error) {
	return parsedVersions.Do(s, func() (Version, error) {
		m := versionPattern.FindStringSubmatch(s)
		if m == nil {
			return Version{}, fmt.Errorf("compiler: cannot parse version from %q", s)
		}

		var v Version
		for i, dst := range []*int{&v.Major, &v.Minor, &v.Revision, &v.Build} {
			if m[i+1] == "" {
				break
			}
			n, err := strconv.Atoi(m[i+1])
			if err != nil {
				return Version{}, fmt.Errorf("compiler: cannot parse version from %q: %w", s, err)
			}
			*dst = n
		}

		return v, nil
	})
}

var (
	runCommand = run.Command

	versions memoize.Cache[Version]
)

// VersionOf determines the version of the compiler behind the given
// identifier. GNU-family compilers are asked directly with -dumpversion
// (the wrapper's version is assumed to match gcc's, e.g. mpicc and gcc
// report the same). Inside PrgEnv-cray the version comes from
// CRAY_CC_VERSION. Every other identifier reports version 0 without
// spawning anything.
//
// A failed compiler invocation is returned as an error and is cached, so
// the identifier keeps failing identically for the rest of the run.
func VersionOf(ctx context.Context, compiler string) (Version, error) {
	return versions.Do(compiler, func() (Version, error) {
		return resolveVersion(ctx, compiler)
	})
}

func resolveVersion(ctx context.Context, compiler string) (Version, error) {
	versionString := "0"

	switch {
	case strings.Contains(compiler, "gnu"):
		out, err := runCommand(ctx, Name(compiler), "-dumpversion")
		if err != nil {
			return Version{}, err
		}
		versionString = out
	case compiler == prgEnvPrefix+"-cray":
		if v, ok := os.LookupEnv(crayVersionEnv); ok {
			versionString = v
		}
	}

	return ParseVersion(versionString)
}
