package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	tests := []struct {
		compiler string
		expect   string
	}{
		{"aarch64-gnu", "aarch64-unknown-linux-gnu-gcc"},
		{"gnu", "gcc"},
		{"mpi-gnu", "gcc"},
		{"cray-prgenv-gnu", "gcc"}, // GNU substring wins over the PrgEnv prefix
		{"cray-prgenv-cray", "cc"},
		{"cray-prgenv-intel", "cc"},
		{"clang", "clang"},
		{"intel", "icc"},
		{"pgi", "pgcc"},
		{"unknown-xyz", Other},
		{"", Other},
		{"cray-prgenv", Other}, // prefix rule requires the trailing dash
	}

	for _, tt := range tests {
		require.Equal(t, tt.expect, Name(tt.compiler), "Name(%q)", tt.compiler)
	}
}

func TestNameIsStable(t *testing.T) {
	require.Equal(t, Name("clang"), Name("clang"))
}

func TestIsPrgEnv(t *testing.T) {
	t.Run("ByIdentifier", func(t *testing.T) {
		t.Setenv(origTargetCompilerEnv, "")

		require.True(t, IsPrgEnv("cray-prgenv-intel"))
		require.True(t, IsPrgEnv("cray-prgenv-gnu"))
		require.True(t, IsPrgEnv("cray-prgenv")) // no trailing dash required here
		require.False(t, IsPrgEnv("gnu"))
		require.False(t, IsPrgEnv("clang"))
	})

	t.Run("ByOriginalTargetCompiler", func(t *testing.T) {
		t.Setenv(origTargetCompilerEnv, "cray-prgenv-gnu")

		require.True(t, IsPrgEnv("gnu"))
		require.True(t, IsPrgEnv("unknown-xyz"))
	})

	t.Run("OriginalTargetCompilerNotPrgEnv", func(t *testing.T) {
		t.Setenv(origTargetCompilerEnv, "gnu")

		require.False(t, IsPrgEnv("clang"))
	})
}
