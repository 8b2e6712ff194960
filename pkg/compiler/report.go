package compiler

import "context"

// Report gathers everything the configuration layer wants to know about
// one compiler identifier.
type Report struct {
	// Compiler is the identifier the report was produced for.
	Compiler string `yaml:"compiler"`
	// Name is the canonical executable name, or Other.
	Name string `yaml:"name"`
	// Version of the backend compiler; 0.0.0.0 for toolchains whose
	// version cannot be queried.
	Version Version `yaml:"version"`
	// PrgEnv reports Cray programming-environment membership.
	PrgEnv bool `yaml:"prgenv"`
	// StdAtomics reports default-mode C11 standard atomics support.
	StdAtomics bool `yaml:"std_atomics"`
}

// Inspect resolves all detectable properties of a compiler identifier.
// The only failure mode is version resolution; the other probes are
// total.
func Inspect(ctx context.Context, compiler string) (Report, error) {
	version, err := VersionOf(ctx, compiler)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Compiler:   compiler,
		Name:       Name(compiler),
		Version:    version,
		PrgEnv:     IsPrgEnv(compiler),
		StdAtomics: HasStdAtomics(ctx, compiler),
	}, nil
}
