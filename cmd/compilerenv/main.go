// Command compilerenv prints the detected properties of one or more
// backend compiler identifiers: canonical executable name, version,
// Cray PrgEnv membership and default-mode C11 atomics support.
//
// Identifiers are given as arguments; with none, CHPL_TARGET_COMPILER is
// used, falling back to "gnu".
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docker/go-units"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/mohak852/chapel/pkg/compiler"
	"github.com/mohak852/chapel/pkg/ctxlog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalln(err)
	}
}

func run() error {
	yamlOut := flag.Bool("yaml", false, "print the reports as a YAML document")
	verbose := flag.Bool("v", false, "log executed commands to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = ctxlog.WithLogger(ctx, logger)

	compilers := flag.Args()
	if len(compilers) == 0 {
		id := os.Getenv("CHPL_TARGET_COMPILER")
		if id == "" {
			id = "gnu"
		}
		compilers = []string{id}
	}

	start := time.Now()

	reports := make([]compiler.Report, len(compilers))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range compilers {
		i, id := i, id
		g.Go(func() error {
			report, err := compiler.Inspect(gctx, id)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Debug("inspection finished", "elapsed", units.HumanDuration(time.Since(start)))

	if *yamlOut {
		out, err := yaml.Marshal(reports)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	for _, r := range reports {
		fmt.Printf("Compiler: %s\nName: %s\nVersion: %s\nPrgEnv: %t\nStandard atomics: %t\n\n",
			r.Compiler, r.Name, r.Version, r.PrgEnv, r.StdAtomics)
	}

	return nil
}
