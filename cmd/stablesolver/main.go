// Command stablesolver runs a maximum-weight independent set or
// maximum-weight clique algorithm against an instance file and reports
// the result as a certificate file and/or a JSON report. It is the CLI
// surface of §6; the algorithmic core lives in the solver, stable and
// clique packages.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fontanf/stablesolver-sub000/builder"
	"github.com/fontanf/stablesolver-sub000/clique"
	"github.com/fontanf/stablesolver-sub000/solver"
	"github.com/fontanf/stablesolver-sub000/stable"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		problem         = flag.String("problem", "stable", "problem to solve: stable or clique")
		algorithm       = flag.String("algorithm", "greedy-gwmin", "algorithm keyword")
		input           = flag.String("input", "", "path to the instance file (required)")
		format          = flag.String("format", "dimacs1992", "instance format: dimacs1992, dimacs2010, matrixmarket, chaco, snap")
		timeLimit       = flag.Duration("time-limit", 0, "wall-clock time limit, 0 means unbounded")
		seed            = flag.Int64("seed", 0, "PRNG seed")
		maxIterations   = flag.Int64("maximum-number-of-iterations", 0, "iteration cap for iterated algorithms, <=0 means unbounded")
		maxIterNoImprov = flag.Int64("maximum-number-of-iterations-without-improvement", 0, "limit on non-improving iterations; recorded in the parameters but not read by any algorithm")
		unweighted      = flag.Bool("unweighted", false, "treat every vertex as weight 1")
		complementary   = flag.Bool("complementary", false, "solve over the complement graph")
		certificate     = flag.String("certificate", "", "path to write the solution certificate")
		output          = flag.String("output", "", "path to write the JSON report")
		verbosityLevel  = flag.Int("verbosity-level", 1, "progress verbosity")
	)
	flag.Parse()

	if *input == "" {
		return fmt.Errorf("stablesolver: -input is required")
	}

	f, err := os.Open(*input)
	if err != nil {
		return fmt.Errorf("stablesolver: opening input file: %w", err)
	}
	defer f.Close()

	instanceFormat, err := parseFormat(*format)
	if err != nil {
		return err
	}

	b := builder.New()
	if err := b.Read(f, instanceFormat); err != nil {
		return fmt.Errorf("stablesolver: reading instance: %w", err)
	}
	if *unweighted {
		b.SetUnweighted()
	}
	g, err := b.Build()
	if err != nil {
		return fmt.Errorf("stablesolver: building instance: %w", err)
	}

	if *complementary {
		g = g.Complement()
	}

	params := solver.NewParameters(*algorithm,
		solver.WithSeed(*seed),
		solver.WithTimeLimit(*timeLimit),
		solver.WithMaximumNumberOfIterations(*maxIterations),
		solver.WithMaximumNumberOfIterationsWithoutImprovement(*maxIterNoImprov),
		solver.WithUnweighted(*unweighted),
		solver.WithComplementary(*complementary),
		solver.WithCertificatePath(*certificate),
		solver.WithOutputPath(*output),
		solver.WithVerbosityLevel(*verbosityLevel),
	)

	ctx := context.Background()
	if *timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeLimit)
		defer cancel()
	}

	var members []int
	var weight, bound int64

	switch *problem {
	case "stable":
		sol, b, err := solver.RunStable(ctx, g, params)
		if err != nil {
			return err
		}
		out := solver.NewOutput[*stable.Solution](g.TotalWeight())
		out.UpdateSolution(sol, *algorithm)
		out.UpdateBound(b, *algorithm)
		out.AlgorithmEnd()
		members, weight, bound = sol.Members(), sol.Weight(), b
		if err := writeReport(*output, out, g.NumVertices()); err != nil {
			return err
		}
	case "clique":
		sol, b, err := solver.RunClique(ctx, g, params)
		if err != nil {
			return err
		}
		out := solver.NewOutput[*clique.Solution](g.TotalWeight())
		out.UpdateSolution(sol, *algorithm)
		out.UpdateBound(b, *algorithm)
		out.AlgorithmEnd()
		members, weight, bound = sol.Members(), sol.Weight(), b
		if err := writeReport(*output, out, g.NumVertices()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("stablesolver: unknown problem %q, want stable or clique", *problem)
	}

	if *certificate != "" {
		if err := solver.WriteCertificateFile(*certificate, members); err != nil {
			return err
		}
	}

	if *verbosityLevel > 0 {
		fmt.Printf("Value: %d\nBound: %d\n", weight, bound)
	}
	return nil
}

func writeReport[S solver.WeightedSolution](path string, out *solver.Output[S], numVertices int) error {
	if path == "" {
		return nil
	}
	report := solver.BuildReport(out, numVertices)
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("stablesolver: marshalling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("stablesolver: writing report: %w", err)
	}
	return nil
}

func parseFormat(name string) (builder.Format, error) {
	switch name {
	case "dimacs1992":
		return builder.FormatDIMACS1992, nil
	case "dimacs2010":
		return builder.FormatDIMACS2010, nil
	case "matrixmarket":
		return builder.FormatMatrixMarket, nil
	case "chaco":
		return builder.FormatChaco, nil
	case "snap":
		return builder.FormatSNAP, nil
	default:
		return "", fmt.Errorf("stablesolver: unknown format %q", name)
	}
}
