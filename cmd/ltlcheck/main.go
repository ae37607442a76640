/*
Ltlcheck checks an LTL formula against one of the built-in reference
program-graph scenarios.

It does not parse GCL source — it selects a named scenario from package
pgref and checks a formula against it, printing the resulting verdict.

Usage:

	ltlcheck --scenario NAME --formula FORMULA [flags]

The flags are:

	-s, --scenario NAME
		Name of the built-in scenario to check (see --list).

	-f, --formula FORMULA
		The LTL formula to check, in the surface syntax of the
		{atom} grammar (e.g. "[]({n = 0})").

	-d, --depth N
		Maximum nested-DFS search depth. Defaults to 1000.

	-c, --config FILE
		Read scenario/formula/depth defaults from a TOML file; flags
		override whatever the file sets.

	-l, --list
		List the available scenario names and exit.

Exit codes:

	0  the search completed: the formula either holds or a violation
	   was reported (see the printed verdict for which)
	1  input error: unknown scenario, unparseable formula, bad config
	2  the search exhausted its depth bound without a verdict
*/
package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/gclverify/ltlcheck/expr"
	"github.com/gclverify/ltlcheck/ltl"
	"github.com/gclverify/ltlcheck/pgref"
	"github.com/gclverify/ltlcheck/search"
	"github.com/gclverify/ltlcheck/verify"
)

const (
	// ExitVerdict indicates the search completed with a verdict
	// (holds, or a reported violation).
	ExitVerdict = 0
	// ExitInputError indicates a problem with the CLI input itself.
	ExitInputError = 1
	// ExitDepthExceeded indicates the search was inconclusive.
	ExitDepthExceeded = 2
)

const defaultDepth = 1000

// fileConfig is the shape of the optional --config TOML file.
type fileConfig struct {
	Scenario string `toml:"scenario"`
	Formula  string `toml:"formula"`
	Depth    int    `toml:"search_depth"`
}

var (
	flagScenario = pflag.StringP("scenario", "s", "", "built-in scenario to check")
	flagFormula  = pflag.StringP("formula", "f", "", "LTL formula to check")
	flagDepth    = pflag.IntP("depth", "d", 0, "maximum nested-DFS search depth")
	flagConfig   = pflag.StringP("config", "c", "", "TOML file of scenario/formula/depth defaults")
	flagList     = pflag.BoolP("list", "l", false, "list available scenarios and exit")
)

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Parse()

	if *flagList {
		for _, s := range pgref.Scenarios() {
			fmt.Println(s)
		}
		return ExitVerdict
	}

	cfg := fileConfig{Depth: defaultDepth}
	if *flagConfig != "" {
		if _, err := toml.DecodeFile(*flagConfig, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "ltlcheck: reading config: %s\n", err)
			return ExitInputError
		}
	}
	if *flagScenario != "" {
		cfg.Scenario = *flagScenario
	}
	if *flagFormula != "" {
		cfg.Formula = *flagFormula
	}
	if *flagDepth != 0 {
		cfg.Depth = *flagDepth
	}

	if cfg.Scenario == "" || cfg.Formula == "" {
		fmt.Fprintln(os.Stderr, "ltlcheck: both --scenario and --formula are required (see --list)")
		return ExitInputError
	}

	surface, err := ltl.Parse(cfg.Formula, expr.ParseAtom)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ltlcheck: parsing formula: %s\n", err)
		return ExitInputError
	}

	result, err := checkScenario(pgref.Scenario(cfg.Scenario), surface, cfg.Depth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ltlcheck: %s\n", err)
		return ExitInputError
	}

	return report(result)
}

func checkScenario(name pgref.Scenario, formula ltl.Surface, depth int) (verify.Result, error) {
	ev := expr.Evaluator{}

	if name == pgref.ScenarioFlipFlop {
		graph, mem, ok := pgref.BuildParallel()
		if !ok {
			return verify.Result{}, fmt.Errorf("unknown scenario %q (see --list)", name)
		}
		return verify.VerifyParallel(graph, ev, formula, mem, depth), nil
	}

	graph, mem, ok := pgref.Build(name)
	if !ok {
		return verify.Result{}, fmt.Errorf("unknown scenario %q (see --list)", name)
	}
	return verify.Verify(graph, ev, formula, mem, depth), nil
}

func report(result verify.Result) int {
	switch v := result.Verdict.(type) {
	case search.FormulaHolds:
		fmt.Println("formula holds")
		return ExitVerdict
	case search.CycleFound:
		fmt.Printf("formula violated: accepting cycle of length %d found (cycle starts at step %d)\n",
			len(v.Trace)-v.CycleStart, v.CycleStart)
		return ExitVerdict
	case search.DepthExceeded:
		fmt.Println("search depth exceeded: no verdict")
		return ExitDepthExceeded
	default:
		fmt.Println("search produced no verdict")
		return ExitDepthExceeded
	}
}
