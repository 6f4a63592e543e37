// Command ecrho solves a single instance of the elliptic-curve discrete
// logarithm problem using parallel Pollard's rho with distinguished
// points.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"runtime"

	"ecrho/ec"
	"ecrho/internal/rho"
)

type config struct {
	p, a, b    string
	n          string
	px, py     string
	qx, qy     string
	workers    int
	negation   bool
	jsonOutput bool
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("ecrho", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	cfg := &config{}
	fs.StringVar(&cfg.p, "p", "", "prime field modulus p (decimal, required)")
	fs.StringVar(&cfg.a, "A", "0", "curve parameter A (decimal)")
	fs.StringVar(&cfg.b, "B", "0", "curve parameter B (decimal)")
	fs.StringVar(&cfg.n, "n", "", "order n of the base point P (decimal, required)")
	fs.StringVar(&cfg.px, "px", "", "base point P.x (decimal, required)")
	fs.StringVar(&cfg.py, "py", "", "base point P.y (decimal, required)")
	fs.StringVar(&cfg.qx, "qx", "", "target point Q.x (decimal, required)")
	fs.StringVar(&cfg.qy, "qy", "", "target point Q.y (decimal, required)")
	fs.IntVar(&cfg.workers, "workers", 0, "number of walk workers (default GOMAXPROCS)")
	fs.BoolVar(&cfg.negation, "negation-map", true, "enable negation-map canonicalisation")
	fs.BoolVar(&cfg.jsonOutput, "json", false, "emit result as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	for name, v := range map[string]string{
		"p": cfg.p, "n": cfg.n, "px": cfg.px, "py": cfg.py, "qx": cfg.qx, "qy": cfg.qy,
	} {
		if v == "" {
			return nil, fmt.Errorf("missing required --%s", name)
		}
	}
	if cfg.workers <= 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	return cfg, nil
}

func parseBig(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal integer %q", s)
	}
	return v, nil
}

type result struct {
	K          string `json:"k"`
	Iterations int64  `json:"iterations"`
}

func run(cfg *config) error {
	p, err := parseBig(cfg.p)
	if err != nil {
		return err
	}
	a, err := parseBig(cfg.a)
	if err != nil {
		return err
	}
	b, err := parseBig(cfg.b)
	if err != nil {
		return err
	}
	n, err := parseBig(cfg.n)
	if err != nil {
		return err
	}
	px, err := parseBig(cfg.px)
	if err != nil {
		return err
	}
	py, err := parseBig(cfg.py)
	if err != nil {
		return err
	}
	qx, err := parseBig(cfg.qx)
	if err != nil {
		return err
	}
	qy, err := parseBig(cfg.qy)
	if err != nil {
		return err
	}

	curve, err := ec.NewCurve(p, a, b)
	if err != nil {
		return err
	}
	base := ec.Point{X: px, Y: py}
	target := ec.Point{X: qx, Y: qy}
	if !curve.OnCurve(base) {
		return errors.New("P is not on the curve")
	}
	if !curve.OnCurve(target) {
		return errors.New("Q is not on the curve")
	}

	opts := rho.DefaultOptions()
	opts.Workers = cfg.workers
	opts.UseNegationMap = cfg.negation

	k, stats, err := rho.Solve(curve, n, base, target, opts)
	if err != nil {
		return err
	}

	if cfg.jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(result{K: k.String(), Iterations: stats.Iterations})
	}
	fmt.Printf("k = %s\n", k.String())
	fmt.Printf("iterations = %d\n", stats.Iterations)
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}
