// Command benchcomplex times the field operations of algo-complex at both
// element precisions outside the testing framework, so throughput can be
// compared across hosts and compiler versions.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"time"

	algocomplex "github.com/cwbudde/algo-complex"
	"github.com/cwbudde/algo-complex/internal/cpu"
)

var allOps = []string{"add", "sub", "mul", "div", "conj", "neg", "norm", "normsq", "scale"}

type benchResult struct {
	op        string
	precision string
	nsPerOp   float64
}

func main() {
	var (
		opList = flag.String("ops", strings.Join(allOps, ","), "comma-separated operations")
		values = flag.Int("n", 4096, "values per series")
		iters  = flag.Int("iters", 2000, "benchmark iterations")
		warmup = flag.Int("warmup", 50, "warmup iterations")
		seed   = flag.Int64("seed", 1, "rng seed")
		out    = flag.String("out", "", "export results to file (tab-separated)")
	)
	flag.Parse()

	ops := parseOps(*opList)
	if len(ops) == 0 {
		fmt.Println("no operations specified")
		return
	}

	features := cpu.DetectFeatures()
	fmt.Printf("arch=%s features=[%s]\n", features.Architecture, features)
	fmt.Printf("n=%d iters=%d warmup=%d\n", *values, *iters, *warmup)
	fmt.Printf("%8s  %10s  %12s\n", "op", "precision", "ns/op")

	var results []benchResult

	for _, op := range ops {
		ns32, ok := benchmarkOp[float32](op, *values, *iters, *warmup, *seed)
		if !ok {
			fmt.Printf("%8s  unknown operation, skipped\n", op)
			continue
		}

		ns64, _ := benchmarkOp[float64](op, *values, *iters, *warmup, *seed)

		fmt.Printf("%8s  %10s  %12.2f\n", op, "float32", ns32)
		fmt.Printf("%8s  %10s  %12.2f\n", op, "float64", ns64)

		results = append(results,
			benchResult{op: op, precision: "float32", nsPerOp: ns32},
			benchResult{op: op, precision: "float64", nsPerOp: ns64},
		)
	}

	if *out != "" {
		if err := exportResults(*out, results); err != nil {
			fmt.Printf("error exporting results: %v\n", err)
			return
		}

		fmt.Printf("\nResults exported to: %s\n", *out)
	}
}

// benchmarkOp times one operation over a series of n values and reports the
// average nanoseconds per value. The second result is false for an unknown
// operation name.
func benchmarkOp[T algocomplex.Float](op string, n, iters, warmup int, seed int64) (float64, bool) {
	rnd := rand.New(rand.NewSource(seed))

	zs := make([]algocomplex.Complex[T], n)
	ws := make([]algocomplex.Complex[T], n)
	ss := make([]T, n)

	for i := range zs {
		zs[i] = algocomplex.New(T(rnd.Float64()*2-1), T(rnd.Float64()*2-1))
		ws[i] = algocomplex.New(T(rnd.Float64()*2-1), T(rnd.Float64()*2-1))
		ss[i] = T(rnd.Float64()*2 - 1)

		// Keep divisors away from the origin so div timing stays representative.
		if ws[i].NormSq() < 0.01 {
			ws[i] = algocomplex.New[T](1, 1)
		}
	}

	dst := make([]algocomplex.Complex[T], n)
	mag := make([]T, n)

	runSeries := seriesFunc(op, zs, ws, ss, dst, mag)
	if runSeries == nil {
		return 0, false
	}

	for range warmup {
		runSeries()
	}

	runtime.GC()

	start := time.Now()

	for range iters {
		runSeries()
	}

	elapsed := time.Since(start)

	return float64(elapsed.Nanoseconds()) / float64(iters) / float64(n), true
}

// seriesFunc returns a closure running one pass of op over the series, or
// nil for an unknown name.
func seriesFunc[T algocomplex.Float](op string, zs, ws []algocomplex.Complex[T], ss []T, dst []algocomplex.Complex[T], mag []T) func() {
	switch op {
	case "add":
		return func() {
			for i := range zs {
				dst[i] = zs[i].Add(ws[i])
			}
		}
	case "sub":
		return func() {
			for i := range zs {
				dst[i] = zs[i].Sub(ws[i])
			}
		}
	case "mul":
		return func() {
			for i := range zs {
				dst[i] = zs[i].Mul(ws[i])
			}
		}
	case "div":
		return func() {
			for i := range zs {
				dst[i] = zs[i].Div(ws[i])
			}
		}
	case "conj":
		return func() {
			for i := range zs {
				dst[i] = zs[i].Conj()
			}
		}
	case "neg":
		return func() {
			for i := range zs {
				dst[i] = zs[i].Neg()
			}
		}
	case "norm":
		return func() {
			for i := range zs {
				mag[i] = zs[i].Norm()
			}
		}
	case "normsq":
		return func() {
			for i := range zs {
				mag[i] = zs[i].NormSq()
			}
		}
	case "scale":
		return func() {
			for i := range zs {
				dst[i] = zs[i].Scale(ss[i])
			}
		}
	default:
		return nil
	}
}

func parseOps(list string) []string {
	parts := strings.Split(list, ",")

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}

		out = append(out, part)
	}

	return out
}

// exportResults writes the timing table to a file, one record per line.
func exportResults(filename string, results []benchResult) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer f.Close()

	for _, res := range results {
		if _, err := fmt.Fprintf(f, "%s\t%s\t%.2f\n", res.op, res.precision, res.nsPerOp); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}

	return nil
}
