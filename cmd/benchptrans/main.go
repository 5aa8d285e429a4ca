// Command benchptrans benchmarks the dense and sparse partial-transpose
// paths over a configurable composite operator shape.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/cpu"

	algoquant "github.com/cwbudde/algo-quant"
)

func main() {
	var (
		dimsArg = flag.String("dims", "2,2,2,2,2,2", "comma-separated subsystem dimensions")
		maskArg = flag.String("mask", "", "comma-separated 0/1 selection mask (default: alternating)")
		iters   = flag.Int("iters", 200, "benchmark iterations")
		warmup  = flag.Int("warmup", 10, "warmup iterations")
		density = flag.Float64("density", 0.05, "nonzero density for the sparse benchmark input")
		seed    = flag.Int64("seed", 1, "rng seed")
		path    = flag.String("path", "both", "benchmark path: dense, sparse, both")
	)
	flag.Parse()

	dims, err := parseDims(*dimsArg)
	if err != nil {
		fmt.Println("bad -dims:", err)
		return
	}
	mask, err := parseMask(*maskArg, len(dims))
	if err != nil {
		fmt.Println("bad -mask:", err)
		return
	}

	d := 1
	for _, dim := range dims {
		d *= dim
	}

	printBanner()
	fmt.Printf("dims=%v mask=%v D=%d iters=%d warmup=%d\n", dims, mask, d, *iters, *warmup)
	fmt.Printf("%8s  %8s  %12s  %12s\n", "path", "nnz", "ns/op", "us/op")

	rnd := rand.New(rand.NewSource(*seed))

	if *path == "dense" || *path == "both" {
		q := randomDense(rnd, dims, d)
		ns := benchmark(q, mask, *iters, *warmup)
		fmt.Printf("%8s  %8d  %12.1f  %12.3f\n", "dense", q.NNZ(), ns, ns/1e3)
	}
	if *path == "sparse" || *path == "both" {
		q := randomSparse(rnd, dims, d, *density)
		ns := benchmark(q, mask, *iters, *warmup)
		fmt.Printf("%8s  %8d  %12.1f  %12.3f\n", "sparse", q.NNZ(), ns, ns/1e3)
	}
}

func printBanner() {
	features := make([]string, 0, 4)
	if cpu.X86.HasSSE2 {
		features = append(features, "sse2")
	}
	if cpu.X86.HasAVX2 {
		features = append(features, "avx2")
	}
	if cpu.X86.HasAVX512 {
		features = append(features, "avx512")
	}
	if cpu.ARM64.HasASIMD {
		features = append(features, "neon")
	}
	fmt.Printf("arch=%s procs=%d features=%s\n",
		runtime.GOARCH, runtime.GOMAXPROCS(0), strings.Join(features, ","))
}

func parseDims(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	dims := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		if v < 1 {
			return nil, fmt.Errorf("dimension %d is not positive", v)
		}
		dims = append(dims, v)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("no dimensions")
	}
	return dims, nil
}

func parseMask(s string, n int) ([]bool, error) {
	if s == "" {
		mask := make([]bool, n)
		for k := range mask {
			mask[k] = k%2 == 0
		}
		return mask, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("mask has %d entries, want %d", len(parts), n)
	}
	mask := make([]bool, n)
	for k, p := range parts {
		switch strings.TrimSpace(p) {
		case "0":
			mask[k] = false
		case "1":
			mask[k] = true
		default:
			return nil, fmt.Errorf("mask entry %q is not 0 or 1", p)
		}
	}
	return mask, nil
}

func randomDense(rnd *rand.Rand, dims []int, d int) *algoquant.Qop[complex128] {
	data := make([]complex128, d*d)
	for i := range data {
		data[i] = complex(rnd.NormFloat64(), rnd.NormFloat64())
	}
	q, err := algoquant.NewDense(dims, data)
	if err != nil {
		panic(err)
	}
	return q
}

func randomSparse(rnd *rand.Rand, dims []int, d int, density float64) *algoquant.Qop[complex128] {
	data := make([]complex128, d*d)
	for i := range data {
		if rnd.Float64() < density {
			data[i] = complex(rnd.NormFloat64(), rnd.NormFloat64())
		}
	}
	q, err := algoquant.NewDense(dims, data)
	if err != nil {
		panic(err)
	}
	return q.ToSparse()
}

func benchmark(q *algoquant.Qop[complex128], mask []bool, iters, warmup int) float64 {
	for i := 0; i < warmup; i++ {
		if _, err := q.PartialTranspose(mask); err != nil {
			panic(err)
		}
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		if _, err := q.PartialTranspose(mask); err != nil {
			panic(err)
		}
	}
	elapsed := time.Since(start)

	return float64(elapsed.Nanoseconds()) / float64(iters)
}
