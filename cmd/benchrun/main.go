// Command benchrun runs the package benchmarks and the perft and search
// throughput binaries with one-line outputs.
//
// Usage: go run ./cmd/benchrun
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

type job struct {
	label string
	args  []string
}

var perftJobs = []job{
	{"Initial", []string{"-depth", "3"}},
	{"Initial", []string{"-depth", "4"}},
	{"Initial", []string{"-depth", "5"}},
	{"Kiwipete", []string{"-fen", kiwipete, "-depth", "3"}},
}

var searchJobs = []job{
	{"Initial", []string{"-depth", "4"}},
	{"Kiwipete", []string{"-fen", kiwipete, "-depth", "4"}},
}

func main() {
	// Format: BenchmarkName  Iterations  ns/op  B/op  allocs/op
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./board", "./engine", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, j := range perftJobs {
		run("go", append([]string{"run", "./cmd/perft", "-label", j.label}, j.args...)...)
	}

	fmt.Println("\nSearch Performance:")
	for _, j := range searchJobs {
		run("go", append([]string{"run", "./cmd/searchbench", "-label", j.label}, j.args...)...)
	}
}
