// Command matmul multiplies two dense matrices stored in the plain-text
// format and writes the product:
//
//	matmul [-workers N] <matrix A file> <matrix B file> <output file>
//
// Operands are read as float64 matrices; integer documents round-trip
// unchanged because encoding uses the shortest form. On success the program
// prints "Success!". Any argument, decode, multiply or write failure is
// reported to stderr with exit code 1.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/matmul/matrix"
	"github.com/katalvlaran/matmul/multiply"
)

const usageLine = "usage: matmul [-workers N] <matrix A file> <matrix B file> <output file>"

func main() {
	workers := flag.Int("workers", multiply.DefaultWorkers,
		"worker goroutines for the multiplication, 1..rows of A")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, usageLine)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "matmul: expected 3 file arguments, got", flag.NArg())
		fmt.Fprintln(os.Stderr, usageLine)
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Arg(1), flag.Arg(2), *workers); err != nil {
		fmt.Fprintln(os.Stderr, "matmul:", err)
		os.Exit(1)
	}
	fmt.Println("Success!")
}

// run reads both operands, multiplies them and writes the product. Split
// from main so tests can drive the whole pipeline without process plumbing.
func run(aPath, bPath, outPath string, workers int) error {
	a, err := matrix.ReadFile[float64](aPath)
	if err != nil {
		return err
	}
	b, err := matrix.ReadFile[float64](bPath)
	if err != nil {
		return err
	}
	c, err := multiply.Multiply(a, b, multiply.WithWorkers(workers))
	if err != nil {
		return err
	}

	return matrix.WriteFile(outPath, c)
}
