// shapeinfo is a trivial inspection tool for tensor shapes written in the
// "<dtype>[<dim0>,<dim1>,...]" text format: it prints their rank, number of
// elements, dtype and memory usage.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/lazytensors/shapes"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var flagJSON = flag.Bool("json", false, "Output one JSON object per shape, instead of the text description")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `shapeinfo prints the properties of tensor shapes.

$ shapeinfo "Float[1000,256]" "Long[]"

Shapes are given as the dtype name followed by the comma-separated dimensions
in square brackets -- the same format used by shapes.Shape.String. If no shapes
are given in the command line, they are read from stdin, one per line.

Usage:
`)
		flag.PrintDefaults()
	}
	klog.InitFlags(flag.CommandLine)
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			args = append(args, line)
		}
		must.M(scanner.Err())
	}

	exitCode := 0
	for _, arg := range args {
		err := exceptions.TryCatch[error](func() { printShape(arg) })
		if err != nil {
			klog.Errorf("skipping %q: %+v", arg, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func printShape(arg string) {
	shape := must.M1(shapes.Parse(arg))
	if *flagJSON {
		fmt.Println(string(must.M1(json.Marshal(shape))))
		return
	}
	fmt.Printf("%s:\n", shape)
	fmt.Printf("\trank:   %d\n", shape.Rank())
	fmt.Printf("\tsize:   %d element(s)\n", shape.Size())
	if !shape.Ok() {
		fmt.Printf("\tdtype:  invalid\n")
		return
	}
	goType := "none"
	if shape.DType.IsSupported() {
		goType = shape.DType.GoStr()
	}
	fmt.Printf("\tdtype:  %s (Go type: %s, %d bytes per element)\n", shape.DType, goType, shape.DType.Size())
	fmt.Printf("\tmemory: %d byte(s)\n", shape.Memory())
}
