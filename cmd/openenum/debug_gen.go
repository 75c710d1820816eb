//go:build ignore

package main

import (
	"fmt"
	"os"

	"openenum/internal/gen"
	"openenum/internal/resolve"
	"openenum/internal/scan"
)

func main() {
	defs, diags, err := scan.NewScanner("").Load("openenum/examples/signal")
	if err != nil {
		fmt.Println("load packages:", err)
		os.Exit(1)
	}

	if diags.HasErrors() {
		fmt.Println("scan diagnostics:")
		fmt.Printf("%+v\n", diags)
		os.Exit(1)
	}

	generator := gen.NewGenerator(gen.DefaultGeneratorConfig())

	for _, def := range defs {
		r, err := resolve.Resolve(def)
		if err != nil {
			fmt.Println("resolve error:", err)
			os.Exit(1)
		}

		f, genErr := generator.Generate(r)
		if genErr != nil {
			fmt.Println("generate error:", genErr)
		}

		if f != nil {
			fmt.Println("===", f.Filename, "===")
			fmt.Println(string(f.Content))
		}
	}
}
