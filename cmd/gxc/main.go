package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gxlang/gxc/internal/ast"
	"github.com/gxlang/gxc/internal/driver"
	"github.com/gxlang/gxc/internal/linter"
	"github.com/gxlang/gxc/internal/parser"
)

const usage = `gxc - Galaxy script checker

Usage:
  gxc check [--natives <file>] <file.galaxy>   Parse and type-check a script
  gxc lint <file.galaxy>                       Run style checks
  gxc ast <file.galaxy>                        Print the parsed tree

Options:
  --natives <file>   Load native declarations from a file instead of the
                     built-in catalog. Plain declaration text or YAML
                     (by .yaml/.yml extension).

Examples:
  gxc check melee.galaxy
  gxc check --natives natives.yaml melee.galaxy
  gxc lint melee.galaxy
  gxc ast melee.galaxy
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		handleCheck(os.Args[2:])
	case "lint":
		handleLint(os.Args[2:])
	case "ast":
		handleAst(os.Args[2:])
	case "help", "--help", "-h":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func handleCheck(args []string) {
	var nativesPath string
	var filePath string

	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--natives":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: --natives requires a file argument")
				os.Exit(1)
			}
			i++
			nativesPath = args[i]
		case strings.HasPrefix(args[i], "-"):
			fmt.Fprintf(os.Stderr, "Unknown option: %s\n", args[i])
			os.Exit(1)
		default:
			filePath = args[i]
		}
	}

	if filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		os.Exit(1)
	}

	res, err := driver.CheckFile(filePath, nativesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	if res.Diagnostics.Count() > 0 {
		fmt.Println(res.Diagnostics.Report())
	}
	if res.Diagnostics.HasErrors() {
		os.Exit(1)
	}
	fmt.Println("No errors found.")
}

func handleLint(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		os.Exit(1)
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %s\n", err)
		os.Exit(1)
	}

	p := parser.New(string(source))
	prog := p.Parse()

	if p.Diagnostics().HasErrors() {
		fmt.Fprintln(os.Stderr, p.Diagnostics().Report())
		os.Exit(1)
	}

	diags := linter.Lint(prog)
	if diags.Count() == 0 {
		fmt.Println("No lint warnings.")
		return
	}
	fmt.Println(diags.Report())
	fmt.Printf("%d warning(s) found.\n", diags.Count())
}

func handleAst(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		os.Exit(1)
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %s\n", err)
		os.Exit(1)
	}

	p := parser.New(string(source))
	prog := p.Parse()

	if p.Diagnostics().HasErrors() {
		fmt.Fprintln(os.Stderr, p.Diagnostics().Report())
		os.Exit(1)
	}

	fmt.Print(ast.Print(prog))
}
