package driver

import (
	"fmt"
	"os"
	"strings"

	"github.com/gxlang/gxc/internal/ast"
	"github.com/gxlang/gxc/internal/checker"
	"github.com/gxlang/gxc/internal/diagnostic"
	"github.com/gxlang/gxc/internal/natives"
	"github.com/gxlang/gxc/internal/parser"
)

// Result holds the output of an analysis run
type Result struct {
	Program     *ast.Program
	Analysis    *checker.Result
	Diagnostics *diagnostic.Diagnostics
}

// Analyze runs the full pipeline on a source string: tokenize, parse,
// then two-pass semantic analysis. Parse errors do not stop the checker;
// the parser recovers and the checker works on what survived.
func Analyze(source string, catalog *natives.Catalog) *Result {
	p := parser.New(source)
	prog := p.Parse()
	analysis := checker.Analyze(prog, catalog)

	diags := diagnostic.New()
	diags.Merge(p.Diagnostics())
	diags.Merge(analysis.Diagnostics)

	return &Result{
		Program:     prog,
		Analysis:    analysis,
		Diagnostics: diags,
	}
}

// Check runs parse + check only and returns the merged diagnostics
func Check(source string, catalog *natives.Catalog) *diagnostic.Diagnostics {
	return Analyze(source, catalog).Diagnostics
}

// CheckFile loads a script and an optional natives file and analyzes
// them. An empty nativesPath selects the built-in catalog. Errors from
// reading or decoding files come back as a plain error; everything the
// analysis finds lands in the result diagnostics.
func CheckFile(path, nativesPath string) (*Result, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	loadDiags := diagnostic.New()
	catalog, err := LoadCatalog(nativesPath, loadDiags)
	if err != nil {
		return nil, err
	}

	res := Analyze(string(source), catalog)

	diags := diagnostic.New()
	diags.Merge(loadDiags)
	diags.Merge(res.Diagnostics)
	res.Diagnostics = diags
	return res, nil
}

// LoadCatalog picks the native catalog source: the built-in table by
// default, or a declaration-text or YAML file (by extension).
func LoadCatalog(path string, diags *diagnostic.Diagnostics) (*natives.Catalog, error) {
	if path == "" {
		return natives.Builtin(), nil
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return natives.LoadYAML(path, diags)
	}
	return natives.LoadFile(path, diags)
}
