package natives

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gxlang/gxc/internal/diagnostic"
)

// Signature describes a native function by type name. Names stay strings
// here; the checker resolves them against its type model.
type Signature struct {
	Return string
	Params []string
}

// Catalog is an immutable name to signature table of native functions
// available to a script. Build one from a declaration file, a YAML document,
// the builtin table, or an in-process map, then hand it to the analyzer.
type Catalog struct {
	entries map[string]Signature
}

// FromMap builds a catalog from an in-process map
func FromMap(m map[string]Signature) *Catalog {
	entries := make(map[string]Signature, len(m))
	for name, sig := range m {
		entries[name] = sig
	}
	return &Catalog{entries: entries}
}

// Builtin returns the fixed table of common trigger natives
func Builtin() *Catalog {
	return FromMap(map[string]Signature{
		"UnitKill":            {Return: "void", Params: []string{"unit"}},
		"UnitGetOwner":        {Return: "int", Params: []string{"unit"}},
		"UnitSetOwner":        {Return: "void", Params: []string{"unit", "int", "bool"}},
		"UnitGetPosition":     {Return: "point", Params: []string{"unit"}},
		"UnitGroupCount":      {Return: "int", Params: []string{"unitgroup", "int"}},
		"UnitGroupEmpty":      {Return: "unitgroup", Params: []string{}},
		"UnitGroupAdd":        {Return: "void", Params: []string{"unitgroup", "unit"}},
		"TriggerCreate":       {Return: "trigger", Params: []string{"string"}},
		"TriggerEnable":       {Return: "void", Params: []string{"trigger", "bool"}},
		"TriggerExecute":      {Return: "void", Params: []string{"trigger", "bool", "bool"}},
		"TimerCreate":         {Return: "timer", Params: []string{}},
		"TimerStart":          {Return: "void", Params: []string{"timer", "fixed", "bool", "int"}},
		"TimerGetElapsed":     {Return: "fixed", Params: []string{"timer"}},
		"RegionCircle":        {Return: "region", Params: []string{"point", "fixed"}},
		"RegionContainsPoint": {Return: "bool", Params: []string{"region", "point"}},
		"Point":               {Return: "point", Params: []string{"fixed", "fixed"}},
		"PointGetX":           {Return: "fixed", Params: []string{"point"}},
		"PointGetY":           {Return: "fixed", Params: []string{"point"}},
		"IntToString":         {Return: "string", Params: []string{"int"}},
		"IntToFixed":          {Return: "fixed", Params: []string{"int"}},
		"FixedToInt":          {Return: "int", Params: []string{"fixed"}},
		"StringLength":        {Return: "int", Params: []string{"string"}},
		"StringToText":        {Return: "text", Params: []string{"string"}},
		"TriggerDebugOutput":  {Return: "void", Params: []string{"int", "text", "bool"}},
		"PlayerGroupAll":      {Return: "playergroup", Params: []string{}},
		"SoundPlay":           {Return: "void", Params: []string{"soundlink", "playergroup", "fixed", "fixed"}},
		"GameSetSpeedValue":   {Return: "void", Params: []string{"fixed"}},
		"RandomInt":           {Return: "int", Params: []string{"int", "int"}},
		"RandomFixed":         {Return: "fixed", Params: []string{"fixed", "fixed"}},
	})
}

// LoadFile reads a Galaxy native declaration file, one declaration per line:
//
//	native void UnitKill(unit u);
//
// Malformed lines produce NativeLoadError diagnostics; well-formed lines
// still load.
func LoadFile(path string, diags *diagnostic.Diagnostics) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading natives file: %w", err)
	}
	return Parse(string(data), diags), nil
}

// Parse parses native declaration text. See LoadFile for the format.
func Parse(src string, diags *diagnostic.Diagnostics) *Catalog {
	entries := make(map[string]Signature)

	for i, line := range strings.Split(src, "\n") {
		lineNo := i + 1
		line = strings.TrimSpace(line)
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		if line == "" {
			continue
		}

		name, sig, err := parseDeclaration(line)
		if err != nil {
			diags.Errorf(diagnostic.NativeLoadError, lineNo, 1, "%s", err.Error())
			continue
		}
		if _, exists := entries[name]; exists {
			diags.Errorf(diagnostic.NativeLoadError, lineNo, 1,
				"native '%s' declared more than once", name)
			continue
		}
		entries[name] = sig
	}

	return &Catalog{entries: entries}
}

// parseDeclaration parses one line of the form
// native <type> <name>(<type> <name>, ...);
func parseDeclaration(line string) (string, Signature, error) {
	rest, ok := strings.CutPrefix(line, "native")
	if !ok {
		return "", Signature{}, fmt.Errorf("expected 'native' declaration, got %q", line)
	}
	rest = strings.TrimSpace(rest)
	rest = strings.TrimSuffix(rest, ";")

	open := strings.Index(rest, "(")
	closing := strings.LastIndex(rest, ")")
	if open < 0 || closing < open {
		return "", Signature{}, fmt.Errorf("malformed native declaration %q", line)
	}

	head := strings.Fields(rest[:open])
	if len(head) != 2 {
		return "", Signature{}, fmt.Errorf("malformed native signature %q", line)
	}
	retType, name := head[0], head[1]

	var params []string
	paramText := strings.TrimSpace(rest[open+1 : closing])
	if paramText != "" {
		for _, p := range strings.Split(paramText, ",") {
			fields := strings.Fields(strings.TrimSpace(p))
			if len(fields) < 1 || len(fields) > 2 {
				return "", Signature{}, fmt.Errorf("malformed parameter %q in %q", p, line)
			}
			params = append(params, fields[0])
		}
	}

	return name, Signature{Return: retType, Params: params}, nil
}

// Lookup returns the signature for a native, if present
func (c *Catalog) Lookup(name string) (Signature, bool) {
	sig, ok := c.entries[name]
	return sig, ok
}

// Names returns all native names in sorted order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of natives in the catalog
func (c *Catalog) Len() int {
	return len(c.entries)
}
