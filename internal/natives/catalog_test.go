package natives

import (
	"strings"
	"testing"

	"github.com/gxlang/gxc/internal/diagnostic"
)

func TestParse(t *testing.T) {
	src := `
// trigger natives
native void UnitKill(unit u);
native int UnitGetOwner(unit u);
native trigger TriggerCreate(string handlerName);
native timer TimerCreate();
`
	diags := diagnostic.New()
	cat := Parse(src, diags)

	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diags.Report())
	}
	if cat.Len() != 4 {
		t.Fatalf("expected 4 natives, got %d", cat.Len())
	}

	sig, ok := cat.Lookup("UnitKill")
	if !ok {
		t.Fatal("UnitKill not found")
	}
	if sig.Return != "void" {
		t.Errorf("expected return void, got %s", sig.Return)
	}
	if len(sig.Params) != 1 || sig.Params[0] != "unit" {
		t.Errorf("expected params [unit], got %v", sig.Params)
	}

	sig, ok = cat.Lookup("TimerCreate")
	if !ok {
		t.Fatal("TimerCreate not found")
	}
	if len(sig.Params) != 0 {
		t.Errorf("expected no params, got %v", sig.Params)
	}
}

func TestParse_MalformedLineKeepsRest(t *testing.T) {
	src := `native void UnitKill(unit u);
this is not a declaration
native int UnitGetOwner(unit u);`

	diags := diagnostic.New()
	cat := Parse(src, diags)

	if cat.Len() != 2 {
		t.Errorf("expected 2 natives despite bad line, got %d", cat.Len())
	}
	if diags.ErrorCount() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", diags.ErrorCount())
	}
	d := diags.All()[0]
	if d.Kind != diagnostic.NativeLoadError {
		t.Errorf("expected NativeLoadError, got %v", d.Kind)
	}
	if d.Line != 2 {
		t.Errorf("expected diagnostic on line 2, got %d", d.Line)
	}
}

func TestParse_Duplicate(t *testing.T) {
	src := `native void UnitKill(unit u);
native void UnitKill(unit u);`

	diags := diagnostic.New()
	cat := Parse(src, diags)

	if cat.Len() != 1 {
		t.Errorf("expected 1 native, got %d", cat.Len())
	}
	if diags.ErrorCount() != 1 {
		t.Errorf("expected duplicate diagnostic, got %d", diags.ErrorCount())
	}
	if !strings.Contains(diags.Report(), "more than once") {
		t.Errorf("unexpected message: %s", diags.Report())
	}
}

func TestBuiltin(t *testing.T) {
	cat := Builtin()
	if cat.Len() == 0 {
		t.Fatal("builtin catalog is empty")
	}
	sig, ok := cat.Lookup("UnitKill")
	if !ok {
		t.Fatal("builtin catalog missing UnitKill")
	}
	if sig.Return != "void" || len(sig.Params) != 1 {
		t.Errorf("unexpected UnitKill signature: %+v", sig)
	}
}

func TestFromMap(t *testing.T) {
	cat := FromMap(map[string]Signature{
		"Foo": {Return: "int", Params: []string{"fixed"}},
	})
	if _, ok := cat.Lookup("Foo"); !ok {
		t.Error("Foo not found")
	}
	if _, ok := cat.Lookup("Bar"); ok {
		t.Error("Bar should not be found")
	}
}

func TestNames_Sorted(t *testing.T) {
	cat := FromMap(map[string]Signature{
		"Zeta":  {Return: "void"},
		"Alpha": {Return: "void"},
		"Mid":   {Return: "void"},
	})
	names := cat.Names()
	want := []string{"Alpha", "Mid", "Zeta"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestParseYAML(t *testing.T) {
	doc := []byte(`
natives:
  - name: UnitKill
    returns: void
    params: [unit]
  - name: TimerCreate
    returns: timer
`)
	diags := diagnostic.New()
	cat, err := ParseYAML(doc, diags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diags.Report())
	}
	if cat.Len() != 2 {
		t.Fatalf("expected 2 natives, got %d", cat.Len())
	}
	sig, _ := cat.Lookup("UnitKill")
	if sig.Return != "void" || len(sig.Params) != 1 || sig.Params[0] != "unit" {
		t.Errorf("unexpected signature: %+v", sig)
	}
	sig, _ = cat.Lookup("TimerCreate")
	if len(sig.Params) != 0 {
		t.Errorf("expected empty params, got %v", sig.Params)
	}
}

func TestParseYAML_BadEntries(t *testing.T) {
	doc := []byte(`
natives:
  - returns: void
    params: [unit]
  - name: NoReturn
  - name: Good
    returns: int
`)
	diags := diagnostic.New()
	cat, err := ParseYAML(doc, diags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 1 {
		t.Errorf("expected 1 native, got %d", cat.Len())
	}
	if diags.ErrorCount() != 2 {
		t.Errorf("expected 2 diagnostics, got %d: %s", diags.ErrorCount(), diags.Report())
	}
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := ParseYAML([]byte("natives: [unclosed"), diagnostic.New())
	if err == nil {
		t.Error("expected error for invalid yaml")
	}
}
