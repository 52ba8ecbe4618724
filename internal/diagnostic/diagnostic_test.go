package diagnostic

import (
	"strings"
	"testing"
)

func TestOrderPreserved(t *testing.T) {
	d := New()
	d.Errorf(UndefinedName, 1, 1, "first")
	d.Warningf(TypeMismatch, 2, 1, "second")
	d.Errorf(ArityMismatch, 3, 1, "third")

	all := d.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(all))
	}
	want := []string{"first", "second", "third"}
	for i, msg := range want {
		if all[i].Message != msg {
			t.Errorf("diagnostic %d: expected %q, got %q", i, msg, all[i].Message)
		}
	}
}

func TestCounts(t *testing.T) {
	d := New()
	if d.HasErrors() {
		t.Error("empty collection should have no errors")
	}

	d.Errorf(TypeMismatch, 1, 1, "bad")
	d.Warningf(TypeMismatch, 2, 2, "iffy")

	if !d.HasErrors() {
		t.Error("expected HasErrors after Errorf")
	}
	if d.Count() != 2 {
		t.Errorf("expected Count 2, got %d", d.Count())
	}
	if d.ErrorCount() != 1 {
		t.Errorf("expected ErrorCount 1, got %d", d.ErrorCount())
	}
	if len(d.Errors()) != 1 {
		t.Errorf("expected 1 error, got %d", len(d.Errors()))
	}
}

func TestReportFormat(t *testing.T) {
	d := New()
	d.Errorf(UndefinedName, 3, 10, "undeclared variable 'x'")
	d.Warningf(TypeMismatch, 5, 1, "suspicious conversion")

	report := d.Report()
	lines := strings.Split(report, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 report lines, got %d: %q", len(lines), report)
	}
	if lines[0] != "error: undeclared variable 'x' (3:10)" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "warning: suspicious conversion (5:1)" {
		t.Errorf("unexpected second line: %q", lines[1])
	}
}

func TestReportEmpty(t *testing.T) {
	if got := New().Report(); got != "" {
		t.Errorf("expected empty report, got %q", got)
	}
}

func TestMerge(t *testing.T) {
	a := New()
	a.Errorf(SyntaxError, 1, 1, "parse error")
	b := New()
	b.Errorf(TypeMismatch, 2, 1, "type error")

	a.Merge(b)
	if a.Count() != 2 {
		t.Fatalf("expected 2 after merge, got %d", a.Count())
	}
	if a.All()[0].Kind != SyntaxError || a.All()[1].Kind != TypeMismatch {
		t.Error("merge should preserve order")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{UndefinedName, "undefined-name"},
		{DuplicateDeclaration, "duplicate-declaration"},
		{TypeMismatch, "type-mismatch"},
		{ArityMismatch, "arity-mismatch"},
		{InvalidControlFlow, "invalid-control-flow"},
		{InvalidMemberAccess, "invalid-member-access"},
		{NativeLoadError, "native-load-error"},
		{SyntaxError, "syntax-error"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
