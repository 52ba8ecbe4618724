package linter

import (
	"strings"
	"testing"

	"github.com/gxlang/gxc/internal/parser"
)

func parseAndLint(t *testing.T, source string) []string {
	t.Helper()
	p := parser.New(source)
	prog := p.Parse()

	if p.Diagnostics().HasErrors() {
		t.Fatalf("parser errors:\n%s", p.Diagnostics().Report())
	}

	diag := Lint(prog)
	var warnings []string
	for _, d := range diag.All() {
		warnings = append(warnings, d.Message)
	}
	return warnings
}

func containsWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

func TestLint_GlobalPrefix(t *testing.T) {
	warnings := parseAndLint(t, `
int score;
int gv_lives;
`)
	if !containsWarning(warnings, "'score' should use the gv_ prefix") {
		t.Errorf("expected gv_ prefix warning, got: %v", warnings)
	}
	if containsWarning(warnings, "gv_lives") {
		t.Errorf("did not expect warning for gv_lives, got: %v", warnings)
	}
}

func TestLint_ConstPrefix(t *testing.T) {
	warnings := parseAndLint(t, `
const int maxUnits = 8;
const int c_maxPlayers = 16;
`)
	if !containsWarning(warnings, "'maxUnits' should use the c_ prefix") {
		t.Errorf("expected c_ prefix warning, got: %v", warnings)
	}
	if containsWarning(warnings, "c_maxPlayers") {
		t.Errorf("did not expect warning for c_maxPlayers, got: %v", warnings)
	}
}

func TestLint_EmptyFunctionBody(t *testing.T) {
	warnings := parseAndLint(t, `
void noop() {
}
`)
	if !containsWarning(warnings, "empty body") {
		t.Errorf("expected empty body warning, got: %v", warnings)
	}
}

func TestLint_PrototypeNotEmpty(t *testing.T) {
	warnings := parseAndLint(t, `int add(int a, int b);`)
	if containsWarning(warnings, "empty body") {
		t.Errorf("prototypes should not warn, got: %v", warnings)
	}
}

func TestLint_UnusedParam(t *testing.T) {
	warnings := parseAndLint(t, `
int first(int a, int b) {
    return a;
}
`)
	if !containsWarning(warnings, "parameter 'b' in 'first' is never used") {
		t.Errorf("expected unused parameter warning, got: %v", warnings)
	}
	if containsWarning(warnings, "parameter 'a'") {
		t.Errorf("did not expect warning for a, got: %v", warnings)
	}
}

func TestLint_UnusedLocal(t *testing.T) {
	warnings := parseAndLint(t, `
void f() {
    int used;
    int wasted;
    used = 1;
    used += used;
}
`)
	if !containsWarning(warnings, "'wasted' is declared but never used") {
		t.Errorf("expected unused variable warning, got: %v", warnings)
	}
	if containsWarning(warnings, "'used'") {
		t.Errorf("did not expect warning for used, got: %v", warnings)
	}
}

func TestLint_UnusedLocalInNestedBlock(t *testing.T) {
	warnings := parseAndLint(t, `
void f() {
    if (true) {
        int inner;
    }
}
`)
	if !containsWarning(warnings, "'inner' is declared but never used") {
		t.Errorf("expected nested unused warning, got: %v", warnings)
	}
}

func TestLint_CompoundAssignmentIsUse(t *testing.T) {
	warnings := parseAndLint(t, `
void tick(int delta) {
    gv_total += delta;
}

int gv_total;
`)
	if containsWarning(warnings, "parameter 'delta'") {
		t.Errorf("compound assignment should count as a use, got: %v", warnings)
	}
}

func TestLint_FunctionNaming(t *testing.T) {
	warnings := parseAndLint(t, `
void _hidden() {
    return;
}

void LOUD() {
    return;
}
`)
	if !containsWarning(warnings, "'_hidden' should not start with an underscore") {
		t.Errorf("expected underscore warning, got: %v", warnings)
	}
	if !containsWarning(warnings, "'LOUD' should not be all uppercase") {
		t.Errorf("expected all-caps warning, got: %v", warnings)
	}
}

func TestLint_CleanProgramNoWarnings(t *testing.T) {
	warnings := parseAndLint(t, `
const int c_max = 4;
int gv_count;

int bump(int amount) {
    gv_count += amount;
    return gv_count;
}
`)
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got: %v", warnings)
	}
}
