package calcexpr

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	vars := map[string]float64{
		"savings": 100000,
		"rate":    0.05,
		"years":   10,
		"zero":    0,
	}

	tests := []struct {
		name string
		expr string
		want float64
	}{
		{"number", "42", 42},
		{"decimal", "3.5", 3.5},
		{"addition", "2 + 3", 5},
		{"subtraction", "10 - 4", 6},
		{"multiplication", "6 * 7", 42},
		{"division", "10 / 4", 2.5},
		{"modulo", "10 % 3", 1},
		{"power", "2 ^ 10", 1024},
		{"power right associative", "2 ^ 3 ^ 2", 512},
		{"precedence", "2 + 3 * 4", 14},
		{"parentheses", "(2 + 3) * 4", 20},
		{"unary minus", "-5 + 10", 5},
		{"double unary", "--5", 5},
		{"variable", "savings", 100000},
		{"compound interest", "savings * (1 + rate) ^ years", 100000 * math.Pow(1.05, 10)},
		{"mixed", "savings / years - 1000", 9000},
		{"no spaces", "2+3*4", 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.expr, vars)
			if err != nil {
				t.Fatalf("Evaluate(%q) error = %v", tt.expr, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	vars := map[string]float64{"x": 1, "zero": 0}

	tests := []struct {
		name    string
		expr    string
		wantErr error
	}{
		{"empty", "", ErrSyntax},
		{"unknown variable", "x + y", ErrUnknownVariable},
		{"division by zero", "x / zero", ErrDivisionByZero},
		{"modulo by zero", "x % zero", ErrDivisionByZero},
		{"unbalanced paren", "(x + 1", ErrSyntax},
		{"trailing junk", "x + 1)", ErrSyntax},
		{"double dot number", "1.2.3", ErrSyntax},
		{"dangling operator", "x +", ErrSyntax},
		{"function call rejected", "pow(2, 3)", ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate(tt.expr, vars)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Evaluate(%q) error = %v, want %v", tt.expr, err, tt.wantErr)
			}
		})
	}
}

func TestParse_ReusableAcrossBindings(t *testing.T) {
	node, err := Parse("principal * (1 + rate)")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	first, err := node.Eval(map[string]float64{"principal": 100, "rate": 0.1})
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}
	second, err := node.Eval(map[string]float64{"principal": 200, "rate": 0.5})
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}

	if math.Abs(first-110) > 1e-9 || math.Abs(second-300) > 1e-9 {
		t.Errorf("Eval() = %v, %v; want 110, 300", first, second)
	}
}

func TestEvaluate_NoHostAccess(t *testing.T) {
	// Identifiers are only ever looked up in the binding map; anything not
	// bound is an error, never a call into the host language.
	for _, expr := range []string{"os", "exec", "__proto__", "eval"} {
		_, err := Evaluate(expr, map[string]float64{})
		if !errors.Is(err, ErrUnknownVariable) {
			t.Errorf("Evaluate(%q) error = %v, want ErrUnknownVariable", expr, err)
		}
	}
}
