package datalog

import (
	"strings"
	"testing"

	"github.com/reasonmcp/reasonmcp/internal/enginerr"
)

// --- ParseStatement ---

func TestParseStatement_Fact(t *testing.T) {
	stmt, err := ParseStatement("perro(fido).")
	if err != nil {
		t.Fatalf("ParseStatement failed: %v", err)
	}
	if stmt.Kind != StmtFact {
		t.Errorf("kind = %v, want fact", stmt.Kind)
	}
	if stmt.Head.Predicate != "perro" || len(stmt.Head.Args) != 1 {
		t.Errorf("head = %+v", stmt.Head)
	}
	if stmt.Head.Args[0].Kind != TermConstant || stmt.Head.Args[0].Text != "fido" {
		t.Errorf("arg = %+v", stmt.Head.Args[0])
	}
}

func TestParseStatement_FactArgumentForms(t *testing.T) {
	stmt, err := ParseStatement(`registro(juan, "Juan Perez", 30).`)
	if err != nil {
		t.Fatalf("ParseStatement failed: %v", err)
	}
	kinds := []TermKind{TermConstant, TermString, TermInt}
	for i, want := range kinds {
		if stmt.Head.Args[i].Kind != want {
			t.Errorf("arg %d kind = %v, want %v", i, stmt.Head.Args[i].Kind, want)
		}
	}
}

func TestParseStatement_Rule(t *testing.T) {
	stmt, err := ParseStatement("come(X) :- perro(X), existe(X).")
	if err != nil {
		t.Fatalf("ParseStatement failed: %v", err)
	}
	if stmt.Kind != StmtRule {
		t.Errorf("kind = %v, want rule", stmt.Kind)
	}
	if len(stmt.Body) != 2 {
		t.Errorf("body atoms = %d, want 2", len(stmt.Body))
	}
	if got := stmt.Variables(); len(got) != 1 || got[0] != "X" {
		t.Errorf("variables = %v, want [X]", got)
	}
}

func TestParseStatement_CanonicalisesSpacing(t *testing.T) {
	stmt, err := ParseStatement("come(X)   :-   perro(X),   existe(X).")
	if err != nil {
		t.Fatalf("ParseStatement failed: %v", err)
	}
	if strings.Contains(stmt.Text, "  ") {
		t.Errorf("canonical text should collapse runs of spaces: %q", stmt.Text)
	}
}

func TestParseStatement_Malformed(t *testing.T) {
	cases := []string{
		"bad(.",
		"perro(fido)",  // missing period
		"Perro(fido).", // uppercase predicate
		"perro().",     // no arguments
		"perro(fido",   // unclosed
		"invalid syntax here",
		"",
		`nombre(x, "unterminated).`,
	}
	for _, input := range cases {
		if _, err := ParseStatement(input); err == nil {
			t.Errorf("%q should fail to parse", input)
		}
	}
}

func TestParseStatement_VariableInFact(t *testing.T) {
	_, err := ParseStatement("perro(X).")
	if !enginerr.IsKind(err, enginerr.InvalidArgument) {
		t.Errorf("kind = %v, want InvalidArgument", enginerr.KindOf(err))
	}
}

func TestParseStatement_UnboundHeadVariable(t *testing.T) {
	_, err := ParseStatement("bad(X) :- foo(Y).")
	if err == nil {
		t.Fatal("unbound head variable should fail")
	}
	if !strings.Contains(err.Error(), "X") {
		t.Errorf("error should name the unbound variable X: %v", err)
	}
}

func TestParseStatement_EmptyBody(t *testing.T) {
	if _, err := ParseStatement("head(a) :- ."); err == nil {
		t.Error("empty body should fail")
	}
}

func TestParseStatement_UnsupportedConstructs(t *testing.T) {
	cases := []string{
		"ok(X) :- not(X).",
		"total(X) :- count(X).",
		"ok(X) :- ~bad(X).",
	}
	for _, input := range cases {
		_, err := ParseStatement(input)
		if err == nil {
			t.Errorf("%q should be rejected", input)
			continue
		}
		if !strings.Contains(err.Error(), "unsupported") {
			t.Errorf("%q: error should mention unsupported, got %v", input, err)
		}
	}
}

// --- ParseQuery ---

func TestParseQuery(t *testing.T) {
	stmt, err := ParseQuery("?- come(fido).")
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}
	if stmt.Kind != StmtQuery {
		t.Errorf("kind = %v, want query", stmt.Kind)
	}
	if len(stmt.Body) != 1 || stmt.Body[0].Predicate != "come" {
		t.Errorf("body = %+v", stmt.Body)
	}
}

func TestParseQuery_Conjunction(t *testing.T) {
	stmt, err := ParseQuery("?- perro(X), existe(X).")
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}
	if len(stmt.Body) != 2 {
		t.Errorf("body atoms = %d, want 2", len(stmt.Body))
	}
}

func TestParseQuery_Malformed(t *testing.T) {
	cases := []string{
		"come(fido).",   // missing ?-
		"?- come(fido)", // missing period
		"?- .",
		"?- Come(fido).",
		"?- not(x(a)).",
	}
	for _, input := range cases {
		_, err := ParseQuery(input)
		if !enginerr.IsKind(err, enginerr.InvalidArgument) {
			t.Errorf("%q: kind = %v, want InvalidArgument", input, enginerr.KindOf(err))
		}
	}
}
