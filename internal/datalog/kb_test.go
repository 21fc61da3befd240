package datalog

import (
	"reflect"
	"strings"
	"testing"
)

const animalProgram = "perro(fido).\nexiste(fido).\ncome(X) :- perro(X), existe(X)."

func TestAddBulk_AtomicSuccess(t *testing.T) {
	kb := NewKnowledgeBase()
	report := kb.AddBulk(animalProgram, true)

	if report.Added != 3 {
		t.Errorf("added = %d, want 3", report.Added)
	}
	if len(report.Errors) != 0 || report.RolledBack {
		t.Errorf("unexpected errors %v / rollback %t", report.Errors, report.RolledBack)
	}

	want := []string{
		"perro(fido).",
		"existe(fido).",
		"come(X) :- perro(X), existe(X).",
	}
	if got := kb.ListPremises(); !reflect.DeepEqual(got, want) {
		t.Errorf("premises = %v, want %v", got, want)
	}
}

func TestAddBulk_AtomicRollback(t *testing.T) {
	kb := NewKnowledgeBase()
	report := kb.AddBulk("ok(a).\nbad(.", true)

	if report.Added != 0 {
		t.Errorf("added = %d, want 0", report.Added)
	}
	if !report.RolledBack {
		t.Error("expected rollback")
	}
	if len(report.Errors) != 1 || report.Errors[0].Line != 2 {
		t.Errorf("errors = %v, want one error on line 2", report.Errors)
	}
	if kb.Len() != 0 {
		t.Errorf("premises = %v, want empty", kb.ListPremises())
	}
}

func TestAddBulk_NonAtomicPartial(t *testing.T) {
	kb := NewKnowledgeBase()
	report := kb.AddBulk("perro(fido).\ninvalid syntax here\ncome(X) :- perro(X).", false)

	if report.Added != 2 {
		t.Errorf("added = %d, want 2", report.Added)
	}
	if report.Skipped != 1 || len(report.Errors) != 1 {
		t.Errorf("skipped = %d, errors = %v", report.Skipped, report.Errors)
	}
	if report.RolledBack {
		t.Error("non-atomic must not roll back")
	}
	premises := strings.Join(kb.ListPremises(), "\n")
	if !strings.Contains(premises, "perro(fido).") || !strings.Contains(premises, "come(X)") {
		t.Errorf("premises missing valid statements: %v", kb.ListPremises())
	}
}

func TestAddBulk_CommentsAndBlanksSkipped(t *testing.T) {
	kb := NewKnowledgeBase()
	input := "% facts about animals\n\nperro(fido).\n   \n% the rule\ncome(X) :- perro(X)."
	report := kb.AddBulk(input, true)

	if report.Added != 2 {
		t.Errorf("added = %d, want 2", report.Added)
	}
	if len(kb.ListPremises()) != 2 {
		t.Errorf("premises = %v, want 2 statements", kb.ListPremises())
	}
}

func TestAddBulk_MultipleStatementsPerLine(t *testing.T) {
	kb := NewKnowledgeBase()
	report := kb.AddBulk("perro(fido). perro(rex).", true)
	if report.Added != 2 {
		t.Errorf("added = %d, want 2", report.Added)
	}
}

func TestAddBulk_AtomicFailureLeavesPriorStateIntact(t *testing.T) {
	kb := NewKnowledgeBase()
	if report := kb.AddBulk("perro(fido).", true); report.Added != 1 {
		t.Fatalf("seed add failed: %+v", report)
	}
	before := kb.ListPremises()

	kb.AddBulk("existe(rex).\nbroken(", true)
	if got := kb.ListPremises(); !reflect.DeepEqual(got, before) {
		t.Errorf("atomic failure mutated the KB: %v -> %v", before, got)
	}
}

// --- AddFact / AddRule ---

func TestAddFact_RejectsRule(t *testing.T) {
	kb := NewKnowledgeBase()
	if _, err := kb.AddFact("come(X) :- perro(X)."); err == nil {
		t.Error("AddFact should reject a rule")
	}
	if _, err := kb.AddFact("perro(fido)."); err != nil {
		t.Errorf("AddFact should accept a fact: %v", err)
	}
}

func TestAddRule_RejectsFact(t *testing.T) {
	kb := NewKnowledgeBase()
	if _, err := kb.AddRule("perro(fido)."); err == nil {
		t.Error("AddRule should reject a fact")
	}
	if _, err := kb.AddRule("come(X) :- perro(X)."); err != nil {
		t.Errorf("AddRule should accept a rule: %v", err)
	}
}

// --- Reset ---

func TestReset_Idempotent(t *testing.T) {
	kb := NewKnowledgeBase()
	kb.AddBulk(animalProgram, true)
	kb.Annotate("perro", "is a dog")

	kb.Reset()
	if kb.Len() != 0 {
		t.Error("reset should empty the program")
	}
	if len(kb.Annotations()) != 0 {
		t.Error("reset should clear annotations")
	}

	kb.Reset() // second reset is a no-op
	if kb.Len() != 0 || len(kb.Annotations()) != 0 {
		t.Error("double reset should equal a single reset")
	}
}

// --- Annotations ---

func TestAnnotate(t *testing.T) {
	kb := NewKnowledgeBase()
	if err := kb.Annotate("perro", "is a dog"); err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	if kb.Annotations()["perro"] != "is a dog" {
		t.Errorf("annotations = %v", kb.Annotations())
	}

	if err := kb.Annotate("", "label"); err == nil {
		t.Error("empty predicate should fail")
	}
	if err := kb.Annotate("perro", ""); err == nil {
		t.Error("empty label should fail")
	}
}

func TestAnnotations_CopyIsIndependent(t *testing.T) {
	kb := NewKnowledgeBase()
	kb.Annotate("perro", "is a dog")
	got := kb.Annotations()
	got["perro"] = "tampered"
	if kb.Annotations()["perro"] != "is a dog" {
		t.Error("Annotations must return a copy")
	}
}

// --- ValidateRule ---

func TestValidateRule_UnboundHeadVariable(t *testing.T) {
	report := ValidateRule("bad(X) :- foo(Y).")
	if report.Valid {
		t.Error("expected invalid")
	}
	if len(report.Errors) == 0 || !strings.Contains(report.Errors[0], "X") {
		t.Errorf("errors should name X: %v", report.Errors)
	}
}

func TestValidateRule_Valid(t *testing.T) {
	report := ValidateRule("mortal(X) :- humano(X).")
	if !report.Valid || len(report.Errors) != 0 {
		t.Errorf("expected valid, got %+v", report)
	}
}

func TestValidateRule_FactWarns(t *testing.T) {
	report := ValidateRule("perro(fido).")
	if !report.Valid {
		t.Error("a fact is syntactically acceptable")
	}
	if len(report.Warnings) == 0 {
		t.Error("expected a warning about the statement being a fact")
	}
}

func TestValidateRule_DoesNotMutate(t *testing.T) {
	kb := NewKnowledgeBase()
	ValidateRule("mortal(X) :- humano(X).")
	if kb.Len() != 0 {
		t.Error("validation must not store anything")
	}
}

func TestValidateRule_Render(t *testing.T) {
	out := ValidateRule("bad(X) :- foo(Y).").Render("bad(X) :- foo(Y).")
	if !strings.Contains(out, "Valid: false") {
		t.Errorf("render should report invalid:\n%s", out)
	}
}
