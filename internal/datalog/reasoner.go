package datalog

import (
	"strconv"
	"strings"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	_ "github.com/google/mangle/builtin"
	mengine "github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	_ "github.com/google/mangle/packages"
	"github.com/google/mangle/parse"

	"github.com/reasonmcp/reasonmcp/internal/enginerr"
)

// Verdict is the transferable result of one reasoner run. It carries only
// plain values; the reasoner that produced it is discarded before the
// worker returns.
type Verdict struct {
	Proven       bool
	BaseFacts    int // facts stated in the program
	DerivedFacts int // facts present after materialisation
	Matches      int // variable assignments satisfying the whole goal
}

// materialise builds a fresh Mangle reasoner over the program, evaluates it
// to a fixpoint, and returns the populated fact store. The store is only
// ever used by the calling worker and is dropped with it.
func materialise(stmts []*Statement) (factstore.FactStore, int, error) {
	src := mangleProgram(stmts)
	store := factstore.NewSimpleInMemoryStore()
	if strings.TrimSpace(src) == "" {
		return store, 0, nil
	}

	unit, err := parse.Unit(strings.NewReader(src))
	if err != nil {
		return nil, 0, enginerr.New(enginerr.Internal, "reasoner parse failed: %v", err)
	}
	info, err := analysis.AnalyzeOneUnit(unit, nil)
	if err != nil {
		return nil, 0, enginerr.New(enginerr.Internal, "reasoner analysis failed: %v", err)
	}
	if _, err := mengine.EvalProgramWithStats(info, store); err != nil {
		return nil, 0, enginerr.New(enginerr.Internal, "reasoner evaluation failed: %v", err)
	}
	return store, store.EstimateFactCount(), nil
}

// prove materialises the program and checks whether the goal conjunction is
// satisfiable against the derived facts.
func prove(stmts []*Statement, goal *Statement) (*Verdict, error) {
	store, derived, err := materialise(stmts)
	if err != nil {
		return nil, err
	}

	base := 0
	for _, s := range stmts {
		if s.Kind == StmtFact {
			base++
		}
	}

	matches := countSolutions(store, goal.Body, map[string]ast.Constant{})
	return &Verdict{
		Proven:       matches > 0,
		BaseFacts:    base,
		DerivedFacts: derived,
		Matches:      matches,
	}, nil
}

// countSolutions backtracks over the goal atoms, unifying variables against
// store facts under the running substitution.
func countSolutions(store factstore.FactStore, goals []Atom, binding map[string]ast.Constant) int {
	if len(goals) == 0 {
		return 1
	}
	goal := goals[0]

	sym, ok := findPredicate(store, goal.Predicate, len(goal.Args))
	if !ok {
		return 0
	}

	total := 0
	_ = store.GetFacts(ast.NewQuery(sym), func(fact ast.Atom) error {
		next, ok := unify(goal, fact, binding)
		if !ok {
			return nil
		}
		total += countSolutions(store, goals[1:], next)
		return nil
	})
	return total
}

func findPredicate(store factstore.FactStore, name string, arity int) (ast.PredicateSym, bool) {
	for _, sym := range store.ListPredicates() {
		if sym.Symbol == name && sym.Arity == arity {
			return sym, true
		}
	}
	return ast.PredicateSym{}, false
}

// unify matches a surface goal atom against a ground store fact, extending
// the substitution. Returns the extended substitution on success.
func unify(goal Atom, fact ast.Atom, binding map[string]ast.Constant) (map[string]ast.Constant, bool) {
	if len(goal.Args) != len(fact.Args) {
		return nil, false
	}
	next := binding
	copied := false
	for i, arg := range goal.Args {
		c, ok := fact.Args[i].(ast.Constant)
		if !ok {
			return nil, false
		}
		if arg.Kind == TermVariable {
			if prev, bound := next[arg.Text]; bound {
				if prev.String() != c.String() {
					return nil, false
				}
				continue
			}
			if !copied {
				clone := make(map[string]ast.Constant, len(next)+1)
				for k, v := range next {
					clone[k] = v
				}
				next = clone
				copied = true
			}
			next[arg.Text] = c
			continue
		}
		if !constantMatches(c, arg) {
			return nil, false
		}
	}
	return next, true
}

// constantMatches compares a store constant against a ground surface term
// under the same translation mangleTerm applies on the way in.
func constantMatches(c ast.Constant, t Term) bool {
	switch t.Kind {
	case TermConstant:
		return c.Type == ast.NameType && c.Symbol == "/"+t.Text
	case TermString:
		return c.Type == ast.StringType && c.Symbol == t.Text
	case TermInt:
		n, err := strconv.ParseInt(t.Text, 10, 64)
		return err == nil && c.Type == ast.NumberType && c.NumValue == n
	default:
		return false
	}
}
