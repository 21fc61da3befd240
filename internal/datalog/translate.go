package datalog

import (
	"fmt"
	"strings"
)

// mangleTerm renders a surface term in Mangle notation. Bare lowercase
// constants become name constants (/foo); strings, integers and variables
// carry over unchanged.
func mangleTerm(t Term) string {
	switch t.Kind {
	case TermConstant:
		return "/" + t.Text
	case TermString:
		return fmt.Sprintf("%q", t.Text)
	case TermInt:
		return t.Text
	case TermVariable:
		return t.Text
	default:
		return t.Text
	}
}

func mangleAtom(a Atom) string {
	args := make([]string, len(a.Args))
	for i, t := range a.Args {
		args[i] = mangleTerm(t)
	}
	return fmt.Sprintf("%s(%s)", a.Predicate, strings.Join(args, ", "))
}

// mangleProgram renders the stored statements as a Mangle source unit.
func mangleProgram(stmts []*Statement) string {
	var b strings.Builder
	for _, s := range stmts {
		switch s.Kind {
		case StmtFact:
			fmt.Fprintf(&b, "%s.\n", mangleAtom(s.Head))
		case StmtRule:
			body := make([]string, len(s.Body))
			for i, a := range s.Body {
				body[i] = mangleAtom(a)
			}
			fmt.Fprintf(&b, "%s :- %s.\n", mangleAtom(s.Head), strings.Join(body, ", "))
		}
	}
	return b.String()
}
