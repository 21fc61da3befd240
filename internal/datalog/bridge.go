package datalog

import (
	"context"
	"encoding/json"
	"time"
)

// QueryResult is the tool-facing outcome of a query call. Bindings and trace
// are contract placeholders: clients receive a proven/not-proven verdict plus
// an opaque trace that explain_inference can render.
type QueryResult struct {
	Proven   bool
	Bindings []string
	Trace    string // JSON trace skeleton
}

// MaterializeResult is the tool-facing outcome of a materialize call.
type MaterializeResult struct {
	BaseFacts    int
	DerivedFacts int
}

// Bridge schedules reasoner work for knowledge bases on a shared pool.
// Validation happens on the caller's side of the bridge: a malformed goal
// never reaches a worker.
type Bridge struct {
	pool *Pool
}

// NewBridge wraps a worker pool.
func NewBridge(pool *Pool) *Bridge {
	return &Bridge{pool: pool}
}

// Pool exposes the underlying pool, mainly for its counters.
func (b *Bridge) Pool() *Pool { return b.pool }

// Query validates the goal, snapshots the program, and proves the goal on a
// blocking worker under the timeout gate.
func (b *Bridge) Query(ctx context.Context, kb *KnowledgeBase, query string, timeout time.Duration) (*QueryResult, error) {
	goal, err := ParseQuery(query)
	if err != nil {
		return nil, err
	}

	snapshot := kb.Statements()
	verdict, err := b.pool.Run(ctx, timeout, func() (*Verdict, error) {
		return prove(snapshot, goal)
	})
	if err != nil {
		return nil, err
	}

	return &QueryResult{
		Proven:   verdict.Proven,
		Bindings: nil, // placeholder until the reasoner exposes bindings
		Trace:    traceSkeleton(goal, verdict),
	}, nil
}

// Materialize runs the reasoner to a fixpoint on a blocking worker and
// reports how many facts the closure holds.
func (b *Bridge) Materialize(ctx context.Context, kb *KnowledgeBase, timeout time.Duration) (*MaterializeResult, error) {
	snapshot := kb.Statements()
	verdict, err := b.pool.Run(ctx, timeout, func() (*Verdict, error) {
		_, derived, err := materialise(snapshot)
		if err != nil {
			return nil, err
		}
		base := 0
		for _, s := range snapshot {
			if s.Kind == StmtFact {
				base++
			}
		}
		return &Verdict{BaseFacts: base, DerivedFacts: derived}, nil
	})
	if err != nil {
		return nil, err
	}
	return &MaterializeResult{
		BaseFacts:    verdict.BaseFacts,
		DerivedFacts: verdict.DerivedFacts,
	}, nil
}

// traceSkeleton renders the fixed trace placeholder for a query outcome.
func traceSkeleton(goal *Statement, verdict *Verdict) string {
	payload := map[string]any{
		"goal":    goal.Text,
		"proven":  verdict.Proven,
		"matches": verdict.Matches,
		"facts": map[string]int{
			"base":    verdict.BaseFacts,
			"derived": verdict.DerivedFacts,
		},
		"steps": []any{},
	}
	out, err := json.Marshal(payload)
	if err != nil {
		return `{"steps":[]}`
	}
	return string(out)
}
