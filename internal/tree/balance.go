package tree

import "github.com/reasonmcp/reasonmcp/internal/enginerr"

// UncertaintyType selects the probability rebalancing policy.
type UncertaintyType string

const (
	// Conservative downweights low-confidence branches before normalising.
	Conservative UncertaintyType = "Conservative"

	// Neutral renormalises the probabilities as they stand.
	Neutral UncertaintyType = "Neutral"

	// Optimistic bumps high-confidence branches toward certainty before
	// normalising.
	Optimistic UncertaintyType = "Optimistic"
)

// ParseUncertaintyType maps a tool argument onto a policy.
func ParseUncertaintyType(s string) (UncertaintyType, error) {
	switch UncertaintyType(s) {
	case Conservative, Neutral, Optimistic:
		return UncertaintyType(s), nil
	default:
		return "", enginerr.New(enginerr.InvalidArgument,
			"unknown uncertainty_type %q (expected Conservative, Neutral or Optimistic)", s)
	}
}

// BalanceChange records one node's probability move.
type BalanceChange struct {
	NodeID string
	Old    float64
	New    float64
}

// BalanceReport summarises a balance_leafs run.
type BalanceReport struct {
	Policy  UncertaintyType
	Changes []BalanceChange
}

// Balance normalises the probabilities of the cursor's direct children so
// they sum to 1.0, after applying the policy's raw weighting. If every raw
// weight is zero the mass is distributed uniformly.
func (t *Tree) Balance(policy UncertaintyType) (*BalanceReport, error) {
	cursor := t.mustNode(t.cursorID)
	if len(cursor.Children) == 0 {
		return nil, enginerr.New(enginerr.StateViolation,
			"cursor node %s has no children to balance", cursor.ID)
	}

	raw := make([]float64, len(cursor.Children))
	sum := 0.0
	for i, id := range cursor.Children {
		child := t.mustNode(id)
		switch policy {
		case Conservative:
			raw[i] = child.Probability * float64(child.Confidence) / 10.0
		case Neutral:
			raw[i] = child.Probability
		case Optimistic:
			raw[i] = child.Probability + (1.0-child.Probability)*float64(child.Confidence)/20.0
		default:
			return nil, enginerr.New(enginerr.InvalidArgument,
				"unknown uncertainty_type %q", policy)
		}
		sum += raw[i]
	}

	report := &BalanceReport{Policy: policy}
	for i, id := range cursor.Children {
		child := t.mustNode(id)
		next := 1.0 / float64(len(cursor.Children)) // uniform fallback
		if sum > 0 {
			next = raw[i] / sum
		}
		report.Changes = append(report.Changes, BalanceChange{
			NodeID: id,
			Old:    child.Probability,
			New:    next,
		})
		child.Probability = next
	}
	return report, nil
}
