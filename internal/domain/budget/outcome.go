package budget

// Outcome tells why a calculation or distribution step ended the way it did.
// Only OutcomeAllocated and OutcomeDistributed change state; the others are
// expected no-ops, not failures.
type Outcome string

const (
	OutcomeAllocated            Outcome = "allocated"
	OutcomeZeroAllocation       Outcome = "zero_allocation"
	OutcomeNoEligibleCreators   Outcome = "no_eligible_creators"
	OutcomeSubMinimumPerCreator Outcome = "sub_minimum_per_creator"
	OutcomeDistributed          Outcome = "distributed"
)

func (o Outcome) String() string {
	return string(o)
}

// IsNoop reports whether the outcome left all balances untouched.
func (o Outcome) IsNoop() bool {
	return o != OutcomeAllocated && o != OutcomeDistributed
}
