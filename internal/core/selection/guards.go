package selection

import (
	"fmt"
	"slices"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// DistrictContext provides what CanSetDistrict needs: the requested value and
// the options currently offered for the selected city.
type DistrictContext struct {
	City     string
	District string
	Options  []string
}

// CanSetDistrict evaluates the setDistrict precondition.
// Rule: the district must be empty or one of the current district options.
// Callers absorb a violation (the filter then matches nothing); the result
// exists so hosts can log or warn.
func CanSetDistrict(ctx DistrictContext) GuardResult {
	if ctx.District == "" {
		return GuardResult{Allowed: true}
	}
	if ctx.City == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("cannot select district %s before selecting a city", ctx.District),
		}
	}
	if !slices.Contains(ctx.Options, ctx.District) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("district %s is not offered for city %s", ctx.District, ctx.City),
		}
	}
	return GuardResult{Allowed: true}
}
