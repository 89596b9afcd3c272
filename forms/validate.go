package forms

import (
	"fmt"

	"github.com/katalvlaran/decigraph/decision"
	"github.com/katalvlaran/decigraph/edge"
)

// paramRange is one documented closed interval for a parameter field.
type paramRange struct {
	field    string
	min, max float64
}

// formRanges lists, per functional form, the fields ValidateParams
// checks. Fields not listed for a form are ignored (editors may keep
// stale keys around while the user switches forms).
var formRanges = map[edge.FuncType][]paramRange{
	edge.DiminishingReturns: {{ParamExponent, MinExponent, MaxExponent}},
	edge.Threshold:          {{ParamThreshold, MinThreshold, MaxThreshold}},
	edge.SCurve: {
		{ParamMidpoint, MinMidpoint, MaxMidpoint},
		{ParamSteepness, MinSteepness, MaxSteepness},
	},
	edge.Logistic: {
		{ParamBias, MinBias, MaxBias},
		{ParamScale, MinScale, MaxScale},
	},
	edge.NoisyOR: {
		{ParamStrength, MinStrength, MaxStrength},
		{ParamLeak, MinLeak, MaxLeak},
	},
	edge.NoisyANDNot: {
		{ParamBaseRate, MinBaseRate, MaxBaseRate},
		{ParamStrength, MinStrength, MaxStrength},
	},
}

// ValidateParams checks every parameter relevant to form against its
// documented range and returns one issue per violated field. An empty
// result means the parameter set is acceptable. Absent keys are valid
// (they select defaults); issues are advisory values, never errors —
// the caller decides whether to block a commit.
//
// Complexity: O(fields of form).
func ValidateParams(form edge.FuncType, params edge.FuncParams) []ParamIssue {
	var issues []ParamIssue
	for _, r := range formRanges[form] {
		v, ok := params[r.field]
		if !ok {
			continue
		}
		if v < r.min || v > r.max {
			issues = append(issues, ParamIssue{
				Field:   r.field,
				Message: fmt.Sprintf("%s must be in [%g,%g], got %g", r.field, r.min, r.max, v),
			})
		}
	}

	return issues
}

// CheckNoisyUsage judges whether a noisy-OR / noisy-AND-NOT edge makes
// semantic sense between the given node kinds. The noisy combination
// rules come from binary Bayesian networks, so both endpoints should be
// event-like (risk, outcome, action). A graded endpoint produces a
// warning naming the offending kind plus a suggested fix — soft
// validation only, evaluation is never blocked.
//
// Complexity: O(1).
func CheckNoisyUsage(src, dst decision.NodeKind) UsageCheck {
	offender := decision.NodeKind("")
	switch {
	case !src.Binary():
		offender = src
	case !dst.Binary():
		offender = dst
	}
	if offender == "" {
		return UsageCheck{Valid: true}
	}

	return UsageCheck{
		Valid: false,
		Warning: fmt.Sprintf(
			"noisy forms assume event-like endpoints, but %q is a graded kind", offender),
		Suggestion: fmt.Sprintf(
			"use s_curve or linear for %q, or remodel it as a risk/outcome/action", offender),
	}
}
