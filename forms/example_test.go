package forms_test

import (
	"fmt"

	"github.com/katalvlaran/decigraph/edge"
	"github.com/katalvlaran/decigraph/forms"
)

// ExampleEvaluate models a risk edge as a noisy-OR: even with the
// source fully inactive, the leak keeps a baseline probability alive.
func ExampleEvaluate() {
	params := edge.FuncParams{
		forms.ParamStrength: 0.9,
		forms.ParamLeak:     0.1,
	}

	fmt.Printf("at rest:  %.2f\n", forms.Evaluate(0, edge.NoisyOR, params))
	fmt.Printf("halfway:  %.2f\n", forms.Evaluate(0.5, edge.NoisyOR, params))
	fmt.Printf("full on:  %.2f\n", forms.Evaluate(1, edge.NoisyOR, params))
	// Output:
	// at rest:  0.10
	// halfway:  0.51
	// full on:  0.91
}

// ExampleValidateParams shows edit-time range checking: issues are
// values for the inspector to render, not errors.
func ExampleValidateParams() {
	issues := forms.ValidateParams(edge.DiminishingReturns, edge.FuncParams{
		forms.ParamExponent: 3,
	})
	for _, issue := range issues {
		fmt.Println(issue.Message)
	}
	// Output:
	// exponent must be in [0.1,2], got 3
}
