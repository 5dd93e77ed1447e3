// Copyright 2026 The Lexq Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexqcore

import "fmt"

// OutcomeDetail is the human-readable payload of a validation outcome.
type OutcomeDetail struct {
	Info          string `json:"info"`
	ObservedValue string `json:"observed_value"`
}

// ValidationOutcome is the pass/fail verdict of a single check. A failed
// check (violations found) is a normal success=false outcome, not an error.
type ValidationOutcome struct {
	Success bool          `json:"success"`
	Result  OutcomeDetail `json:"result"`
}

// Evaluate interprets the violation count returned by the probe query.
// Zero means every row satisfies the expression. The count is trusted to be
// a non-negative integer produced by the execution engine; anything else is
// a collaborator contract violation and is not handled here. Evaluate holds
// no state: repeated calls with the same count yield identical outcomes.
func Evaluate(violationCount int64) ValidationOutcome {
	if violationCount == 0 {
		return ValidationOutcome{
			Success: true,
			Result: OutcomeDetail{
				Info:          "table matches the logical expression",
				ObservedValue: "matches logical expression",
			},
		}
	}

	return ValidationOutcome{
		Success: false,
		Result: OutcomeDetail{
			Info:          "table does not match the logical expression",
			ObservedValue: fmt.Sprintf("bad records count: %d", violationCount),
		},
	}
}
