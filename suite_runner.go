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

import (
	"context"
	"fmt"
	"sync"
)

// RunSuite executes every check of a suite through the task pool and returns
// one ValidationResult per check, in no particular order. Checks that fail
// before producing an outcome (bad configuration, query generation or
// execution faults without CatchExceptions) are reported as error results so
// a suite run never silently drops a check.
func (d *LexqCheckRunnerImpl) RunSuite(ctx context.Context, adapter DataSourceAdapter, cfg *ChecksFileConfig, maxConcurrent int) []*ValidationResult {
	pool := NewTaskPool(maxConcurrent, d.logger)

	var mu sync.Mutex
	var results []*ValidationResult

	for ri := range cfg.Rules {
		rule := &cfg.Rules[ri]
		for ci := range rule.Checks {
			check := &rule.Checks[ci]
			taskID := fmt.Sprintf("%s/%s", rule.Dataset, check.Expression)

			pool.Enqueue(taskID, func() error {
				result, err := d.RunCheck(ctx, adapter, check, rule.Dataset, rule.Where)
				if err != nil {
					result = &ValidationResult{
						CheckID: check.Expression,
						OnFail:  check.OnFailOrDefault(),
						Error:   err.Error(),
					}
				}

				mu.Lock()
				results = append(results, result)
				mu.Unlock()

				return err
			})
		}
	}

	pool.Join()

	return results
}

// SuiteFailed reports whether any result should fail the run: an error
// result, or a failed check whose on-fail action is error.
func SuiteFailed(results []*ValidationResult) bool {
	for _, result := range results {
		if result.Error != "" {
			return true
		}
		if !result.Pass && result.OnFail == OnFailActionError {
			return true
		}
	}

	return false
}
