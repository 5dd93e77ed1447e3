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
	"log/slog"
	"time"
)

// ValidationResult is the per-check record produced by the runner.
type ValidationResult struct {
	CheckID        string             `json:"check_id"`
	Pass           bool               `json:"pass"`
	Outcome        *ValidationOutcome `json:"outcome,omitempty"`
	ViolationCount int64              `json:"violation_count"`
	OnFail         OnFailAction       `json:"on_fail,omitempty"`
	Error          string             `json:"error,omitempty"`
	DurationMs     int64              `json:"duration_ms"`
}

// DataSourceAdapter generates and executes the probe query for a concrete
// SQL engine. QueryViolationCount returns the single scalar produced by the
// probe query: the number of rows violating the expression.
type DataSourceAdapter interface {
	InterpretCheck(cfg *CheckConfig, dataset string, defaultWhere string) (string, error)
	QueryViolationCount(ctx context.Context, query string) (int64, error)
}

// LexqCheckRunner wraps the single-check validation sequence: validate the
// configuration, build the query, execute it, interpret the scalar.
type LexqCheckRunner interface {
	RunCheck(ctx context.Context, adapter DataSourceAdapter, check *DataQualityCheck, dataset string, defaultWhere string) (*ValidationResult, error)
	RunSuite(ctx context.Context, adapter DataSourceAdapter, cfg *ChecksFileConfig, maxConcurrent int) []*ValidationResult
}

func NewLexqCheckRunner(logger *slog.Logger) LexqCheckRunner {
	if logger == nil {
		logger = noopLogger()
	}

	return &LexqCheckRunnerImpl{logger: logger}
}

type LexqCheckRunnerImpl struct {
	logger *slog.Logger
}

// RunCheck runs one check end-to-end. Configuration errors always surface as
// a returned error before any query executes. Execution engine errors
// propagate unchanged unless the configuration sets CatchExceptions, in
// which case they are folded into the result's Error field. The runner keeps
// no state between calls.
func (d *LexqCheckRunnerImpl) RunCheck(ctx context.Context, adapter DataSourceAdapter, check *DataQualityCheck, dataset string, defaultWhere string) (*ValidationResult, error) {
	if adapter == nil {
		return nil, fmt.Errorf("adapter is not provided")
	}

	cfg, err := check.ToCheckConfig()
	if err != nil {
		return nil, err
	}

	result := &ValidationResult{
		CheckID: check.Expression,
		OnFail:  check.OnFailOrDefault(),
	}

	checkQuery, err := adapter.InterpretCheck(cfg, dataset, defaultWhere)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query for check (%s)/(%s): %w", check.Expression, dataset, err)
	}

	d.logger.Debug("executing query for check",
		"check_expression", check.Expression,
		"check_query", checkQuery)

	startTime := time.Now()
	violationCount, err := adapter.QueryViolationCount(ctx, checkQuery)
	result.DurationMs = time.Since(startTime).Milliseconds()

	if err != nil {
		if cfg.CatchExceptions {
			result.Error = err.Error()
			return result, nil
		}
		return nil, err
	}

	d.logger.Debug("query completed in time",
		"check_expression", check.Expression,
		"duration_ms", result.DurationMs)

	outcome := Evaluate(violationCount)
	result.Outcome = &outcome
	result.Pass = outcome.Success
	result.ViolationCount = violationCount

	return result, nil
}
