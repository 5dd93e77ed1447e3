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

package lexq

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/LexqTech/lexqcore"
	"github.com/LexqTech/lexqcore/adapters"
	_ "modernc.org/sqlite"
)

// DiagnosticCase is one bundled example: a check plus its expected verdict.
type DiagnosticCase struct {
	Title       string
	ColumnList  string
	Expression  string
	WantSuccess bool
}

// The bundled example cases, all over the same three-column fixture.
var DiagnosticCases = []DiagnosticCase{
	{
		Title:       "basic positive test (and)",
		ColumnList:  "col1,col2,col3",
		Expression:  "col1>0 and col2>=3 and col3<5",
		WantSuccess: true,
	},
	{
		Title:       "basic negative test (and)",
		ColumnList:  "col1,col2",
		Expression:  "col1>1 and col2>=3",
		WantSuccess: false,
	},
	{
		Title:       "basic positive test (or)",
		ColumnList:  "col1,col3",
		Expression:  "col1>3 or col3<3",
		WantSuccess: true,
	},
	{
		Title:       "basic negative test (or)",
		ColumnList:  "col1,col2",
		Expression:  "col1=5 or col2=4",
		WantSuccess: false,
	},
}

const diagnosticsDataset = "diagnostics_fixture"

var diagnosticsFixtureRows = [][3]int{
	{1, 10, 1},
	{2, 3, 2},
	{3, 4, 2},
	{4, 4, 3},
	{5, 5, 4},
	{5, 5, 4},
}

// RunDiagnostics executes the bundled example cases against an in-memory
// sqlite dataset and prints a pass/fail checklist to w. It returns an error
// when any case does not produce its expected verdict.
func RunDiagnostics(ctx context.Context, w io.Writer, logger *slog.Logger) error {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return fmt.Errorf("failed to open in-memory sqlite: %w", err)
	}
	defer db.Close()

	if err := seedDiagnosticsFixture(ctx, db); err != nil {
		return err
	}

	adapter := adapters.NewSqliteDataSourceAdapter(db, logger)
	runner := lexqcore.NewLexqCheckRunner(logger)

	var mismatches int
	for _, dc := range DiagnosticCases {
		check := &lexqcore.DataQualityCheck{
			ColumnList: dc.ColumnList,
			Expression: dc.Expression,
		}

		result, err := runner.RunCheck(ctx, adapter, check, diagnosticsDataset, "")
		if err != nil {
			return fmt.Errorf("diagnostic case %q failed to run: %w", dc.Title, err)
		}

		mark := "PASS"
		if result.Pass != dc.WantSuccess {
			mark = "FAIL"
			mismatches++
		}

		fmt.Fprintf(w, "[%s] %s: success=%v (want %v), observed=%q\n",
			mark, dc.Title, result.Pass, dc.WantSuccess, result.Outcome.Result.ObservedValue)
	}

	fmt.Fprintf(w, "%d/%d diagnostic cases behaved as expected\n",
		len(DiagnosticCases)-mismatches, len(DiagnosticCases))

	if mismatches > 0 {
		return fmt.Errorf("%d diagnostic case(s) did not behave as expected", mismatches)
	}

	return nil
}

func seedDiagnosticsFixture(ctx context.Context, db *sql.DB) error {
	createStmt := fmt.Sprintf(
		"CREATE TABLE %s (col1 INTEGER, col2 INTEGER, col3 INTEGER)", diagnosticsDataset)
	if _, err := db.ExecContext(ctx, createStmt); err != nil {
		return fmt.Errorf("failed to create diagnostics fixture: %w", err)
	}

	insertStmt := fmt.Sprintf(
		"INSERT INTO %s (col1, col2, col3) VALUES (?, ?, ?)", diagnosticsDataset)
	for _, row := range diagnosticsFixtureRows {
		if _, err := db.ExecContext(ctx, insertStmt, row[0], row[1], row[2]); err != nil {
			return fmt.Errorf("failed to seed diagnostics fixture: %w", err)
		}
	}

	return nil
}
