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

package adapters

import (
	"context"
	"database/sql"
	"fmt"
)

// queryScalarCount runs a probe query through database/sql and scans its
// single-row, single-column integer result. Shared by the postgresql, mysql
// and sqlite adapters.
func queryScalarCount(ctx context.Context, db *sql.DB, query string) (int64, error) {
	if db == nil {
		return 0, fmt.Errorf("database connection is not initialized")
	}

	row := db.QueryRowContext(ctx, query)

	var violationCount int64
	if err := row.Scan(&violationCount); err != nil {
		return 0, fmt.Errorf("failed to scan violation count: %w", err)
	}

	return violationCount, nil
}
