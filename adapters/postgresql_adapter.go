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
	"io"
	"log/slog"

	"github.com/LexqTech/lexqcore"
)

type PostgresqlDataSourceAdapter struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewPostgresqlDataSourceAdapter(db *sql.DB, logger *slog.Logger) lexqcore.DataSourceAdapter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &PostgresqlDataSourceAdapter{
		db:     db,
		logger: logger,
	}
}

func (a *PostgresqlDataSourceAdapter) InterpretCheck(cfg *lexqcore.CheckConfig, dataset string, defaultWhere string) (string, error) {
	query, err := lexqcore.BuildCheckQuery(cfg, dataset, defaultWhere)
	if err != nil {
		return "", err
	}

	a.logger.Debug("generated postgresql probe query", "query", query)

	return query, nil
}

func (a *PostgresqlDataSourceAdapter) QueryViolationCount(ctx context.Context, query string) (int64, error) {
	return queryScalarCount(ctx, a.db, query)
}
