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
	"fmt"
	"io"
	"log/slog"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/LexqTech/lexqcore"
)

type ClickhouseDataSourceAdapter struct {
	cnn    driver.Conn
	logger *slog.Logger
}

func NewClickhouseDataSourceAdapter(cnn driver.Conn, logger *slog.Logger) lexqcore.DataSourceAdapter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &ClickhouseDataSourceAdapter{
		cnn:    cnn,
		logger: logger,
	}
}

func (a *ClickhouseDataSourceAdapter) InterpretCheck(cfg *lexqcore.CheckConfig, dataset string, defaultWhere string) (string, error) {
	return lexqcore.BuildCheckQuery(cfg, dataset, defaultWhere)
}

// QueryViolationCount runs the probe query through the native protocol.
// ClickHouse returns COUNT(*) as UInt64.
func (a *ClickhouseDataSourceAdapter) QueryViolationCount(ctx context.Context, query string) (int64, error) {
	if a.cnn == nil {
		return 0, fmt.Errorf("database connection is not initialized")
	}

	row := a.cnn.QueryRow(ctx, query)

	var violationCount uint64
	if err := row.Scan(&violationCount); err != nil {
		return 0, fmt.Errorf("failed to scan violation count: %w", err)
	}

	return int64(violationCount), nil
}
