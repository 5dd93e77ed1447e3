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
	"fmt"
	"log/slog"

	"github.com/LexqTech/lexqcore"
	"github.com/LexqTech/lexqcore/adapters"
	"github.com/LexqTech/lexqcore/cnn"
)

const (
	Version = "v0.1.0"
)

func GetLexqCoreLibVersion() string {
	return Version
}

// NewDataSourceAdapter opens a connection for the datasource and wraps it in
// the engine-specific adapter.
func NewDataSourceAdapter(dataSource *lexqcore.DataSource, logger *slog.Logger) (lexqcore.DataSourceAdapter, error) {
	switch dataSource.Type {
	case lexqcore.DataSourceTypeClickhouse:
		connection, err := cnn.NewClickhouseConnection(dataSource.Configuration)
		if err != nil {
			return nil, fmt.Errorf("failed to create clickhouse connection: %w", err)
		}
		return adapters.NewClickhouseDataSourceAdapter(connection, logger), nil
	case lexqcore.DataSourceTypePostgresql:
		connection, err := cnn.NewPostgresqlConnection(dataSource.Configuration)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgresql connection: %w", err)
		}
		return adapters.NewPostgresqlDataSourceAdapter(connection, logger), nil
	case lexqcore.DataSourceTypeMysql:
		connection, err := cnn.NewMysqlConnection(dataSource.Configuration, 32)
		if err != nil {
			return nil, fmt.Errorf("failed to create mysql connection: %w", err)
		}
		return adapters.NewMysqlDataSourceAdapter(connection, logger), nil
	case lexqcore.DataSourceTypeSqlite:
		connection, err := cnn.NewSqliteConnection(dataSource.Configuration)
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite connection: %w", err)
		}
		return adapters.NewSqliteDataSourceAdapter(connection, logger), nil
	default:
		return nil, fmt.Errorf("unsupported data source type: %s", dataSource.Type)
	}
}

// DefaultRendererRegistry returns a registry with the built-in renderers
// registered. Callers embedding the library into their own reporting stack
// can start from an empty lexqcore.NewRendererRegistry instead.
func DefaultRendererRegistry() *lexqcore.RendererRegistry {
	registry := lexqcore.NewRendererRegistry()
	registry.Register(lexqcore.RendererPrescriptive, lexqcore.PrescriptiveRenderer)
	return registry
}
