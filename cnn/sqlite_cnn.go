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

package cnn

import (
	"database/sql"
	"fmt"

	"github.com/LexqTech/lexqcore"
	_ "modernc.org/sqlite"
)

func NewSqliteConnection(connectionCfg lexqcore.ConnectionConfig) (*sql.DB, error) {
	path := connectionCfg.Path
	if path == "" {
		path = connectionCfg.Database
	}
	if path == "" {
		return nil, fmt.Errorf("sqlite datasource requires a 'path' in its configuration")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	return db, nil
}
