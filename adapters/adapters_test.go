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
	"testing"

	"github.com/LexqTech/lexqcore"
)

// The probe template is shared: every adapter must generate the identical
// SQL text for the same check.
func TestAdapters_SharedProbeTemplate(t *testing.T) {
	cfg := lexqcore.NewCheckConfig("col1,col2", "col1>0 and col2>=3")
	want := "SELECT COUNT(*) FROM (SELECT col1,col2 FROM main.events a WHERE not (col1>0 and col2>=3)) b"

	adapters := map[string]lexqcore.DataSourceAdapter{
		"clickhouse": NewClickhouseDataSourceAdapter(nil, nil),
		"postgresql": NewPostgresqlDataSourceAdapter(nil, nil),
		"mysql":      NewMysqlDataSourceAdapter(nil, nil),
		"sqlite":     NewSqliteDataSourceAdapter(nil, nil),
	}

	for name, adapter := range adapters {
		t.Run(name, func(t *testing.T) {
			got, err := adapter.InterpretCheck(cfg, "main.events", "")
			if err != nil {
				t.Fatalf("InterpretCheck() error = %v", err)
			}
			if got != want {
				t.Errorf("InterpretCheck() = %q, want %q", got, want)
			}
		})
	}
}

func TestAdapters_InterpretCheck_InvalidConfig(t *testing.T) {
	adapter := NewSqliteDataSourceAdapter(nil, nil)

	if _, err := adapter.InterpretCheck(&lexqcore.CheckConfig{}, "t", ""); err == nil {
		t.Fatal("InterpretCheck() error = nil, want configuration error")
	}
}
