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
	"errors"
	"strings"
	"testing"
)

func TestCheckConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *CheckConfig
		wantField string
	}{
		{
			name:      "missing template dict",
			cfg:       &CheckConfig{},
			wantField: "template_dict",
		},
		{
			name:      "empty column list",
			cfg:       NewCheckConfig("", "col1>0"),
			wantField: "column_list",
		},
		{
			name:      "whitespace column list",
			cfg:       NewCheckConfig("   ", "col1>0"),
			wantField: "column_list",
		},
		{
			name:      "empty expression",
			cfg:       NewCheckConfig("col1", ""),
			wantField: "expression",
		},
		{
			name:      "valid",
			cfg:       NewCheckConfig("col1,col2", "col1>0 and col2>=3"),
			wantField: "",
		},
		{
			name: "override without dataset placeholder",
			cfg: &CheckConfig{
				TemplateDict: &TemplateDict{ColumnList: "col1", Expression: "col1>0"},
				Query:        "SELECT COUNT(*) FROM somewhere",
			},
			wantField: "query",
		},
		{
			name: "override with dataset placeholder",
			cfg: &CheckConfig{
				TemplateDict: &TemplateDict{ColumnList: "col1", Expression: "col1>0"},
				Query:        "SELECT COUNT(*) FROM {{dataset}} WHERE not ({{expression}})",
			},
			wantField: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var cfgErr *InvalidCheckConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, want *InvalidCheckConfigError", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("error field = %q, want %q", cfgErr.Field, tt.wantField)
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("error message %q does not name field %q", err.Error(), tt.wantField)
			}
		})
	}
}

func TestParseCheckKwargs(t *testing.T) {
	tests := []struct {
		name       string
		kwargs     map[string]any
		wantField  string
		wantReason string
	}{
		{
			name:       "missing template dict",
			kwargs:     map[string]any{},
			wantField:  "template_dict",
			wantReason: "must be specified",
		},
		{
			name:       "nil template dict",
			kwargs:     map[string]any{"template_dict": nil},
			wantField:  "template_dict",
			wantReason: "must be specified",
		},
		{
			name:       "template dict is not a mapping",
			kwargs:     map[string]any{"template_dict": "col1>0"},
			wantField:  "template_dict",
			wantReason: "must be a mapping",
		},
		{
			name: "missing column list",
			kwargs: map[string]any{
				"template_dict": map[string]any{"expression": "col1>0"},
			},
			wantField:  "column_list",
			wantReason: "must be specified",
		},
		{
			name: "column list is not a string",
			kwargs: map[string]any{
				"template_dict": map[string]any{"column_list": 42, "expression": "col1>0"},
			},
			wantField:  "column_list",
			wantReason: "must be a string",
		},
		{
			name: "column list is empty",
			kwargs: map[string]any{
				"template_dict": map[string]any{"column_list": "", "expression": "col1>0"},
			},
			wantField:  "column_list",
			wantReason: "must be a non-empty string",
		},
		{
			name: "missing expression",
			kwargs: map[string]any{
				"template_dict": map[string]any{"column_list": "col1"},
			},
			wantField:  "expression",
			wantReason: "must be specified",
		},
		{
			name: "expression is not a string",
			kwargs: map[string]any{
				"template_dict": map[string]any{"column_list": "col1", "expression": []string{"col1>0"}},
			},
			wantField:  "expression",
			wantReason: "must be a string",
		},
		{
			name: "expression is empty",
			kwargs: map[string]any{
				"template_dict": map[string]any{"column_list": "col1", "expression": ""},
			},
			wantField:  "expression",
			wantReason: "must be a non-empty string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCheckKwargs(tt.kwargs)

			var cfgErr *InvalidCheckConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("ParseCheckKwargs() error = %v, want *InvalidCheckConfigError", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("error field = %q, want %q", cfgErr.Field, tt.wantField)
			}
			if cfgErr.Reason != tt.wantReason {
				t.Errorf("error reason = %q, want %q", cfgErr.Reason, tt.wantReason)
			}
		})
	}
}

func TestParseCheckKwargs_Valid(t *testing.T) {
	cfg, err := ParseCheckKwargs(map[string]any{
		"template_dict": map[string]any{
			"column_list": "col1,col2",
			"expression":  "col1>0 and col2>=3",
		},
		"batch_id":         "batch-7",
		"row_condition":    "col2 is not null",
		"condition_parser": "sql",
		"catch_exceptions": true,
	})
	if err != nil {
		t.Fatalf("ParseCheckKwargs() error = %v", err)
	}

	if cfg.TemplateDict.ColumnList != "col1,col2" {
		t.Errorf("ColumnList = %q", cfg.TemplateDict.ColumnList)
	}
	if cfg.TemplateDict.Expression != "col1>0 and col2>=3" {
		t.Errorf("Expression = %q", cfg.TemplateDict.Expression)
	}
	if cfg.BatchID != "batch-7" {
		t.Errorf("BatchID = %q", cfg.BatchID)
	}
	if cfg.RowCondition != "col2 is not null" {
		t.Errorf("RowCondition = %q", cfg.RowCondition)
	}
	if !cfg.CatchExceptions {
		t.Error("CatchExceptions = false, want true")
	}

	// defaults
	if cfg.ResultFormat != ResultFormatBasic {
		t.Errorf("ResultFormat = %q, want %q", cfg.ResultFormat, ResultFormatBasic)
	}
	if !cfg.IncludeConfig {
		t.Error("IncludeConfig = false, want true")
	}
}
