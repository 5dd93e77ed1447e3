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
	"fmt"
	"strings"
)

// ResultFormatBasic is the default result format requested from the runner.
const ResultFormatBasic = "BASIC"

// InvalidCheckConfigError is returned when a check configuration is missing
// required fields, carries wrongly typed values, or holds empty strings.
// It is always raised before any query is executed.
type InvalidCheckConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidCheckConfigError) Error() string {
	return fmt.Sprintf("invalid check configuration: %s %s", e.Field, e.Reason)
}

// TemplateDict holds the two mandatory parameters of a logical expression
// check: the columns selected by the probe query and the boolean SQL
// expression every row is expected to satisfy.
type TemplateDict struct {
	ColumnList string `yaml:"column_list" json:"column_list"`
	Expression string `yaml:"expression" json:"expression"`
}

// CheckConfig describes a single "columns match logical expression" check.
// TemplateDict is mandatory; the scoping fields (BatchID, RowCondition,
// ConditionParser) and Query override are optional and default to empty.
type CheckConfig struct {
	TemplateDict *TemplateDict `yaml:"template_dict" json:"template_dict"`

	// Query optionally replaces the built-in probe query template.
	// It must reference the {{dataset}} placeholder; {{column_list}} and
	// {{expression}} placeholders are substituted as well when present.
	Query string `yaml:"query,omitempty" json:"query,omitempty"`

	BatchID         string `yaml:"batch_id,omitempty" json:"batch_id,omitempty"`
	RowCondition    string `yaml:"row_condition,omitempty" json:"row_condition,omitempty"`
	ConditionParser string `yaml:"condition_parser,omitempty" json:"condition_parser,omitempty"`

	ResultFormat    string         `yaml:"result_format,omitempty" json:"result_format,omitempty"`
	IncludeConfig   bool           `yaml:"include_config,omitempty" json:"include_config,omitempty"`
	CatchExceptions bool           `yaml:"catch_exceptions,omitempty" json:"catch_exceptions,omitempty"`
	Meta            map[string]any `yaml:"meta,omitempty" json:"meta,omitempty"`
}

// NewCheckConfig returns a CheckConfig with the framework defaults applied.
func NewCheckConfig(columnList string, expression string) *CheckConfig {
	return &CheckConfig{
		TemplateDict: &TemplateDict{
			ColumnList: columnList,
			Expression: expression,
		},
		ResultFormat:  ResultFormatBasic,
		IncludeConfig: true,
	}
}

// Validate checks that the configuration carries a usable template dict.
// It fails fast with an *InvalidCheckConfigError naming the offending field
// so that no query is ever built from a bad configuration. The column list
// and expression are accepted verbatim: identifier safety is the caller's
// responsibility.
func (c *CheckConfig) Validate() error {
	if c.TemplateDict == nil {
		return &InvalidCheckConfigError{Field: "template_dict", Reason: "must be specified"}
	}

	if strings.TrimSpace(c.TemplateDict.ColumnList) == "" {
		return &InvalidCheckConfigError{Field: "column_list", Reason: "must be a non-empty string"}
	}

	if strings.TrimSpace(c.TemplateDict.Expression) == "" {
		return &InvalidCheckConfigError{Field: "expression", Reason: "must be a non-empty string"}
	}

	if c.Query != "" && !strings.Contains(c.Query, datasetPlaceholder) {
		return &InvalidCheckConfigError{Field: "query", Reason: "override must reference the {{dataset}} placeholder"}
	}

	return nil
}

// ParseCheckKwargs builds a CheckConfig from the dynamic keyword-argument
// mapping used by hosting validation frameworks
// (kwargs.template_dict = {column_list, expression}). Unlike Validate, which
// operates on the typed structure, this is the place where a wrongly typed
// value is still observable and is reported as such.
func ParseCheckKwargs(kwargs map[string]any) (*CheckConfig, error) {
	rawTemplateDict, ok := kwargs["template_dict"]
	if !ok || rawTemplateDict == nil {
		return nil, &InvalidCheckConfigError{Field: "template_dict", Reason: "must be specified"}
	}

	templateDict, ok := rawTemplateDict.(map[string]any)
	if !ok {
		return nil, &InvalidCheckConfigError{Field: "template_dict", Reason: "must be a mapping"}
	}

	columnList, err := requiredStringKwarg(templateDict, "column_list")
	if err != nil {
		return nil, err
	}

	expression, err := requiredStringKwarg(templateDict, "expression")
	if err != nil {
		return nil, err
	}

	cfg := NewCheckConfig(columnList, expression)

	if query, ok := kwargs["query"].(string); ok {
		cfg.Query = query
	}
	if batchID, ok := kwargs["batch_id"].(string); ok {
		cfg.BatchID = batchID
	}
	if rowCondition, ok := kwargs["row_condition"].(string); ok {
		cfg.RowCondition = rowCondition
	}
	if conditionParser, ok := kwargs["condition_parser"].(string); ok {
		cfg.ConditionParser = conditionParser
	}
	if resultFormat, ok := kwargs["result_format"].(string); ok {
		cfg.ResultFormat = resultFormat
	}
	if includeConfig, ok := kwargs["include_config"].(bool); ok {
		cfg.IncludeConfig = includeConfig
	}
	if catchExceptions, ok := kwargs["catch_exceptions"].(bool); ok {
		cfg.CatchExceptions = catchExceptions
	}
	if meta, ok := kwargs["meta"].(map[string]any); ok {
		cfg.Meta = meta
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func requiredStringKwarg(templateDict map[string]any, key string) (string, error) {
	raw, ok := templateDict[key]
	if !ok || raw == nil {
		return "", &InvalidCheckConfigError{Field: key, Reason: "must be specified"}
	}

	value, ok := raw.(string)
	if !ok {
		return "", &InvalidCheckConfigError{Field: key, Reason: "must be a string"}
	}

	if value == "" {
		return "", &InvalidCheckConfigError{Field: key, Reason: "must be a non-empty string"}
	}

	return value, nil
}
