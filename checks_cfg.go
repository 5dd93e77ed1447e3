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
	"os"

	"gopkg.in/yaml.v3"
)

type OnFailAction string

const (
	OnFailActionWarn  OnFailAction = "warn"
	OnFailActionError OnFailAction = "error"
)

// ChecksFileConfig is the parsed form of a checks suite file.
type ChecksFileConfig struct {
	Version string           `yaml:"version"`
	Rules   []ValidationRule `yaml:"rules"`
}

// ValidationRule groups the checks applied to one dataset, with an optional
// where clause scoping every check in the group.
type ValidationRule struct {
	Dataset string             `yaml:"dataset"`
	Where   string             `yaml:"where,omitempty"`
	Checks  []DataQualityCheck `yaml:"checks"`
}

// DataQualityCheck is one checks-file entry. The full mapping form names
// column_list and expression explicitly; the scalar shorthand carries only
// the expression, and the column list is inferred from its identifiers.
type DataQualityCheck struct {
	ColumnList  string       `yaml:"column_list"`
	Expression  string       `yaml:"expression"`
	Description string       `yaml:"desc,omitempty"`
	OnFail      OnFailAction `yaml:"on_fail,omitempty"`
	Query       string       `yaml:"query,omitempty"`

	CatchExceptions bool `yaml:"catch_exceptions,omitempty"`
}

func (c *DataQualityCheck) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		c.Expression = node.Value
		c.ColumnList = InferColumnList(node.Value)
		return nil
	}

	// plain struct alias breaks the UnmarshalYAML recursion
	type plainCheck DataQualityCheck
	var plain plainCheck
	if err := node.Decode(&plain); err != nil {
		return err
	}

	*c = DataQualityCheck(plain)
	if c.ColumnList == "" && c.Expression != "" {
		c.ColumnList = InferColumnList(c.Expression)
	}

	return nil
}

// ToCheckConfig converts a checks-file entry into a validated CheckConfig
// with the framework defaults applied.
func (c *DataQualityCheck) ToCheckConfig() (*CheckConfig, error) {
	cfg := NewCheckConfig(c.ColumnList, c.Expression)
	cfg.Query = c.Query
	cfg.CatchExceptions = c.CatchExceptions

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// OnFailOrDefault returns the configured on-fail action, defaulting to error.
func (c *DataQualityCheck) OnFailOrDefault() OnFailAction {
	if c.OnFail == "" {
		return OnFailActionError
	}
	return c.OnFail
}

func LoadChecksFileConfig(fileName string) (*ChecksFileConfig, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg ChecksFileConfig
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse checks file %s: %w", fileName, err)
	}

	return &cfg, nil
}
