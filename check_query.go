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

// Probe query template shared by every check. The inner select narrows the
// scan to the configured columns; the outer count is the number of rows
// violating the expression. Substitution is verbatim: the column list and
// the expression are trusted SQL fragments supplied by the caller.
const checkQueryTemplate = "SELECT COUNT(*) FROM (SELECT %s FROM %s a WHERE not (%s)) b"

const (
	datasetPlaceholder    = "{{dataset}}"
	columnListPlaceholder = "{{column_list}}"
	expressionPlaceholder = "{{expression}}"
)

// BuildQuery instantiates the probe query for the given dataset, applying
// the configured row condition when present. The result is a pure function
// of (column list, expression, dataset): identical inputs always yield the
// identical SQL text.
func (c *CheckConfig) BuildQuery(dataset string) (string, error) {
	return BuildCheckQuery(c, dataset, "")
}

// BuildCheckQuery builds the probe query for a check, merging an optional
// dataset-level where clause with the check's own row condition. A non-empty
// Query field on the configuration overrides the template entirely, with
// {{dataset}}, {{column_list}} and {{expression}} substituted the same way
// raw query checks substitute their placeholders.
func BuildCheckQuery(cfg *CheckConfig, dataset string, defaultWhere string) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	where := mergeConditions(defaultWhere, cfg.RowCondition)

	if cfg.Query != "" {
		return buildOverrideQuery(cfg, dataset, where), nil
	}

	if where == "" {
		return fmt.Sprintf(checkQueryTemplate,
			cfg.TemplateDict.ColumnList, dataset, cfg.TemplateDict.Expression), nil
	}

	return fmt.Sprintf("SELECT COUNT(*) FROM (SELECT %s FROM %s a WHERE not (%s) and (%s)) b",
		cfg.TemplateDict.ColumnList, dataset, cfg.TemplateDict.Expression, where), nil
}

func buildOverrideQuery(cfg *CheckConfig, dataset string, where string) string {
	sqlQuery := strings.ReplaceAll(cfg.Query, datasetPlaceholder, dataset)
	sqlQuery = strings.ReplaceAll(sqlQuery, columnListPlaceholder, cfg.TemplateDict.ColumnList)
	sqlQuery = strings.ReplaceAll(sqlQuery, expressionPlaceholder, cfg.TemplateDict.Expression)
	sqlQuery = strings.ReplaceAll(sqlQuery, "\n", " ")

	if where != "" {
		if strings.Contains(strings.ToLower(sqlQuery), " where ") {
			sqlQuery = fmt.Sprintf("%s and (%s)", sqlQuery, where)
		} else {
			sqlQuery = fmt.Sprintf("%s where %s", sqlQuery, where)
		}
	}

	return sqlQuery
}

func mergeConditions(defaultWhere string, rowCondition string) string {
	defaultWhere = strings.TrimSpace(defaultWhere)
	rowCondition = strings.TrimSpace(rowCondition)

	switch {
	case defaultWhere == "":
		return rowCondition
	case rowCondition == "":
		return defaultWhere
	default:
		return fmt.Sprintf("(%s) and (%s)", defaultWhere, rowCondition)
	}
}
