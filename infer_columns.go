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
	"regexp"
	"strings"
)

var (
	identifierRegex    = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)
	functionCallRegex  = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*\(`)
	stringLiteralRegex = regexp.MustCompile(`'[^']*'`)
)

// SQL words that can appear inside a boolean expression and must never be
// mistaken for column names.
var expressionKeywords = map[string]bool{
	"and":     true,
	"or":      true,
	"not":     true,
	"in":      true,
	"is":      true,
	"null":    true,
	"like":    true,
	"between": true,
	"exists":  true,
	"case":    true,
	"when":    true,
	"then":    true,
	"else":    true,
	"end":     true,
	"true":    true,
	"false":   true,
	"cast":    true,
	"as":      true,
}

// InferColumnList extracts a comma-separated column list from a boolean SQL
// expression, for the checks-file shorthand where only the expression is
// given. Identifiers are collected left to right, keywords and function
// names are skipped, duplicates are dropped. Returns "" when nothing
// identifier-like is found; the caller's validation rejects that case.
func InferColumnList(expression string) string {
	// strip string literals so their contents are not scanned for identifiers
	stripped := stringLiteralRegex.ReplaceAllString(expression, "''")

	functionNames := map[string]bool{}
	for _, match := range functionCallRegex.FindAllStringSubmatch(stripped, -1) {
		functionNames[strings.ToLower(match[1])] = true
	}

	var columns []string
	seen := map[string]bool{}
	for _, identifier := range identifierRegex.FindAllString(stripped, -1) {
		lowered := strings.ToLower(identifier)
		if expressionKeywords[lowered] || functionNames[lowered] || seen[lowered] {
			continue
		}

		seen[lowered] = true
		columns = append(columns, identifier)
	}

	return strings.Join(columns, ",")
}
