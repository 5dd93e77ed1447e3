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

import "testing"

func TestInferColumnList(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       string
	}{
		{
			name:       "conjunction",
			expression: "col1>0 and col2>=3 and col3<5",
			want:       "col1,col2,col3",
		},
		{
			name:       "disjunction",
			expression: "col1>3 or col3<3",
			want:       "col1,col3",
		},
		{
			name:       "repeated column",
			expression: "col1>0 and col1<100",
			want:       "col1",
		},
		{
			name:       "null test keywords skipped",
			expression: "col1 is not null and col2 in (1, 2)",
			want:       "col1,col2",
		},
		{
			name:       "function call name skipped",
			expression: "abs(balance) < 1000",
			want:       "balance",
		},
		{
			name:       "string literal contents ignored",
			expression: "status = 'col9 and col8'",
			want:       "status",
		},
		{
			name:       "no identifiers",
			expression: "1 = 1",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferColumnList(tt.expression); got != tt.want {
				t.Errorf("InferColumnList(%q) = %q, want %q", tt.expression, got, tt.want)
			}
		})
	}
}
