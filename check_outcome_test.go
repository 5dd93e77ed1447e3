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
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name         string
		count        int64
		wantSuccess  bool
		wantInfo     string
		wantObserved string
	}{
		{
			name:         "zero violations",
			count:        0,
			wantSuccess:  true,
			wantInfo:     "table matches the logical expression",
			wantObserved: "matches logical expression",
		},
		{
			name:         "one violation",
			count:        1,
			wantSuccess:  false,
			wantInfo:     "table does not match the logical expression",
			wantObserved: "bad records count: 1",
		},
		{
			name:         "seven violations",
			count:        7,
			wantSuccess:  false,
			wantInfo:     "table does not match the logical expression",
			wantObserved: "bad records count: 7",
		},
		{
			name:         "large count",
			count:        1234567890,
			wantSuccess:  false,
			wantInfo:     "table does not match the logical expression",
			wantObserved: "bad records count: 1234567890",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := Evaluate(tt.count)

			if outcome.Success != tt.wantSuccess {
				t.Errorf("Success = %v, want %v", outcome.Success, tt.wantSuccess)
			}
			if outcome.Result.Info != tt.wantInfo {
				t.Errorf("Info = %q, want %q", outcome.Result.Info, tt.wantInfo)
			}
			if outcome.Result.ObservedValue != tt.wantObserved {
				t.Errorf("ObservedValue = %q, want %q", outcome.Result.ObservedValue, tt.wantObserved)
			}
		})
	}
}

func TestEvaluate_ObservedValueContainsCount(t *testing.T) {
	for _, count := range []int64{1, 2, 10, 99, 1000003} {
		outcome := Evaluate(count)
		if !strings.Contains(outcome.Result.ObservedValue, fmt.Sprintf("%d", count)) {
			t.Errorf("ObservedValue %q does not contain %d", outcome.Result.ObservedValue, count)
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	for _, count := range []int64{0, 3, 42} {
		first := Evaluate(count)
		second := Evaluate(count)
		if first != second {
			t.Errorf("Evaluate(%d) not idempotent: %+v vs %+v", count, first, second)
		}
	}
}
