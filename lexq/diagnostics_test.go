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
	"context"
	"strings"
	"testing"

	"github.com/LexqTech/lexqcore"
)

func TestRunDiagnostics(t *testing.T) {
	var out strings.Builder

	if err := RunDiagnostics(context.Background(), &out, nil); err != nil {
		t.Fatalf("RunDiagnostics() error = %v\noutput:\n%s", err, out.String())
	}

	output := out.String()
	if !strings.Contains(output, "4/4 diagnostic cases behaved as expected") {
		t.Errorf("output missing summary line:\n%s", output)
	}
	if strings.Contains(output, "[FAIL]") {
		t.Errorf("output contains failing cases:\n%s", output)
	}
}

func TestDefaultRendererRegistry(t *testing.T) {
	registry := DefaultRendererRegistry()

	cfg := lexqcore.NewCheckConfig("col1", "col1>0")
	content, err := registry.Render(lexqcore.RendererPrescriptive, cfg, nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(content.StringTemplate.Template, "expect table to match the expression") {
		t.Errorf("Template = %q", content.StringTemplate.Template)
	}
}
