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
	"sync"
)

// RendererPrescriptive names the renderer producing the one-line
// human-readable description of a check.
const RendererPrescriptive = "renderer.prescriptive"

// StringTemplate is the template/params/styling triple consumed by a
// rendering or gallery subsystem.
type StringTemplate struct {
	Template string         `json:"template"`
	Params   map[string]any `json:"params"`
	Styling  map[string]any `json:"styling,omitempty"`
}

// RenderedContent is a single structured content block.
type RenderedContent struct {
	ContentBlockType string         `json:"content_block_type"`
	StringTemplate   StringTemplate `json:"string_template"`
}

// Renderer turns a check configuration into a content block. Styling is an
// opaque spec passed through to the consumer and may be nil.
type Renderer func(cfg *CheckConfig, styling map[string]any) RenderedContent

// RendererRegistry dispatches rendering by name. Renderers are registered
// explicitly at startup; there is no package-level registry.
type RendererRegistry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{
		renderers: make(map[string]Renderer),
	}
}

func (r *RendererRegistry) Register(name string, renderer Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.renderers[name] = renderer
}

func (r *RendererRegistry) Render(name string, cfg *CheckConfig, styling map[string]any) (RenderedContent, error) {
	r.mu.RLock()
	renderer, ok := r.renderers[name]
	r.mu.RUnlock()

	if !ok {
		return RenderedContent{}, fmt.Errorf("no renderer registered for %q", name)
	}

	return renderer(cfg, styling), nil
}

// PrescriptiveRenderer produces the one-sentence description of a check:
// "expect table to match the expression <expression>". The expression is
// taken verbatim from the configuration.
func PrescriptiveRenderer(cfg *CheckConfig, styling map[string]any) RenderedContent {
	params := map[string]any{
		"template_dict": nil,
	}

	templateStr := "expect table to match the expression "
	if cfg != nil && cfg.TemplateDict != nil {
		params["template_dict"] = map[string]any{
			"column_list": cfg.TemplateDict.ColumnList,
			"expression":  cfg.TemplateDict.Expression,
		}
		templateStr += cfg.TemplateDict.Expression
	}

	return RenderedContent{
		ContentBlockType: "string_template",
		StringTemplate: StringTemplate{
			Template: templateStr,
			Params:   params,
			Styling:  styling,
		},
	}
}

// RenderDescription renders the prescriptive description directly, for
// callers that do not route through a registry.
func (c *CheckConfig) RenderDescription(styling map[string]any) RenderedContent {
	return PrescriptiveRenderer(c, styling)
}
