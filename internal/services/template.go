package services

import (
	"strings"

	"github.com/danieljhkim/nrlgen/internal/node"
)

// TemplateContext holds the per-node values substituted into descriptor
// templates
type TemplateContext struct {
	Node string // {{NODE}} - node name
}

// NewTemplateContext creates the template context for n
func NewTemplateContext(n *node.Node) *TemplateContext {
	return &TemplateContext{Node: n.Name}
}

// Substitute replaces template variables in a string
func (ctx *TemplateContext) Substitute(value string) string {
	return strings.ReplaceAll(value, "{{NODE}}", ctx.Node)
}

// SubstituteAll applies Substitute to every entry
func (ctx *TemplateContext) SubstituteAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	result := make([]string, 0, len(values))
	for _, v := range values {
		result = append(result, ctx.Substitute(v))
	}
	return result
}
