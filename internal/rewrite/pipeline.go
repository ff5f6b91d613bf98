// SPDX-License-Identifier: MPL-2.0

package rewrite

import (
	"github.com/charmbracelet/log"
)

// Pipeline runs the rewrite passes over one module at a time. It holds
// only injected configuration data (category lists, API name set) and a
// logger; it performs no I/O.
type Pipeline struct {
	globalExport map[string]struct{}
	moduleExport map[string]struct{}
	api          map[string]struct{}
	logger       *log.Logger
}

// NewPipeline builds a pipeline from the externally supplied category
// lists and global API name set.
func NewPipeline(globalExport, moduleExport, apiNames []string, logger *log.Logger) *Pipeline {
	return &Pipeline{
		globalExport: toSet(globalExport),
		moduleExport: toSet(moduleExport),
		api:          toSet(apiNames),
		logger:       logger,
	}
}

// Classify determines a module's category by matching its slash-relative
// path exactly against the configured lists. Anything unlisted is a
// prototype template.
func (p *Pipeline) Classify(modpath string) Category {
	if _, ok := p.globalExport[modpath]; ok {
		return CategoryGlobalExport
	}
	if _, ok := p.moduleExport[modpath]; ok {
		return CategoryModuleExport
	}
	return CategoryPrototypeTemplate
}

// Run transforms the module in place and returns its final lines. Pass
// order matters: exports/classification first (they look at original
// top-level shapes), then the composer wrapper, then include resolution
// and API qualification over the wrapped text.
func (p *Pipeline) Run(m *Module) []string {
	switch m.Category {
	case CategoryGlobalExport, CategoryModuleExport:
		p.exportFunctions(m)
	default:
		p.classifyPrototype(m)
	}
	p.wrapComposer(m)
	p.resolveIncludes(m)
	p.qualifyAPI(m)
	return m.Lines
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
