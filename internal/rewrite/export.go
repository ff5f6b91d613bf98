// SPDX-License-Identifier: MPL-2.0

package rewrite

import (
	"fmt"

	"gsjsprep/internal/diag"
)

// exportFunctions injects a registration line immediately after every
// top-level function declaration: on `global` for global-export modules,
// on the module-local `this` for module-export modules. The output is
// built in one forward sweep so an injected registration is never
// re-scanned as a declaration.
func (p *Pipeline) exportFunctions(m *Module) {
	diag.Trace(p.logger, "exporting functions", "module", m.Path)

	namespace := "this"
	if m.Category == CategoryGlobalExport {
		namespace = "global"
	}

	out := make([]string, 0, len(m.Lines))
	for _, line := range m.Lines {
		out = append(out, line)
		name, ok := functionName(line)
		if !ok {
			continue
		}
		diag.Trace(p.logger, "exporting function", "name", name, "namespace", namespace)
		out = append(out, fmt.Sprintf("%s.%s = %s;", namespace, name, name))
	}
	m.Lines = out
}
