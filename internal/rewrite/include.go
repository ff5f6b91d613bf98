// SPDX-License-Identifier: MPL-2.0

package rewrite

import (
	"fmt"
	"strings"
	"unicode"

	"gsjsprep/internal/diag"
)

// IncludeMarker starts an include directive; the rest of the line is a
// comma/whitespace-separated list of relative file references.
const IncludeMarker = "//#include"

// resolveIncludes replaces each directive line with one runtime include
// call per referenced file, in the order listed. Every other line passes
// through with trailing newline characters stripped.
func (p *Pipeline) resolveIncludes(m *Module) {
	diag.Trace(p.logger, "processing includes", "module", m.Path)
	out := make([]string, 0, len(m.Lines))
	for _, line := range m.Lines {
		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, IncludeMarker) {
			out = append(out, strings.TrimRight(line, "\r\n"))
			continue
		}
		diag.Trace(p.logger, "#include directive", "module", m.Path, "directive", strings.TrimSpace(line))
		refs := strings.FieldsFunc(trimmed[len(IncludeMarker):], func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, ref := range refs {
			out = append(out, fmt.Sprintf("include(__dirname, '.%s%s', this);", Sep, ref))
		}
	}
	m.Lines = out
}
