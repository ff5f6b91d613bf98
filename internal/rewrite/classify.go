// SPDX-License-Identifier: MPL-2.0

package rewrite

import (
	"strings"

	"gsjsprep/internal/diag"
)

// itemDefFixes corrects two inconsistent-receiver lines that occur only in
// item definition modules. These are exact-match substitutions on the
// stripped line text, deliberately not pattern rules: widening them would
// risk collateral rewrites elsewhere.
var itemDefFixes = []struct {
	match   string
	replace string
}{
	{
		match:   "if (this.consumable_label_single) itemDef.consumable_label_single = this.consumable_label_single;",
		replace: "if (this.consumable_label_single) this.itemDef.consumable_label_single = this.consumable_label_single;",
	},
	{
		match:   "if (this.consumable_label_plural) itemDef.consumable_label_plural = this.consumable_label_plural;",
		replace: "if (this.consumable_label_plural) this.itemDef.consumable_label_plural = this.consumable_label_plural;",
	},
}

// classifyPrototype turns a module's top-level declarations into property
// assignments on the implicit receiver (`this`), which the game server
// later binds to the target prototype. Variable names are recorded as they
// are declared, and later top-level references to them (`name.` at column
// zero) are qualified with the receiver. References before the declaring
// line are left alone: GSJS modules execute top to bottom, so the rewrite
// mirrors the original scope's declaration-order dependency.
func (p *Pipeline) classifyPrototype(m *Module) {
	p.logger.Debug("converting to prototype class template", "module", m.Path)

	var decls []declaration
	out := make([]string, 0, len(m.Lines))

scan:
	for i, line := range m.Lines {
		if name, ok := functionName(line); ok {
			diag.Trace(p.logger, "declaring prototype function", "name", name)
			out = append(out, rewriteFunctionDecl(line, name))
			continue
		}

		if strings.HasPrefix(line, "var ") {
			name := varName(line)
			d := declaration{name: name, line: i}
			decls = append(decls, d)
			diag.Trace(p.logger, "declaring prototype variable", "name", d.name, "line", d.line)
			out = append(out, "this."+line[len("var "):])
			continue
		}

		for _, fix := range itemDefFixes {
			if strings.TrimSpace(line) == fix.match {
				out = append(out, fix.replace)
				continue scan
			}
		}

		for _, d := range decls {
			if strings.HasPrefix(line, d.name+".") {
				line = "this." + line
				break
			}
		}
		out = append(out, line)
	}

	m.Lines = out
}

// rewriteFunctionDecl converts `function name(args) ...` into an
// anonymous function expression assigned to a receiver property. A
// terminating semicolon is added only when the whole body sits on this
// line (it ends with a closing brace); a multi-line body continues on the
// following lines and must not be terminated here.
func rewriteFunctionDecl(line, name string) string {
	rest := line[strings.IndexByte(line, '('):]
	rewritten := "this." + name + " = function " + rest
	if strings.HasSuffix(strings.TrimRight(rewritten, " \t\r"), "}") {
		rewritten = strings.TrimRight(rewritten, " \t\r") + ";"
	}
	return rewritten
}
