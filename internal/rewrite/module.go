// SPDX-License-Identifier: MPL-2.0

// Package rewrite converts GSJS script modules into the prototype-composer
// convention the game server loads. The passes are line-granularity text
// rewrites, deliberately conservative: declarations are only recognized at
// zero indentation with exact keyword prefixes, and shapes that don't
// match are passed through untouched rather than guessed at. There is no
// JS parser here and none is wanted.
package rewrite

import "strings"

const (
	// CategoryPrototypeTemplate is the default: top-level declarations
	// become properties installed on a bare prototype object.
	CategoryPrototypeTemplate Category = iota
	// CategoryGlobalExport registers top-level functions on the
	// process-wide `global` namespace.
	CategoryGlobalExport
	// CategoryModuleExport registers top-level functions on the
	// module-local `this` namespace.
	CategoryModuleExport
)

// Sep separates module path segments; forward slashes work universally in
// node, so module paths never use the OS separator.
const Sep = "/"

type (
	// Category selects which rewrite strategy applies to a module.
	Category int

	// Module is one source file being transformed: its slash-separated
	// path relative to the source root, its category, and its line store.
	// A Module lives only for the duration of one pipeline run; no state
	// carries over between files.
	Module struct {
		Path     string
		Category Category
		Lines    []string
	}

	// declaration records one recognized top-level declaration: the bound
	// name and the line index it originated at.
	declaration struct {
		name string
		line int
	}
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryGlobalExport:
		return "global export"
	case CategoryModuleExport:
		return "module export"
	case CategoryPrototypeTemplate:
		return "prototype template"
	default:
		return "unknown"
	}
}

// functionName returns the name of the function declared on line, if the
// line begins a top-level function declaration. Detection is lexical: the
// line must start (unindented) with the function keyword, and the name
// runs to the first opening parenthesis. Anonymous functions don't match.
func functionName(line string) (string, bool) {
	const kw = "function "
	if !strings.HasPrefix(line, kw) {
		return "", false
	}
	paren := strings.IndexByte(line, '(')
	if paren < 0 {
		return "", false
	}
	name := strings.TrimSpace(line[len(kw):paren])
	if name == "" {
		return "", false
	}
	return name, true
}

// varName extracts the declared name from a top-level `var ` line. The
// name is everything up to the initializer's `=`, or up to the trailing
// semicolon for a bare declaration.
func varName(line string) string {
	rest := line[len("var "):]
	if eq := strings.IndexByte(rest, '='); eq >= 0 {
		return strings.TrimSpace(rest[:eq])
	}
	return strings.TrimSuffix(strings.TrimSpace(rest), ";")
}
