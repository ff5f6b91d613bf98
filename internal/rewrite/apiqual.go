// SPDX-License-Identifier: MPL-2.0

package rewrite

import (
	"regexp"
	"strings"
)

var (
	// bareAPICallRe matches api<Suffix>( call tokens not already qualified
	// with a dot; the leading group preserves whatever character preceded
	// the token.
	bareAPICallRe = regexp.MustCompile(`(^|[^.])api(\w+)\(`)

	// thisAPICallRe matches this.api<Suffix>( call tokens, an
	// over-qualification the prototype classifier can introduce.
	thisAPICallRe = regexp.MustCompile(`this\.api(\w+)\(`)
)

// qualifyAPI prefixes calls to known global API functions with the
// injected `api` object. Membership in the API name set is checked per
// matched token, so identifiers that merely contain `api` (or API-looking
// calls with unknown suffixes) are left untouched. Declaration lines are
// skipped; this pass tracks no declarations of its own.
//
// Matches do not overlap: the character consumed as one token's prefix
// cannot start the next match, so of two directly adjacent known calls
// (`apiA(apiB(`) only the first is qualified.
func (p *Pipeline) qualifyAPI(m *Module) {
	for i, line := range m.Lines {
		if !strings.Contains(line, "api") {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "function ") {
			continue
		}

		line = bareAPICallRe.ReplaceAllStringFunc(line, func(tok string) string {
			sub := bareAPICallRe.FindStringSubmatch(tok)
			if _, ok := p.api[sub[2]]; !ok {
				return tok
			}
			return sub[1] + "api.api" + sub[2] + "("
		})

		line = thisAPICallRe.ReplaceAllStringFunc(line, func(tok string) string {
			sub := thisAPICallRe.FindStringSubmatch(tok)
			if _, ok := p.api[sub[1]]; !ok {
				return tok
			}
			return "api.api" + sub[1] + "("
		})

		m.Lines[i] = line
	}
}
