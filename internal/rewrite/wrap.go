// SPDX-License-Identifier: MPL-2.0

package rewrite

const (
	// WrapperOpen is the composer function's opening line. The game server
	// invokes the exported function with `this` bound to the target
	// prototype, injecting the include function and the api/utils/config
	// objects at load time.
	WrapperOpen = "module.exports = function (include, api, utils, config) {  // GS import wrapper START"
	// WrapperClose terminates the composer function.
	WrapperClose = "};  // GS import wrapper END"
)

// wrapComposer surrounds the module body with the composer function: the
// opening line plus a blank separator at the top, a blank line plus the
// closing line at the bottom. Every module gets the wrapper, whatever its
// category; export registrations and include calls both rely on the
// composer's receiver and parameters.
func (p *Pipeline) wrapComposer(m *Module) {
	wrapped := make([]string, 0, len(m.Lines)+4)
	wrapped = append(wrapped, WrapperOpen, "")
	wrapped = append(wrapped, m.Lines...)
	wrapped = append(wrapped, "", WrapperClose)
	m.Lines = wrapped
}
