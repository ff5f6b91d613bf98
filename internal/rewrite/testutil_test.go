// SPDX-License-Identifier: MPL-2.0

package rewrite

import (
	"io"

	"github.com/charmbracelet/log"

	"gsjsprep/internal/diag"
)

// newTestPipeline builds a pipeline with the stock category lists and a
// small API name set, logging nowhere.
func newTestPipeline() *Pipeline {
	return NewPipeline(
		[]string{"common.js"},
		[]string{"main.js"},
		[]string{"SendToAll", "NewItem", "FindObject"},
		diag.New(io.Discard, log.InfoLevel),
	)
}
