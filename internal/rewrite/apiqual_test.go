// SPDX-License-Identifier: MPL-2.0

package rewrite

import (
	"testing"
)

func TestQualifyAPI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "bare call to known API is qualified",
			line: "apiSendToAll(x);",
			want: "api.apiSendToAll(x);",
		},
		{
			name: "this-qualified call to known API is corrected",
			line: "this.apiSendToAll(x);",
			want: "api.apiSendToAll(x);",
		},
		{
			name: "unknown suffix is left unchanged",
			line: "apiHelper(x);",
			want: "apiHelper(x);",
		},
		{
			name: "already qualified call is left unchanged",
			line: "api.apiSendToAll(x);",
			want: "api.apiSendToAll(x);",
		},
		{
			name: "other-receiver call is left unchanged",
			line: "bridge.apiSendToAll(x);",
			want: "bridge.apiSendToAll(x);",
		},
		{
			name: "call mid-expression is qualified",
			line: "var it = apiNewItem('pick', 1);",
			want: "var it = api.apiNewItem('pick', 1);",
		},
		{
			name: "membership is checked per token",
			line: "apiSendToAll(apiHelper(x));",
			want: "api.apiSendToAll(apiHelper(x));",
		},
		{
			name: "adjacent known calls qualify only the first",
			line: "apiSendToAll(apiFindObject(tsid));",
			want: "api.apiSendToAll(apiFindObject(tsid));",
		},
		{
			name: "known calls separated by other text are both qualified",
			line: "apiSendToAll(msg, apiFindObject(tsid));",
			want: "api.apiSendToAll(msg, api.apiFindObject(tsid));",
		},
		{
			name: "identifier merely containing api is untouched",
			line: "rapidFire(x);",
			want: "rapidFire(x);",
		},
		{
			name: "function declaration lines are skipped",
			line: "function apiSendToAll(msg) {",
			want: "function apiSendToAll(msg) {",
		},
		{
			name: "no api substring short-circuits",
			line: "var x = 1;",
			want: "var x = 1;",
		},
		{
			name: "this-qualified unknown suffix is left unchanged",
			line: "this.apiHelper(x);",
			want: "this.apiHelper(x);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := newTestPipeline()
			m := &Module{Path: "npc.js", Lines: []string{tt.line}}
			p.qualifyAPI(m)
			if got := m.Lines[0]; got != tt.want {
				t.Errorf("qualifyAPI(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}
