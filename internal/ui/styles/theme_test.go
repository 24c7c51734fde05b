// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewTheme_Initializes(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}

	// A zero-value style renders its input unchanged; styled ones add
	// at least the text back. Sanity-check a few load-bearing styles.
	if got := theme.HeaderTitle.Render("kubedoc"); got == "" {
		t.Error("HeaderTitle should render text")
	}
	if got := theme.ErrorStyle.Render("boom"); got == "" {
		t.Error("ErrorStyle should render text")
	}
}

func TestTheme_CharCountStyle(t *testing.T) {
	theme := NewTheme()

	tests := []struct {
		name   string
		length int
		limit  int
		want   string
	}{
		{"well under limit", 10, 500, "normal"},
		{"within ten percent", 460, 500, "warning"},
		{"at limit", 500, 500, "danger"},
		{"over limit", 600, 500, "danger"},
		{"no limit configured", 9999, 0, "normal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := theme.CharCountStyle(tc.length, tc.limit)
			var want = theme.CharCount
			switch tc.want {
			case "warning":
				want = theme.CharCountWarning
			case "danger":
				want = theme.CharCountDanger
			}
			if got.GetForeground() != want.GetForeground() {
				t.Errorf("CharCountStyle(%d, %d) picked the wrong style", tc.length, tc.limit)
			}
		})
	}
}
