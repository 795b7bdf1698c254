package tui

import "testing"

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name        string
		width       int
		height      int
		chatWidth   int
		canvasWidth int
		paneHeight  int
		panel       int
	}{
		{name: "narrow", width: 80, height: 24, chatWidth: 30, canvasWidth: 44, paneHeight: 9, panel: 4},
		{name: "wide", width: 200, height: 40, chatWidth: 78, canvasWidth: 116, paneHeight: 25, panel: 12},
		{name: "tiny", width: 20, height: 10, chatWidth: 16, canvasWidth: 22, paneHeight: 6, panel: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tc.width, tc.height)
			if layout.chatWidth != tc.chatWidth {
				t.Fatalf("chat width mismatch: got %d want %d", layout.chatWidth, tc.chatWidth)
			}
			if layout.canvasWidth != tc.canvasWidth {
				t.Fatalf("canvas width mismatch: got %d want %d", layout.canvasWidth, tc.canvasWidth)
			}
			if layout.paneHeight != tc.paneHeight {
				t.Fatalf("pane height mismatch: got %d want %d", layout.paneHeight, tc.paneHeight)
			}
			canvasHeight, panel := layout.canvasHeights(true)
			if panel != tc.panel {
				t.Fatalf("panel height mismatch: got %d want %d", panel, tc.panel)
			}
			if canvasHeight+panel != layout.paneHeight {
				t.Fatalf("split should fill the pane: %d + %d != %d", canvasHeight, panel, layout.paneHeight)
			}
			if full, none := layout.canvasHeights(false); full != layout.paneHeight || none != 0 {
				t.Fatalf("no panel should give the canvas the whole pane, got %d/%d", full, none)
			}
		})
	}
}
