package source

import "testing"

func TestParseContentStream(t *testing.T) {
	stream := []byte(`BT
/F1 24 Tf
1 0 0 1 72 720 Tm
(Network Topology) Tj
/F1 10 Tf
1 0 0 1 72 680 Tm
(Body text begins here.) Tj
ET`)

	runs := parseContentStream(stream, 0)
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2: %+v", len(runs), runs)
	}

	if runs[0].Text != "Network Topology" || runs[0].FontSize != 24 || runs[0].Y != 720 {
		t.Errorf("run 0 = %+v", runs[0])
	}
	if runs[1].Text != "Body text begins here." || runs[1].FontSize != 10 || runs[1].Y != 680 {
		t.Errorf("run 1 = %+v", runs[1])
	}
	if runs[0].PageIndex != 0 {
		t.Errorf("page index = %d, want 0", runs[0].PageIndex)
	}
}

func TestParseContentStream_TJArray(t *testing.T) {
	stream := []byte(`BT /F1 12 Tf 1 0 0 1 72 700 Tm [(Hel) -20 (lo ) 5 (world)] TJ ET`)

	runs := parseContentStream(stream, 2)
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1: %+v", len(runs), runs)
	}
	if runs[0].Text != "Hello world" {
		t.Errorf("TJ text = %q, want %q", runs[0].Text, "Hello world")
	}
	if runs[0].PageIndex != 2 {
		t.Errorf("page index = %d, want 2", runs[0].PageIndex)
	}
}

func TestParseContentStream_TdMovesY(t *testing.T) {
	stream := []byte(`BT
/F1 12 Tf
0 -40 Td
(First line) Tj
0 -20 Td
(Second line) Tj
ET`)

	runs := parseContentStream(stream, 0)
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2: %+v", len(runs), runs)
	}
	if runs[0].Y != -40 {
		t.Errorf("run 0 Y = %v, want -40", runs[0].Y)
	}
	if runs[1].Y != -60 {
		t.Errorf("run 1 Y = %v, want -60 (relative move)", runs[1].Y)
	}
}

func TestParseContentStream_LeadingAndTStar(t *testing.T) {
	stream := []byte(`BT
/F1 12 Tf
14 TL
1 0 0 1 72 700 Tm
(Line one) Tj
T*
(Line two) Tj
ET`)

	runs := parseContentStream(stream, 0)
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2: %+v", len(runs), runs)
	}
	if runs[1].Y != 686 {
		t.Errorf("T* moved Y to %v, want 700 - 14 = 686", runs[1].Y)
	}
}

func TestParseContentStream_Escapes(t *testing.T) {
	stream := []byte(`BT /F1 12 Tf (a \(quoted\) word\there) Tj ET`)

	runs := parseContentStream(stream, 0)
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1: %+v", len(runs), runs)
	}
	want := "a (quoted) word here"
	if runs[0].Text != want {
		t.Errorf("text = %q, want %q", runs[0].Text, want)
	}
}

func TestParseContentStream_NestedParens(t *testing.T) {
	stream := []byte(`BT /F1 12 Tf (outer (inner) text) Tj ET`)

	runs := parseContentStream(stream, 0)
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1: %+v", len(runs), runs)
	}
	want := "outer (inner) text"
	if runs[0].Text != want {
		t.Errorf("text = %q, want %q", runs[0].Text, want)
	}
}

func TestParseContentStream_SkipsHexAndDicts(t *testing.T) {
	stream := []byte(`BT /F1 12 Tf <48656C6C6F> Tj (visible) Tj ET`)

	runs := parseContentStream(stream, 0)
	if len(runs) != 1 || runs[0].Text != "visible" {
		t.Errorf("runs = %+v, want only the literal string", runs)
	}
}

func TestParseContentStream_RoundsFontSize(t *testing.T) {
	stream := []byte(`BT /F1 11.96 Tf 1 0 0 1 72 700 Tm (text here) Tj ET`)

	runs := parseContentStream(stream, 0)
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].FontSize != 12.0 {
		t.Errorf("font size = %v, want 12.0 after rounding", runs[0].FontSize)
	}
}

func TestParseContentStream_Empty(t *testing.T) {
	if runs := parseContentStream(nil, 0); len(runs) != 0 {
		t.Errorf("parseContentStream(nil) = %+v, want none", runs)
	}
	if runs := parseContentStream([]byte("q 1 0 0 1 0 0 cm Q"), 0); len(runs) != 0 {
		t.Errorf("graphics-only stream yielded runs: %+v", runs)
	}
}

func TestCleanRunText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  spaced   out  ", "spaced out"},
		{"tab\tand\nnewline", "tab and newline"},
		{"plain", "plain"},
		{"\x00control\x01chars", "controlchars"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := cleanRunText(tt.in); got != tt.want {
			t.Errorf("cleanRunText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTokenizeContent_Comments(t *testing.T) {
	stream := []byte("% a comment line\nBT /F1 12 Tf (kept) Tj ET")

	runs := parseContentStream(stream, 0)
	if len(runs) != 1 || runs[0].Text != "kept" {
		t.Errorf("runs = %+v, want the string after the comment", runs)
	}
}
