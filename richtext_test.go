package easel

import "testing"

func TestMergeRuns(t *testing.T) {
	bold := DefaultTextStyle
	bold.FontWeight = "bold"

	tests := []struct {
		name string
		in   []TextRun
		want []TextRun
	}{
		{
			"adjacent identical styles collapse",
			[]TextRun{{Text: "he", Style: DefaultTextStyle}, {Text: "llo", Style: DefaultTextStyle}},
			[]TextRun{{Text: "hello", Style: DefaultTextStyle}},
		},
		{
			"different styles stay split",
			[]TextRun{{Text: "a", Style: DefaultTextStyle}, {Text: "b", Style: bold}},
			[]TextRun{{Text: "a", Style: DefaultTextStyle}, {Text: "b", Style: bold}},
		},
		{
			"empty runs drop",
			[]TextRun{{Text: "", Style: bold}, {Text: "x", Style: DefaultTextStyle}, {Text: "", Style: DefaultTextStyle}},
			[]TextRun{{Text: "x", Style: DefaultTextStyle}},
		},
		{
			"empty run between identical styles still merges",
			[]TextRun{{Text: "a", Style: DefaultTextStyle}, {Text: "", Style: bold}, {Text: "b", Style: DefaultTextStyle}},
			[]TextRun{{Text: "ab", Style: DefaultTextStyle}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeRuns(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("run %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	runs := []TextRun{{Text: "foo "}, {Text: "bar"}}
	if got := PlainText(runs); got != "foo bar" {
		t.Errorf("PlainText = %q, want %q", got, "foo bar")
	}
}

func TestMigrateLegacyText(t *testing.T) {
	o := &Object{
		Kind:           KindText,
		LegacyText:     "old note",
		LegacyFontSize: 24,
		LegacyColor:    "#ff0000",
	}
	MigrateLegacyText(o)

	if len(o.Content) != 1 {
		t.Fatalf("content len = %d, want 1", len(o.Content))
	}
	run := o.Content[0]
	if run.Text != "old note" {
		t.Errorf("text = %q, want %q", run.Text, "old note")
	}
	if run.Style.FontSize != 24 || run.Style.Color != "#ff0000" {
		t.Errorf("style = %+v", run.Style)
	}
	if run.Style.FontFamily != DefaultTextStyle.FontFamily {
		t.Error("unspecified style fields take the defaults")
	}
	if o.LegacyText != "" || o.LegacyFontSize != 0 || o.LegacyColor != "" {
		t.Error("legacy fields should be cleared")
	}
}

func TestMigrateLegacyTextRunsOnce(t *testing.T) {
	o := &Object{Kind: KindText, LegacyText: "first"}
	MigrateLegacyText(o)

	// A second migration with stray legacy data must not touch Content.
	o.LegacyText = "second"
	MigrateLegacyText(o)
	if PlainText(o.Content) != "first" {
		t.Errorf("content = %q, want %q", PlainText(o.Content), "first")
	}
}

func TestMigrateLegacyTextEmptyStillMarks(t *testing.T) {
	o := &Object{Kind: KindText}
	MigrateLegacyText(o)
	if o.Content == nil {
		t.Fatal("migration must leave a non-nil Content as the migrated marker")
	}
	if len(o.Content) != 0 {
		t.Errorf("content len = %d, want 0", len(o.Content))
	}
}

func TestMigrateLegacyTextSkipsNonText(t *testing.T) {
	o := NewShape(ShapeStyle{Kind: ShapeSquare}, 0, 0, 50, 50)
	o.LegacyText = "junk"
	MigrateLegacyText(o)
	if o.Content != nil {
		t.Error("shape objects must not grow text content")
	}
}

func TestSetTextContentMerges(t *testing.T) {
	o := NewTextBox(DefaultTextStyle, 0, 0, 100, 60)
	SetTextContent(o, []TextRun{
		{Text: "a", Style: DefaultTextStyle},
		{Text: "b", Style: DefaultTextStyle},
	})
	if len(o.Content) != 1 || o.Content[0].Text != "ab" {
		t.Errorf("content = %+v", o.Content)
	}
}

func TestAppendText(t *testing.T) {
	o := NewTextBox(DefaultTextStyle, 0, 0, 100, 60)
	AppendText(o, "hello", DefaultTextStyle)
	AppendText(o, " world", DefaultTextStyle)
	if len(o.Content) != 1 || o.Content[0].Text != "hello world" {
		t.Errorf("content = %+v", o.Content)
	}

	bold := DefaultTextStyle
	bold.FontWeight = "bold"
	AppendText(o, "!", bold)
	if len(o.Content) != 2 {
		t.Errorf("len = %d, want 2", len(o.Content))
	}
}
