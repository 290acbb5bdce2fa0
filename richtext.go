package easel

// TextStyle is one style record shared by a contiguous run of text.
type TextStyle struct {
	FontSize       float64 `json:"fontSize"`
	FontFamily     string  `json:"fontFamily"`
	FontWeight     string  `json:"fontWeight"`
	FontStyle      string  `json:"fontStyle"`
	Color          string  `json:"color"`
	TextDecoration string  `json:"textDecoration"`
}

// TextRun is a contiguous text span sharing one style record.
type TextRun struct {
	Text  string    `json:"text"`
	Style TextStyle `json:"style"`
}

// DefaultTextStyle is the style applied to new text objects and to runs whose
// legacy records carried no styling.
var DefaultTextStyle = TextStyle{
	FontSize:   16,
	FontFamily: "sans-serif",
	FontWeight: "normal",
	FontStyle:  "normal",
	Color:      "#000000",
}

// MergeRuns collapses adjacent runs with identical styles into one run and
// drops empty runs. The input slice is not modified.
func MergeRuns(runs []TextRun) []TextRun {
	out := make([]TextRun, 0, len(runs))
	for _, r := range runs {
		if r.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == r.Style {
			out[n-1].Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}

// PlainText returns the concatenated text of all runs.
func PlainText(runs []TextRun) string {
	var s string
	for _, r := range runs {
		s += r.Text
	}
	return s
}

// MigrateLegacyText converts a text object's flat legacy fields (text,
// fontSize, color) into the styled-run Content array. The migration runs at
// most once: an object that already has Content, or that is not a text
// object, is left untouched, so re-migrating is a no-op.
func MigrateLegacyText(o *Object) {
	if o == nil || o.Kind != KindText || o.Content != nil {
		return
	}
	if o.LegacyText == "" && o.LegacyFontSize == 0 && o.LegacyColor == "" {
		// A new-format record whose empty content array was dropped by the
		// encoder. Mark it migrated without touching its default style.
		o.Content = []TextRun{}
		return
	}
	style := DefaultTextStyle
	if o.LegacyFontSize > 0 {
		style.FontSize = o.LegacyFontSize
	}
	if o.LegacyColor != "" {
		style.Color = o.LegacyColor
	}
	o.DefaultStyle = style
	o.Content = []TextRun{}
	if o.LegacyText != "" {
		o.Content = append(o.Content, TextRun{Text: o.LegacyText, Style: style})
	}
	o.LegacyText = ""
	o.LegacyFontSize = 0
	o.LegacyColor = ""
}

// SetTextContent replaces a text object's runs with a merged copy of runs.
// The inline editing surface calls this on every edit and on commit.
func SetTextContent(o *Object, runs []TextRun) {
	if o == nil || o.Kind != KindText {
		return
	}
	o.Content = MergeRuns(runs)
}

// AppendText appends text in the given style to a text object's content,
// merging into the final run when the style matches.
func AppendText(o *Object, text string, style TextStyle) {
	if o == nil || o.Kind != KindText || text == "" {
		return
	}
	o.Content = MergeRuns(append(o.Content, TextRun{Text: text, Style: style}))
}
