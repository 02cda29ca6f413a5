package game

import "github.com/samdwyer/embercrypt/internal/view"

// maxMessages bounds the scrollback kept in memory and in saves.
const maxMessages = 100

// MessageLog is the in-game scrollback. Consecutive messages with the same
// text and tone stack into one line with a counter.
type MessageLog struct {
	lines []view.Line
}

// Add appends raw text, stacking it onto the last line when identical.
func (l *MessageLog) Add(text string, tone view.Tone) {
	l.Append(view.Line{Text: text, Tone: tone})
}

// Append adds line, stacking it onto the last line when the text and tone
// match.
func (l *MessageLog) Append(line view.Line) {
	if n := len(l.lines); n > 0 && l.lines[n-1].Text == line.Text && l.lines[n-1].Tone == line.Tone {
		l.lines[n-1].Count++
		return
	}
	line.Count = 1
	l.lines = append(l.lines, line)
	if len(l.lines) > maxMessages {
		l.lines = l.lines[len(l.lines)-maxMessages:]
	}
}

// Lines returns the log oldest first.
func (l *MessageLog) Lines() []view.Line {
	return l.lines
}

// Reset replaces the log contents, as when restoring a save.
func (l *MessageLog) Reset(lines []view.Line) {
	l.lines = append([]view.Line(nil), lines...)
}

// Translate re-renders every keyed line with t.
func (l *MessageLog) Translate(t func(key string, params map[string]any) string) {
	for i, line := range l.lines {
		if line.Key != "" {
			l.lines[i].Text = t(line.Key, line.Params)
		}
	}
}
