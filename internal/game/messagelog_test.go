package game

import (
	"fmt"
	"testing"

	"github.com/samdwyer/embercrypt/internal/view"
)

func TestMessageLogStacks(t *testing.T) {
	var log MessageLog
	log.Add("That way is blocked.", view.ToneImpossible)
	log.Add("That way is blocked.", view.ToneImpossible)
	log.Add("You descend the staircase.", view.ToneDescend)
	log.Add("That way is blocked.", view.ToneImpossible)

	lines := log.Lines()
	if len(lines) != 3 {
		t.Fatalf("len(Lines()) = %d, want 3", len(lines))
	}
	if got := lines[0].Display(); got != "That way is blocked. (x2)" {
		t.Errorf("first line = %q", got)
	}
	if got := lines[2]; got.Count != 1 || got.Tone != view.ToneImpossible {
		t.Errorf("last line = %+v", got)
	}
}

func TestMessageLogKeepsTonesApart(t *testing.T) {
	var log MessageLog
	log.Add("The Imp attacks the Imp for 1 hit points.", view.ToneEnemyAttack)
	log.Add("The Imp attacks the Imp for 1 hit points.", view.TonePlayerAttack)

	lines := log.Lines()
	if len(lines) != 2 {
		t.Fatalf("len(Lines()) = %d, want 2", len(lines))
	}
	if lines[0].Tone != view.ToneEnemyAttack || lines[1].Tone != view.TonePlayerAttack {
		t.Errorf("tones = %v, %v", lines[0].Tone, lines[1].Tone)
	}
	if lines[0].Count != 1 || lines[1].Count != 1 {
		t.Errorf("counts = %d, %d, want 1, 1", lines[0].Count, lines[1].Count)
	}
}

func TestMessageLogBounded(t *testing.T) {
	var log MessageLog
	for i := range maxMessages + 10 {
		log.Add(fmt.Sprintf("message %d", i), view.ToneNormal)
	}
	if n := len(log.Lines()); n != maxMessages {
		t.Errorf("len(Lines()) = %d, want %d", n, maxMessages)
	}
	if got := log.Lines()[0].Text; got != "message 10" {
		t.Errorf("oldest = %q, want message 10", got)
	}
}

func TestMessageLogReset(t *testing.T) {
	var log MessageLog
	if n := len(log.Lines()); n != 0 {
		t.Errorf("empty log has %d lines", n)
	}

	lines := []view.Line{{Text: "a", Count: 1}, {Text: "b", Count: 3}}
	log.Reset(lines)
	lines[0].Text = "changed"
	if log.Lines()[0].Text != "a" {
		t.Error("Reset kept a reference to the caller's slice")
	}
	log.Reset(nil)
	if n := len(log.Lines()); n != 0 {
		t.Errorf("len(Lines()) = %d after Reset(nil)", n)
	}
}

func TestMessageLogTranslate(t *testing.T) {
	var log MessageLog
	log.Add("raw", view.ToneNormal)
	log.Append(view.Line{Key: "descend", Text: "You descend the staircase.", Tone: view.ToneDescend})
	log.Append(view.Line{Key: "descend", Text: "You descend the staircase.", Tone: view.ToneDescend})

	log.Translate(func(key string, _ map[string]any) string { return "<" + key + ">" })
	lines := log.Lines()
	if lines[0].Text != "raw" {
		t.Errorf("raw line = %q, want unchanged", lines[0].Text)
	}
	if got := lines[1].Display(); got != "<descend> (x2)" {
		t.Errorf("keyed line = %q", got)
	}
}
