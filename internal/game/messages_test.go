package game

import (
	"reflect"
	"strings"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  []string
	}{
		{"", 10, []string{""}},
		{"short", 10, []string{"short"}},
		{"one two three four", 9, []string{"one two", "three", "four"}},
		{"supercalifragilistic word", 5, []string{"supercalifragilistic", "word"}},
	}
	for _, tt := range tests {
		if got := WrapText(tt.in, tt.width); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("WrapText(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestMessageLogEvicts(t *testing.T) {
	l := NewMessageLog(3)
	for _, s := range []string{"a", "b", "c", "d"} {
		l.Add(s, MsgInfo)
	}
	if len(l.Messages) != 3 || l.Messages[0].Text != "b" {
		t.Errorf("expected oldest evicted, got %+v", l.Messages)
	}
	if r := l.Recent(10); len(r) != 3 {
		t.Errorf("recent should cap at log size, got %d", len(r))
	}

	l.Add(strings.Repeat("word ", 20), MsgHint)
	for _, m := range l.Messages {
		if len(m.Text) > LogWidth {
			t.Errorf("line longer than %d: %q", LogWidth, m.Text)
		}
	}
}

func TestSections(t *testing.T) {
	for r := '1'; r <= '6'; r++ {
		sec, ok := SectionForKey(r)
		if !ok || int(sec) != int(r-'1') {
			t.Errorf("key %c: got %v %v", r, sec, ok)
		}
	}
	for _, r := range []rune{'0', '7', 'a'} {
		if _, ok := SectionForKey(r); ok {
			t.Errorf("key %c should not map to a section", r)
		}
	}
	if SectionName(SectionProjects) != "Projects" || SectionName(SectionCount) != "Unknown" {
		t.Error("unexpected section names")
	}
}
