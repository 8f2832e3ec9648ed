package game

import "testing"

func TestSelectionFlow(t *testing.T) {
	var s Selection
	if s.Mode() != ModeIdle {
		t.Fatalf("zero value should be idle, got %s", ModeName(s.Mode()))
	}

	steps := []struct {
		name string
		do   func()
		want Mode
	}{
		{"hover planet", func() { s.PointerOver("job-0") }, ModeHovered},
		{"click planet", func() { s.Click("job-0") }, ModeSelected},
		{"open project", func() { s.ClickProject("job-0", 2) }, ModeSelectedWithDetail},
		{"click other", func() { s.Click("job-1") }, ModeSelected},
		{"click again", func() { s.Click("job-1") }, ModeHovered},
		{"leave", func() { s.PointerOut("job-0") }, ModeIdle},
	}
	for _, st := range steps {
		st.do()
		if got := s.Mode(); got != st.want {
			t.Fatalf("%s: want %s, got %s", st.name, ModeName(st.want), ModeName(got))
		}
	}
}

func TestSelectionClickProjectFromIdle(t *testing.T) {
	var s Selection
	s.ClickProject("job-3", 1)
	if s.Selected() != "job-3" {
		t.Errorf("expected job-3 selected, got %q", s.Selected())
	}
	if p, ok := s.Project(); !ok || p != 1 {
		t.Errorf("expected project 1, got %d %v", p, ok)
	}

	s.ClickProject("job-3", -1)
	if p, _ := s.Project(); p != 1 {
		t.Errorf("negative index should be ignored, project now %d", p)
	}

	s.Click("job-2")
	if _, ok := s.Project(); ok {
		t.Error("selecting another planet should clear the project")
	}
}

func TestSelectionPointerOutOther(t *testing.T) {
	var s Selection
	s.PointerOver("job-0")
	s.PointerOut("job-4")
	if s.Hovered() != "job-0" {
		t.Errorf("leaving an unhovered body should keep hover, got %q", s.Hovered())
	}
}

func TestSelectionEmphasis(t *testing.T) {
	var s Selection
	s.PointerOver("job-1")
	if !s.Emphasized("job-1") {
		t.Error("hovered body should be emphasized")
	}
	if s.Emphasized("job-0") || s.Emphasized("") {
		t.Error("only the hovered body is emphasized")
	}

	s.Click("job-0")
	if s.Emphasized("job-1") {
		t.Error("hover on another body should be suppressed while a panel is open")
	}

	s.Click("job-1")
	if !s.Emphasized("job-1") {
		t.Error("hovering the selected body keeps emphasis")
	}

	s.Clear()
	if s.Selected() != "" || s.Hovered() != "job-1" {
		t.Errorf("clear should keep hover only, got selected=%q hovered=%q", s.Selected(), s.Hovered())
	}
}
