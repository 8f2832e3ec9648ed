package world

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cosmicfolio/cosmicfolio/assets"
)

func TestLoadContentEmbedded(t *testing.T) {
	content, err := LoadContent(assets.Portfolio)
	if err != nil {
		t.Fatalf("load embedded content: %v", err)
	}

	if len(content.Jobs) != 5 {
		t.Errorf("expected 5 jobs, got %d", len(content.Jobs))
	}
	if len(content.Skills) != 4 {
		t.Errorf("expected 4 skills, got %d", len(content.Skills))
	}
	if got := content.Jobs[0].PrimaryLanguage(); got != "JavaScript" {
		t.Errorf("expected first job primary language JavaScript, got %q", got)
	}
	if got := content.LanguageColors["C++"]; got != "#00599c" {
		t.Errorf("expected C++ color #00599c, got %q", got)
	}
	if got := content.Skills[1].Category; got != CategoryFrontend {
		t.Errorf("expected typescript to be frontend, got %q", got)
	}
	if len(content.Jobs[2].Projects) != 3 {
		t.Errorf("expected 3 projects for Autodesk, got %d", len(content.Jobs[2].Projects))
	}
}

func TestLoadContentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	err := os.WriteFile(path, assets.Portfolio, 0600)
	if err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	content, err := LoadContentFile(path)
	if err != nil {
		t.Fatalf("load content file: %v", err)
	}
	if content.Profile.Name == "" {
		t.Error("expected profile name to be loaded")
	}

	_, err = LoadContentFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	base := func() *Content {
		return &Content{
			Jobs: []JobRecord{{Company: "Acme"}},
			Skills: []SkillRecord{
				{ID: "go", Name: "Go", Category: CategoryBackend, Level: 4, Position: []float64{1, 2, 3}},
			},
			Achievements: []AchievementRecord{{ID: "first-discovery", Type: AchievementSuccess}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Content)
		wantErr string
	}{
		{"valid", func(c *Content) {}, ""},
		{"no jobs", func(c *Content) { c.Jobs = nil }, "no jobs"},
		{"missing company", func(c *Content) { c.Jobs[0].Company = "" }, "company is required"},
		{"duplicate skill", func(c *Content) { c.Skills = append(c.Skills, c.Skills[0]) }, "duplicate id"},
		{"bad category", func(c *Content) { c.Skills[0].Category = "sales" }, "unknown category"},
		{"level too high", func(c *Content) { c.Skills[0].Level = 6 }, "out of range"},
		{"short position", func(c *Content) { c.Skills[0].Position = []float64{1, 2} }, "3 coordinates"},
		{"on axis", func(c *Content) { c.Skills[0].Position = []float64{0, 4, 0} }, "vertical axis"},
		{"shared position", func(c *Content) {
			c.Skills = append(c.Skills, SkillRecord{ID: "rust", Name: "Rust", Category: CategoryBackend, Level: 2, Position: []float64{1, 2, 3}})
		}, "same position as go"},
		{"distinct positions", func(c *Content) {
			c.Skills = append(c.Skills, SkillRecord{ID: "rust", Name: "Rust", Category: CategoryBackend, Level: 2, Position: []float64{3, 2, 1}})
		}, ""},
		{"dangling connection", func(c *Content) { c.Connections = [][]string{{"go", "rust"}} }, "unknown skill"},
		{"bad achievement type", func(c *Content) { c.Achievements[0].Type = "meh" }, "unknown type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMasteryID(t *testing.T) {
	if got := MasteryID(CategoryFrontend); got != "frontend-master" {
		t.Errorf("expected frontend-master, got %q", got)
	}
}
