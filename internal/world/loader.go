package world

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadContent parses a Content feed from YAML bytes and validates it.
func LoadContent(data []byte) (content *Content, err error) {
	content = &Content{}
	err = yaml.Unmarshal(data, content)
	if err != nil {
		err = errors.Wrap(err, "parse content")
		return nil, err
	}

	err = content.Validate()
	if err != nil {
		err = errors.Wrap(err, "content validation failed")
		return nil, err
	}

	return content, nil
}

// LoadContentFile reads and parses a Content feed from disk.
func LoadContentFile(path string) (content *Content, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read content file: %s", path)
		return nil, err
	}
	return LoadContent(data)
}

// Validate checks ids, ranges and cross references.
func (c *Content) Validate() (err error) {
	if len(c.Jobs) == 0 {
		return errors.New("no jobs found in content")
	}
	for i, job := range c.Jobs {
		if job.Company == "" {
			return errors.Errorf("job %d: company is required", i)
		}
	}

	skills := make(map[string]bool, len(c.Skills))
	positions := make(map[[3]float64]string, len(c.Skills))
	for i, s := range c.Skills {
		if s.ID == "" {
			return errors.Errorf("skill %d: id is required", i)
		}
		if skills[s.ID] {
			return errors.Errorf("skill %s: duplicate id", s.ID)
		}
		if !s.Category.Valid() {
			return errors.Errorf("skill %s: unknown category %q", s.ID, s.Category)
		}
		if s.Level < 1 || s.Level > 5 {
			return errors.Errorf("skill %s: level %d out of range 1-5", s.ID, s.Level)
		}
		if len(s.Position) != 3 {
			return errors.Errorf("skill %s: position needs 3 coordinates, got %d", s.ID, len(s.Position))
		}
		// Stars drift around the vertical axis; one sitting on it would share the sun's orbit radius.
		if s.Position[0] == 0 && s.Position[2] == 0 {
			return errors.Errorf("skill %s: position lies on the vertical axis", s.ID)
		}
		// Stars share one drift speed, so two that start apart stay apart.
		at := [3]float64{s.Position[0], s.Position[1], s.Position[2]}
		if other, ok := positions[at]; ok {
			return errors.Errorf("skill %s: same position as %s", s.ID, other)
		}
		positions[at] = s.ID
		skills[s.ID] = true
	}

	for i, conn := range c.Connections {
		if len(conn) != 2 {
			return errors.Errorf("connection %d: needs 2 skill ids, got %d", i, len(conn))
		}
		for _, id := range conn {
			if !skills[id] {
				return errors.Errorf("connection %d: unknown skill %q", i, id)
			}
		}
	}

	seen := make(map[string]bool, len(c.Achievements))
	for i, a := range c.Achievements {
		if a.ID == "" {
			return errors.Errorf("achievement %d: id is required", i)
		}
		if seen[a.ID] {
			return errors.Errorf("achievement %s: duplicate id", a.ID)
		}
		switch a.Type {
		case AchievementSuccess, AchievementFailure, AchievementSecret:
		default:
			return errors.Errorf("achievement %s: unknown type %q", a.ID, a.Type)
		}
		seen[a.ID] = true
	}

	return nil
}
