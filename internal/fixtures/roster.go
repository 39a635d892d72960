package fixtures

import (
	_ "embed"
	"fmt"

	"github.com/cmlabs-hris/attendance-tracker/internal/domain/student"
	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var rosterYAML []byte

type rosterFile struct {
	Students []struct {
		ID      int     `yaml:"id"`
		Name    string  `yaml:"name"`
		Status  *string `yaml:"status"`
		Details *string `yaml:"details"`
	} `yaml:"students"`
}

// Roster returns the fixed class roster inserted on first start.
func Roster() ([]student.Student, error) {
	var f rosterFile
	if err := yaml.Unmarshal(rosterYAML, &f); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}

	students := make([]student.Student, 0, len(f.Students))
	seen := make(map[int]bool, len(f.Students))
	for _, s := range f.Students {
		if seen[s.ID] {
			return nil, fmt.Errorf("roster: duplicate student id %d", s.ID)
		}
		seen[s.ID] = true

		st := student.Student{ID: s.ID, Name: s.Name, Details: s.Details}
		if s.Status != nil && *s.Status != "" {
			status := student.Status(*s.Status)
			st.Status = &status
		}
		students = append(students, st)
	}
	return students, nil
}
