package employee

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

// Weight maps a proficiency level to its scoring multiplier. Unknown levels
// count as Beginner rather than being rejected.
func (l SkillLevel) Weight() float64 {
	switch l {
	case LevelBeginner:
		return 1.0
	case LevelIntermediate:
		return 1.5
	case LevelAdvanced:
		return 1.8
	case LevelExpert:
		return 2.0
	default:
		return 1.0
	}
}

func (l SkillLevel) Rank() int {
	switch l {
	case LevelBeginner:
		return 1
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	case LevelExpert:
		return 4
	default:
		return 2
	}
}

type Skill struct {
	Name  string
	Level SkillLevel
	Years float64
}

// Period is a year-month range. Months are 1-12; a zero month means the
// source only recorded the year.
type Period struct {
	StartYear  int
	StartMonth int
	EndYear    int
	EndMonth   int
}

// ParsePeriod parses the "2024-01 ~ 2025-07" form carried by work-history
// records. Only the years are required; a record that cannot be parsed is
// treated as having no period at all.
func ParsePeriod(raw string) (Period, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Period{}, fmt.Errorf("empty period")
	}

	parts := strings.Split(raw, "~")
	start := strings.TrimSpace(parts[0])
	end := start
	if len(parts) > 1 {
		end = strings.TrimSpace(parts[len(parts)-1])
	}

	sy, sm, err := parseYearMonth(start)
	if err != nil {
		return Period{}, err
	}
	ey, em, err := parseYearMonth(end)
	if err != nil {
		return Period{}, err
	}

	return Period{StartYear: sy, StartMonth: sm, EndYear: ey, EndMonth: em}, nil
}

func parseYearMonth(s string) (int, int, error) {
	if s == "" {
		return 0, 0, fmt.Errorf("empty year-month")
	}
	fields := strings.SplitN(s, "-", 2)
	year, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in %q: %w", s, err)
	}
	if year < 1900 || year > 3000 {
		return 0, 0, fmt.Errorf("year out of range in %q", s)
	}
	month := 0
	if len(fields) > 1 {
		m, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}
	return year, month, nil
}

// ProjectStint is one work-history entry. Period is nil when the stored
// period string could not be parsed; such stints still count for domain
// experience but contribute no recency signal.
type ProjectStint struct {
	ProjectName string
	Period      *Period
	Role        string
	DomainHint  string
}

type AssignmentRef struct {
	ProjectID   uuid.UUID
	ProjectName string
	Role        string
}

type Profile struct {
	ID                uuid.UUID
	Name              string
	Role              string
	YearsOfExperience float64
	Skills            []Skill
	WorkHistory       []ProjectStint
	CurrentAssignment *AssignmentRef
}

// Assigned reports whether the employee is tied to an active project and is
// therefore unavailable for staffing.
func (p Profile) Assigned() bool {
	return p.CurrentAssignment != nil
}

// SkillNames returns the employee's skill names lowercased for
// case-insensitive lookups.
func (p Profile) SkillNames() map[string]struct{} {
	out := make(map[string]struct{}, len(p.Skills))
	for _, s := range p.Skills {
		name := strings.ToLower(strings.TrimSpace(s.Name))
		if name == "" {
			continue
		}
		out[name] = struct{}{}
	}
	return out
}

// FindSkill looks up a skill by name, case-insensitively.
func (p Profile) FindSkill(name string) (Skill, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range p.Skills {
		if strings.ToLower(strings.TrimSpace(s.Name)) == name {
			return s, true
		}
	}
	return Skill{}, false
}
