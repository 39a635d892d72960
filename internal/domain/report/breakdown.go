package report

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	NoAbsencesText  = "No absences."
	FormatErrorText = "Reason format error."
	NoDetailsText   = "no details"

	// PeriodMarker labels the pair number inside a fragment.
	PeriodMarker = "Period"

	fragmentSeparator = ", "
)

// Absence is one stored absence as it reaches the report.
type Absence struct {
	Date       string
	PairNumber int
	Reason     string
	Comment    string
	Respectful bool
	Hours      int
}

// Slot is the "<date> Period <n>" label of the absence.
func (a Absence) Slot() string {
	return fmt.Sprintf("%s %s %d", a.Date, PeriodMarker, a.PairNumber)
}

// Detail is what the grouped breakdown lists for one occurrence: the comment
// when there is one, the slot otherwise.
func (a Absence) Detail() string {
	if c := strings.TrimSpace(a.Comment); c != "" {
		return c
	}
	return a.Slot()
}

// Fragment renders the flattened "<reason> (<date> Period <n>[: <comment>])" text.
func (a Absence) Fragment() string {
	inner := a.Slot()
	if c := strings.TrimSpace(a.Comment); c != "" {
		inner += ": " + c
	}
	return fmt.Sprintf("%s (%s)", a.Reason, inner)
}

type ReasonGroup struct {
	Reason  string
	Count   int
	Details []string
}

func (g ReasonGroup) String() string {
	return fmt.Sprintf("%s (%d times: %s)", g.Reason, g.Count, strings.Join(g.Details, ", "))
}

// Breakdown groups absences by reason in order of first occurrence.
// Malformed counts fragments that could not be attributed to any reason.
type Breakdown struct {
	Groups    []ReasonGroup
	Malformed int
}

func (b *Breakdown) add(reason, detail string) {
	for i := range b.Groups {
		if b.Groups[i].Reason == reason {
			b.Groups[i].Count++
			b.Groups[i].Details = append(b.Groups[i].Details, detail)
			return
		}
	}
	b.Groups = append(b.Groups, ReasonGroup{Reason: reason, Count: 1, Details: []string{detail}})
}

func (b Breakdown) String() string {
	if len(b.Groups) == 0 {
		if b.Malformed > 0 {
			return FormatErrorText
		}
		return NoAbsencesText
	}
	parts := make([]string, 0, len(b.Groups))
	for _, g := range b.Groups {
		parts = append(parts, g.String())
	}
	return strings.Join(parts, "; ")
}

// GroupAbsences builds the breakdown straight from structured absences.
func GroupAbsences(absences []Absence) Breakdown {
	var b Breakdown
	for _, a := range absences {
		b.add(a.Reason, a.Detail())
	}
	return b
}

// ReasonLookup reports whether a name is a catalog reason and names the
// reason used for unattributed absences.
type ReasonLookup interface {
	Known(name string) bool
	Unknown() string
}

var (
	fragmentPattern = regexp.MustCompile(`^(.*?)\s*\(([^)]+)\)$`)
	slotPattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} ` + PeriodMarker + ` \d+(?::\s*(.*))?$`)
)

// ParseFragments groups a flattened, comma-joined reasons string. Fragments
// that are not "name (details)" are salvaged when the whole text is a catalog
// reason, or bucketed under the unknown reason when they mention a period;
// anything else is counted as malformed.
func ParseFragments(joined string, reasons ReasonLookup) Breakdown {
	var b Breakdown
	for _, part := range strings.Split(joined, fragmentSeparator) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if m := fragmentPattern.FindStringSubmatch(part); m != nil {
			b.add(strings.TrimSpace(m[1]), fragmentDetail(strings.TrimSpace(m[2])))
			continue
		}
		switch {
		case reasons.Known(part):
			b.add(part, NoDetailsText)
		case strings.Contains(part, PeriodMarker):
			b.add(reasons.Unknown(), part)
		default:
			b.Malformed++
		}
	}
	return b
}

func fragmentDetail(inner string) string {
	m := slotPattern.FindStringSubmatch(inner)
	if m == nil || strings.TrimSpace(m[1]) == "" {
		return inner
	}
	return strings.TrimSpace(m[1])
}
