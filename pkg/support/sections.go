package support

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sections is an answer split along the mandatory response format.
type Sections struct {
	Issue         string   `json:"issue"`
	Causes        []string `json:"causes"`
	Steps         []string `json:"steps"`
	Clarification []string `json:"clarification,omitempty"`
	Escalation    string   `json:"escalation,omitempty"`
}

// Complete reports whether the answer carried an issue, causes and fix steps.
func (s Sections) Complete() bool {
	return s.Issue != "" && len(s.Causes) > 0 && len(s.Steps) > 0
}

type section int

const (
	sectionNone section = iota
	sectionIssue
	sectionCauses
	sectionSteps
	sectionClarification
	sectionEscalation
)

var headings = []struct {
	key string
	sec section
}{
	{"issue identified", sectionIssue},
	{"possible causes", sectionCauses},
	{"step by step fix", sectionSteps},
	{"clarification", sectionClarification},
	{"if still not working", sectionEscalation},
}

var numberedPrefix = regexp.MustCompile(`^\d+\s*[.)]\s*`)

// ParseSections reads a model answer written in the response format. Heading
// decoration (bold markers, emoji, '#') is ignored; unknown text before the
// first heading is dropped.
func ParseSections(answer string) Sections {
	var out Sections
	var issue, escalation []string
	current := sectionNone

	for _, raw := range strings.Split(answer, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if sec, rest, ok := matchHeading(line); ok {
			current = sec
			if rest == "" {
				continue
			}
			line = rest
		}

		switch current {
		case sectionIssue:
			issue = append(issue, line)
		case sectionCauses:
			if item := trimBullet(line); item != "" {
				out.Causes = append(out.Causes, item)
			}
		case sectionSteps:
			if item := trimBullet(numberedPrefix.ReplaceAllString(line, "")); item != "" {
				out.Steps = append(out.Steps, item)
			}
		case sectionClarification:
			if item := trimBullet(line); item != "" {
				out.Clarification = append(out.Clarification, item)
			}
		case sectionEscalation:
			escalation = append(escalation, line)
		}
	}

	out.Issue = strings.Join(issue, " ")
	out.Escalation = strings.Join(escalation, "\n")
	return out
}

func matchHeading(line string) (section, string, bool) {
	if isListItem(line) {
		return sectionNone, "", false
	}
	clean := strings.ReplaceAll(line, "**", "")
	clean = strings.TrimLeftFunc(clean, func(r rune) bool { return !unicode.IsLetter(r) })
	for _, h := range headings {
		if len(clean) < len(h.key) {
			continue
		}
		if !strings.EqualFold(strings.ReplaceAll(clean[:len(h.key)], "-", " "), h.key) {
			continue
		}
		rest := strings.TrimSpace(clean[len(h.key):])
		switch {
		case rest == "":
			return h.sec, "", true
		case strings.HasPrefix(rest, ":"), strings.HasPrefix(rest, "("):
			if idx := strings.Index(rest, ":"); idx >= 0 {
				return h.sec, strings.TrimSpace(rest[idx+1:]), true
			}
			return h.sec, "", true
		}
	}
	return sectionNone, "", false
}

// isListItem reports whether line is a bullet or a numbered step. Those never
// open a section even when their text starts with a heading word.
func isListItem(line string) bool {
	if numberedPrefix.MatchString(line) {
		return true
	}
	switch {
	case strings.HasPrefix(line, "**"):
		return false
	case strings.HasPrefix(line, "*"):
		return true
	}
	r, _ := utf8.DecodeRuneInString(line)
	return strings.ContainsRune("•·-–", r)
}

func trimBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "•·-*– \t"))
}
