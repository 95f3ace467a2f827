package parsers

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"resumearchitect/models"
)

// sectionState tracks which resume section the scanner is inside while
// walking paragraph blocks.
type sectionState int

const (
	sectionNone sectionState = iota
	sectionExperience
	sectionEducation
	sectionSkills
)

// blockDelta is the partial record contribution of a single block. The
// reducer returns deltas instead of mutating shared state so the scan has
// no hidden variables.
type blockDelta struct {
	email      string
	phone      string
	skills     []string // non-nil replaces any previously collected skills
	experience *models.ExperienceEntry
	education  *models.EducationEntry
}

var degreeVocabulary = []string{"M.S.", "B.S.", "Ph.D.", "M.A.", "B.A.", "MBA"}

var fieldVocabulary = []string{
	"Computer Science", "Engineering", "Business", "Mathematics",
	"Physics", "Economics", "Biology",
}

// TextExtractor turns raw document text into a partially filled resume
// record. This is heuristic best-effort parsing, not a grammar: input that
// deviates from the "Section Header \n content" paragraph convention will
// mis-segment. That is a documented limitation, not a bug.
type TextExtractor struct {
	emailRegex *regexp.Regexp
	phoneRegex *regexp.Regexp
}

// NewTextExtractor creates an extractor with compiled contact regexes.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{
		emailRegex: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`),
		phoneRegex: regexp.MustCompile(`(\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`),
	}
}

// Extract parses raw resume text into a structured record. It is total:
// empty or unrecognized input yields an empty record, never an error.
func (e *TextExtractor) Extract(rawText string) *models.Resume {
	resume := &models.Resume{
		Skills:         []string{},
		Certifications: []models.CertificationEntry{},
		Languages:      []models.LanguageEntry{},
		Projects:       []models.ProjectEntry{},
	}

	state := sectionNone
	for _, block := range splitBlocks(rawText) {
		var delta blockDelta
		state, delta = e.reduceBlock(state, block)
		applyDelta(resume, delta)
	}

	return resume
}

// reduceBlock is the pure reducer: given the current section state and one
// paragraph block, it returns the next state and the block's record delta.
func (e *TextExtractor) reduceBlock(state sectionState, block string) (sectionState, blockDelta) {
	var delta blockDelta

	lines := splitLines(block)
	if next, content, ok := sectionHeader(lines); ok {
		state = next
		lines = content
	}

	if strings.Contains(block, "@") && strings.Contains(block, ".") {
		delta.email = e.emailRegex.FindString(block)
		delta.phone = e.phoneRegex.FindString(block)
	}

	if len(lines) == 0 {
		return state, delta
	}
	content := strings.Join(lines, "\n")

	switch state {
	case sectionSkills:
		delta.skills = splitSkills(content)
	case sectionExperience:
		delta.experience = experienceFromBlock(lines, content)
	case sectionEducation:
		delta.education = educationFromBlock(lines, content)
	}

	return state, delta
}

func applyDelta(resume *models.Resume, delta blockDelta) {
	// First match wins for contact fields; later blocks never overwrite.
	if delta.email != "" && resume.PersonalInfo.Email == "" {
		resume.PersonalInfo.Email = delta.email
	}
	if delta.phone != "" && resume.PersonalInfo.Phone == "" {
		resume.PersonalInfo.Phone = delta.phone
	}
	if delta.skills != nil {
		resume.Skills = delta.skills
	}
	if delta.experience != nil {
		resume.Experience = append(resume.Experience, *delta.experience)
	}
	if delta.education != nil {
		resume.Education = append(resume.Education, *delta.education)
	}
}

var blankLineRegex = regexp.MustCompile(`\n\s*\n`)

// splitBlocks cuts text into paragraph-like blocks on blank-line
// boundaries, dropping blocks with no content.
func splitBlocks(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var blocks []string
	for _, block := range blankLineRegex.Split(text, -1) {
		if strings.TrimSpace(block) != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func splitLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// sectionHeader reports whether the block opens with a section marker line,
// returning the new state and the remaining content lines.
func sectionHeader(lines []string) (sectionState, []string, bool) {
	if len(lines) == 0 {
		return sectionNone, nil, false
	}
	header := strings.ToLower(lines[0])
	if len(header) >= 50 {
		return sectionNone, nil, false
	}

	switch {
	case strings.Contains(header, "experience") || strings.Contains(header, "work"):
		return sectionExperience, lines[1:], true
	case strings.Contains(header, "education"):
		return sectionEducation, lines[1:], true
	case strings.Contains(header, "skills"):
		return sectionSkills, lines[1:], true
	}
	return sectionNone, nil, false
}

func splitSkills(content string) []string {
	content = strings.ReplaceAll(content, ";", ",")
	content = strings.ReplaceAll(content, "\n", ",")

	var skills []string
	for _, skill := range strings.Split(content, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}
	if skills == nil {
		skills = []string{}
	}
	return skills
}

// experienceFromBlock synthesizes one entry per block: first line as
// company, second as title, the whole block as description, and "-" lines
// as achievements. Dates are unknown at this point, so the end date
// defaults to "Present".
func experienceFromBlock(lines []string, content string) *models.ExperienceEntry {
	entry := &models.ExperienceEntry{
		ID:          uuid.NewString(),
		Company:     lines[0],
		Description: content,
		EndDate:     "Present",
	}
	if len(lines) > 1 {
		entry.Title = lines[1]
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "-") {
			entry.Achievements = append(entry.Achievements, strings.TrimSpace(strings.TrimPrefix(line, "-")))
		}
	}
	return entry
}

// educationFromBlock takes the first line as the institution and infers
// degree and field only by substring match against a small fixed
// vocabulary. Anything outside that vocabulary gets the generic
// placeholder.
func educationFromBlock(lines []string, content string) *models.EducationEntry {
	entry := &models.EducationEntry{
		ID:           uuid.NewString(),
		Institution:  lines[0],
		Degree:       "Degree",
		Achievements: []string{},
	}
	for _, degree := range degreeVocabulary {
		if strings.Contains(content, degree) {
			entry.Degree = degree
			break
		}
	}
	for _, field := range fieldVocabulary {
		if strings.Contains(content, field) {
			entry.FieldOfStudy = field
			break
		}
	}
	return entry
}
