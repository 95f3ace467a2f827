package models

import (
	"strings"

	"github.com/google/uuid"
)

// PersonalInfo holds the contact header of a resume. All fields are free
// text; nothing beyond presence is validated.
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Website   string `json:"website,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// FullName joins first and last name, trimming the gap when either is empty.
func (p PersonalInfo) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// ExperienceEntry is one job. EndDate is free text and may be the literal
// "Present". Achievements keep insertion order.
type ExperienceEntry struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// EducationEntry is one school or degree program.
type EducationEntry struct {
	ID           string   `json:"id"`
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	FieldOfStudy string   `json:"fieldOfStudy"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	GPA          string   `json:"gpa,omitempty"`
	Achievements []string `json:"achievements"`
}

type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

type LanguageEntry struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency"`
}

type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
}

// Resume is the aggregate record the whole pipeline passes around. It lives
// only for the duration of a request; nothing here is persisted.
type Resume struct {
	PersonalInfo   PersonalInfo         `json:"personalInfo"`
	Summary        string               `json:"summary"`
	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Skills         []string             `json:"skills"`
	Certifications []CertificationEntry `json:"certifications"`
	Languages      []LanguageEntry      `json:"languages"`
	Projects       []ProjectEntry       `json:"projects"`
}

// NewEmptyResume returns a blank record ready for form editing: one empty
// experience entry (with a single empty achievement placeholder) and one
// empty education entry, each with a fresh ID. IDs are assigned once and
// never reused.
func NewEmptyResume() *Resume {
	return &Resume{
		Experience: []ExperienceEntry{
			{
				ID:           uuid.NewString(),
				Achievements: []string{""},
			},
		},
		Education: []EducationEntry{
			{
				ID:           uuid.NewString(),
				Achievements: []string{},
			},
		},
		Skills:         []string{},
		Certifications: []CertificationEntry{},
		Languages:      []LanguageEntry{},
		Projects:       []ProjectEntry{},
	}
}
