package services

import (
	"strings"

	"resumearchitect/models"
)

// HarvardTemplate renders a resume record as markdown in the Harvard
// layout: name/contact header, then Summary, Education, Experience,
// Skills, Certifications, Languages, Projects. The section order is fixed.
// The function is pure and total: missing optional fields are omitted and
// entries without their key field (company, institution, name) are
// silently skipped.
func HarvardTemplate(r *models.Resume) string {
	var sb strings.Builder

	fullName := r.PersonalInfo.FullName()
	if fullName == "" {
		fullName = "Your Name"
	}
	sb.WriteString("# " + fullName + "\n")
	sb.WriteString(contactLine(r.PersonalInfo) + "\n\n")

	if r.Summary != "" {
		sb.WriteString("## Summary\n" + r.Summary + "\n\n")
	}

	if len(r.Education) > 0 {
		writeEducation(&sb, r.Education)
	}
	if len(r.Experience) > 0 {
		writeExperience(&sb, r.Experience)
	}

	if len(r.Skills) > 0 {
		sb.WriteString("## Skills\n" + strings.Join(r.Skills, ", ") + "\n\n")
	}

	if len(r.Certifications) > 0 {
		writeCertifications(&sb, r.Certifications)
	}
	if len(r.Languages) > 0 {
		writeLanguages(&sb, r.Languages)
	}
	if len(r.Projects) > 0 {
		writeProjects(&sb, r.Projects)
	}

	return strings.TrimRight(sb.String(), " \t\n")
}

// contactLine joins the non-empty contact fields with bullets in a fixed
// order, falling back to the literal placeholder when all are empty.
func contactLine(p models.PersonalInfo) string {
	var parts []string
	for _, part := range []string{p.Location, p.Email, p.Phone, p.LinkedIn, p.Website} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "Location • Email • Phone"
	}
	return strings.Join(parts, " • ")
}

func writeEducation(sb *strings.Builder, education []models.EducationEntry) {
	sb.WriteString("## Education\n")
	for _, edu := range education {
		if edu.Institution == "" {
			continue
		}
		sb.WriteString("### " + edu.Institution + "\n")

		var degreeInfo []string
		if edu.Degree != "" {
			degreeInfo = append(degreeInfo, edu.Degree)
		}
		if edu.FieldOfStudy != "" {
			degreeInfo = append(degreeInfo, "in "+edu.FieldOfStudy)
		}
		if len(degreeInfo) > 0 {
			sb.WriteString(strings.Join(degreeInfo, " "))
			if dates := dateRange(edu.StartDate, edu.EndDate); dates != "" {
				sb.WriteString(" | " + dates)
			}
			sb.WriteString("\n")
		}

		if edu.Location != "" {
			sb.WriteString(edu.Location + "\n")
		}
		if edu.GPA != "" {
			sb.WriteString("GPA: " + edu.GPA + "\n")
		}
		writeAchievements(sb, edu.Achievements)
		sb.WriteString("\n")
	}
}

func writeExperience(sb *strings.Builder, experience []models.ExperienceEntry) {
	sb.WriteString("## Experience\n")
	for _, exp := range experience {
		if exp.Company == "" {
			continue
		}
		sb.WriteString("### " + exp.Company + "\n")

		if exp.Title != "" {
			sb.WriteString(exp.Title)
			if exp.StartDate != "" || exp.EndDate != "" {
				sb.WriteString(" | " + exp.StartDate + " - " + exp.EndDate)
			}
			sb.WriteString("\n")
		}

		if exp.Location != "" {
			sb.WriteString(exp.Location + "\n")
		}
		if exp.Description != "" {
			sb.WriteString(exp.Description + "\n")
		}
		writeAchievements(sb, exp.Achievements)
		sb.WriteString("\n")
	}
}

// writeAchievements emits one bullet per achievement. A single empty
// string is the blank-form placeholder and produces no bullets.
func writeAchievements(sb *strings.Builder, achievements []string) {
	if len(achievements) == 0 || achievements[0] == "" {
		return
	}
	for _, achievement := range achievements {
		if achievement != "" {
			sb.WriteString("- " + achievement + "\n")
		}
	}
}

func writeCertifications(sb *strings.Builder, certifications []models.CertificationEntry) {
	sb.WriteString("## Certifications\n")
	for _, cert := range certifications {
		if cert.Name == "" {
			continue
		}
		sb.WriteString("- " + cert.Name)
		if cert.Issuer != "" {
			sb.WriteString(" | " + cert.Issuer)
		}
		if cert.Date != "" {
			sb.WriteString(" | " + cert.Date)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func writeLanguages(sb *strings.Builder, languages []models.LanguageEntry) {
	sb.WriteString("## Languages\n")
	for _, lang := range languages {
		if lang.Name == "" {
			continue
		}
		sb.WriteString("- " + lang.Name)
		if lang.Proficiency != "" {
			sb.WriteString(": " + lang.Proficiency)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func writeProjects(sb *strings.Builder, projects []models.ProjectEntry) {
	sb.WriteString("## Projects\n")
	for _, proj := range projects {
		if proj.Name == "" {
			continue
		}
		sb.WriteString("### " + proj.Name + "\n")
		if proj.Description != "" {
			sb.WriteString(proj.Description + "\n")
		}
		if len(proj.Technologies) > 0 {
			sb.WriteString("Technologies: " + strings.Join(proj.Technologies, ", ") + "\n")
		}
		if proj.URL != "" {
			sb.WriteString("URL: " + proj.URL + "\n")
		}
		sb.WriteString("\n")
	}
}

func dateRange(start, end string) string {
	var dates []string
	if start != "" {
		dates = append(dates, start)
	}
	if end != "" {
		dates = append(dates, end)
	}
	return strings.Join(dates, " - ")
}
