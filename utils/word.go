package utils

import (
	"bytes"
	"strings"

	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"

	"resumearchitect/models"
)

// BuildWordDocument constructs a real .docx from the structured record:
// name header, contact line, then each non-empty section as a bold heading
// followed by its entries. Entries missing their key field are skipped.
// An empty record still yields a valid, openable document.
func BuildWordDocument(r *models.Resume) ([]byte, error) {
	doc := document.New()

	name := r.PersonalInfo.FullName()
	if name == "" {
		name = "Your Name"
	}
	title := doc.AddParagraph().AddRun()
	title.Properties().SetBold(true)
	title.Properties().SetSize(20 * measurement.Point)
	title.AddText(name)

	if contact := ContactParts(r.PersonalInfo); len(contact) > 0 {
		doc.AddParagraph().AddRun().AddText(strings.Join(contact, " • "))
	}

	if r.Summary != "" {
		addHeading(doc, "Summary")
		doc.AddParagraph().AddRun().AddText(r.Summary)
	}

	if len(r.Education) > 0 {
		addHeading(doc, "Education")
		for _, edu := range r.Education {
			if edu.Institution == "" {
				continue
			}
			addEntryTitle(doc, edu.Institution)
			if line := degreeLine(edu); line != "" {
				doc.AddParagraph().AddRun().AddText(line)
			}
			if edu.GPA != "" {
				doc.AddParagraph().AddRun().AddText("GPA: " + edu.GPA)
			}
			addBullets(doc, edu.Achievements)
		}
	}

	if len(r.Experience) > 0 {
		addHeading(doc, "Experience")
		for _, exp := range r.Experience {
			if exp.Company == "" {
				continue
			}
			addEntryTitle(doc, exp.Company)
			if exp.Title != "" {
				line := exp.Title
				if exp.StartDate != "" || exp.EndDate != "" {
					line += " | " + exp.StartDate + " - " + exp.EndDate
				}
				doc.AddParagraph().AddRun().AddText(line)
			}
			if exp.Description != "" {
				doc.AddParagraph().AddRun().AddText(exp.Description)
			}
			addBullets(doc, exp.Achievements)
		}
	}

	if len(r.Skills) > 0 {
		addHeading(doc, "Skills")
		doc.AddParagraph().AddRun().AddText(strings.Join(r.Skills, ", "))
	}

	if len(r.Certifications) > 0 {
		addHeading(doc, "Certifications")
		for _, cert := range r.Certifications {
			if cert.Name == "" {
				continue
			}
			line := cert.Name
			if cert.Issuer != "" {
				line += " | " + cert.Issuer
			}
			if cert.Date != "" {
				line += " | " + cert.Date
			}
			doc.AddParagraph().AddRun().AddText("• " + line)
		}
	}

	if len(r.Languages) > 0 {
		addHeading(doc, "Languages")
		for _, lang := range r.Languages {
			if lang.Name == "" {
				continue
			}
			line := lang.Name
			if lang.Proficiency != "" {
				line += ": " + lang.Proficiency
			}
			doc.AddParagraph().AddRun().AddText("• " + line)
		}
	}

	if len(r.Projects) > 0 {
		addHeading(doc, "Projects")
		for _, proj := range r.Projects {
			if proj.Name == "" {
				continue
			}
			addEntryTitle(doc, proj.Name)
			if proj.Description != "" {
				doc.AddParagraph().AddRun().AddText(proj.Description)
			}
			if len(proj.Technologies) > 0 {
				doc.AddParagraph().AddRun().AddText("Technologies: " + strings.Join(proj.Technologies, ", "))
			}
			if proj.URL != "" {
				doc.AddParagraph().AddRun().AddText("URL: " + proj.URL)
			}
		}
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ContactParts returns the non-empty contact fields in the fixed header
// order: location, email, phone, linkedin, website.
func ContactParts(p models.PersonalInfo) []string {
	var parts []string
	for _, part := range []string{p.Location, p.Email, p.Phone, p.LinkedIn, p.Website} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func addHeading(doc *document.Document, text string) {
	run := doc.AddParagraph().AddRun()
	run.Properties().SetBold(true)
	run.Properties().SetSize(14 * measurement.Point)
	run.AddText(text)
}

func addEntryTitle(doc *document.Document, text string) {
	run := doc.AddParagraph().AddRun()
	run.Properties().SetBold(true)
	run.AddText(text)
}

func addBullets(doc *document.Document, achievements []string) {
	if len(achievements) == 0 || achievements[0] == "" {
		return
	}
	for _, achievement := range achievements {
		if achievement != "" {
			doc.AddParagraph().AddRun().AddText("• " + achievement)
		}
	}
}

func degreeLine(edu models.EducationEntry) string {
	var parts []string
	if edu.Degree != "" {
		parts = append(parts, edu.Degree)
	}
	if edu.FieldOfStudy != "" {
		parts = append(parts, "in "+edu.FieldOfStudy)
	}
	line := strings.Join(parts, " ")
	if line == "" {
		return ""
	}
	var dates []string
	if edu.StartDate != "" {
		dates = append(dates, edu.StartDate)
	}
	if edu.EndDate != "" {
		dates = append(dates, edu.EndDate)
	}
	if len(dates) > 0 {
		line += " | " + strings.Join(dates, " - ")
	}
	return line
}
