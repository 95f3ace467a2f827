package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumearchitect/models"
	"resumearchitect/parsers"
	"resumearchitect/utils"
)

// ParsedResumeResponse carries the extraction result for an upload: the
// decoded plain text plus the structured record heuristically pulled from it.
type ParsedResumeResponse struct {
	Text   string         `json:"text"`
	Resume *models.Resume `json:"resume"`
}

// ParseResumeHandler accepts a multipart "resume" file (pdf, docx or txt),
// decodes it to text and extracts a structured record. A decode failure
// blocks extraction entirely; no partial record is returned.
func ParseResumeHandler(files *parsers.FileExtractor, extractor *parsers.TextExtractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("resume")
		if err != nil {
			utils.BadRequestError(c, "Missing 'resume' file field", err)
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			utils.BadRequestError(c, "Could not read uploaded file", err)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			utils.BadRequestError(c, "Could not read uploaded file", err)
			return
		}

		text, err := files.ExtractText(fileHeader.Filename, data)
		if err != nil {
			utils.LogWarn("resume upload could not be decoded", fileHeader.Filename)
			utils.BadRequestError(c, "Could not decode uploaded document", err)
			return
		}

		resume := extractor.Extract(text)
		utils.SuccessResponse(c, http.StatusOK, "Resume parsed successfully.", ParsedResumeResponse{
			Text:   text,
			Resume: resume,
		})
	}
}

type ExtractRequest struct {
	Text string `json:"text" binding:"required"`
}

// ExtractResumeHandler runs the text extractor alone on raw resume text.
// Extraction is total, so this endpoint always answers 200 for valid JSON.
func ExtractResumeHandler(extractor *parsers.TextExtractor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ExtractRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestError(c, "Invalid request body", err)
			return
		}

		resume := extractor.Extract(req.Text)
		utils.SuccessResponse(c, http.StatusOK, "Resume data extracted.", resume)
	}
}
