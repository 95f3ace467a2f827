package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumearchitect/models"
	"resumearchitect/services"
	"resumearchitect/utils"
)

type ImproveRequest struct {
	Resume         models.Resume `json:"resume" binding:"required"`
	JobDescription string        `json:"jobDescription"`
}

type ImproveResponse struct {
	Content  string `json:"content"`
	Fallback bool   `json:"fallback"`
}

// ImproveResumeHandler generates an ATS-optimized rewrite of the resume.
// The response is always usable markdown: when the AI path fails for any
// reason the deterministic Harvard template is substituted and Fallback
// is set.
func ImproveResumeHandler(improver *services.ResumeImprover) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ImproveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestError(c, "Invalid request body", err)
			return
		}

		content, fallback := improver.GenerateImprovedResume(c.Request.Context(), &req.Resume, req.JobDescription)

		message := "Resume improved successfully."
		if fallback {
			message = "Resume generated from template."
		}
		utils.SuccessResponse(c, http.StatusOK, message, ImproveResponse{
			Content:  content,
			Fallback: fallback,
		})
	}
}

type RenderRequest struct {
	Resume models.Resume `json:"resume" binding:"required"`
}

// RenderResumeHandler runs the deterministic Harvard template renderer.
func RenderResumeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RenderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestError(c, "Invalid request body", err)
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Resume rendered.", gin.H{
			"content": services.HarvardTemplate(&req.Resume),
		})
	}
}

type ExportRequest struct {
	Resume   models.Resume `json:"resume" binding:"required"`
	Format   string        `json:"format" binding:"required"`
	Template string        `json:"template"`
}

// ExportResumeHandler converts a resume into a downloadable document.
// Template, when set, overrides the generated markdown (the improved AI
// output re-submitted by the client); the docx backend builds from the
// structured record and ignores it.
func ExportResumeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ExportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestError(c, "Invalid request body", err)
			return
		}

		backend, err := services.BackendFor(services.DocumentFormat(req.Format))
		if err != nil {
			utils.BadRequestError(c, "Unsupported export format", err)
			return
		}

		data, mimeType, err := backend.Render(&req.Resume, req.Template)
		if err != nil {
			utils.LogError("resume export failed", err)
			utils.InternalServerError(c, "Failed to export resume", err)
			return
		}

		filename := services.ExportFilename(
			req.Resume.PersonalInfo.FirstName,
			req.Resume.PersonalInfo.LastName,
			backend.FileExtension(),
		)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, mimeType, data)
	}
}
