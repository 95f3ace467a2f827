package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumearchitect/services"
	"resumearchitect/utils"
)

type AnalyzeRequest struct {
	ResumeText     string `json:"resumeText" binding:"required"`
	JobDescription string `json:"jobDescription" binding:"required"`
}

// AnalyzeResumeHandler scores resume text against a job description via
// the AI analyzer.
func AnalyzeResumeHandler(analyzer *services.AtsAnalyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestError(c, "Invalid request body", err)
			return
		}

		result, err := analyzer.AnalyzeResume(c.Request.Context(), req.ResumeText, req.JobDescription)
		if err != nil {
			var netErr *services.NetworkError
			switch {
			case errors.Is(err, services.ErrMissingCredential):
				utils.ServiceUnavailableError(c, "Generation API key is not configured", nil)
			case errors.As(err, &netErr):
				utils.ErrorResponseWithCode(c, http.StatusBadGateway, "Resume analysis failed. Please try again.", err)
			default:
				utils.InternalServerError(c, "Resume analysis failed. Please try again.", err)
			}
			return
		}

		utils.SuccessResponse(c, http.StatusOK, "Resume analyzed successfully.", result)
	}
}
