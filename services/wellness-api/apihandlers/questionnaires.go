package apihandlers

import (
	"log/slog"
	"net/http"

	mw "github.com/Lokeshwar-goud/Psyvana/pkg/apihelpers/middlewares"
	"github.com/Lokeshwar-goud/Psyvana/pkg/assessment"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) AddQuestionnaireAPI(rg *gin.RouterGroup) {
	questionnairesGroup := rg.Group("/questionnaires")
	questionnairesGroup.Use(mw.GetAndValidateAppUserJWT(h.tokenSignKey))
	{
		questionnairesGroup.GET("", h.getQuestionnaires)
		questionnairesGroup.GET("/:questionnaireKey", h.getQuestionnaireWithQuestions)
	}
}

func (h *HttpEndpoints) getQuestionnaires(c *gin.Context) {
	questionnaires, err := assessment.ListQuestionnaires()
	if err != nil {
		slog.Error("failed to list questionnaires", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questionnaires": questionnaires})
}

func (h *HttpEndpoints) getQuestionnaireWithQuestions(c *gin.Context) {
	questionnaireKey := c.Param("questionnaireKey")

	questionnaire, questions := assessment.LoadQuestionnaire(questionnaireKey)
	if len(questions) == 0 {
		slog.Warn("questionnaire has no questions available", slog.String("questionnaireKey", questionnaireKey))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assessment is currently unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questionnaire": questionnaire,
		"questions":     questions,
	})
}
