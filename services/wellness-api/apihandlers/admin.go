package apihandlers

import (
	"log/slog"
	"net/http"

	mw "github.com/Lokeshwar-goud/Psyvana/pkg/apihelpers/middlewares"
	"github.com/gin-gonic/gin"

	assessmentTypes "github.com/Lokeshwar-goud/Psyvana/pkg/assessment/types"
)

func (h *HttpEndpoints) AddAdminAPI(rg *gin.RouterGroup) {
	adminGroup := rg.Group("/admin")
	adminGroup.Use(mw.GetAndValidateAppUserJWT(h.tokenSignKey))
	adminGroup.Use(mw.IsAdminUser())
	{
		adminGroup.GET("/questionnaires", h.adminListQuestionnaires)
		adminGroup.POST("/questionnaires", mw.RequirePayload(), h.adminCreateQuestionnaire)
		adminGroup.POST("/questionnaires/:questionnaireKey/questions", mw.RequirePayload(), h.adminAddQuestion)
	}
}

type CreateQuestionnaireReq struct {
	Key          string                       `json:"key"`
	Title        string                       `json:"title"`
	Description  string                       `json:"description"`
	ScoringRules []assessmentTypes.ScoringRule `json:"scoringRules"`
}

func (h *HttpEndpoints) adminCreateQuestionnaire(c *gin.Context) {
	var req CreateQuestionnaireReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Key == "" || req.Title == "" || len(req.ScoringRules) == 0 {
		slog.Error("missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	for _, rule := range req.ScoringRules {
		if rule.MinScore > rule.MaxScore {
			c.JSON(http.StatusBadRequest, gin.H{"error": "scoring rule range is inverted"})
			return
		}
	}

	// overlapping ranges are resolved first-match-wins at scoring time
	if rulesOverlap(req.ScoringRules) {
		slog.Warn("questionnaire has overlapping scoring rules", slog.String("questionnaireKey", req.Key))
	}

	questionnaire, err := h.wellnessDBConn.CreateQuestionnaire(assessmentTypes.Questionnaire{
		Key:          req.Key,
		Title:        req.Title,
		Description:  req.Description,
		ScoringRules: req.ScoringRules,
	})
	if err != nil {
		slog.Error("failed to create questionnaire", slog.String("questionnaireKey", req.Key), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("questionnaire created", slog.String("questionnaireKey", questionnaire.Key))
	c.JSON(http.StatusOK, gin.H{"questionnaire": questionnaire})
}

type AddQuestionReq struct {
	Text    string                   `json:"text"`
	Options []assessmentTypes.Option `json:"options"`
	Order   int                      `json:"order"`
}

func (h *HttpEndpoints) adminAddQuestion(c *gin.Context) {
	questionnaireKey := c.Param("questionnaireKey")

	var req AddQuestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Text == "" || len(req.Options) == 0 {
		slog.Error("missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	if _, err := h.wellnessDBConn.GetQuestionnaireByKey(questionnaireKey); err != nil {
		slog.Warn("questionnaire not found", slog.String("questionnaireKey", questionnaireKey), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "questionnaire not found"})
		return
	}

	question, err := h.wellnessDBConn.AddQuestion(assessmentTypes.Question{
		QuestionnaireKey: questionnaireKey,
		Text:             req.Text,
		Options:          req.Options,
		Order:            req.Order,
	})
	if err != nil {
		slog.Error("failed to add question", slog.String("questionnaireKey", questionnaireKey), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question})
}

func (h *HttpEndpoints) adminListQuestionnaires(c *gin.Context) {
	questionnaires, err := h.wellnessDBConn.GetQuestionnaires()
	if err != nil {
		slog.Error("failed to list questionnaires", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	type questionnaireOverview struct {
		assessmentTypes.Questionnaire
		QuestionCount int64 `json:"questionCount"`
	}

	overviews := make([]questionnaireOverview, 0, len(questionnaires))
	for _, questionnaire := range questionnaires {
		count, err := h.wellnessDBConn.CountQuestionsForQuestionnaire(questionnaire.Key)
		if err != nil {
			slog.Error("failed to count questions", slog.String("questionnaireKey", questionnaire.Key), slog.String("error", err.Error()))
		}
		overviews = append(overviews, questionnaireOverview{
			Questionnaire: questionnaire,
			QuestionCount: count,
		})
	}

	c.JSON(http.StatusOK, gin.H{"questionnaires": overviews})
}

func rulesOverlap(rules []assessmentTypes.ScoringRule) bool {
	for i := 0; i < len(rules); i++ {
		for j := i + 1; j < len(rules); j++ {
			if rules[i].MinScore <= rules[j].MaxScore && rules[j].MinScore <= rules[i].MaxScore {
				return true
			}
		}
	}
	return false
}
