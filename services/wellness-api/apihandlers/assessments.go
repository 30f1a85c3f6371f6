package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	mw "github.com/Lokeshwar-goud/Psyvana/pkg/apihelpers/middlewares"
	"github.com/Lokeshwar-goud/Psyvana/pkg/assessment"
	jwthandling "github.com/Lokeshwar-goud/Psyvana/pkg/jwt-handling"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	assessmentTypes "github.com/Lokeshwar-goud/Psyvana/pkg/assessment/types"
)

func (h *HttpEndpoints) AddAssessmentAPI(rg *gin.RouterGroup) {
	sessionsGroup := rg.Group("/assessment-sessions")
	sessionsGroup.Use(mw.GetAndValidateAppUserJWT(h.tokenSignKey))
	{
		sessionsGroup.POST("", mw.RequirePayload(), h.startAssessmentSession)
		sessionsGroup.GET("/:sessionID", h.getAssessmentSessionState)
		sessionsGroup.POST("/:sessionID/answer", mw.RequirePayload(), h.answerCurrentQuestion)
		sessionsGroup.POST("/:sessionID/advance", h.advanceAssessmentSession)
	}

	assessmentsGroup := rg.Group("/assessments")
	assessmentsGroup.Use(mw.GetAndValidateAppUserJWT(h.tokenSignKey))
	{
		assessmentsGroup.POST("", mw.RequirePayload(), h.submitAssessment)
		assessmentsGroup.GET("", h.getAssessmentHistory)
		assessmentsGroup.GET("/:assessmentID", h.getAssessmentResult)
	}

	progressGroup := rg.Group("/progress")
	progressGroup.Use(mw.GetAndValidateAppUserJWT(h.tokenSignKey))
	{
		progressGroup.GET("", h.getProgress)
	}
}

type StartSessionReq struct {
	QuestionnaireKey string `json:"questionnaireKey"`
}

func (h *HttpEndpoints) startAssessmentSession(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AppUserClaims)

	var req StartSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.QuestionnaireKey == "" {
		slog.Error("missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	questionnaire, questions := assessment.LoadQuestionnaire(req.QuestionnaireKey)
	if len(questions) == 0 {
		slog.Warn("questionnaire has no questions available", slog.String("questionnaireKey", req.QuestionnaireKey))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assessment is currently unavailable"})
		return
	}

	session := assessment.NewSession(token.Subject, questionnaire, questions)
	h.sessions.Add(session)

	slog.Info("assessment session started", slog.String("subject", token.Subject), slog.String("questionnaireKey", req.QuestionnaireKey))
	c.JSON(http.StatusOK, sessionStateResponse(session))
}

func (h *HttpEndpoints) getAssessmentSessionState(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AppUserClaims)

	session, err := h.sessions.Get(c.Param("sessionID"), token.Subject)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, sessionStateResponse(session))
}

type AnswerReq struct {
	Value int `json:"value"`
}

func (h *HttpEndpoints) answerCurrentQuestion(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AppUserClaims)

	session, err := h.sessions.Get(c.Param("sessionID"), token.Subject)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	var req AnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := session.SelectOption(req.Value); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sessionStateResponse(session))
}

func (h *HttpEndpoints) advanceAssessmentSession(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AppUserClaims)

	session, err := h.sessions.Get(c.Param("sessionID"), token.Subject)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	completed, err := session.Advance()
	if err != nil {
		if errors.Is(err, assessment.ErrNoSelection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "please select an option before continuing"})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	if !completed {
		c.JSON(http.StatusOK, sessionStateResponse(session))
		return
	}

	h.sessions.Remove(session.ID)

	resp := h.finalizeAssessment(
		token.Subject,
		session.Questionnaire.Key,
		session.Answers(),
		session.Questionnaire.ScoringRules,
	)
	c.JSON(http.StatusOK, resp)
}

type SubmitAssessmentReq struct {
	QuestionnaireKey string                 `json:"questionnaireKey"`
	Answers          map[string]interface{} `json:"answers"`
}

// submitAssessment stores a full answer set in one call, for clients that
// collect the answers locally.
func (h *HttpEndpoints) submitAssessment(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AppUserClaims)

	var req SubmitAssessmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.QuestionnaireKey == "" || len(req.Answers) == 0 {
		slog.Error("missing required fields")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields"})
		return
	}

	questionnaire, questions := assessment.LoadQuestionnaire(req.QuestionnaireKey)
	if len(questions) == 0 {
		slog.Warn("questionnaire has no questions available", slog.String("questionnaireKey", req.QuestionnaireKey))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assessment is currently unavailable"})
		return
	}

	resp := h.finalizeAssessment(
		token.Subject,
		questionnaire.Key,
		assessmentTypes.AnswersFromRaw(req.Answers),
		questionnaire.ScoringRules,
	)
	c.JSON(http.StatusOK, resp)
}

func (h *HttpEndpoints) getAssessmentResult(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AppUserClaims)
	assessmentID := c.Param("assessmentID")

	result, err := assessment.GetResultByID(token.Subject, assessmentID)
	if err != nil {
		if errors.Is(err, assessment.ErrNotOwned) || errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "assessment not found"})
			return
		}
		slog.Error("failed to load assessment result", slog.String("assessmentID", assessmentID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *HttpEndpoints) getAssessmentHistory(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AppUserClaims)

	history, err := assessment.GetAssessmentHistory(token.Subject)
	if err != nil {
		slog.Error("failed to load assessment history", slog.String("subject", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"assessments": history})
}

func (h *HttpEndpoints) getProgress(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AppUserClaims)

	progress := assessment.CollectProgressForUser(token.Subject)
	c.JSON(http.StatusOK, progress)
}

// finalizeAssessment scores the answers and stores the result. When the
// store fails the response still carries score and rules so the client
// can render the result screen.
func (h *HttpEndpoints) finalizeAssessment(
	userID string,
	questionnaireKey string,
	answers assessmentTypes.Answers,
	scoringRules []assessmentTypes.ScoringRule,
) gin.H {
	totalScore := assessment.TotalScore(answers)
	severityLevel := assessment.ResolveSeverity(scoringRules, totalScore)

	resp := gin.H{
		"totalScore":    totalScore,
		"severityLevel": severityLevel,
		"scoringRules":  scoringRules,
	}

	assessmentID, err := assessment.SaveResult(userID, questionnaireKey, answers, totalScore, severityLevel)
	if err != nil {
		slog.Error("failed to save assessment result", slog.String("subject", userID), slog.String("error", err.Error()))
		resp["saved"] = false
		return resp
	}

	slog.Info("assessment completed", slog.String("subject", userID), slog.String("assessmentID", assessmentID), slog.Int("totalScore", totalScore))
	resp["saved"] = true
	resp["assessmentID"] = assessmentID
	return resp
}

func sessionStateResponse(session *assessment.Session) gin.H {
	resp := gin.H{
		"sessionID":      session.ID,
		"position":       session.Position(),
		"totalQuestions": len(session.Questions),
		"completed":      session.Completed(),
	}
	if question, ok := session.CurrentQuestion(); ok {
		resp["question"] = question
	}
	return resp
}
