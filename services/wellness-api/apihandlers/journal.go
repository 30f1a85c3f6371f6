package apihandlers

import (
	"log/slog"
	"net/http"
	"strings"

	mw "github.com/Lokeshwar-goud/Psyvana/pkg/apihelpers/middlewares"
	"github.com/Lokeshwar-goud/Psyvana/pkg/assessment"
	jwthandling "github.com/Lokeshwar-goud/Psyvana/pkg/jwt-handling"
	"github.com/gin-gonic/gin"
)

func (h *HttpEndpoints) AddJournalAPI(rg *gin.RouterGroup) {
	journalGroup := rg.Group("/journal")
	journalGroup.Use(mw.GetAndValidateAppUserJWT(h.tokenSignKey))
	{
		journalGroup.POST("", mw.RequirePayload(), h.createJournalEntry)
		journalGroup.GET("", h.getJournalHistory)
	}
}

type CreateJournalEntryReq struct {
	Text string `json:"text"`
}

func (h *HttpEndpoints) createJournalEntry(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AppUserClaims)

	var req CreateJournalEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "journal entry text must not be empty"})
		return
	}

	entryID, err := assessment.SaveJournalEntry(token.Subject, req.Text)
	if err != nil {
		slog.Error("failed to save journal entry", slog.String("subject", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("journal entry saved", slog.String("subject", token.Subject), slog.String("entryID", entryID))
	c.JSON(http.StatusOK, gin.H{"entryID": entryID})
}

func (h *HttpEndpoints) getJournalHistory(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AppUserClaims)

	entries, err := assessment.GetJournalHistory(token.Subject)
	if err != nil {
		slog.Error("failed to load journal history", slog.String("subject", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
