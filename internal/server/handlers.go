package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/globalbiznex/biznexbot/internal/models"
	"github.com/globalbiznex/biznexbot/internal/parser"
)

type loginRequest struct {
	Code string `json:"code" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	if s.Auth == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Authentication is disabled"})
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	session, ok := s.Auth.Login(req.Code)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid code"})
		return
	}

	c.SetCookie("auth_token", session, int((12 * time.Hour).Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged in"})
}

type promptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// handleParsePrompt runs the extraction chain over a user prompt and opens an
// editable draft session. Extraction failures go back verbatim: they are the
// user's feedback, not system faults.
func (s *Server) handleParsePrompt(c *gin.Context) {
	var req promptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	draft, err := parser.ParsePrompt(req.Prompt, time.Now())
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	id := s.drafts.create(draft)
	c.JSON(http.StatusOK, gin.H{"draft_id": id, "draft": draft})
}

func (s *Server) handleGetDraft(c *gin.Context) {
	draft, ok := s.drafts.get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

func (s *Server) handleUpdateDraft(c *gin.Context) {
	var draft models.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draft payload"})
		return
	}

	if !s.drafts.set(c.Param("id"), draft) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// handleConfirmDraft validates the session's draft again (the user may have
// edited it) and promotes it to a pending content item.
func (s *Server) handleConfirmDraft(c *gin.Context) {
	id := c.Param("id")
	draft, ok := s.drafts.get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Draft not found"})
		return
	}

	contentID, err := s.promote(draft)
	if err != nil {
		s.respondPromotionError(c, err)
		return
	}

	s.drafts.remove(id)
	c.JSON(http.StatusCreated, gin.H{"id": contentID, "status": models.StatusPending})
}

// handleCreateItem promotes a draft payload directly, without a session.
func (s *Server) handleCreateItem(c *gin.Context) {
	var draft models.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid draft payload"})
		return
	}

	contentID, err := s.promote(draft)
	if err != nil {
		s.respondPromotionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": contentID, "status": models.StatusPending})
}

func (s *Server) promote(draft models.Draft) (int, error) {
	if err := parser.ValidateDraft(draft); err != nil {
		return 0, err
	}
	return s.Store.Append(draft.ToContentItem())
}

func (s *Server) respondPromotionError(c *gin.Context, err error) {
	switch err.(type) {
	case *parser.MissingFieldError, *parser.MalformedFieldError:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		s.Logger.Error("Failed to store content item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store item"})
	}
}

func (s *Server) handleListItems(c *gin.Context) {
	rows, err := s.Store.ReadAll()
	if err != nil {
		s.Logger.Error("Failed to read content items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read items"})
		return
	}

	items := make([]models.ContentItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.Item)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *Server) handleRunDispatch(c *gin.Context) {
	if err := s.Dispatch.ProcessPending(c.Request.Context()); err != nil {
		s.Logger.Error("Manual sweep failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sweep failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sweep completed successfully"})
}

func (s *Server) handleGetPostLog(c *gin.Context) {
	entries, err := s.Store.PostLog()
	if err != nil {
		s.Logger.Error("Failed to read post log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read post log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
