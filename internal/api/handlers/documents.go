package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/qualipharm/qualipharm/compose"
	"github.com/qualipharm/qualipharm/internal/services"
	"github.com/qualipharm/qualipharm/registry"
	"github.com/qualipharm/qualipharm/schema"
)

type DocumentHandler struct {
	docService *services.DocumentService
	logger     *zap.Logger
}

func NewDocumentHandler(docService *services.DocumentService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{docService: docService, logger: logger}
}

// ListTemplates returns the catalog, optionally filtered by ?category=.
func (h *DocumentHandler) ListTemplates(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, gin.H{"templates": registry.TemplatesByCategory(category)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": registry.All()})
}

func (h *DocumentHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": registry.Categories()})
}

// GetTemplate returns one template by id.
func (h *DocumentHandler) GetTemplate(c *gin.Context) {
	tpl, ok := registry.TemplateByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Modèle de document introuvable"})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// CreateDocument validates and renders a submission and streams the PDF
// back as a download.
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var sub services.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	doc, err := h.docService.GenerateDocument(c.Request.Context(), &sub)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Header("X-Record-ID", doc.Record.ID)
	c.Data(http.StatusOK, "application/pdf", doc.PDF)
}

// CompileMonth renders the monthly compilation for ?year=&month=.
func (h *DocumentHandler) CompileMonth(c *gin.Context) {
	year, month, ok := h.parseMonth(c)
	if !ok {
		return
	}

	doc, err := h.docService.CompileMonth(c.Request.Context(), c.Param("id"), year, month)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, "application/pdf", doc.PDF)
}

type shareRequest struct {
	services.Submission
	Phone string `json:"phone,omitempty"`
}

// ShareDocument generates the document, uploads it to object storage and
// returns the public URL plus the prefilled messaging link.
func (h *DocumentHandler) ShareDocument(c *gin.Context) {
	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	doc, err := h.docService.GenerateDocument(c.Request.Context(), &req.Submission)
	if err != nil {
		h.renderError(c, err)
		return
	}

	tpl, _ := registry.TemplateByID(req.TemplateID)
	res, err := h.docService.ShareDocument(c.Request.Context(), doc, tpl.Title, req.Phone)
	if err != nil {
		h.logger.Error("share failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Le partage du document a échoué"})
		return
	}

	c.JSON(http.StatusOK, res)
}

// DashboardCounts returns per-template record counts for ?year=&month=.
func (h *DocumentHandler) DashboardCounts(c *gin.Context) {
	year, month, ok := h.parseMonth(c)
	if !ok {
		return
	}

	counts, err := h.docService.DashboardCounts(c.Request.Context(), year, month)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":   year,
		"month":  int(month),
		"counts": counts,
	})
}

func (h *DocumentHandler) parseMonth(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre year invalide"})
		return 0, 0, false
	}
	m, err := strconv.Atoi(c.Query("month"))
	if err != nil || m < 1 || m > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre month invalide"})
		return 0, 0, false
	}
	return year, time.Month(m), true
}

func (h *DocumentHandler) renderError(c *gin.Context, err error) {
	var verr *schema.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Champs obligatoires manquants",
			"missing": verr.Missing,
		})
	case errors.Is(err, compose.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Modèle de document introuvable"})
	case errors.Is(err, compose.ErrNoRecords):
		c.JSON(http.StatusNotFound, gin.H{"error": "Aucun enregistrement pour ce mois"})
	default:
		h.logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne du serveur"})
	}
}
