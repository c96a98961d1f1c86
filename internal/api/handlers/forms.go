package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qualipharm/qualipharm/form"
	"github.com/qualipharm/qualipharm/registry"
)

// fieldEdit is one user edit, in the order it happened. Order matters: the
// initials derivation only follows name edits made before the initials were
// touched directly.
type fieldEdit struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

type draftRequest struct {
	Edits []fieldEdit `json:"edits"`
}

type draftResponse struct {
	Values  map[string]string `json:"values"`
	Valid   bool              `json:"valid"`
	Missing []string          `json:"missing,omitempty"`
}

// EvaluateDraft replays a client's edit log through the form state and
// returns the derived values plus completeness, so the UI can show the
// computed initials and the list of fields still blocking generation.
func (h *DocumentHandler) EvaluateDraft(c *gin.Context) {
	tpl, ok := registry.TemplateByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Modèle de document introuvable"})
		return
	}

	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	state := form.New(tpl)
	for _, e := range req.Edits {
		state.Set(e.ID, e.Value)
	}

	c.JSON(http.StatusOK, draftResponse{
		Values:  state.Values(),
		Valid:   state.Valid(),
		Missing: state.Missing(),
	})
}
