package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jwebster45206/modern-world/pkg/catalog"
	"github.com/jwebster45206/modern-world/pkg/state"
)

type CatalogResponse struct {
	StartingDate string             `json:"starting_date"`
	Roles        []catalog.Role     `json:"roles"`
	Technologies []state.Technology `json:"technologies"`
	Ministries   []state.Ministry   `json:"ministries"`
}

// CatalogHandler serves the static game catalog.
// GET /v1/catalog
type CatalogHandler struct {
	logger *slog.Logger
}

func NewCatalogHandler(logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{logger: logger}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only GET is supported.")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, CatalogResponse{
		StartingDate: catalog.StartingDate,
		Roles:        catalog.Roles(),
		Technologies: catalog.Technologies(),
		Ministries:   catalog.DefaultMinistries(),
	})
}
