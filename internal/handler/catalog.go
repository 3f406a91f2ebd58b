package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/AquaponicsSim_Go/internal/bot"
	"github.com/osse101/AquaponicsSim_Go/internal/catalog"
	"github.com/osse101/AquaponicsSim_Go/internal/domain"
	"github.com/osse101/AquaponicsSim_Go/internal/game"
	"github.com/osse101/AquaponicsSim_Go/internal/logger"
)

// Catalog entry kinds accepted in /catalog/{kind}/{id}
const (
	KindFish      = "fish"
	KindPlant     = "plants"
	KindEquipment = "equipment"
	KindEvent     = "events"
)

const (
	ErrMsgUnknownKind         = "Unknown catalog kind"
	ErrMsgCatalogEntryMissing = "Not in catalog"
	ErrMsgDidYouMeanFmt       = "%s (did you mean %q?)"
)

// CatalogResponse is the full static table set
type CatalogResponse struct {
	Fish       []domain.FishSpecies     `json:"fish"`
	Plants     []domain.PlantSpecies    `json:"plants"`
	Equipment  []domain.Equipment       `json:"equipment"`
	Events     []domain.EventDefinition `json:"events"`
	Moves      []string                 `json:"moves"`
	Strategies []bot.Strategy           `json:"strategies"`
}

// CatalogHandler serves the static species, equipment and event tables
type CatalogHandler struct {
	catalog *catalog.Catalog
	full    CatalogResponse
}

// NewCatalogHandler snapshots the catalog once; it never changes at runtime
func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	resp := CatalogResponse{
		Fish:       make([]domain.FishSpecies, 0, len(c.FishIDs())),
		Plants:     make([]domain.PlantSpecies, 0, len(c.PlantIDs())),
		Equipment:  c.EquipmentList(),
		Events:     c.Events(),
		Moves:      game.MoveNames(),
		Strategies: bot.Strategies(),
	}
	for _, id := range c.FishIDs() {
		if sp, ok := c.FishSpecies(id); ok {
			resp.Fish = append(resp.Fish, sp)
		}
	}
	for _, id := range c.PlantIDs() {
		if sp, ok := c.PlantSpecies(id); ok {
			resp.Plants = append(resp.Plants, sp)
		}
	}
	return &CatalogHandler{catalog: c, full: resp}
}

// HandleGetCatalog returns every table
func (h *CatalogHandler) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.full)
}

// HandleGetEntry looks up one entry. A miss answers 404 with the closest id
// when one exists.
func (h *CatalogHandler) HandleGetEntry(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	id := chi.URLParam(r, "id")

	var (
		entry  any
		found  bool
		lookup catalog.Kind
	)
	switch kind {
	case KindFish:
		entry, found = h.catalog.FishSpecies(id)
		lookup = catalog.KindFish
	case KindPlant:
		entry, found = h.catalog.PlantSpecies(id)
		lookup = catalog.KindPlant
	case KindEquipment:
		entry, found = h.catalog.Equipment(id)
		lookup = catalog.KindEquipment
	case KindEvent:
		entry, found = h.catalog.Event(id)
		lookup = catalog.KindEvent
	default:
		respondError(w, http.StatusNotFound, ErrMsgUnknownKind)
		return
	}

	if !found {
		msg := ErrMsgCatalogEntryMissing
		if s := h.catalog.Suggest(lookup, id); s != "" {
			msg = fmt.Sprintf(ErrMsgDidYouMeanFmt, msg, s)
		}
		logger.FromContext(r.Context()).Debug("Catalog miss", "kind", kind, "id", id)
		respondError(w, http.StatusNotFound, msg)
		return
	}

	respondJSON(w, http.StatusOK, entry)
}
