package httpapi

import (
	"net/http"

	"github.com/riskibarqy/leaguerly/internal/domain/location"
)

func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLocations")
	defer span.End()

	locations, err := h.locationService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list locations failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]locationDTO, 0, len(locations))
	for _, l := range locations {
		items = append(items, locationToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLocation")
	defer span.End()

	locationID, err := pathID(r, "locationID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.locationService.Get(ctx, locationID)
	if err != nil {
		h.logger.WarnContext(ctx, "get location failed", "location_id", locationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, locationToDTO(item))
}

func (h *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateLocation")
	defer span.End()

	var req locationRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.locationService.Create(ctx, location.Location{Name: req.Name, Address: req.Address})
	if err != nil {
		h.logger.WarnContext(ctx, "create location failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, locationToDTO(item))
}

func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateLocation")
	defer span.End()

	locationID, err := pathID(r, "locationID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req locationRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.locationService.Update(ctx, location.Location{ID: locationID, Name: req.Name, Address: req.Address})
	if err != nil {
		h.logger.WarnContext(ctx, "update location failed", "location_id", locationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, locationToDTO(item))
}

func (h *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteLocation")
	defer span.End()

	locationID, err := pathID(r, "locationID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.locationService.Delete(ctx, locationID); err != nil {
		h.logger.WarnContext(ctx, "delete location failed", "location_id", locationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(w)
}
