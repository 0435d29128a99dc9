package httpapi

import (
	"net/http"

	"github.com/riskibarqy/leaguerly/internal/domain/division"
)

func (h *Handler) ListDivisions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisions")
	defer span.End()

	divisions, err := h.divisionService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list divisions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]divisionDTO, 0, len(divisions))
	for _, d := range divisions {
		items = append(items, divisionToDTO(d))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDivision")
	defer span.End()

	divisionID, err := pathID(r, "divisionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.divisionService.Get(ctx, divisionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get division failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, divisionToDTO(item))
}

func (h *Handler) CreateDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateDivision")
	defer span.End()

	var req divisionRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.divisionService.Create(ctx, division.Division{Name: req.Name, Season: req.Season})
	if err != nil {
		h.logger.WarnContext(ctx, "create division failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, divisionToDTO(item))
}

func (h *Handler) UpdateDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateDivision")
	defer span.End()

	divisionID, err := pathID(r, "divisionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req divisionRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.divisionService.Update(ctx, division.Division{ID: divisionID, Name: req.Name, Season: req.Season})
	if err != nil {
		h.logger.WarnContext(ctx, "update division failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, divisionToDTO(item))
}

func (h *Handler) DeleteDivision(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteDivision")
	defer span.End()

	divisionID, err := pathID(r, "divisionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.divisionService.Delete(ctx, divisionID); err != nil {
		h.logger.WarnContext(ctx, "delete division failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(w)
}
