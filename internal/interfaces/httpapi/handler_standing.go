package httpapi

import "net/http"

func (h *Handler) ListDivisionStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDivisionStandings")
	defer span.End()

	divisionID, err := pathID(r, "divisionID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.standingService.ListByDivision(ctx, divisionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, divisionStandingsToDTO(table))
}

func (h *Handler) ListAllStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllStandings")
	defer span.End()

	tables, err := h.standingService.ListAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list all standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]divisionStandingsDTO, 0, len(tables))
	for _, table := range tables {
		items = append(items, divisionStandingsToDTO(table))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
