package httpapi

import (
	"net/http"
)

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	divisionID, err := queryID(r, "division_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if divisionID == 0 && r.PathValue("divisionID") != "" {
		if divisionID, err = pathID(r, "divisionID"); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	games, err := h.gameService.List(ctx, divisionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list games failed", "division_id", divisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, g := range games {
		items = append(items, gameToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.Get(ctx, gameID)
	if err != nil {
		h.logger.WarnContext(ctx, "get game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

// CreateGame schedules a game. Goals and bookings are recorded with a
// follow-up update once the game has been played.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateGame")
	defer span.End()

	var req gameRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toGame(0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.Create(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "create game failed", "division_id", input.DivisionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameToDTO(item))
}

func (h *Handler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGame")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req gameRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	input, err := req.toGame(gameID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.gameService.Update(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameToDTO(item))
}

func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGame")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.gameService.Delete(ctx, gameID); err != nil {
		h.logger.WarnContext(ctx, "delete game failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeNoContent(w)
}
