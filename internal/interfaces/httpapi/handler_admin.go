package httpapi

import "net/http"

// DeleteMatchCompletely removes a match with its timeline and formation,
// restoring the suspensions and card counters it consumed.
func (h *Handler) DeleteMatchCompletely(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatchCompletely")
	defer span.End()

	id, err := pathID(r, "matchId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.adminService.DeleteMatchCompletely(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "complete match deletion failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "match deleted completely",
		"match_id", result.MatchID,
		"events_deleted", result.EventsDeleted,
		"players_restored", result.PlayersRestored,
	)
	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"matchId":         result.MatchID,
		"eventsDeleted":   result.EventsDeleted,
		"playersRestored": result.PlayersRestored,
	})
}
