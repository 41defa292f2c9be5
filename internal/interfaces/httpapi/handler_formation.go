package httpapi

import (
	"net/http"

	"github.com/riskibarqy/matchday/internal/domain/formation"
	"github.com/riskibarqy/matchday/internal/usecase"
)

func (h *Handler) SaveFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveFormation")
	defer span.End()

	var req saveFormationRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries := make([]usecase.FormationEntry, 0, len(req.Formations))
	for _, item := range req.Formations {
		entries = append(entries, usecase.FormationEntry{
			PlayerID:      item.PlayerID,
			Status:        item.Status,
			MinutesPlayed: item.MinutesPlayed,
			MinuteEntered: item.MinuteEntered,
		})
	}

	items, err := h.formationService.SaveFormation(ctx, usecase.SaveFormationInput{
		MatchID: req.MatchID,
		Entries: entries,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save formation failed", "match_id", req.MatchID, "entries", len(entries), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationsToDTO(items))
}

func (h *Handler) ListFormations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFormations")
	defer span.End()

	items, err := h.formationService.ListFormations(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list formations failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationsToDTO(items))
}

func (h *Handler) GetFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFormation")
	defer span.End()

	matchID, err := pathID(r, "matchId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.formationService.GetFormation(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get formation failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationsToDTO(items))
}

func (h *Handler) UpdateFormationMinutes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFormationMinutes")
	defer span.End()

	matchID, err := pathID(r, "matchId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := pathID(r, "playerId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateMinutesRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	update := formation.MinutesUpdate{
		MatchID:       matchID,
		PlayerID:      playerID,
		MinutesPlayed: req.MinutesPlayed,
		MinuteEntered: req.MinuteEntered,
	}
	if err := h.formationService.UpdateMinutes(ctx, update); err != nil {
		h.logger.WarnContext(ctx, "update formation minutes failed", "match_id", matchID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, formationDTO{
		MatchID:       matchID,
		PlayerID:      playerID,
		MinutesPlayed: req.MinutesPlayed,
		MinuteEntered: req.MinuteEntered,
	})
}
