package httpapi

import (
	"net/http"

	"github.com/riskibarqy/matchday/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.ListMatches(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, matchToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.GetMatch(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.CreateMatch(ctx, usecase.CreateMatchInput{
		Opponent:        req.Opponent,
		MatchDate:       req.MatchDate,
		IsHome:          req.IsHome,
		GoalsFor:        req.GoalsFor,
		GoalsAgainst:    req.GoalsAgainst,
		StartTime:       req.StartTime,
		ExtraTimeFirst:  req.ExtraTimeFirst,
		ExtraTimeSecond: req.ExtraTimeSecond,
		FormationLabel:  req.FormationLabel,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateMatchRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.UpdateMatch(ctx, id, req.toPatch())
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.DeleteMatch(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"deletedId": id})
}

func (h *Handler) ListAllEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllEvents")
	defer span.End()

	items, err := h.matchService.ListAllEvents(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list all events failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventsToDTO(items))
}

func (h *Handler) ListMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchEvents")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.ListEvents(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "list match events failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventsToDTO(items))
}
