package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/usecase"
)

type phaseStep func(ctx context.Context, matchID int64) (match.Session, error)

func (h *Handler) runPhaseStep(w http.ResponseWriter, r *http.Request, spanName, action string, step phaseStep) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := step(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, action+" failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) StartMatch(w http.ResponseWriter, r *http.Request) {
	h.runPhaseStep(w, r, "httpapi.Handler.StartMatch", "start match", h.sessionService.StartMatch)
}

func (h *Handler) BreakHalf(w http.ResponseWriter, r *http.Request) {
	h.runPhaseStep(w, r, "httpapi.Handler.BreakHalf", "half time", h.sessionService.BreakHalf)
}

func (h *Handler) ResumeSecondHalf(w http.ResponseWriter, r *http.Request) {
	h.runPhaseStep(w, r, "httpapi.Handler.ResumeSecondHalf", "second half", h.sessionService.ResumeSecondHalf)
}

func (h *Handler) ResetMatch(w http.ResponseWriter, r *http.Request) {
	h.runPhaseStep(w, r, "httpapi.Handler.ResetMatch", "reset match", h.sessionService.ResetMatch)
}

func (h *Handler) EndMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EndMatch")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req endMatchRequest
	if r.ContentLength != 0 {
		if err := h.decodeRequest(ctx, r, &req); err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	item, err := h.sessionService.EndMatch(ctx, id, usecase.EndMatchInput{
		ClockMinute:  req.ClockMinute,
		GoalsFor:     req.GoalsFor,
		GoalsAgainst: req.GoalsAgainst,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "end match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) GetLiveState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLiveState")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	state, err := h.sessionService.LiveState(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get live state failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, liveStateToDTO(state))
}

func (h *Handler) AppendEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AppendEvent")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req eventRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.sessionService.AppendEvent(ctx, id, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "append event failed", "match_id", id, "event_type", req.Type, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, eventToDTO(item))
}

func (h *Handler) PurgeEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PurgeEvents")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	deleted, err := h.sessionService.PurgeEvents(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "purge events failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"deleted": deleted})
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteEvent")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.sessionService.DeleteEvent(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete event failed", "event_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"deletedId": id})
}

func (h *Handler) SaveTimeline(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveTimeline")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req timelineRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	events := make([]usecase.EventInput, 0, len(req.Events))
	for _, item := range req.Events {
		events = append(events, item.toInput())
	}

	result, err := h.sessionService.SaveTimeline(ctx, id, usecase.TimelineInput{
		Events:          events,
		GoalsFor:        req.GoalsFor,
		GoalsAgainst:    req.GoalsAgainst,
		ExtraTimeFirst:  req.ExtraTimeFirst,
		ExtraTimeSecond: req.ExtraTimeSecond,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save timeline failed", "match_id", id, "events", len(events), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"match":      matchToDTO(result.Match),
		"events":     eventsToDTO(result.Events),
		"formations": formationsToDTO(result.Formation),
	})
}
