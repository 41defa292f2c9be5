package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/matchday/internal/usecase"
)

func (h *Handler) ListAttendances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAttendances")
	defer span.End()

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	items, err := h.attendanceService.ListAttendances(ctx, date)
	if err != nil {
		h.logger.WarnContext(ctx, "list attendances failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, attendancesToDTO(items))
}

func (h *Handler) RecordAttendances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordAttendances")
	defer span.End()

	var req recordAttendanceRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries := make([]usecase.AttendanceEntry, 0, len(req.Attendances))
	for _, item := range req.Attendances {
		entries = append(entries, usecase.AttendanceEntry{PlayerID: item.PlayerID, Status: item.Status})
	}

	items, err := h.attendanceService.RecordAttendances(ctx, req.Date, entries)
	if err != nil {
		h.logger.WarnContext(ctx, "record attendances failed", "date", req.Date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, attendancesToDTO(items))
}

func (h *Handler) DeleteAttendances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteAttendances")
	defer span.End()

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	deleted, err := h.attendanceService.DeleteAttendances(ctx, date)
	if err != nil {
		h.logger.WarnContext(ctx, "delete attendances failed", "date", date, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"deleted": deleted})
}
