package httpapi

import "net/http"

func (h *Handler) ListPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerStats")
	defer span.End()

	summaries, err := h.statsService.PlayerSummaries(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list player stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, playerSummaryToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.statsService.PlayerSummary(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get player stats failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerSummaryToDTO(item))
}

func (h *Handler) GetMatchReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchReport")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.statsService.MatchReport(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get match report failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchReportToDTO(report))
}

func (h *Handler) GetTeamRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRecord")
	defer span.End()

	record, err := h.statsService.TeamRecord(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get team record failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamRecordDTO{
		Played:       record.Played,
		Wins:         record.Wins,
		Draws:        record.Draws,
		Losses:       record.Losses,
		GoalsFor:     record.GoalsFor,
		GoalsAgainst: record.GoalsAgainst,
	})
}

func (h *Handler) ListAttendanceStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAttendanceStats")
	defer span.End()

	summaries, err := h.statsService.AttendanceSummaries(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list attendance stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]attendanceSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, attendanceSummaryDTO{
			PlayerID:     s.PlayerID,
			Name:         s.Name,
			Sessions:     s.Sessions,
			Present:      s.Present,
			Absent:       s.Absent,
			Injured:      s.Injured,
			PresenceRate: s.PresenceRate,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
