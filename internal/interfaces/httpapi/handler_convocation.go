package httpapi

import "net/http"

func (h *Handler) ListConvocations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListConvocations")
	defer span.End()

	convocations, err := h.convocationService.ListConvocations(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list convocations failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]convocationDTO, 0, len(convocations))
	for _, c := range convocations {
		items = append(items, convocationToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetConvocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetConvocation")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.convocationService.GetConvocation(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get convocation failed", "convocation_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, convocationToDTO(item))
}

func (h *Handler) CreateConvocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateConvocation")
	defer span.End()

	var req convocationRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.convocationService.CreateConvocation(ctx, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "create convocation failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, convocationToDTO(item))
}

func (h *Handler) UpdateConvocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateConvocation")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req convocationRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.convocationService.UpdateConvocation(ctx, id, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "update convocation failed", "convocation_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, convocationToDTO(item))
}

func (h *Handler) DeleteConvocation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteConvocation")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.convocationService.DeleteConvocation(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete convocation failed", "convocation_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"deletedId": id})
}

func (h *Handler) BuildConvocationFormation(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BuildConvocationFormation")
	defer span.End()

	id, err := pathID(r, "id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req buildFormationRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.convocationService.BuildFormation(ctx, id, req.StarterIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "build convocation formation failed", "convocation_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"match":      matchToDTO(result.Match),
		"formations": formationsToDTO(result.Formation),
	})
}
