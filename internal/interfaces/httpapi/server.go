package httpapi

import (
	"net/http"

	"github.com/riskibarqy/matchday/internal/platform/id"
	"github.com/riskibarqy/matchday/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	swaggerEnabled bool,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, swaggerEnabled)
	registerRosterRoutes(mux, handler)
	registerMatchRoutes(mux, handler)
	registerLiveRoutes(mux, handler)
	registerFormationRoutes(mux, handler)
	registerStatsRoutes(mux, handler)
	registerAdminRoutes(mux, handler)

	return RequestTracing(
		RequestID(id.NewUUIDGenerator(),
			RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))),
		),
	)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
