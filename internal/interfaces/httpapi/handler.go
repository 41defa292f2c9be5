package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/matchday/internal/platform/livefeed"
	"github.com/riskibarqy/matchday/internal/platform/logging"
	"github.com/riskibarqy/matchday/internal/usecase"
)

// Services groups the use cases served over HTTP.
type Services struct {
	Players      *usecase.PlayerService
	Matches      *usecase.MatchService
	Formations   *usecase.FormationService
	Sessions     *usecase.SessionService
	Convocations *usecase.ConvocationService
	Attendances  *usecase.AttendanceService
	Stats        *usecase.StatsService
	Admin        *usecase.AdminService
}

type Handler struct {
	playerService      *usecase.PlayerService
	matchService       *usecase.MatchService
	formationService   *usecase.FormationService
	sessionService     *usecase.SessionService
	convocationService *usecase.ConvocationService
	attendanceService  *usecase.AttendanceService
	statsService       *usecase.StatsService
	adminService       *usecase.AdminService
	liveFeed           *livefeed.Broker
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(services Services, liveFeed *livefeed.Broker, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playerService:      services.Players,
		matchService:       services.Matches,
		formationService:   services.Formations,
		sessionService:     services.Sessions,
		convocationService: services.Convocations,
		attendanceService:  services.Attendances,
		statsService:       services.Stats,
		adminService:       services.Admin,
		liveFeed:           liveFeed,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a JSON body into dst and validates it.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}
