package httpapi

import (
	"time"

	"github.com/riskibarqy/matchday/internal/domain/attendance"
	"github.com/riskibarqy/matchday/internal/domain/convocation"
	"github.com/riskibarqy/matchday/internal/domain/event"
	"github.com/riskibarqy/matchday/internal/domain/formation"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/stats"
	"github.com/riskibarqy/matchday/internal/usecase"
)

type createPlayerRequest struct {
	Name              string `json:"name" validate:"required,max=100"`
	ShirtNumber       int    `json:"shirtNumber" validate:"gte=0,lte=99"`
	Position          string `json:"position" validate:"required"`
	ConvocationStatus string `json:"convocationStatus"`
	IsConvocato       bool   `json:"isConvocato"`
	SuspensionDays    int    `json:"suspensionDays" validate:"gte=0"`
}

type updatePlayerRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=1,max=100"`
	ShirtNumber       *int    `json:"shirtNumber" validate:"omitempty,gte=0,lte=99"`
	Position          *string `json:"position"`
	ConvocationStatus *string `json:"convocationStatus"`
	IsConvocato       *bool   `json:"isConvocato"`
	SuspensionDays    *int    `json:"suspensionDays" validate:"omitempty,gte=0"`
}

func (r updatePlayerRequest) toPatch() player.Patch {
	patch := player.Patch{
		Name:           r.Name,
		ShirtNumber:    r.ShirtNumber,
		IsConvocato:    r.IsConvocato,
		SuspensionDays: r.SuspensionDays,
	}
	if r.Position != nil {
		v := player.Position(*r.Position)
		patch.Position = &v
	}
	if r.ConvocationStatus != nil {
		v := player.ConvocationStatus(*r.ConvocationStatus)
		patch.ConvocationStatus = &v
	}
	return patch
}

type playerDTO struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	ShirtNumber       int       `json:"shirtNumber"`
	Position          string    `json:"position"`
	ConvocationStatus string    `json:"convocationStatus"`
	IsConvocato       bool      `json:"isConvocato"`
	SuspensionDays    int       `json:"suspensionDays"`
	YellowCards       int       `json:"yellowCards"`
	RedCards          int       `json:"redCards"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:                p.ID,
		Name:              p.Name,
		ShirtNumber:       p.ShirtNumber,
		Position:          string(p.Position),
		ConvocationStatus: string(p.ConvocationStatus),
		IsConvocato:       p.IsConvocato,
		SuspensionDays:    p.SuspensionDays,
		YellowCards:       p.YellowCards,
		RedCards:          p.RedCards,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

type createMatchRequest struct {
	Opponent        string     `json:"opponent" validate:"required,max=100"`
	MatchDate       string     `json:"matchDate" validate:"required,datetime=2006-01-02"`
	IsHome          bool       `json:"isHome"`
	GoalsFor        *int       `json:"goalsFor" validate:"omitempty,gte=0"`
	GoalsAgainst    *int       `json:"goalsAgainst" validate:"omitempty,gte=0"`
	StartTime       *time.Time `json:"startTime"`
	ExtraTimeFirst  int        `json:"extraTimeFirst" validate:"gte=0,lte=15"`
	ExtraTimeSecond int        `json:"extraTimeSecond" validate:"gte=0,lte=15"`
	FormationLabel  string     `json:"formation" validate:"max=20"`
}

type updateMatchRequest struct {
	Opponent        *string    `json:"opponent" validate:"omitempty,min=1,max=100"`
	MatchDate       *string    `json:"matchDate" validate:"omitempty,datetime=2006-01-02"`
	IsHome          *bool      `json:"isHome"`
	GoalsFor        *int       `json:"goalsFor" validate:"omitempty,gte=0"`
	GoalsAgainst    *int       `json:"goalsAgainst" validate:"omitempty,gte=0"`
	StartTime       *time.Time `json:"startTime"`
	ExtraTimeFirst  *int       `json:"extraTimeFirst" validate:"omitempty,gte=0,lte=15"`
	ExtraTimeSecond *int       `json:"extraTimeSecond" validate:"omitempty,gte=0,lte=15"`
	FormationLabel  *string    `json:"formation" validate:"omitempty,max=20"`
}

func (r updateMatchRequest) toPatch() match.Patch {
	return match.Patch{
		Opponent:        r.Opponent,
		MatchDate:       r.MatchDate,
		IsHome:          r.IsHome,
		GoalsFor:        r.GoalsFor,
		GoalsAgainst:    r.GoalsAgainst,
		StartTime:       r.StartTime,
		ExtraTimeFirst:  r.ExtraTimeFirst,
		ExtraTimeSecond: r.ExtraTimeSecond,
		FormationLabel:  r.FormationLabel,
	}
}

type matchDTO struct {
	ID              int64      `json:"id"`
	Opponent        string     `json:"opponent"`
	MatchDate       string     `json:"matchDate"`
	IsHome          bool       `json:"isHome"`
	GoalsFor        *int       `json:"goalsFor"`
	GoalsAgainst    *int       `json:"goalsAgainst"`
	Result          string     `json:"result,omitempty"`
	StartTime       *time.Time `json:"startTime"`
	ExtraTimeFirst  int        `json:"extraTimeFirst"`
	ExtraTimeSecond int        `json:"extraTimeSecond"`
	FormationLabel  string     `json:"formation"`
	Phase           string     `json:"phase"`
	PhaseStartedAt  *time.Time `json:"phaseStartedAt"`
	ConvocationID   *int64     `json:"convocationId"`
	FinalizedAt     *time.Time `json:"finalizedAt"`
}

func matchToDTO(m match.Session) matchDTO {
	out := matchDTO{
		ID:              m.ID,
		Opponent:        m.Opponent,
		MatchDate:       m.MatchDate,
		IsHome:          m.IsHome,
		GoalsFor:        m.GoalsFor,
		GoalsAgainst:    m.GoalsAgainst,
		StartTime:       m.StartTime,
		ExtraTimeFirst:  m.ExtraTimeFirst,
		ExtraTimeSecond: m.ExtraTimeSecond,
		FormationLabel:  m.FormationLabel,
		Phase:           string(m.Phase),
		PhaseStartedAt:  m.PhaseStartedAt,
		ConvocationID:   m.ConvocationID,
		FinalizedAt:     m.FinalizedAt,
	}
	if result, ok := m.Result(); ok {
		out.Result = string(result)
	}
	return out
}

type eventRequest struct {
	Type           string `json:"eventType" validate:"required"`
	PlayerID       *int64 `json:"playerId" validate:"omitempty,gt=0"`
	SecondPlayerID *int64 `json:"secondPlayerId" validate:"omitempty,gt=0"`
	Minute         *int   `json:"minute" validate:"omitempty,gte=0,lte=120"`
	Half           *int   `json:"half" validate:"omitempty,oneof=1 2"`
	Description    string `json:"description" validate:"max=500"`
	Rating         *int   `json:"rating" validate:"omitempty,gte=1,lte=10"`
}

func (r eventRequest) toInput() usecase.EventInput {
	return usecase.EventInput{
		Type:           r.Type,
		PlayerID:       r.PlayerID,
		SecondPlayerID: r.SecondPlayerID,
		Minute:         r.Minute,
		Half:           r.Half,
		Description:    r.Description,
		Rating:         r.Rating,
	}
}

type eventDTO struct {
	ID             int64     `json:"id"`
	MatchID        int64     `json:"matchId"`
	PlayerID       *int64    `json:"playerId"`
	SecondPlayerID *int64    `json:"secondPlayerId"`
	Type           string    `json:"eventType"`
	Minute         int       `json:"minute"`
	Half           int       `json:"half"`
	Description    string    `json:"description"`
	Rating         *int      `json:"rating"`
	CreatedAt      time.Time `json:"createdAt"`
}

func eventToDTO(e event.Event) eventDTO {
	return eventDTO{
		ID:             e.ID,
		MatchID:        e.MatchID,
		PlayerID:       e.PlayerID,
		SecondPlayerID: e.SecondPlayerID,
		Type:           string(e.Type),
		Minute:         e.Minute,
		Half:           e.Half,
		Description:    e.Description,
		Rating:         e.Rating,
		CreatedAt:      e.CreatedAt,
	}
}

func eventsToDTO(items []event.Event) []eventDTO {
	out := make([]eventDTO, 0, len(items))
	for _, item := range items {
		out = append(out, eventToDTO(item))
	}
	return out
}

type endMatchRequest struct {
	ClockMinute  *int `json:"clockMinute" validate:"omitempty,gte=0,lte=120"`
	GoalsFor     *int `json:"goalsFor" validate:"omitempty,gte=0"`
	GoalsAgainst *int `json:"goalsAgainst" validate:"omitempty,gte=0"`
}

type timelineRequest struct {
	Events          []eventRequest `json:"events" validate:"dive"`
	GoalsFor        *int           `json:"goalsFor" validate:"omitempty,gte=0"`
	GoalsAgainst    *int           `json:"goalsAgainst" validate:"omitempty,gte=0"`
	ExtraTimeFirst  *int           `json:"extraTimeFirst" validate:"omitempty,gte=0,lte=15"`
	ExtraTimeSecond *int           `json:"extraTimeSecond" validate:"omitempty,gte=0,lte=15"`
}

type liveStateDTO struct {
	Match             matchDTO   `json:"match"`
	Phase             string     `json:"phase"`
	Half              int        `json:"half"`
	ClockMinute       int        `json:"clockMinute"`
	GoalsFor          int        `json:"goalsFor"`
	GoalsAgainst      int        `json:"goalsAgainst"`
	OnPitch           []int64    `json:"onPitch"`
	Available         []int64    `json:"available"`
	SubstitutionsUsed int        `json:"substitutionsUsed"`
	SubstitutionsLeft int        `json:"substitutionsLeft"`
	Events            []eventDTO `json:"events"`
}

func liveStateToDTO(s usecase.LiveState) liveStateDTO {
	return liveStateDTO{
		Match:             matchToDTO(s.Match),
		Phase:             string(s.Phase),
		Half:              s.Half,
		ClockMinute:       s.ClockMinute,
		GoalsFor:          s.GoalsFor,
		GoalsAgainst:      s.GoalsAgainst,
		OnPitch:           s.OnPitch,
		Available:         s.Available,
		SubstitutionsUsed: s.SubstitutionsUsed,
		SubstitutionsLeft: s.SubstitutionsLeft,
		Events:            eventsToDTO(s.Events),
	}
}

type formationEntryRequest struct {
	PlayerID      int64  `json:"playerId" validate:"required,gt=0"`
	Status        string `json:"status" validate:"required"`
	MinutesPlayed *int   `json:"minutesPlayed" validate:"omitempty,gte=0"`
	MinuteEntered *int   `json:"minuteEntered" validate:"omitempty,gte=0"`
}

type saveFormationRequest struct {
	MatchID    int64                   `json:"matchId" validate:"required,gt=0"`
	Formations []formationEntryRequest `json:"formations" validate:"required,min=1,dive"`
}

type updateMinutesRequest struct {
	MinutesPlayed *int `json:"minutesPlayed" validate:"omitempty,gte=0"`
	MinuteEntered *int `json:"minuteEntered" validate:"omitempty,gte=0"`
}

type formationDTO struct {
	MatchID       int64  `json:"matchId"`
	PlayerID      int64  `json:"playerId"`
	Status        string `json:"status"`
	MinutesPlayed *int   `json:"minutesPlayed"`
	MinuteEntered *int   `json:"minuteEntered"`
}

func formationsToDTO(items []formation.Assignment) []formationDTO {
	out := make([]formationDTO, 0, len(items))
	for _, a := range items {
		out = append(out, formationDTO{
			MatchID:       a.MatchID,
			PlayerID:      a.PlayerID,
			Status:        string(a.Status),
			MinutesPlayed: a.MinutesPlayed,
			MinuteEntered: a.MinuteEntered,
		})
	}
	return out
}

type convocationRequest struct {
	Name        string  `json:"name" validate:"max=100"`
	MatchDate   string  `json:"matchDate" validate:"required,datetime=2006-01-02"`
	Opponent    string  `json:"opponent" validate:"required,max=100"`
	PlayerIDs   []int64 `json:"playerIds" validate:"required,min=1,dive,gt=0"`
	ArrivalTime string  `json:"arrivalTime" validate:"max=20"`
	KickoffTime string  `json:"kickoffTime" validate:"max=20"`
	Address     string  `json:"address" validate:"max=200"`
	Notes       string  `json:"notes" validate:"max=1000"`
}

func (r convocationRequest) toInput() usecase.ConvocationInput {
	return usecase.ConvocationInput{
		Name:        r.Name,
		MatchDate:   r.MatchDate,
		Opponent:    r.Opponent,
		PlayerIDs:   r.PlayerIDs,
		ArrivalTime: r.ArrivalTime,
		KickoffTime: r.KickoffTime,
		Address:     r.Address,
		Notes:       r.Notes,
	}
}

type buildFormationRequest struct {
	StarterIDs []int64 `json:"starterIds" validate:"required,dive,gt=0"`
}

type convocationDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	MatchDate   string    `json:"matchDate"`
	Opponent    string    `json:"opponent"`
	PlayerIDs   []int64   `json:"playerIds"`
	ArrivalTime string    `json:"arrivalTime"`
	KickoffTime string    `json:"kickoffTime"`
	Address     string    `json:"address"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func convocationToDTO(c convocation.Convocation) convocationDTO {
	ids := c.PlayerIDs
	if ids == nil {
		ids = []int64{}
	}
	return convocationDTO{
		ID:          c.ID,
		Name:        c.Name,
		MatchDate:   c.MatchDate,
		Opponent:    c.Opponent,
		PlayerIDs:   ids,
		ArrivalTime: c.ArrivalTime,
		KickoffTime: c.KickoffTime,
		Address:     c.Address,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type attendanceEntryRequest struct {
	PlayerID int64  `json:"playerId" validate:"required,gt=0"`
	Status   string `json:"status" validate:"required"`
}

type recordAttendanceRequest struct {
	Date        string                   `json:"date" validate:"required,datetime=2006-01-02"`
	Attendances []attendanceEntryRequest `json:"attendances" validate:"required,min=1,dive"`
}

type attendanceDTO struct {
	Date     string `json:"date"`
	PlayerID int64  `json:"playerId"`
	Status   string `json:"status"`
}

func attendancesToDTO(items []attendance.Attendance) []attendanceDTO {
	out := make([]attendanceDTO, 0, len(items))
	for _, a := range items {
		out = append(out, attendanceDTO{Date: a.Date, PlayerID: a.PlayerID, Status: string(a.Status)})
	}
	return out
}

type playerSummaryDTO struct {
	PlayerID        int64   `json:"playerId"`
	Name            string  `json:"name"`
	ShirtNumber     int     `json:"shirtNumber"`
	Position        string  `json:"position"`
	Convocations    int     `json:"convocations"`
	Starts          int     `json:"starts"`
	BenchSelections int     `json:"benchSelections"`
	Appearances     int     `json:"appearances"`
	Minutes         int     `json:"minutes"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	YellowCards     int     `json:"yellowCards"`
	RedCards        int     `json:"redCards"`
	Wins            int     `json:"wins"`
	Draws           int     `json:"draws"`
	Losses          int     `json:"losses"`
	GoalsConceded   int     `json:"goalsConceded"`
	RatingCount     int     `json:"ratingCount"`
	RatingAverage   float64 `json:"ratingAverage"`
	TrainingPresent int     `json:"trainingPresent"`
	TrainingAbsent  int     `json:"trainingAbsent"`
	TrainingInjured int     `json:"trainingInjured"`
}

func playerSummaryToDTO(s stats.PlayerSummary) playerSummaryDTO {
	return playerSummaryDTO{
		PlayerID:        s.PlayerID,
		Name:            s.Name,
		ShirtNumber:     s.ShirtNumber,
		Position:        string(s.Position),
		Convocations:    s.Convocations,
		Starts:          s.Starts,
		BenchSelections: s.BenchSelections,
		Appearances:     s.Appearances,
		Minutes:         s.Minutes,
		Goals:           s.Goals,
		Assists:         s.Assists,
		YellowCards:     s.YellowCards,
		RedCards:        s.RedCards,
		Wins:            s.Wins,
		Draws:           s.Draws,
		Losses:          s.Losses,
		GoalsConceded:   s.GoalsConceded,
		RatingCount:     s.RatingCount,
		RatingAverage:   s.RatingAverage,
		TrainingPresent: s.TrainingPresent,
		TrainingAbsent:  s.TrainingAbsent,
		TrainingInjured: s.TrainingInjured,
	}
}

type timelineLineDTO struct {
	EventID     int64  `json:"eventId"`
	Half        int    `json:"half"`
	Minute      int    `json:"minute"`
	PlayerID    *int64 `json:"playerId"`
	PlayerName  string `json:"playerName"`
	Description string `json:"description"`
}

type substitutionLineDTO struct {
	EventID int64  `json:"eventId"`
	Half    int    `json:"half"`
	Minute  int    `json:"minute"`
	OutID   int64  `json:"outPlayerId"`
	OutName string `json:"outPlayerName"`
	InID    int64  `json:"inPlayerId"`
	InName  string `json:"inPlayerName"`
}

type matchReportDTO struct {
	Match         matchDTO              `json:"match"`
	Result        string                `json:"result,omitempty"`
	Goals         []timelineLineDTO     `json:"goals"`
	GoalsConceded []timelineLineDTO     `json:"goalsConceded"`
	RedCards      []timelineLineDTO     `json:"redCards"`
	Substitutions []substitutionLineDTO `json:"substitutions"`
}

func timelineLinesToDTO(items []stats.TimelineLine) []timelineLineDTO {
	out := make([]timelineLineDTO, 0, len(items))
	for _, l := range items {
		out = append(out, timelineLineDTO{
			EventID:     l.EventID,
			Half:        l.Half,
			Minute:      l.Minute,
			PlayerID:    l.PlayerID,
			PlayerName:  l.PlayerName,
			Description: l.Description,
		})
	}
	return out
}

func matchReportToDTO(r stats.MatchReport) matchReportDTO {
	subs := make([]substitutionLineDTO, 0, len(r.Substitutions))
	for _, s := range r.Substitutions {
		subs = append(subs, substitutionLineDTO{
			EventID: s.EventID,
			Half:    s.Half,
			Minute:  s.Minute,
			OutID:   s.OutID,
			OutName: s.OutName,
			InID:    s.InID,
			InName:  s.InName,
		})
	}
	return matchReportDTO{
		Match:         matchToDTO(r.Match),
		Result:        string(r.Result),
		Goals:         timelineLinesToDTO(r.Goals),
		GoalsConceded: timelineLinesToDTO(r.GoalsConceded),
		RedCards:      timelineLinesToDTO(r.RedCards),
		Substitutions: subs,
	}
}

type teamRecordDTO struct {
	Played       int `json:"played"`
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	GoalsFor     int `json:"goalsFor"`
	GoalsAgainst int `json:"goalsAgainst"`
}

type attendanceSummaryDTO struct {
	PlayerID     int64   `json:"playerId"`
	Name         string  `json:"name"`
	Sessions     int     `json:"sessions"`
	Present      int     `json:"present"`
	Absent       int     `json:"absent"`
	Injured      int     `json:"injured"`
	PresenceRate float64 `json:"presenceRate"`
}
