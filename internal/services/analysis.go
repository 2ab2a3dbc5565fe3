package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/team-alchemy-backend/internal/data/repos"
	types "github.com/yungbote/team-alchemy-backend/internal/domain"
	"github.com/yungbote/team-alchemy-backend/internal/intervention"
	pkgerrors "github.com/yungbote/team-alchemy-backend/internal/pkg/errors"
	"github.com/yungbote/team-alchemy-backend/internal/pkg/stats"
	"github.com/yungbote/team-alchemy-backend/internal/platform/cache"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
	"github.com/yungbote/team-alchemy-backend/internal/psychology/freudian"
	"github.com/yungbote/team-alchemy-backend/internal/psychology/jungian"
	"github.com/yungbote/team-alchemy-backend/internal/psychology/mbti"
	"github.com/yungbote/team-alchemy-backend/internal/scoring"
	"github.com/yungbote/team-alchemy-backend/internal/teamdynamics"
)

type MemberInput struct {
	UserID          uint           `json:"user_id"`
	MBTIType        string         `json:"mbti_type"`
	Behaviors       []string       `json:"behaviors"`
	Archetype       string         `json:"archetype"`
	StressResponses map[string]any `json:"stress_responses,omitempty"`
}

type TeamAnalysisRequest struct {
	TeamID             uint          `json:"team_id"`
	Members            []MemberInput `json:"members"`
	MaxRecommendations *int          `json:"max_recommendations,omitempty"`
}

type MemberAnalysis struct {
	UserID             uint                      `json:"user_id"`
	MBTIType           mbti.Type                 `json:"mbti_type"`
	Archetype          string                    `json:"archetype"`
	JungianProfile     *mbti.Details             `json:"jungian_profile"`
	DominantArchetypes []jungian.Pattern         `json:"dominant_archetypes"`
	DefenseMechanisms  []freudian.DefenseProfile `json:"defense_mechanisms"`
	Recommendations    []string                  `json:"recommendations"`
}

type TeamAnalysisResult struct {
	AnalysisID         *uint                      `json:"analysis_id,omitempty"`
	TeamID             uint                       `json:"team_id"`
	TeamSize           int                        `json:"team_size"`
	MemberAnalyses     []MemberAnalysis           `json:"member_analyses"`
	TeamDynamics       teamdynamics.Dynamics      `json:"team_dynamics"`
	CollectivePatterns jungian.CollectivePatterns `json:"collective_patterns"`
	TeamScore          scoring.TeamScore          `json:"team_score"`
	Defensiveness      float64                    `json:"defensiveness_level"`
	Recommendations    []string                   `json:"recommendations"`
}

type IndividualAnalysis struct {
	UserID            uint                      `json:"user_id"`
	MBTIType          mbti.Type                 `json:"mbti_type"`
	JungianProfile    *mbti.Details             `json:"jungian_profile"`
	ShadowFunctions   []mbti.Function           `json:"shadow_functions"`
	ActiveArchetypes  []jungian.Pattern         `json:"active_archetypes"`
	Individuation     jungian.Individuation     `json:"individuation"`
	DefenseMechanisms []freudian.DefenseProfile `json:"defense_mechanisms"`
	ConflictAnalysis  freudian.ConflictAnalysis `json:"conflict_analysis"`
}

type RecommendationReport struct {
	TeamID              uint                          `json:"team_id"`
	AnalysisID          uint                          `json:"analysis_id"`
	TeamRecommendations []string                      `json:"team_recommendations"`
	Recommendations     []intervention.Recommendation `json:"recommendations"`
	QuickWins           []intervention.Recommendation `json:"quick_wins"`
	ActionPlan          intervention.ActionPlan       `json:"action_plan"`
}

type AnalysisConfig struct {
	MaxRecommendations int
	CacheTTL           time.Duration
	MaxConcurrency     int
}

type AnalysisService interface {
	AnalyzeTeam(ctx context.Context, teamID uint, req TeamAnalysisRequest) (*TeamAnalysisResult, error)
	AnalyzeIndividual(ctx context.Context, userID uint, mbtiType string, behaviors []string) (*IndividualAnalysis, error)
	Compatibility(ctx context.Context, userIDs []uint, mbtiTypes []string) (*teamdynamics.Matrix, error)
	AnalyzeStoredTeam(ctx context.Context, teamID uint) (*TeamAnalysisResult, error)
	LatestAnalysis(ctx context.Context, teamID uint) (*types.TeamAnalysis, error)
	Recommend(ctx context.Context, teamID uint, max int) (*RecommendationReport, error)
}

type analysisService struct {
	db           *gorm.DB
	log          *logger.Logger
	teamRepo     repos.TeamRepo
	analysisRepo repos.TeamAnalysisRepo
	cache        cache.Cache
	scorer       *scoring.Scorer
	cfg          AnalysisConfig
	now          func() time.Time
}

func NewAnalysisService(
	db *gorm.DB,
	log *logger.Logger,
	teamRepo repos.TeamRepo,
	analysisRepo repos.TeamAnalysisRepo,
	c cache.Cache,
	cfg AnalysisConfig,
) AnalysisService {
	serviceLog := log.With("service", "AnalysisService")
	if cfg.MaxRecommendations < 1 {
		cfg.MaxRecommendations = 10
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	if cfg.MaxConcurrency < 1 {
		cfg.MaxConcurrency = 8
	}
	if c == nil {
		c = cache.Noop()
	}
	return &analysisService{
		db:           db,
		log:          serviceLog,
		teamRepo:     teamRepo,
		analysisRepo: analysisRepo,
		cache:        c,
		scorer:       scoring.NewScorer(nil),
		cfg:          cfg,
		now:          time.Now,
	}
}

func parseMBTI(raw string) (mbti.Type, error) {
	t, ok := mbti.ParseType(raw)
	if !ok {
		return "", pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "Invalid MBTI type: %s", raw)
	}
	return t, nil
}

func latestKey(teamID uint) string {
	return fmt.Sprintf("analysis:team:%d:latest", teamID)
}

func (as *analysisService) AnalyzeTeam(ctx context.Context, teamID uint, req TeamAnalysisRequest) (*TeamAnalysisResult, error) {
	if req.TeamID != teamID {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "Team ID mismatch: path has %d, body has %d", teamID, req.TeamID)
	}
	if len(req.Members) == 0 {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "Team must have at least one member")
	}
	max := as.cfg.MaxRecommendations
	if req.MaxRecommendations != nil {
		max = *req.MaxRecommendations
	}
	if max < 1 {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "max_recommendations must be at least 1")
	}

	mbtiTypes := make([]mbti.Type, len(req.Members))
	for i, m := range req.Members {
		t, err := parseMBTI(m.MBTIType)
		if err != nil {
			return nil, err
		}
		mbtiTypes[i] = t
	}

	members := make([]MemberAnalysis, len(req.Members))
	patterns := make([][]jungian.Pattern, len(req.Members))
	defensiveness := make([]float64, len(req.Members))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(as.cfg.MaxConcurrency)
	for i := range req.Members {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ma, active, conflict := analyzeMember(req.Members[i], mbtiTypes[i])
			members[i] = ma
			patterns[i] = active
			defensiveness[i] = conflict.DefensivenessLevel
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dynamics := teamdynamics.Analyze(mbtiTypes)
	result := &TeamAnalysisResult{
		TeamID:             teamID,
		TeamSize:           len(req.Members),
		MemberAnalyses:     members,
		TeamDynamics:       dynamics,
		CollectivePatterns: jungian.AssessCollectivePatterns(patterns),
		TeamScore:          as.scorer.TeamScore(teamdynamics.MemberCompatibility(mbtiTypes), dynamics.DiversityScore*100),
		Defensiveness:      stats.Mean(defensiveness),
		Recommendations:    teamdynamics.Recommend(mbtiTypes, max),
	}

	if err := as.persist(ctx, result); err != nil {
		return nil, err
	}
	as.log.Info("Team analyzed", "team_id", teamID, "team_size", result.TeamSize, "diversity", dynamics.DiversityScore)
	return result, nil
}

func analyzeMember(m MemberInput, t mbti.Type) (MemberAnalysis, []jungian.Pattern, freudian.ConflictAnalysis) {
	details, _ := mbti.Describe(t)
	active := jungian.IdentifyActiveArchetypes(m.Behaviors, nil)
	defenses := freudian.IdentifyDefenses(m.Behaviors, m.StressResponses)
	conflict := freudian.AnalyzeConflictPatterns(defenses)

	archetype := strings.ToLower(strings.TrimSpace(m.Archetype))
	if archetype == "" && details != nil && len(details.ArchetypeAffinity) > 0 {
		archetype = strings.ToLower(details.ArchetypeAffinity[0])
	}
	return MemberAnalysis{
		UserID:             m.UserID,
		MBTIType:           t,
		Archetype:          archetype,
		JungianProfile:     details,
		DominantArchetypes: active,
		DefenseMechanisms:  defenses,
		Recommendations:    conflict.Recommendations,
	}, active, conflict
}

// persist stores a snapshot only for teams that exist in the database.
func (as *analysisService) persist(ctx context.Context, result *TeamAnalysisResult) error {
	team, err := as.teamRepo.GetByID(ctx, nil, result.TeamID)
	if err != nil {
		return fmt.Errorf("load team: %w", err)
	}
	if team == nil {
		as.log.Debug("Team not stored, skipping analysis snapshot", "team_id", result.TeamID)
		return nil
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	score := result.TeamScore.TeamScore
	row := &types.TeamAnalysis{
		TeamID:       result.TeamID,
		AnalysisType: types.AnalysisTypeTeam,
		Results:      datatypes.JSON(raw),
		Score:        &score,
		CreatedAt:    as.now().UTC(),
	}
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := as.analysisRepo.Create(ctx, tx, row)
		return err
	}); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	id := row.ID
	result.AnalysisID = &id

	if err := as.cache.Set(ctx, latestKey(result.TeamID), row, as.cfg.CacheTTL); err != nil {
		as.log.Warn("Failed to cache latest analysis", "team_id", result.TeamID, "error", err)
	}
	return nil
}

func (as *analysisService) AnalyzeIndividual(ctx context.Context, userID uint, mbtiType string, behaviors []string) (*IndividualAnalysis, error) {
	if strings.TrimSpace(mbtiType) == "" {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "mbti_type query parameter is required")
	}
	t, err := parseMBTI(mbtiType)
	if err != nil {
		return nil, err
	}
	details, _ := mbti.Describe(t)
	active := jungian.IdentifyActiveArchetypes(behaviors, nil)
	defenses := freudian.IdentifyDefenses(behaviors, nil)
	return &IndividualAnalysis{
		UserID:            userID,
		MBTIType:          t,
		JungianProfile:    details,
		ShadowFunctions:   mbti.ShadowFunctions(details.JungianProfile),
		ActiveArchetypes:  active,
		Individuation:     jungian.AnalyzeIndividuation(active),
		DefenseMechanisms: defenses,
		ConflictAnalysis:  freudian.AnalyzeConflictPatterns(defenses),
	}, nil
}

func (as *analysisService) Compatibility(ctx context.Context, userIDs []uint, mbtiTypes []string) (*teamdynamics.Matrix, error) {
	if len(userIDs) != len(mbtiTypes) {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "user_ids and mbti_types must have the same length")
	}
	if len(userIDs) < 2 {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "At least 2 users are required for compatibility analysis")
	}
	parsed := make([]mbti.Type, len(mbtiTypes))
	for i, raw := range mbtiTypes {
		t, err := parseMBTI(raw)
		if err != nil {
			return nil, err
		}
		parsed[i] = t
	}
	m, err := teamdynamics.CompatibilityMatrix(userIDs, parsed)
	if err != nil {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "%s", err.Error())
	}
	return &m, nil
}

func (as *analysisService) AnalyzeStoredTeam(ctx context.Context, teamID uint) (*TeamAnalysisResult, error) {
	team, err := as.teamRepo.GetByID(ctx, nil, teamID)
	if err != nil {
		return nil, fmt.Errorf("load team: %w", err)
	}
	if team == nil {
		return nil, pkgerrors.Newf(pkgerrors.ErrNotFound, "Team with id %d not found", teamID)
	}
	req := TeamAnalysisRequest{TeamID: teamID}
	for _, u := range team.Members {
		if u.Profile == nil || u.Profile.JungianType == nil || *u.Profile.JungianType == "" {
			continue
		}
		m := MemberInput{UserID: u.ID, MBTIType: *u.Profile.JungianType}
		if u.Profile.Archetype != nil {
			m.Archetype = *u.Profile.Archetype
		}
		req.Members = append(req.Members, m)
	}
	if len(req.Members) == 0 {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "Team %d has no members with an MBTI profile", teamID)
	}
	return as.AnalyzeTeam(ctx, teamID, req)
}

func (as *analysisService) LatestAnalysis(ctx context.Context, teamID uint) (*types.TeamAnalysis, error) {
	var cached types.TeamAnalysis
	hit, err := as.cache.Get(ctx, latestKey(teamID), &cached)
	if err != nil {
		as.log.Warn("Latest analysis cache read failed", "team_id", teamID, "error", err)
	}
	if hit {
		return &cached, nil
	}

	row, err := as.analysisRepo.LatestByTeamID(ctx, nil, teamID, types.AnalysisTypeTeam)
	if err != nil {
		return nil, fmt.Errorf("load latest analysis: %w", err)
	}
	if row == nil {
		return nil, pkgerrors.Newf(pkgerrors.ErrNotFound, "No analysis found for team %d", teamID)
	}
	if err := as.cache.Set(ctx, latestKey(teamID), row, as.cfg.CacheTTL); err != nil {
		as.log.Warn("Failed to cache latest analysis", "team_id", teamID, "error", err)
	}
	return row, nil
}

func (as *analysisService) Recommend(ctx context.Context, teamID uint, max int) (*RecommendationReport, error) {
	if max < 1 {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "max must be at least 1")
	}
	row, err := as.LatestAnalysis(ctx, teamID)
	if err != nil {
		return nil, err
	}
	var stored TeamAnalysisResult
	if err := json.Unmarshal(row.Results, &stored); err != nil {
		return nil, fmt.Errorf("decode analysis %d: %w", row.ID, err)
	}

	recs := intervention.Generate(teamMetrics(stored), max)
	teamRecs := stored.Recommendations
	if len(teamRecs) > max {
		teamRecs = teamRecs[:max]
	}
	return &RecommendationReport{
		TeamID:              teamID,
		AnalysisID:          row.ID,
		TeamRecommendations: teamRecs,
		Recommendations:     recs,
		QuickWins:           intervention.QuickWins(recs),
		ActionPlan:          intervention.GeneratePlan("Improve team dynamics", recs, as.now().UTC()),
	}, nil
}

// teamMetrics maps a stored analysis onto the 0-100 metrics the intervention
// engine reads. Metrics the analysis cannot speak to are left out.
func teamMetrics(r TeamAnalysisResult) map[string]float64 {
	m := map[string]float64{
		intervention.DiversityScore:  r.TeamDynamics.DiversityScore * 100,
		intervention.ConflictScore:   r.Defensiveness * 100,
		intervention.ProcessScore:    r.TeamScore.TeamScore,
		intervention.EngagementScore: r.TeamScore.Cohesion,
	}
	if r.TeamSize > 1 {
		m[intervention.CommunicationScore] = r.TeamDynamics.AverageCompatibility
	}
	return m
}
