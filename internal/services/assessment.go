package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	asmt "github.com/yungbote/team-alchemy-backend/internal/assessment"
	dbpkg "github.com/yungbote/team-alchemy-backend/internal/data/db"
	"github.com/yungbote/team-alchemy-backend/internal/data/repos"
	types "github.com/yungbote/team-alchemy-backend/internal/domain"
	pkgerrors "github.com/yungbote/team-alchemy-backend/internal/pkg/errors"
	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
)

type QuestionInput struct {
	Text         string
	QuestionType string
	Options      []string
	Category     string
	Weight       *float64
}

type CreateAssessmentInput struct {
	Title       string
	Description *string
	Questions   []QuestionInput
}

type ResponseInput struct {
	QuestionID uint
	Answer     any
	Confidence *float64
}

type CalculationResult struct {
	AssessmentID uint       `json:"assessment_id"`
	Status       string     `json:"status"`
	Results      asmt.Score `json:"results"`
}

type AssessmentService interface {
	Create(ctx context.Context, in CreateAssessmentInput) (*types.Assessment, error)
	Get(ctx context.Context, assessmentID uint) (*types.Assessment, error)
	SubmitResponse(ctx context.Context, assessmentID uint, in ResponseInput) (*types.Response, error)
	Calculate(ctx context.Context, assessmentID uint) (*CalculationResult, error)
	List(ctx context.Context, skip, limit int) ([]*types.Assessment, error)
}

type assessmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	assessmentRepo repos.AssessmentRepo
	questionRepo   repos.QuestionRepo
	responseRepo   repos.ResponseRepo
	validator      *asmt.Validator
	calculator     *asmt.Calculator
}

func NewAssessmentService(
	db *gorm.DB,
	log *logger.Logger,
	assessmentRepo repos.AssessmentRepo,
	questionRepo repos.QuestionRepo,
	responseRepo repos.ResponseRepo,
) AssessmentService {
	serviceLog := log.With("service", "AssessmentService")
	return &assessmentService{
		db:             db,
		log:            serviceLog,
		assessmentRepo: assessmentRepo,
		questionRepo:   questionRepo,
		responseRepo:   responseRepo,
		validator:      asmt.NewValidator(),
		calculator:     asmt.NewCalculator(),
	}
}

// Create validates the draft before anything is written; a validation
// failure is returned as *assessment.FailedError.
func (s *assessmentService) Create(ctx context.Context, in CreateAssessmentInput) (*types.Assessment, error) {
	draft := asmt.Draft{Title: in.Title, Status: asmt.StatusDraft}
	rows := make([]*types.Question, 0, len(in.Questions))
	for _, q := range in.Questions {
		weight := 1.0
		if q.Weight != nil {
			weight = *q.Weight
		}
		draft.Questions = append(draft.Questions, asmt.Question{
			Text:     q.Text,
			Type:     asmt.QuestionType(q.QuestionType),
			Options:  q.Options,
			Category: q.Category,
			Weight:   weight,
		})
		options, err := json.Marshal(q.Options)
		if err != nil {
			return nil, fmt.Errorf("encode options: %w", err)
		}
		rows = append(rows, &types.Question{
			Text:         strings.TrimSpace(q.Text),
			QuestionType: q.QuestionType,
			Options:      datatypes.JSON(options),
			Category:     q.Category,
			Weight:       weight,
		})
	}

	res := s.validator.ValidateAssessment(draft)
	if err := res.Err(); err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		s.log.Warn("Assessment validation warning", "field", w.Field, "message", w.Message)
	}

	a := &types.Assessment{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Version:     "1.0.0",
		Status:      types.AssessmentStatusDraft,
		Questions:   rows,
		Responses:   []*types.Response{},
	}
	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.assessmentRepo.Create(ctx, tx, a)
		return err
	}); err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}
	s.log.Info("Assessment created", "assessment_id", a.ID, "questions", len(rows))
	return a, nil
}

func (s *assessmentService) Get(ctx context.Context, assessmentID uint) (*types.Assessment, error) {
	a, err := s.assessmentRepo.GetByID(ctx, nil, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("load assessment: %w", err)
	}
	if a == nil {
		return nil, pkgerrors.Newf(pkgerrors.ErrNotFound, "Assessment with id %d not found", assessmentID)
	}
	return a, nil
}

func (s *assessmentService) SubmitResponse(ctx context.Context, assessmentID uint, in ResponseInput) (*types.Response, error) {
	if errs := asmt.ValidateConfidence(in.Confidence); len(errs) > 0 {
		return nil, pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "%s", errs[0].Message)
	}

	var created *types.Response
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := s.assessmentRepo.GetByID(ctx, tx, assessmentID)
		if err != nil {
			return fmt.Errorf("load assessment: %w", err)
		}
		if a == nil {
			return pkgerrors.Newf(pkgerrors.ErrNotFound, "Assessment with id %d not found", assessmentID)
		}
		q, err := s.questionRepo.GetInAssessment(ctx, tx, assessmentID, in.QuestionID)
		if err != nil {
			return fmt.Errorf("load question: %w", err)
		}
		if q == nil {
			return pkgerrors.Newf(pkgerrors.ErrNotFound, "Question %d not found in assessment %d", in.QuestionID, assessmentID)
		}
		if errs := asmt.ValidateAnswer(in.Answer, toEngineQuestion(q)); len(errs) > 0 {
			return pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "%s", errs[0].Message)
		}
		exists, err := s.responseRepo.Exists(ctx, tx, assessmentID, in.QuestionID)
		if err != nil {
			return fmt.Errorf("check response: %w", err)
		}
		if exists {
			return pkgerrors.Newf(pkgerrors.ErrConflict, "Response for question %d already exists", in.QuestionID)
		}

		answer, err := json.Marshal(in.Answer)
		if err != nil {
			return pkgerrors.Newf(pkgerrors.ErrInvalidArgument, "Answer is not valid JSON")
		}
		created, err = s.responseRepo.Create(ctx, tx, &types.Response{
			AssessmentID: assessmentID,
			QuestionID:   in.QuestionID,
			Answer:       types.Answer(answer),
			Confidence:   in.Confidence,
		})
		if err != nil {
			if dbpkg.IsUniqueViolation(err) {
				return pkgerrors.Newf(pkgerrors.ErrConflict, "Response for question %d already exists", in.QuestionID)
			}
			return fmt.Errorf("create response: %w", err)
		}
		if a.Status == types.AssessmentStatusDraft {
			return s.assessmentRepo.UpdateStatus(ctx, tx, assessmentID, types.AssessmentStatusInProgress)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Calculate scores the stored responses and marks the assessment analyzed.
func (s *assessmentService) Calculate(ctx context.Context, assessmentID uint) (*CalculationResult, error) {
	a, err := s.Get(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	questions := make([]asmt.Question, 0, len(a.Questions))
	for _, q := range a.Questions {
		questions = append(questions, toEngineQuestion(q))
	}
	responses := make([]asmt.Response, 0, len(a.Responses))
	for _, r := range a.Responses {
		var answer any
		if len(r.Answer) > 0 {
			if err := json.Unmarshal(r.Answer, &answer); err != nil {
				s.log.Warn("Skipping undecodable answer", "response_id", r.ID, "error", err)
				continue
			}
		}
		responses = append(responses, asmt.Response{QuestionID: r.QuestionID, Answer: answer, Confidence: r.Confidence})
	}

	score := s.calculator.Calculate(responses, questions)
	raw, err := json.Marshal(score)
	if err != nil {
		return nil, fmt.Errorf("encode results: %w", err)
	}
	if err := s.assessmentRepo.SaveResults(ctx, nil, assessmentID, types.AssessmentStatusAnalyzed, datatypes.JSON(raw)); err != nil {
		return nil, fmt.Errorf("save results: %w", err)
	}
	s.log.Info("Assessment calculated", "assessment_id", assessmentID, "total_score", score.TotalScore)
	return &CalculationResult{
		AssessmentID: assessmentID,
		Status:       string(asmt.StatusCompleted),
		Results:      score,
	}, nil
}

func (s *assessmentService) List(ctx context.Context, skip, limit int) ([]*types.Assessment, error) {
	return s.assessmentRepo.List(ctx, nil, skip, limit)
}

func toEngineQuestion(q *types.Question) asmt.Question {
	var options []string
	if len(q.Options) > 0 {
		_ = json.Unmarshal(q.Options, &options)
	}
	return asmt.Question{
		ID:       q.ID,
		Text:     q.Text,
		Type:     asmt.QuestionType(q.QuestionType),
		Options:  options,
		Category: q.Category,
		Weight:   q.Weight,
	}
}
