// Package service provides business logic layer for developer module.
package service

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dmakerhq/dmaker/internal/config"
	"github.com/dmakerhq/dmaker/internal/developer/model"
	"github.com/dmakerhq/dmaker/internal/developer/repository"
)

// Service defines the interface for developer business logic operations.
type Service interface {
	// CreateDeveloper registers a new developer with status EMPLOYED.
	CreateDeveloper(ctx context.Context, req *model.CreateDeveloperRequest) (*model.CreateDeveloperResponse, error)

	// GetAllEmployedDevelopers lists summaries of all EMPLOYED developers.
	GetAllEmployedDevelopers(ctx context.Context) ([]model.DeveloperSummary, error)

	// GetDeveloperDetail returns the full detail view, retired developers included.
	GetDeveloperDetail(ctx context.Context, memberID string) (*model.DeveloperDetail, error)

	// EditDeveloper updates level, skill type and experience years of a developer.
	EditDeveloper(ctx context.Context, memberID string, req *model.EditDeveloperRequest) (*model.DeveloperDetail, error)

	// DeleteDeveloper retires a developer and writes an archival record.
	DeleteDeveloper(ctx context.Context, memberID string) (*model.DeveloperDetail, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	rules  config.DeveloperConfig
	logger *zap.SugaredLogger
}

// New creates a new developer service instance. The level thresholds in
// rules are read-only for the life of the service.
func New(repo repository.Repository, db *gorm.DB, rules config.DeveloperConfig, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		rules:  rules,
		logger: logger,
	}
}

// CreateDeveloper registers a new developer with status EMPLOYED.
// The duplicate check and the insert run in one transaction; the unique
// index on member_id backstops concurrent creates.
func (s *service) CreateDeveloper(
	ctx context.Context,
	req *model.CreateDeveloperRequest,
) (*model.CreateDeveloperResponse, error) {
	s.logger.Debugw("CreateDeveloper called", "member_id", req.MemberID)

	if err := s.validateLevel(req.DeveloperLevel, req.ExperienceYears); err != nil {
		s.logger.Debugw("CreateDeveloper validation failed",
			"member_id", req.MemberID,
			"developer_level", req.DeveloperLevel,
			"experience_years", req.ExperienceYears,
		)
		return nil, err
	}

	var created *model.Developer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		exists, txErr := txRepo.ExistsByMemberID(ctx, req.MemberID)
		if txErr != nil {
			return txErr
		}
		if exists {
			return model.ErrDuplicateMemberID
		}

		created, txErr = txRepo.Create(ctx, &model.Developer{
			MemberID:           req.MemberID,
			Name:               req.Name,
			Age:                req.Age,
			DeveloperLevel:     req.DeveloperLevel,
			DeveloperSkillType: req.DeveloperSkillType,
			ExperienceYears:    req.ExperienceYears,
			StatusCode:         model.StatusEmployed,
		})
		return txErr
	})

	if err != nil {
		return nil, err
	}

	s.logger.Infow("CreateDeveloper completed", "member_id", created.MemberID)
	resp := model.NewCreateResponse(created)
	return &resp, nil
}

// GetAllEmployedDevelopers lists summaries of all EMPLOYED developers.
func (s *service) GetAllEmployedDevelopers(ctx context.Context) ([]model.DeveloperSummary, error) {
	s.logger.Debugw("GetAllEmployedDevelopers called")

	developers, err := s.repo.ListByStatus(ctx, model.StatusEmployed)
	if err != nil {
		s.logger.Errorw("GetAllEmployedDevelopers failed", "error", err)
		return nil, err
	}

	summaries := make([]model.DeveloperSummary, 0, len(developers))
	for i := range developers {
		summaries = append(summaries, model.SummaryFromEntity(&developers[i]))
	}

	s.logger.Debugw("GetAllEmployedDevelopers completed", "count", len(summaries))
	return summaries, nil
}

// GetDeveloperDetail returns the full detail view, retired developers included.
func (s *service) GetDeveloperDetail(ctx context.Context, memberID string) (*model.DeveloperDetail, error) {
	s.logger.Debugw("GetDeveloperDetail called", "member_id", memberID)

	developer, err := s.repo.GetByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	detail := model.DetailFromEntity(developer)
	return &detail, nil
}

// EditDeveloper updates level, skill type and experience years.
// The rule is re-validated against the new values before any mutation;
// name, age, member id and status are never touched here.
func (s *service) EditDeveloper(
	ctx context.Context,
	memberID string,
	req *model.EditDeveloperRequest,
) (*model.DeveloperDetail, error) {
	s.logger.Debugw("EditDeveloper called", "member_id", memberID)

	if err := s.validateLevel(req.DeveloperLevel, req.ExperienceYears); err != nil {
		s.logger.Debugw("EditDeveloper validation failed",
			"member_id", memberID,
			"developer_level", req.DeveloperLevel,
			"experience_years", req.ExperienceYears,
		)
		return nil, err
	}

	var updated *model.Developer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		developer, txErr := txRepo.GetByMemberID(ctx, memberID)
		if txErr != nil {
			return txErr
		}

		developer.DeveloperLevel = req.DeveloperLevel
		developer.DeveloperSkillType = req.DeveloperSkillType
		developer.ExperienceYears = req.ExperienceYears

		updated, txErr = txRepo.Save(ctx, developer)
		return txErr
	})

	if err != nil {
		return nil, err
	}

	s.logger.Infow("EditDeveloper completed", "member_id", memberID)
	detail := model.DetailFromEntity(updated)
	return &detail, nil
}

// DeleteDeveloper retires a developer and writes an archival record.
// Both steps share one transaction so a failed archival insert rolls
// the status change back instead of leaving the record half retired.
func (s *service) DeleteDeveloper(ctx context.Context, memberID string) (*model.DeveloperDetail, error) {
	s.logger.Debugw("DeleteDeveloper called", "member_id", memberID)

	var retired *model.Developer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		developer, txErr := txRepo.GetByMemberID(ctx, memberID)
		if txErr != nil {
			return txErr
		}

		developer.StatusCode = model.StatusRetired
		retired, txErr = txRepo.Save(ctx, developer)
		if txErr != nil {
			return txErr
		}

		// Only member id and name are carried into the archive.
		return txRepo.CreateRetired(ctx, &model.RetiredDeveloper{
			MemberID: developer.MemberID,
			Name:     developer.Name,
		})
	})

	if err != nil {
		return nil, err
	}

	s.logger.Infow("DeleteDeveloper completed", "member_id", memberID)
	detail := model.DetailFromEntity(retired)
	return &detail, nil
}

// validateLevel checks the declared level against the experience years.
// The JUNGNIOR branch accepts the inclusive band between the junior
// ceiling and the senior floor and nothing outside it; levels beyond
// the three known tiers pass through unchecked.
func (s *service) validateLevel(level model.Level, experienceYears int) error {
	if level == model.LevelSenior && experienceYears < s.rules.MinSeniorExperienceYears {
		return model.ErrLevelExperienceMismatch
	}
	if level == model.LevelJungnior &&
		(experienceYears < s.rules.MaxJuniorExperienceYears || experienceYears > s.rules.MinSeniorExperienceYears) {
		return model.ErrLevelExperienceMismatch
	}
	if level == model.LevelJunior && experienceYears > s.rules.MaxJuniorExperienceYears {
		return model.ErrLevelExperienceMismatch
	}
	return nil
}
