// Package repository provides data access layer for developer module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dmakerhq/dmaker/internal/developer/model"
)

// Repository defines the interface for developer data access operations.
type Repository interface {
	// GetByMemberID finds a developer by member_id regardless of status.
	GetByMemberID(ctx context.Context, memberID string) (*model.Developer, error)

	// ExistsByMemberID reports whether a developer row exists for member_id.
	ExistsByMemberID(ctx context.Context, memberID string) (bool, error)

	// Create inserts a new developer row.
	Create(ctx context.Context, developer *model.Developer) (*model.Developer, error)

	// Save persists all fields of an already-loaded developer row.
	Save(ctx context.Context, developer *model.Developer) (*model.Developer, error)

	// ListByStatus returns all developers with the given status, ordered by member_id.
	ListByStatus(ctx context.Context, status model.Status) ([]model.Developer, error)

	// CreateRetired inserts an archival row for a retired developer.
	CreateRetired(ctx context.Context, retired *model.RetiredDeveloper) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new developer repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// GetByMemberID finds a developer by member_id regardless of status.
func (r *repository) GetByMemberID(ctx context.Context, memberID string) (*model.Developer, error) {
	r.logger.Debugw("GetByMemberID called", "member_id", memberID)

	var developer model.Developer
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		First(&developer).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Debugw("GetByMemberID developer not found", "member_id", memberID)
			return nil, model.ErrDeveloperNotFound
		}
		r.logger.Errorw("GetByMemberID database error", "member_id", memberID, "error", err)
		return nil, err
	}

	return &developer, nil
}

// ExistsByMemberID reports whether a developer row exists for member_id.
func (r *repository) ExistsByMemberID(ctx context.Context, memberID string) (bool, error) {
	r.logger.Debugw("ExistsByMemberID called", "member_id", memberID)

	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Developer{}).
		Where("member_id = ?", memberID).
		Count(&count).Error

	if err != nil {
		r.logger.Errorw("ExistsByMemberID database error", "member_id", memberID, "error", err)
		return false, err
	}

	return count > 0, nil
}

// Create inserts a new developer row. A unique-constraint violation on
// member_id is reported as ErrDuplicateMemberID.
func (r *repository) Create(ctx context.Context, developer *model.Developer) (*model.Developer, error) {
	r.logger.Infow("Create called", "member_id", developer.MemberID)

	err := r.db.WithContext(ctx).Create(developer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.logger.Debugw("Create duplicate member_id", "member_id", developer.MemberID)
			return nil, model.ErrDuplicateMemberID
		}
		r.logger.Errorw("Create database error", "member_id", developer.MemberID, "error", err)
		return nil, err
	}

	r.logger.Infow("Create completed", "member_id", developer.MemberID)
	return developer, nil
}

// Save persists all fields of an already-loaded developer row.
func (r *repository) Save(ctx context.Context, developer *model.Developer) (*model.Developer, error) {
	r.logger.Infow("Save called", "member_id", developer.MemberID)

	if err := r.db.WithContext(ctx).Save(developer).Error; err != nil {
		r.logger.Errorw("Save database error", "member_id", developer.MemberID, "error", err)
		return nil, err
	}

	return developer, nil
}

// ListByStatus returns all developers with the given status, ordered by member_id.
func (r *repository) ListByStatus(ctx context.Context, status model.Status) ([]model.Developer, error) {
	r.logger.Debugw("ListByStatus called", "status", status)

	var developers []model.Developer
	err := r.db.WithContext(ctx).
		Where("status_code = ?", status).
		Order("member_id").
		Find(&developers).Error

	if err != nil {
		r.logger.Errorw("ListByStatus database error", "status", status, "error", err)
		return nil, err
	}

	if developers == nil {
		developers = []model.Developer{}
	}

	r.logger.Debugw("ListByStatus completed", "status", status, "count", len(developers))
	return developers, nil
}

// CreateRetired inserts an archival row for a retired developer.
func (r *repository) CreateRetired(ctx context.Context, retired *model.RetiredDeveloper) error {
	r.logger.Infow("CreateRetired called", "member_id", retired.MemberID)

	if err := r.db.WithContext(ctx).Create(retired).Error; err != nil {
		r.logger.Errorw("CreateRetired database error", "member_id", retired.MemberID, "error", err)
		return err
	}

	return nil
}
