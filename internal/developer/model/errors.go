package model

import "errors"

var (
	// ErrDeveloperNotFound indicates that no developer exists for the member id.
	ErrDeveloperNotFound = errors.New("developer not found")
	// ErrDuplicateMemberID indicates a create request for a member id that is already taken.
	ErrDuplicateMemberID = errors.New("member id already exists")
	// ErrLevelExperienceMismatch indicates that the declared level and the
	// experience years do not satisfy the consistency rule.
	ErrLevelExperienceMismatch = errors.New("developer level and experience years do not match")
)
