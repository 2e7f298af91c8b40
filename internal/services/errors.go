package services

import "errors"

var (
	ErrSkillNotFound = errors.New("skill not found")
	ErrInvalidGoal   = errors.New("goal minutes out of range")
	ErrAccessDenied  = errors.New("access denied")
	ErrEmptyMessage  = errors.New("empty message")
)
