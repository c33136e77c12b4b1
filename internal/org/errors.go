package org

import "errors"

var (
	ErrUnitNotFound    = errors.New("org unit not found")
	ErrDuplicateUnit   = errors.New("org unit already exists")
	ErrUnitCycle       = errors.New("org unit cannot become its own ancestor")
	ErrUnitHasChildren = errors.New("org unit still has child units")
)
