package dto

import (
	catalogdomain "fitfusion/internal/modules/catalog/domain"
)

// BulkResult is the server's summary of a bulk import.
type BulkResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type BulkExercisesResult struct {
	BulkResult
	Exercises []catalogdomain.Exercise `json:"exercises"`
}

type BulkFoodsResult struct {
	BulkResult
	Foods []catalogdomain.Food `json:"foodItems"`
}

type SetRoleInput struct {
	UserID int64
	Role   string
}
