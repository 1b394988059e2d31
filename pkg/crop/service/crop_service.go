package service

import (
	"context"
	"fmt"

	"agrismart/entities"
)

type CropService interface {
	// AddCrop runs the full analysis pipeline for one submission. A failed
	// attempt leaves the record collection untouched.
	AddCrop(ctx context.Context, in entities.CropInput) (*entities.CropRecord, error)
	GetCrop(id string) (*entities.CropRecord, error)
	ListCrops() ([]entities.CropRecord, error)
}

// InputError rejects a submission synchronously, before any network call.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Reason) }
