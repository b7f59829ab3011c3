package usecase

import (
	"context"

	"samaritans-api/internal/item"
	"samaritans-api/internal/model"
)

// Categories returns the immutable category reference table.
func (uc *implUseCase) Categories(_ context.Context) (item.CategoriesOutput, error) {
	options := make(map[int]string, len(model.Categories))
	for id, name := range model.Categories {
		options[id] = name
	}
	return item.CategoriesOutput{Options: options}, nil
}
