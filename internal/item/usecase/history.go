package usecase

import (
	"context"

	"samaritans-api/internal/item"
	repo "samaritans-api/internal/item/repository"
	"samaritans-api/internal/model"
	"samaritans-api/pkg/paging"
)

// OrganizationHistory returns the acting organization's held reservations and
// completed pickups, each block independently paginated with the same page
// number.
func (uc *implUseCase) OrganizationHistory(ctx context.Context, sc model.Scope, input item.HistoryInput) (item.OrganizationHistoryOutput, error) {
	if !sc.IsOrganization() {
		return item.OrganizationHistoryOutput{}, item.ErrOrganizationOnly
	}

	req, err := paging.NewRequest(input.Page, input.PerPage, uc.cfg.ItemsPerPage)
	if err != nil {
		return item.OrganizationHistoryOutput{}, err
	}
	input.Page, input.PerPage = req.Page, req.PerPage

	key := historyKey("org", sc.UserID, input)
	if out, ok := uc.views.orgHist.Get(key); ok {
		return out, nil
	}

	notPicked, picked := false, true

	reserved, err := uc.historyPage(ctx, "OrganizationHistory", repo.ListHistoryOptions{
		ReservedBy: sc.UserID,
		PickedUp:   &notPicked,
		Category:   input.Category,
		Limit:      req.PerPage,
		Offset:     req.Offset(),
		OrderBy:    "reserved_till ASC",
	}, req)
	if err != nil {
		return item.OrganizationHistoryOutput{}, err
	}

	pickedUp, err := uc.historyPage(ctx, "OrganizationHistory", repo.ListHistoryOptions{
		PickedUpBy: sc.UserID,
		PickedUp:   &picked,
		Category:   input.Category,
		Limit:      req.PerPage,
		Offset:     req.Offset(),
		OrderBy:    "pickup_time DESC",
	}, req)
	if err != nil {
		return item.OrganizationHistoryOutput{}, err
	}

	out := item.OrganizationHistoryOutput{
		Page:     req.Page,
		Reserved: reserved,
		PickedUp: pickedUp,
	}
	uc.views.orgHist.Add(key, out)
	return out, nil
}

// SamaritanHistory returns the acting samaritan's donations split into picked
// up and still pending, each block independently paginated.
func (uc *implUseCase) SamaritanHistory(ctx context.Context, sc model.Scope, input item.HistoryInput) (item.SamaritanHistoryOutput, error) {
	if !sc.IsSamaritan() {
		return item.SamaritanHistoryOutput{}, item.ErrSamaritanOnly
	}

	req, err := paging.NewRequest(input.Page, input.PerPage, uc.cfg.ItemsPerPage)
	if err != nil {
		return item.SamaritanHistoryOutput{}, err
	}
	input.Page, input.PerPage = req.Page, req.PerPage

	key := historyKey("sam", sc.UserID, input)
	if out, ok := uc.views.samHist.Get(key); ok {
		return out, nil
	}

	notPicked, picked := false, true

	pickedUp, err := uc.historyPage(ctx, "SamaritanHistory", repo.ListHistoryOptions{
		PostedBy: sc.UserID,
		PickedUp: &picked,
		Category: input.Category,
		Limit:    req.PerPage,
		Offset:   req.Offset(),
		OrderBy:  "pickup_time DESC",
	}, req)
	if err != nil {
		return item.SamaritanHistoryOutput{}, err
	}

	pending, err := uc.historyPage(ctx, "SamaritanHistory", repo.ListHistoryOptions{
		PostedBy: sc.UserID,
		PickedUp: &notPicked,
		Category: input.Category,
		Limit:    req.PerPage,
		Offset:   req.Offset(),
		OrderBy:  "created_at DESC",
	}, req)
	if err != nil {
		return item.SamaritanHistoryOutput{}, err
	}

	out := item.SamaritanHistoryOutput{
		Page:        req.Page,
		PickedUp:    pickedUp,
		NotPickedUp: pending,
	}
	uc.views.samHist.Add(key, out)
	return out, nil
}

func (uc *implUseCase) historyPage(ctx context.Context, op string, opt repo.ListHistoryOptions, req paging.Request) (item.HistoryPage, error) {
	items, total, err := uc.repo.ListHistory(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s ListHistory: %v", op, err)
		return item.HistoryPage{}, err
	}
	return item.HistoryPage{
		Items:      items,
		TotalPages: paging.TotalPages(total, req.PerPage),
		TotalItems: total,
	}, nil
}
