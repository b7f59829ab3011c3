package usecase

import (
	"context"
	"sort"

	authRepo "samaritans-api/internal/auth/repository"
	"samaritans-api/internal/item"
	repo "samaritans-api/internal/item/repository"
	"samaritans-api/internal/model"
	"samaritans-api/pkg/geo"
	"samaritans-api/pkg/paging"
)

// Browse returns one page of offered listings near the acting organization,
// closest first. Category and radius narrow the whole collection; search text
// and best-before date narrow the current page only.
func (uc *implUseCase) Browse(ctx context.Context, sc model.Scope, input item.BrowseInput) (item.BrowseOutput, error) {
	if !sc.IsOrganization() {
		return item.BrowseOutput{}, item.ErrOrganizationOnly
	}

	if input.RadiusKm < 0 {
		return item.BrowseOutput{}, item.ErrInvalidRadius
	}
	if input.RadiusKm == 0 {
		input.RadiusKm = uc.cfg.DefaultRadiusKm
	}
	if input.Category != model.CategoryAll && !model.ValidCategory(input.Category) {
		return item.BrowseOutput{}, item.ErrInvalidCategory
	}

	req, err := paging.NewRequest(input.Page, input.PerPage, uc.cfg.ItemsPerPage)
	if err != nil {
		return item.BrowseOutput{}, err
	}
	input.Page, input.PerPage = req.Page, req.PerPage

	key := browseKey(sc.UserID, input)
	if out, ok := uc.views.browse.Get(key); ok {
		return out, nil
	}

	origin, err := uc.orgLocation(ctx, sc.UserID)
	if err != nil {
		return item.BrowseOutput{}, err
	}

	offered, err := uc.repo.ListOffered(ctx, repo.ListOfferedOptions{
		Category: input.Category,
		Now:      uc.now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Browse ListOffered: %v", err)
		return item.BrowseOutput{}, err
	}

	nearby := item.WithinRadius(offered, origin, input.RadiusKm)
	sort.SliceStable(nearby, func(i, j int) bool {
		return geo.DistanceKm(origin, nearby[i].PickupLocation) < geo.DistanceKm(origin, nearby[j].PickupLocation)
	})

	total := len(nearby)
	totalPages := paging.TotalPages(total, req.PerPage)
	// a page past the end clamps to the last page rather than erroring
	if totalPages > 0 && req.Page > totalPages {
		req.Page = totalPages
	}

	start := req.Offset()
	if start > total {
		start = total
	}
	end := start + req.PerPage
	if end > total {
		end = total
	}
	page := nearby[start:end]

	// search text and best-before apply to the visible page only
	page = item.ApplyLocalFilters(page, item.Criteria{
		SearchText: input.SearchText,
		BestBefore: input.BestBefore,
	})

	out := item.BrowseOutput{
		Items:      make([]item.BrowseItem, 0, len(page)),
		Page:       req.Page,
		TotalPages: totalPages,
		TotalItems: total,
	}
	for _, it := range page {
		out.Items = append(out.Items, item.BrowseItem{
			Item:       it,
			DistanceKm: geo.DistanceKm(origin, it.PickupLocation),
		})
	}

	uc.views.browse.Add(key, out)
	return out, nil
}

// orgLocation resolves the acting organization's anchor point.
func (uc *implUseCase) orgLocation(ctx context.Context, orgID string) (geo.Point, error) {
	org, err := uc.users.GetOrganization(ctx, authRepo.GetOneUserOptions{ID: orgID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Browse GetOrganization: %v", err)
		return geo.Point{}, err
	}
	if org.ID == "" {
		return geo.Point{}, item.ErrNoLocation
	}
	// (0, 0) is the unset marker for accounts created before location capture
	if org.Location.Lat == 0 && org.Location.Lon == 0 {
		return geo.Point{}, item.ErrNoLocation
	}
	if err := org.Location.Validate(); err != nil {
		return geo.Point{}, item.ErrNoLocation
	}
	return org.Location, nil
}
