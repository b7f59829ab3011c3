package http

import (
	"time"

	"samaritans-api/internal/item"
	"samaritans-api/internal/model"
)

// --- Request DTOs ---

type quantityReq struct {
	Value float64 `json:"value" binding:"required"`
	Unit  string  `json:"unit"`
}

type locationReq struct {
	Latitude  float64 `json:"latitude"  binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

type donateReq struct {
	Category    int    `json:"category"    binding:"required"`
	Description string `json:"description" binding:"required,max=1000"`

	Weight *quantityReq `json:"weight"`
	Volume *quantityReq `json:"volume"`

	BestBefore string `json:"best_before"`

	PickupLocation    locationReq `json:"pickup_location" binding:"required"`
	PickupWindowStart string      `json:"pickup_window_start"`
	PickupWindowEnd   string      `json:"pickup_window_end"`

	ImageURL string `json:"image_url" binding:"omitempty,url"`
}

func (r donateReq) validate() error { return nil }

func (r donateReq) toInput() item.DonateInput {
	in := item.DonateInput{
		Category:          r.Category,
		Description:       r.Description,
		BestBefore:        r.BestBefore,
		PickupWindowStart: r.PickupWindowStart,
		PickupWindowEnd:   r.PickupWindowEnd,
		ImageURL:          r.ImageURL,
	}
	in.PickupLocation.Lat = r.PickupLocation.Latitude
	in.PickupLocation.Lon = r.PickupLocation.Longitude
	if r.Weight != nil {
		in.Weight = &item.Quantity{Value: r.Weight.Value, Unit: r.Weight.Unit}
	}
	if r.Volume != nil {
		in.Volume = &item.Quantity{Value: r.Volume.Value, Unit: r.Volume.Unit}
	}
	return in
}

// ---

type browseReq struct {
	Page       int     `form:"page"`
	PerPage    int     `form:"items_per_page"`
	Radius     float64 `form:"radius"`
	Category   int     `form:"category"`
	Search     string  `form:"search"`
	BestBefore string  `form:"best_before"`
}

func (r browseReq) validate() error { return nil }

func (r browseReq) toInput() item.BrowseInput {
	return item.BrowseInput{
		Page:       r.Page,
		PerPage:    r.PerPage,
		RadiusKm:   r.Radius,
		Category:   r.Category,
		SearchText: r.Search,
		BestBefore: r.BestBefore,
	}
}

// ---

type historyReq struct {
	Page     int `form:"page"`
	PerPage  int `form:"items_per_page"`
	Category int `form:"category"`
}

func (r historyReq) validate() error { return nil }

func (r historyReq) toInput() item.HistoryInput {
	return item.HistoryInput{
		Page:     r.Page,
		PerPage:  r.PerPage,
		Category: r.Category,
	}
}

// --- Response DTOs ---

type categoryResp struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type quantityResp struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type locationResp struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type itemResp struct {
	ID          string       `json:"id"`
	Category    categoryResp `json:"category"`
	Description string       `json:"description"`
	Status      string       `json:"status"`

	Weight *quantityResp `json:"weight,omitempty"`
	Volume *quantityResp `json:"volume,omitempty"`

	BestBefore string `json:"best_before,omitempty"`

	PickupLocation    locationResp `json:"pickup_location"`
	PickupWindowStart string       `json:"pickup_window_start,omitempty"`
	PickupWindowEnd   string       `json:"pickup_window_end,omitempty"`
	ImageURL          string       `json:"image_url,omitempty"`

	AvailableTill time.Time  `json:"available_till"`
	ReservedTill  *time.Time `json:"reserved_till,omitempty"`
	PickupTime    *time.Time `json:"pickup_time,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func newItemResp(it model.Item) itemResp {
	resp := itemResp{
		ID: it.ID,
		Category: categoryResp{
			ID:   it.Category,
			Name: model.CategoryName(it.Category),
		},
		Description:       it.Description,
		Status:            string(it.Status()),
		PickupWindowStart: it.PickupWindowStart,
		PickupWindowEnd:   it.PickupWindowEnd,
		ImageURL:          it.ImageURL,
		AvailableTill:     it.AvailableTill,
		ReservedTill:      it.ReservedTill,
		PickupTime:        it.PickupTime,
		CreatedAt:         it.CreatedAt,
	}
	resp.PickupLocation.Latitude = it.PickupLocation.Lat
	resp.PickupLocation.Longitude = it.PickupLocation.Lon
	if it.WeightKg != nil {
		resp.Weight = &quantityResp{Value: *it.WeightKg, Unit: item.CanonKg}
	}
	if it.VolumeM3 != nil {
		resp.Volume = &quantityResp{Value: *it.VolumeM3, Unit: item.CanonM3}
	}
	if it.BestBefore != nil {
		resp.BestBefore = it.BestBefore.Format(time.DateOnly)
	}
	return resp
}

type donateResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDonateResp(out item.DonateOutput) donateResp {
	return donateResp{Item: newItemResp(out.Item)}
}

type browseItemResp struct {
	itemResp
	DistanceKm float64 `json:"distance_km"`
}

type browseResp struct {
	Items      []browseItemResp `json:"items"`
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	TotalItems int              `json:"total_items"`
}

func (h *handler) newBrowseResp(out item.BrowseOutput) browseResp {
	items := make([]browseItemResp, len(out.Items))
	for i, bi := range out.Items {
		items[i] = browseItemResp{
			itemResp:   newItemResp(bi.Item),
			DistanceKm: bi.DistanceKm,
		}
	}
	return browseResp{
		Items:      items,
		Page:       out.Page,
		TotalPages: out.TotalPages,
		TotalItems: out.TotalItems,
	}
}

type categoriesResp struct {
	Categories []categoryResp `json:"categories"`
}

func (h *handler) newCategoriesResp(out item.CategoriesOutput) categoriesResp {
	resp := categoriesResp{Categories: make([]categoryResp, 0, len(out.Options))}
	for id := 1; id <= len(out.Options); id++ {
		if name, ok := out.Options[id]; ok {
			resp.Categories = append(resp.Categories, categoryResp{ID: id, Name: name})
		}
	}
	return resp
}

type lifecycleResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newLifecycleResp(out item.LifecycleOutput) lifecycleResp {
	return lifecycleResp{Item: newItemResp(out.Item)}
}

type historyPageResp struct {
	Items      []itemResp `json:"items"`
	TotalPages int        `json:"total_pages"`
	TotalItems int        `json:"total_items"`
}

func newHistoryPageResp(p item.HistoryPage) historyPageResp {
	items := make([]itemResp, len(p.Items))
	for i, it := range p.Items {
		items[i] = newItemResp(it)
	}
	return historyPageResp{
		Items:      items,
		TotalPages: p.TotalPages,
		TotalItems: p.TotalItems,
	}
}

type organizationHistoryResp struct {
	Page     int             `json:"page"`
	Reserved historyPageResp `json:"reserved"`
	PickedUp historyPageResp `json:"picked_up"`
}

func (h *handler) newOrganizationHistoryResp(out item.OrganizationHistoryOutput) organizationHistoryResp {
	return organizationHistoryResp{
		Page:     out.Page,
		Reserved: newHistoryPageResp(out.Reserved),
		PickedUp: newHistoryPageResp(out.PickedUp),
	}
}

type samaritanHistoryResp struct {
	Page        int             `json:"page"`
	PickedUp    historyPageResp `json:"picked_up"`
	NotPickedUp historyPageResp `json:"not_picked_up"`
}

func (h *handler) newSamaritanHistoryResp(out item.SamaritanHistoryOutput) samaritanHistoryResp {
	return samaritanHistoryResp{
		Page:        out.Page,
		PickedUp:    newHistoryPageResp(out.PickedUp),
		NotPickedUp: newHistoryPageResp(out.NotPickedUp),
	}
}
