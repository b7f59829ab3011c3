package usecase

import (
	"fmt"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"samaritans-api/internal/item"
)

// viewCache holds the materialized read views. Every successful mutation
// purges all of them so browse and history pages never serve the state from
// before the mutation.
type viewCache struct {
	browse  *expirable.LRU[string, item.BrowseOutput]
	orgHist *expirable.LRU[string, item.OrganizationHistoryOutput]
	samHist *expirable.LRU[string, item.SamaritanHistoryOutput]
}

// Invalidate drops every cached view page.
func (c *viewCache) Invalidate() {
	c.browse.Purge()
	c.orgHist.Purge()
	c.samHist.Purge()
}

func browseKey(orgID string, in item.BrowseInput) string {
	return fmt.Sprintf("browse|%s|p%d|pp%d|r%.3f|c%d|q%s|bb%s",
		orgID, in.Page, in.PerPage, in.RadiusKm, in.Category, in.SearchText, in.BestBefore)
}

func historyKey(view, userID string, in item.HistoryInput) string {
	return fmt.Sprintf("%s|%s|p%d|pp%d|c%d", view, userID, in.Page, in.PerPage, in.Category)
}
