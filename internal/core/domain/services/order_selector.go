package services

import (
	"slices"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
)

// SortField is an order attribute listings can be sorted by.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByTotal     SortField = "total"
)

// SortDirection orders a listing. Anything other than SortAsc sorts descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// OrderFilter selects orders by equality. Empty fields match everything.
type OrderFilter struct {
	UserID string
	Status order.Status
}

type Sort struct {
	Field     SortField
	Direction SortDirection
}

// PageRequest is a 1-based page number with a page size.
type PageRequest struct {
	Page  int
	Limit int
}

// Pagination describes the slice returned by a selection.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// Selection is one page of a filtered and sorted listing.
type Selection struct {
	Orders     []*order.Order
	Pagination Pagination
}

// OrderSelector filters, sorts and pages order listings. It never mutates its input.
type OrderSelector struct{}

func NewOrderSelector() OrderSelector {
	return OrderSelector{}
}

// Select filters all (given in storage order), sorts the matches stably and returns
// the requested page. An unknown sort field keeps storage order. A page past the end
// is empty.
func (s OrderSelector) Select(all []*order.Order, filter OrderFilter, sort Sort, page PageRequest) (Selection, error) {
	if page.Page < 1 {
		return Selection{}, errs.NewValueIsOutOfRangeError("page", page.Page, 1, "unbounded")
	}
	if page.Limit < 1 {
		return Selection{}, errs.NewValueIsOutOfRangeError("limit", page.Limit, 1, "unbounded")
	}

	matched := make([]*order.Order, 0, len(all))
	for _, o := range all {
		if filter.matches(o) {
			matched = append(matched, o)
		}
	}

	if cmp := comparator(sort); cmp != nil {
		slices.SortStableFunc(matched, cmp)
	}

	total := len(matched)
	return Selection{
		Orders: window(matched, page),
		Pagination: Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      total,
			TotalPages: totalPages(total, page.Limit),
		},
	}, nil
}

func (f OrderFilter) matches(o *order.Order) bool {
	if f.UserID != "" && o.UserID() != f.UserID {
		return false
	}
	if f.Status != "" && o.Status() != f.Status {
		return false
	}
	return true
}

func comparator(sort Sort) func(a, b *order.Order) int {
	field := sort.Field
	if field == "" {
		field = SortByCreatedAt
	}

	var asc func(a, b *order.Order) int
	switch field {
	case SortByCreatedAt:
		asc = func(a, b *order.Order) int { return a.CreatedAt().Compare(b.CreatedAt()) }
	case SortByUpdatedAt:
		asc = func(a, b *order.Order) int { return a.UpdatedAt().Compare(b.UpdatedAt()) }
	case SortByTotal:
		asc = func(a, b *order.Order) int { return a.Total().Cmp(b.Total()) }
	default:
		return nil
	}

	if sort.Direction == SortAsc {
		return asc
	}
	return func(a, b *order.Order) int { return asc(b, a) }
}

func window(orders []*order.Order, page PageRequest) []*order.Order {
	total := len(orders)
	if page.Page-1 > total/page.Limit {
		return []*order.Order{}
	}

	offset := (page.Page - 1) * page.Limit
	if offset >= total {
		return []*order.Order{}
	}

	end := offset + min(page.Limit, total-offset)
	return orders[offset:end]
}

// totalPages is ceil(total/limit) without overflowing for limits near math.MaxInt.
func totalPages(total, limit int) int {
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
