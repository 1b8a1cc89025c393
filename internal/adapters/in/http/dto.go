package http

import (
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/services"
	"orders/internal/generated/servers"
)

// Prices and totals leave the service as JSON numbers.
func toOrder(o *order.Order) servers.Order {
	items := o.Items()
	out := make([]servers.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, servers.OrderItem{
			Product:  item.Product(),
			Quantity: item.Quantity(),
			Price:    item.Price().InexactFloat64(),
		})
	}

	return servers.Order{
		Id:        o.ID().Bytes(),
		UserId:    o.UserID(),
		Items:     out,
		Status:    servers.OrderStatus(o.Status()),
		Total:     o.Total().InexactFloat64(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func toOrderList(selection services.Selection) servers.OrderList {
	orders := make([]servers.Order, 0, len(selection.Orders))
	for _, o := range selection.Orders {
		orders = append(orders, toOrder(o))
	}

	return servers.OrderList{
		Orders: orders,
		Pagination: servers.Pagination{
			Page:       selection.Pagination.Page,
			Limit:      selection.Pagination.Limit,
			Total:      selection.Pagination.Total,
			TotalPages: selection.Pagination.TotalPages,
		},
	}
}

func toItemInputs(items *[]servers.OrderItemInput) []commands.ItemInput {
	if items == nil {
		return nil
	}

	out := make([]commands.ItemInput, 0, len(*items))
	for _, item := range *items {
		out = append(out, commands.ItemInput{
			Product:  valueOf(item.Product),
			Quantity: valueOf(item.Quantity),
			Price:    valueOf(item.Price),
		})
	}
	return out
}

func toListOrdersParams(params servers.ListOrdersParams) queries.ListOrdersParams {
	return queries.ListOrdersParams{
		UserID:    valueOf(params.UserId),
		Status:    valueOf(params.Status),
		Page:      params.Page,
		Limit:     params.Limit,
		SortBy:    valueOf(params.SortBy),
		SortOrder: valueOf(params.SortOrder),
	}
}

func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
