package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stylebot-ai/support-engine/internal/chat"
	"github.com/stylebot-ai/support-engine/internal/observability"
	"github.com/stylebot-ai/support-engine/internal/tabular"
)

// CatalogHandler exposes read-only queries over the tabular store.
type CatalogHandler struct {
	logger  *observability.Logger
	service *chat.Service
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(logger *observability.Logger, service *chat.Service) *CatalogHandler {
	return &CatalogHandler{logger: logger, service: service}
}

// SearchProducts handles GET /api/products/search?q=.
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	rows := h.service.Store().SearchProducts(query)
	writeJSON(w, http.StatusOK, map[string]any{
		"query":    query,
		"count":    len(rows),
		"products": rowsToMaps(rows),
	})
}

// TopProducts handles GET /api/products/top?limit=.
func (h *CatalogHandler) TopProducts(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	top := h.service.Store().TopProducts(limit)
	writeJSON(w, http.StatusOK, map[string]any{
		"limit":    limit,
		"products": top,
	})
}

// OrderStatus handles GET /api/orders/{orderID}.
func (h *CatalogHandler) OrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "order id must be numeric")
		return
	}

	status, found := h.service.Store().OrderByID(orderID)
	if !found {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"order_id":     status.OrderID,
		"status":       status.Status,
		"user_name":    status.UserName,
		"created_at":   nullableText(status.CreatedAt),
		"shipped_at":   nullableText(status.ShippedAt),
		"delivered_at": nullableText(status.DeliveredAt),
		"returned_at":  nullableText(status.ReturnedAt),
		"num_of_items": status.NumItems,
		"items":        status.Items,
		"total_amount": status.TotalAmount,
	})
}

// Inventory handles GET /api/inventory?product=&category=.
func (h *CatalogHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	product := r.URL.Query().Get("product")
	category := r.URL.Query().Get("category")

	levels := h.service.Store().InventoryStatus(product, category)
	writeJSON(w, http.StatusOK, map[string]any{
		"count":  len(levels),
		"levels": levels,
	})
}

func nullableText(v tabular.Value) any {
	if v.IsNull() {
		return nil
	}
	return v.Text()
}

func rowsToMaps(rows []tabular.Row) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		m := make(map[string]any, len(row))
		for col, v := range row {
			if v.IsNull() {
				m[col] = nil
			} else {
				m[col] = v.Text()
			}
		}
		out = append(out, m)
	}
	return out
}
