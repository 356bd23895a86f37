package handler

import (
	"errors"
	"net/http"

	"github.com/rohitkr5850/storefront/internal/delivery/http/request"
	"github.com/rohitkr5850/storefront/internal/delivery/http/response"
	"github.com/rohitkr5850/storefront/internal/domain"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
	"github.com/rohitkr5850/storefront/internal/usecase/vendor"
)

// VendorHandler handles HTTP requests for the seller dashboard
type VendorHandler struct {
	service *vendor.Service
	logger  *logger.Logger
}

// NewVendorHandler creates a new vendor dashboard handler
func NewVendorHandler(service *vendor.Service, log *logger.Logger) *VendorHandler {
	return &VendorHandler{
		service: service,
		logger:  log,
	}
}

// Stats handles GET /api/v1/vendor/stats
// @Summary Get a vendor's headline figures
// @Description Product count, average rating, and order count/revenue from non-cancelled orders containing the vendor's products.
// @Tags Vendor
// @Accept json
// @Produce json
// @Param vendor_id query string true "Vendor ID (UUID)"
// @Success 200 {object} map[string]interface{} "Vendor stats"
// @Failure 400 {object} map[string]string "Invalid vendor ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /vendor/stats [get]
func (h *VendorHandler) Stats(w http.ResponseWriter, r *http.Request) {
	vendorID, err := request.GetUUIDQuery(r, "vendor_id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	stats, err := h.service.Stats(r.Context(), vendorID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, stats)
}

// Sales handles GET /api/v1/vendor/sales
// @Summary Get a vendor's daily sales series
// @Description Daily revenue and order counts, oldest first, with zero-filled days.
// @Tags Vendor
// @Accept json
// @Produce json
// @Param vendor_id query string true "Vendor ID (UUID)"
// @Param days query int false "Window size in days" default(7)
// @Success 200 {object} map[string]interface{} "Daily sales series"
// @Failure 400 {object} map[string]string "Invalid vendor ID"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /vendor/sales [get]
func (h *VendorHandler) Sales(w http.ResponseWriter, r *http.Request) {
	vendorID, err := request.GetUUIDQuery(r, "vendor_id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vendor ID")
		return
	}

	days := request.GetIntQuery(r, "days", 7)

	sales, err := h.service.Sales(r.Context(), vendorID, days)
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.List(w, sales, len(sales))
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *VendorHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Vendor not found")
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Invalid input")
	default:
		h.logger.Error("Internal error in vendor handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
