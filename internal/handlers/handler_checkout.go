package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/hotel_management_app/internal/apperrors"
	"github.com/SscSPs/hotel_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/hotel_management_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_management_app/internal/dto"
	"github.com/SscSPs/hotel_management_app/internal/middleware"
	"github.com/SscSPs/hotel_management_app/internal/utils"
	"github.com/SscSPs/hotel_management_app/internal/utils/billing"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// checkoutHandler serves the two-phase checkout: preview, then confirm or cancel.
type checkoutHandler struct {
	roomService     portssvc.RoomSvcFacade
	defaultTax      decimal.Decimal
	defaultDiscount decimal.Decimal
}

func newCheckoutHandler(rs portssvc.RoomSvcFacade, defaultTax, defaultDiscount decimal.Decimal) *checkoutHandler {
	return &checkoutHandler{
		roomService:     rs,
		defaultTax:      defaultTax,
		defaultDiscount: defaultDiscount,
	}
}

func registerCheckoutRoutes(rooms *gin.RouterGroup, roomService portssvc.RoomSvcFacade, defaultTax, defaultDiscount decimal.Decimal) {
	h := newCheckoutHandler(roomService, defaultTax, defaultDiscount)

	checkout := rooms.Group("/:number/checkout")
	{
		checkout.POST("/preview", h.preview)
		checkout.POST("/confirm", h.confirm)
		checkout.POST("/cancel", h.cancel)
	}
}

// preview godoc
// @Summary Preview a checkout
// @Description Computes the bill for an occupied room without changing it. Omitted percentages use the configured defaults.
// @Tags checkout
// @Accept  json
// @Produce  json
// @Param   number path string true "Room number"
// @Param   percents body dto.CheckoutRequest false "Tax and discount percentages"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} map[string]string "Room not found"
// @Failure 409 {object} dto.CheckoutOutcomeResponse "Room already vacant"
// @Router /rooms/{number}/checkout/preview [post]
func (h *checkoutHandler) preview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number := c.Param("number")

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Failed to bind JSON for checkout preview", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	tax := percentOrDefault(req.TaxPercent, h.defaultTax)
	discount := percentOrDefault(req.DiscountPercent, h.defaultDiscount)

	logger = logger.With(slog.String("room_number", number))
	bill, err := h.roomService.PreviewCheckout(c.Request.Context(), number, tax, discount)
	if err != nil {
		respondError(c, logger, err, "Failed to preview checkout")
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// confirm godoc
// @Summary Confirm a checkout
// @Description Finalizes a previewed bill: the room becomes vacant as of now. The bill must still match the room; the total is recomputed at checkout time.
// @Tags checkout
// @Accept  json
// @Produce  json
// @Param   number path string true "Room number"
// @Param   bill body domain.Bill true "Bill returned by the preview"
// @Success 200 {object} dto.CheckoutOutcomeResponse
// @Failure 400 {object} map[string]string "Invalid bill"
// @Failure 404 {object} map[string]string "Room not found"
// @Failure 409 {object} dto.CheckoutOutcomeResponse "Room already vacant or bill is stale"
// @Router /rooms/{number}/checkout/confirm [post]
func (h *checkoutHandler) confirm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number := c.Param("number")

	var bill domain.Bill
	if err := c.ShouldBindJSON(&bill); err != nil {
		logger.Warn("Failed to bind JSON for checkout confirm", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if strings.TrimSpace(bill.RoomNumber) == "" {
		bill.RoomNumber = number
	}

	logger = logger.With(slog.String("room_number", number))
	if domain.NormalizeRoomNumber(bill.RoomNumber) != domain.NormalizeRoomNumber(number) {
		respondError(c, logger, fmt.Errorf("bill is for room %s, not %s: %w", bill.RoomNumber, number, apperrors.ErrValidation), "Failed to check out")
		return
	}

	room, final, err := h.roomService.FinalizeCheckout(c.Request.Context(), bill)
	if err != nil {
		respondError(c, logger, err, "Failed to check out")
		return
	}

	resp := dto.ToRoomResponse(room)
	c.JSON(http.StatusOK, dto.CheckoutOutcomeResponse{
		Status:  dto.OutcomeCheckedOut,
		Message: fmt.Sprintf("Checked out room %s", room.Number),
		Room:    &resp,
		Total:   utils.FormatAmount(final.Total),
	})
}

// cancel godoc
// @Summary Cancel a checkout
// @Description Discards a previewed bill. The room stays occupied.
// @Tags checkout
// @Produce  json
// @Param   number path string true "Room number"
// @Success 200 {object} dto.CheckoutOutcomeResponse
// @Router /rooms/{number}/checkout/cancel [post]
func (h *checkoutHandler) cancel(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number := c.Param("number")

	err := h.roomService.CancelCheckout(c.Request.Context(), domain.Bill{RoomNumber: number})
	if err == nil {
		c.JSON(http.StatusOK, dto.CheckoutOutcomeResponse{Status: dto.OutcomeCancelled})
		return
	}
	respondError(c, logger.With(slog.String("room_number", number)), err, "Failed to cancel checkout")
}

// percentOrDefault uses def when text is omitted. Unreadable text counts as zero.
func percentOrDefault(text string, def decimal.Decimal) decimal.Decimal {
	if strings.TrimSpace(text) == "" {
		return def
	}
	return billing.ParsePercent(text)
}
