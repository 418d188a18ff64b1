package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/hotel_management_app/internal/apperrors"
	"github.com/SscSPs/hotel_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto a status code and body.
// failureMsg is shown to the client for unexpected errors.
func respondError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrCancelled):
		logger.Info("Checkout cancelled", slog.String("reason", err.Error()))
		c.JSON(http.StatusOK, dto.CheckoutOutcomeResponse{Status: dto.OutcomeCancelled, Message: err.Error()})
	case errors.Is(err, apperrors.ErrAlreadyVacant):
		logger.Warn("Room is already vacant", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.CheckoutOutcomeResponse{Status: dto.OutcomeAlreadyVacant, Message: err.Error()})
	case errors.Is(err, apperrors.ErrStaleBill):
		logger.Warn("Stale bill", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.CheckoutOutcomeResponse{Status: dto.OutcomeStaleBill, Message: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Room not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrAlreadyOccupied):
		logger.Warn("Conflict", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failureMsg})
	}
}
