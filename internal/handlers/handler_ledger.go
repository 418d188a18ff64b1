package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hotel_management_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_management_app/internal/dto"
	"github.com/SscSPs/hotel_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ledgerHandler exposes save, load and export of the whole ledger.
type ledgerHandler struct {
	roomService portssvc.RoomSvcFacade
	reports     portssvc.ReportExporter
	dataFile    string
}

func newLedgerHandler(rs portssvc.RoomSvcFacade, reports portssvc.ReportExporter, dataFile string) *ledgerHandler {
	return &ledgerHandler{
		roomService: rs,
		reports:     reports,
		dataFile:    dataFile,
	}
}

func registerLedgerRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, dataFile string) {
	h := newLedgerHandler(services.Rooms, services.Reports, dataFile)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/save", h.save)
		ledger.POST("/load", h.load)
		ledger.GET("/export", h.export)
	}
}

// save godoc
// @Summary Save the ledger
// @Description Writes every room to the data file
// @Tags ledger
// @Produce  json
// @Success 200 {object} dto.LedgerResponse
// @Failure 500 {object} map[string]string "Failed to save ledger"
// @Router /ledger/save [post]
func (h *ledgerHandler) save(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.roomService.Save(c.Request.Context()); err != nil {
		respondError(c, logger, err, "Failed to save ledger")
		return
	}
	c.JSON(http.StatusOK, dto.LedgerResponse{
		Message: "Ledger saved",
		Rooms:   len(h.roomService.ListAll(c.Request.Context())),
		Path:    h.dataFile,
	})
}

// load godoc
// @Summary Reload the ledger
// @Description Replaces the in-memory ledger with the data file. On failure the current rooms are kept.
// @Tags ledger
// @Produce  json
// @Success 200 {object} dto.LedgerResponse
// @Failure 500 {object} map[string]string "Failed to load ledger"
// @Router /ledger/load [post]
func (h *ledgerHandler) load(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.roomService.Reload(c.Request.Context()); err != nil {
		respondError(c, logger, err, "Failed to load ledger")
		return
	}
	c.JSON(http.StatusOK, dto.LedgerResponse{
		Message: "Ledger loaded",
		Rooms:   len(h.roomService.ListAll(c.Request.Context())),
		Path:    h.dataFile,
	})
}

// export godoc
// @Summary Export the ledger
// @Description Downloads the rooms as an .xlsx occupancy report
// @Tags ledger
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} map[string]string "Failed to export ledger"
// @Router /ledger/export [get]
func (h *ledgerHandler) export(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rooms := h.roomService.ListAll(c.Request.Context())

	var buf bytes.Buffer
	if err := h.reports.ExportRooms(c.Request.Context(), &buf, rooms); err != nil {
		respondError(c, logger, err, "Failed to export ledger")
		return
	}

	logger.Info("Ledger exported", slog.Int("rooms", len(rooms)), slog.Int("bytes", buf.Len()))
	c.Header("Content-Disposition", `attachment; filename="rooms.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
