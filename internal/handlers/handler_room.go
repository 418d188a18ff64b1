package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/hotel_management_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_management_app/internal/dto"
	"github.com/SscSPs/hotel_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// roomHandler handles HTTP requests for the room inventory and check-in.
type roomHandler struct {
	roomService portssvc.RoomSvcFacade
}

// newRoomHandler creates a new roomHandler.
func newRoomHandler(rs portssvc.RoomSvcFacade) *roomHandler {
	return &roomHandler{
		roomService: rs,
	}
}

// registerRoomRoutes registers routes related to rooms.
func registerRoomRoutes(rooms *gin.RouterGroup, roomService portssvc.RoomSvcFacade) {
	h := newRoomHandler(roomService)

	rooms.POST("", h.createRoom)
	rooms.GET("", h.listRooms)
	rooms.GET("/:number", h.getRoom)
	rooms.POST("/:number/checkin", h.checkIn)
}

// createRoom godoc
// @Summary Add a room
// @Description Appends a new vacant room to the ledger
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   room body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Room number already exists"
// @Router /rooms [post]
func (h *roomHandler) createRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRoom", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("room_number", req.RoomNumber))
	logger.Info("Received request to add room")

	room, err := h.roomService.AddRoom(c.Request.Context(), req.RoomNumber, req.RoomType, req.PricePerNight)
	if err != nil {
		respondError(c, logger, err, "Failed to add room")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

// listRooms godoc
// @Summary List or search rooms
// @Description Lists rooms in ledger order. With q, only rooms whose number or guest contains q (case-insensitive).
// @Tags rooms
// @Produce  json
// @Param   q query string false "Search text"
// @Success 200 {array} dto.RoomResponse
// @Router /rooms [get]
func (h *roomHandler) listRooms(c *gin.Context) {
	query := c.Query("q")
	rooms := h.roomService.Search(c.Request.Context(), query)
	c.JSON(http.StatusOK, dto.ToListRoomResponse(rooms))
}

// getRoom godoc
// @Summary Get a room by number
// @Description Looks a room up by number, ignoring case
// @Tags rooms
// @Produce  json
// @Param   number path string true "Room number"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} dto.RoomNotFoundResponse "Room not found"
// @Router /rooms/{number} [get]
func (h *roomHandler) getRoom(c *gin.Context) {
	number := c.Param("number")
	room, ok := h.roomService.FindByRoomNumber(c.Request.Context(), number)
	if !ok {
		c.JSON(http.StatusNotFound, dto.RoomNotFoundResponse{
			Error:       "Room not found",
			Suggestions: h.roomService.SuggestRoomNumbers(c.Request.Context(), number),
		})
		return
	}
	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// checkIn godoc
// @Summary Check a guest in
// @Description Puts a guest into a vacant room and stamps the check-in time
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   number path string true "Room number"
// @Param   guest body dto.CheckInRequest true "Guest"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Room not found"
// @Failure 409 {object} map[string]string "Room already occupied"
// @Router /rooms/{number}/checkin [post]
func (h *roomHandler) checkIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	number := c.Param("number")

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CheckIn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("room_number", number))
	room, err := h.roomService.CheckIn(c.Request.Context(), number, req.GuestName)
	if err != nil {
		respondError(c, logger, err, "Failed to check in")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}
