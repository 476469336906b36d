package api

import (
	"net/http"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/filter"
	"github.com/Domenick1991/hotelbooking/internal/service/room"
	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	service room.RoomUseCase
}

func NewRoomHandler(service room.RoomUseCase) *RoomHandler {
	return &RoomHandler{service: service}
}

func (h *RoomHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/search", h.search)
	router.GET("/available", h.available)
	router.GET("/type/:type", h.byType)
	router.GET("/status/:status", h.byStatus)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} domain.Room
// @Router /rooms/ [get]
func (h *RoomHandler) list(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary Get a room
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} domain.Room
// @Failure 404
// @Router /rooms/{id} [get]
func (h *RoomHandler) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	r, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param room body domain.Room true "Room"
// @Success 201 {object} domain.Room
// @Failure 400 {object} errorResponse
// @Router /rooms/ [post]
func (h *RoomHandler) create(c *gin.Context) {
	var req domain.Room
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	r, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// @Summary Replace a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param room body domain.Room true "Room"
// @Success 200 {object} domain.Room
// @Failure 400 {object} errorResponse
// @Failure 404
// @Router /rooms/{id} [put]
func (h *RoomHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req domain.Room
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	r, err := h.service.UpdateRoom(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary Delete a room
// @Tags rooms
// @Param id path int true "Room ID"
// @Success 204
// @Failure 404
// @Failure 409 {object} errorResponse
// @Router /rooms/{id} [delete]
func (h *RoomHandler) delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteRoom(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RoomHandler) byType(c *gin.Context) {
	rooms, err := h.service.RoomsByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) byStatus(c *gin.Context) {
	rooms, err := h.service.RoomsByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *RoomHandler) available(c *gin.Context) {
	rooms, err := h.service.AvailableRooms(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary Search rooms
// @Description Every parameter is optional; string matches ignore case.
// @Tags rooms
// @Produce json
// @Param minPrice query number false "Minimum price per night"
// @Param maxPrice query number false "Maximum price per night"
// @Param minCapacity query int false "Minimum capacity"
// @Param roomType query string false "Room type"
// @Param smokingAllowed query string false "YES or NO"
// @Param floorNumber query int false "Floor"
// @Success 200 {array} domain.Room
// @Router /rooms/search [get]
func (h *RoomHandler) search(c *gin.Context) {
	var criteria filter.RoomCriteria
	var ok bool
	if criteria.MinPrice, ok = queryFloat(c, "minPrice"); !ok {
		return
	}
	if criteria.MaxPrice, ok = queryFloat(c, "maxPrice"); !ok {
		return
	}
	if criteria.MinCapacity, ok = queryInt(c, "minCapacity"); !ok {
		return
	}
	if criteria.FloorNumber, ok = queryInt(c, "floorNumber"); !ok {
		return
	}
	criteria.RoomType = queryString(c, "roomType")
	criteria.SmokingAllowed = queryString(c, "smokingAllowed")

	rooms, err := h.service.SearchRooms(c.Request.Context(), criteria)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}
