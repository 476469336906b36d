package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

// bookingRequest carries dates as YYYY-MM-DD strings. Absent fields stay nil.
type bookingRequest struct {
	BookingNumber *string `json:"bookingNumber"`
	CheckInDate   *string `json:"checkInDate"`
	CheckOutDate  *string `json:"checkOutDate"`
	RoomID        *int64  `json:"roomId"`
	UserID        *int64  `json:"userId"`
}

type bookingResponse struct {
	ID            int64  `json:"id"`
	BookingNumber string `json:"bookingNumber"`
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	RoomID        int64  `json:"roomId"`
	UserID        int64  `json:"userId"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/number/:number", h.byNumber)
	router.GET("/check-in-range", h.byCheckIn)
	router.GET("/check-out-range", h.byCheckOut)
	router.GET("/room/:id", h.byRoom)
	router.GET("/user/:id", h.byUser)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (r bookingRequest) patch() (domain.BookingPatch, error) {
	p := domain.BookingPatch{
		BookingNumber: r.BookingNumber,
		RoomID:        r.RoomID,
		UserID:        r.UserID,
	}
	var err error
	if p.CheckInDate, err = parseDay(r.CheckInDate, "checkInDate"); err != nil {
		return p, err
	}
	if p.CheckOutDate, err = parseDay(r.CheckOutDate, "checkOutDate"); err != nil {
		return p, err
	}
	return p, nil
}

// booking builds a full booking for creation; missing fields are zero and
// fail validation downstream.
func (r bookingRequest) booking() (domain.Booking, error) {
	p, err := r.patch()
	if err != nil {
		return domain.Booking{}, err
	}
	var b domain.Booking
	if p.BookingNumber != nil {
		b.BookingNumber = *p.BookingNumber
	}
	if p.CheckInDate != nil {
		b.CheckInDate = *p.CheckInDate
	}
	if p.CheckOutDate != nil {
		b.CheckOutDate = *p.CheckOutDate
	}
	if p.RoomID != nil {
		b.RoomID = *p.RoomID
	}
	if p.UserID != nil {
		b.UserID = *p.UserID
	}
	return b, nil
}

func parseDay(s *string, field string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("%s must be a date in YYYY-MM-DD format", field)
	}
	return &t, nil
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		BookingNumber: b.BookingNumber,
		CheckInDate:   b.CheckInDate.Format(domain.DateLayout),
		CheckOutDate:  b.CheckOutDate.Format(domain.DateLayout),
		RoomID:        b.RoomID,
		UserID:        b.UserID,
	}
}

func toBookingResponses(bookings []domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, toBookingResponse(&bookings[i]))
	}
	return out
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

// @Summary Create a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body bookingRequest true "Booking"
// @Success 201 {object} bookingResponse
// @Failure 400 {object} errorResponse
// @Failure 404
// @Router /bookings/ [post]
func (h *BookingHandler) create(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	input, err := req.booking()
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBookingResponse(b))
}

// @Summary Update a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param booking body bookingRequest true "Fields to change"
// @Success 200 {object} bookingResponse
// @Failure 400 {object} errorResponse
// @Failure 404
// @Router /bookings/{id} [put]
func (h *BookingHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	patch, err := req.patch()
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	b, err := h.service.UpdateBooking(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteBooking(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) byNumber(c *gin.Context) {
	b, err := h.service.BookingByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponse(b))
}

func (h *BookingHandler) byCheckIn(c *gin.Context) {
	start, end, ok := queryTimeRange(c, "startDate", "endDate")
	if !ok {
		return
	}
	bookings, err := h.service.BookingsByCheckIn(c.Request.Context(), start, end)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) byCheckOut(c *gin.Context) {
	start, end, ok := queryTimeRange(c, "startDate", "endDate")
	if !ok {
		return
	}
	bookings, err := h.service.BookingsByCheckOut(c.Request.Context(), start, end)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) byRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	bookings, err := h.service.BookingsByRoom(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) byUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	bookings, err := h.service.BookingsByUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBookingResponses(bookings))
}
