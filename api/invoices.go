package api

import (
	"net/http"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/invoice"
	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	service invoice.InvoiceUseCase
}

func NewInvoiceHandler(service invoice.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{service: service}
}

func (h *InvoiceHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.POST("/", h.create)
	router.GET("/user/:id", h.byUser)
	router.GET("/booking/:id", h.byBooking)
	router.GET("/status/:status", h.byStatus)
	router.GET("/payment-method/:method", h.byMethod)
	router.GET("/date-range", h.byDateRange)
	router.GET("/amount-range", h.byAmountRange)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.delete)
}

func (h *InvoiceHandler) list(c *gin.Context) {
	invoices, err := h.service.ListInvoices(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	inv, err := h.service.GetInvoice(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// @Summary Issue an invoice
// @Description Total is computed as totalAmount + taxAmount - discountAmount.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body domain.InvoicePatch true "Invoice"
// @Success 201 {object} domain.Invoice
// @Failure 400 {object} errorResponse
// @Failure 404
// @Router /invoices/ [post]
func (h *InvoiceHandler) create(c *gin.Context) {
	var req domain.InvoicePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	inv, err := h.service.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// @Summary Update an invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path int true "Invoice ID"
// @Param invoice body domain.InvoicePatch true "Fields to change"
// @Success 200 {object} domain.Invoice
// @Failure 400 {object} errorResponse
// @Failure 404
// @Router /invoices/{id} [put]
func (h *InvoiceHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req domain.InvoicePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	inv, err := h.service.UpdateInvoice(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

func (h *InvoiceHandler) delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteInvoice(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InvoiceHandler) byUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	invoices, err := h.service.InvoicesByUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) byBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	invoices, err := h.service.InvoicesByBooking(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) byStatus(c *gin.Context) {
	invoices, err := h.service.InvoicesByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) byMethod(c *gin.Context) {
	invoices, err := h.service.InvoicesByMethod(c.Request.Context(), c.Param("method"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// @Summary Invoices issued in a time window
// @Tags invoices
// @Produce json
// @Param startDate query string true "Window start (RFC 3339 or YYYY-MM-DDTHH:MM:SS)"
// @Param endDate query string true "Window end"
// @Success 200 {array} domain.Invoice
// @Failure 400 {object} errorResponse
// @Router /invoices/date-range [get]
func (h *InvoiceHandler) byDateRange(c *gin.Context) {
	start, end, ok := queryTimeRange(c, "startDate", "endDate")
	if !ok {
		return
	}
	invoices, err := h.service.InvoicesByDateRange(c.Request.Context(), start, end)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) byAmountRange(c *gin.Context) {
	min, ok := queryFloat(c, "minAmount")
	if !ok {
		return
	}
	max, ok := queryFloat(c, "maxAmount")
	if !ok {
		return
	}
	if min == nil || max == nil {
		badRequest(c, "minAmount and maxAmount are required")
		return
	}

	invoices, err := h.service.InvoicesByAmountRange(c.Request.Context(), *min, *max)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}
