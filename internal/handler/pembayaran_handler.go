package handler

import (
	"net/http"

	"bendahara-api/internal/model"
	"bendahara-api/internal/service"

	"github.com/gin-gonic/gin"
)

type PembayaranHandler struct {
	pembayaranService *service.PembayaranService
}

func NewPembayaranHandler(pembayaranService *service.PembayaranService) *PembayaranHandler {
	return &PembayaranHandler{pembayaranService: pembayaranService}
}

func (h *PembayaranHandler) Create(c *gin.Context) {
	var req model.CreatePembayaranRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pembayaran, err := h.pembayaranService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": pembayaran.ID.String()})
}

func (h *PembayaranHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filter := &model.PembayaranFilter{
		SantriID: c.Query("santri_id"),
		Tahun:    queryInt(c, "tahun"),
		Bulan:    c.Query("bulan"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}

	response, err := h.pembayaranService.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, response)
}
