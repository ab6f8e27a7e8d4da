package handler

import (
	"net/http"

	"bendahara-api/internal/model"
	"bendahara-api/internal/service"

	"github.com/gin-gonic/gin"
)

type GajiHandler struct {
	gajiService *service.GajiService
}

func NewGajiHandler(gajiService *service.GajiService) *GajiHandler {
	return &GajiHandler{gajiService: gajiService}
}

func (h *GajiHandler) Create(c *gin.Context) {
	var req model.CreateGajiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gaji, err := h.gajiService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": gaji.ID.String()})
}

func (h *GajiHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filter := &model.GajiFilter{
		PegawaiID: c.Query("pegawai_id"),
		Tahun:     queryInt(c, "tahun"),
		Bulan:     queryInt(c, "bulan"),
		Status:    c.Query("status"),
		Page:      page,
		PageSize:  pageSize,
	}

	response, err := h.gajiService.List(filter, c.Query("department"), c.Query("role"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, response)
}
