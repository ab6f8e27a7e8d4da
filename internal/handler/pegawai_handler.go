package handler

import (
	"net/http"

	"bendahara-api/internal/model"
	"bendahara-api/internal/service"

	"github.com/gin-gonic/gin"
)

type PegawaiHandler struct {
	pegawaiService *service.PegawaiService
}

func NewPegawaiHandler(pegawaiService *service.PegawaiService) *PegawaiHandler {
	return &PegawaiHandler{pegawaiService: pegawaiService}
}

func (h *PegawaiHandler) Create(c *gin.Context) {
	var req model.CreatePegawaiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pegawai, err := h.pegawaiService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": pegawai.ID.String()})
}

func (h *PegawaiHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filter := &model.PegawaiFilter{
		Q:          c.Query("q"),
		Department: c.Query("department"),
		Role:       c.Query("role"),
		Aktif:      queryBool(c, "aktif"),
		Page:       page,
		PageSize:   pageSize,
	}

	response, err := h.pegawaiService.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, response)
}
