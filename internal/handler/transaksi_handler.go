package handler

import (
	"net/http"

	"bendahara-api/internal/model"
	"bendahara-api/internal/service"

	"github.com/gin-gonic/gin"
)

type TransaksiHandler struct {
	transaksiService *service.TransaksiService
}

func NewTransaksiHandler(transaksiService *service.TransaksiService) *TransaksiHandler {
	return &TransaksiHandler{transaksiService: transaksiService}
}

func (h *TransaksiHandler) Create(c *gin.Context) {
	var req model.CreateTransaksiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaksi, err := h.transaksiService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": transaksi.ID.String()})
}

func (h *TransaksiHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filter := &model.TransaksiFilter{
		Jenis:    c.Query("jenis"),
		Page:     page,
		PageSize: pageSize,
	}

	response, err := h.transaksiService.List(filter, queryInt(c, "tahun"), queryInt(c, "bulan"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, response)
}
