package handler

import (
	"errors"
	"net/http"

	"bendahara-api/internal/model"
	"bendahara-api/internal/service"

	"github.com/gin-gonic/gin"
)

type SantriHandler struct {
	santriService *service.SantriService
}

func NewSantriHandler(santriService *service.SantriService) *SantriHandler {
	return &SantriHandler{santriService: santriService}
}

func (h *SantriHandler) Create(c *gin.Context) {
	var req model.CreateSantriRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	santri, err := h.santriService.Create(&req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateNIS) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": santri.ID.String()})
}

func (h *SantriHandler) List(c *gin.Context) {
	page, pageSize := parsePagination(c)
	filter := &model.SantriFilter{
		Q:         c.Query("q"),
		Kelas:     c.Query("kelas"),
		Asrama:    c.Query("asrama"),
		Kobong:    c.Query("kobong"),
		Gender:    c.Query("gender"),
		Kabupaten: c.Query("kabupaten"),
		Aktif:     queryBool(c, "aktif"),
		Page:      page,
		PageSize:  pageSize,
	}

	response, err := h.santriService.List(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, response)
}
