package handler

import (
	"net/http"

	"bendahara-api/internal/model"
	"bendahara-api/internal/service"

	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	summaryService *service.SummaryService
}

func NewSummaryHandler(summaryService *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

func (h *SummaryHandler) Summary(c *gin.Context) {
	filter := &model.SummaryFilter{
		Tahun:  queryInt(c, "tahun"),
		Bulan:  queryInt(c, "bulan"),
		Asrama: c.Query("asrama"),
		Kelas:  c.Query("kelas"),
		Gender: c.Query("gender"),
	}

	report, err := h.summaryService.Summarize(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, report)
}
