package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Riyadlul Huda Treasurer API running"})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Schema lists the collections backing the API, for tooling and clients.
func Schema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"collections": []string{
			"users", "santri", "pegawai", "pembayaran_syariah", "gaji_pegawai", "transaksi", "refresh_tokens",
		},
	})
}
