package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artigadental/utils"
)

// Healthz reports the latest dependency health snapshot.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
