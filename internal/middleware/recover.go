package middleware

import (
	"log"
	"net/http"

	"github.com/wpcellgap-cmyk/stock/internal/util"

	"github.com/gin-gonic/gin"
)

// Recover converts any panic escaping a handler into the uniform failure
// envelope, so import/export surprises surface as a reported failure
// instead of tearing down the request.
func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Terjadi kesalahan tak terduga")
				c.Abort()
			}
		}()
		c.Next()
	}
}
