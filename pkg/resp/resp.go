package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NecoOcean/sky-take-out/pkg/errs"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps a business error kind onto an HTTP status. Unknown errors fall
// through as server errors.
func Error(c *gin.Context, err error) {
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	case errs.KindPreconditionFailed:
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	case errs.KindInvalidArgument:
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	case errs.KindStorageUnavailable:
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "storage unavailable"})
	default:
		ServerError(c, err)
	}
}
