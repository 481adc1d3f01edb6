package controllers

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/NecoOcean/sky-take-out/pkg/resp"
)

// UploadController stores dish/setmeal images on local disk and hands back
// the path served by the static route. The catalog only ever keeps this
// opaque reference.
type UploadController struct {
	Dir string
}

func NewUploadController(dir string) *UploadController { return &UploadController{Dir: dir} }

// POST /admin/upload
func (h *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}
	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.Dir, name)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"path": "/uploads/" + name})
}
