package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumehub/internal/document"
	"resumehub/internal/errcode"
	"resumehub/internal/resume"
)

func Error(c *gin.Context, status, code int, msg string) {
	c.JSON(status, gin.H{"error": msg, "code": code})
}

func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, errcode.InvalidRequest, msg)
}

func Internal(c *gin.Context, msg string) {
	Error(c, http.StatusInternalServerError, errcode.SystemError, msg)
}

// documentResponse 是所有编辑操作的统一返回：当前文档快照，
// Changed 表示本次操作是否产生了更新。
type documentResponse struct {
	Version uint64            `json:"version"`
	Changed bool              `json:"changed"`
	Data    resume.ResumeData `json:"data"`
	Item    any               `json:"item,omitempty"`
}

func Document(c *gin.Context, snap document.Snapshot, changed bool) {
	c.JSON(http.StatusOK, documentResponse{Version: snap.Version, Changed: changed, Data: snap.Data})
}

func DocumentWithItem(c *gin.Context, snap document.Snapshot, item any) {
	c.JSON(http.StatusOK, documentResponse{Version: snap.Version, Changed: true, Data: snap.Data, Item: item})
}
