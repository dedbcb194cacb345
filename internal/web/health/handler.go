package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const greeting = "Hello World !"

// Handler 存活探测
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/api/Test/Index", h.Index)
}

func (h *Handler) Index(ctx *gin.Context) {
	ctx.String(http.StatusOK, greeting)
}
