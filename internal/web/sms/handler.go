package sms

import (
	"net/http"

	"gitee.com/flycash/opensms-platform/internal/errs"
	smssvc "gitee.com/flycash/opensms-platform/internal/service/sms"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc    smssvc.Service
	mdls   []gin.HandlerFunc
	logger *elog.Component
}

// NewHandler mdls 只作用在发送接口上
func NewHandler(svc smssvc.Service, mdls ...gin.HandlerFunc) *Handler {
	return &Handler{
		svc:    svc,
		mdls:   mdls,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/Sms")
	handlers := make([]gin.HandlerFunc, 0, len(h.mdls)+1)
	handlers = append(handlers, h.mdls...)
	g.POST("/Send", append(handlers, h.Send)...)
}

func (h *Handler) Send(ctx *gin.Context) {
	var req SendReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("发送请求格式错误", elog.FieldErr(err))
		ctx.JSON(http.StatusBadRequest, SendResp{Message: errs.ErrParamMissing.Reason})
		return
	}
	resp := h.svc.Send(ctx.Request.Context(), req.toDomain(ctx.ClientIP()))
	ctx.JSON(http.StatusOK, newSendResp(resp))
}
