package account

import (
	"errors"
	"net/http"

	"gitee.com/flycash/opensms-platform/internal/errs"
	accountsvc "gitee.com/flycash/opensms-platform/internal/service/account"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc    accountsvc.Service
	logger *elog.Component
}

func NewHandler(svc accountsvc.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/api/SmsAccount")
	g.GET("/GetAccount", h.GetAccount)
	g.POST("/AddAccount", h.AddAccount)
}

// GetAccount 按名称模糊查询
func (h *Handler) GetAccount(ctx *gin.Context) {
	accs, err := h.svc.SearchByName(ctx.Request.Context(), ctx.Query("name"))
	if err != nil {
		h.logger.Error("查询账号失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, ErrorResp{Message: "系统错误"})
		return
	}
	ctx.JSON(http.StatusOK, newAccounts(accs))
}

func (h *Handler) AddAccount(ctx *gin.Context) {
	acc, err := h.svc.AddAccount(ctx.Request.Context(),
		ctx.Query("name"), ctx.Query("smsSuffix"), ctx.Query("remarks"))
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, newAccount(acc, true))
	case errors.Is(err, errs.ErrInvalidParameter):
		ctx.JSON(http.StatusBadRequest, ErrorResp{Message: err.Error()})
	default:
		h.logger.Error("新建账号失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, ErrorResp{Message: "系统错误"})
	}
}
