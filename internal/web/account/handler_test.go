package account_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"gitee.com/flycash/opensms-platform/internal/domain"
	"gitee.com/flycash/opensms-platform/internal/errs"
	accountmocks "gitee.com/flycash/opensms-platform/internal/service/account/mocks"
	accountweb "gitee.com/flycash/opensms-platform/internal/web/account"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

type AccountHandlerTestSuite struct {
	suite.Suite
}

func (s *AccountHandlerTestSuite) newServer(handler *accountweb.Handler) *egin.Component {
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	handler.PublicRoutes(server.Engine)
	return server
}

func (s *AccountHandlerTestSuite) TestGetAccount() {
	t := s.T()

	testCases := []struct {
		name     string
		query    url.Values
		newSvc   func(ctrl *gomock.Controller) *accountmocks.MockService
		wantCode int
		wantResp []accountweb.Account
	}{
		{
			name:  "查询成功且不返回密钥",
			query: url.Values{"name": {"测试"}},
			newSvc: func(ctrl *gomock.Controller) *accountmocks.MockService {
				svc := accountmocks.NewMockService(ctrl)
				svc.EXPECT().SearchByName(gomock.Any(), "测试").Return([]domain.Account{
					{
						ID:           1,
						AccID:        "1001",
						AccName:      "测试账号",
						AccKey:       "2002",
						AccSecret:    "secret",
						SmsSuffix:    "【测试】",
						Balance:      10,
						Status:       domain.AccountStatusEnabled,
						ProviderCode: "aliyun",
					},
				}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantResp: []accountweb.Account{
				{
					ID:           1,
					AccID:        "1001",
					AccName:      "测试账号",
					AccKey:       "2002",
					SmsSuffix:    "【测试】",
					Balance:      10,
					Status:       1,
					ProviderCode: "aliyun",
				},
			},
		},
		{
			name:  "名称为空返回空列表",
			query: url.Values{"name": {""}},
			newSvc: func(ctrl *gomock.Controller) *accountmocks.MockService {
				svc := accountmocks.NewMockService(ctrl)
				svc.EXPECT().SearchByName(gomock.Any(), "").Return([]domain.Account{}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantResp: []accountweb.Account{},
		},
		{
			name:  "查询出错",
			query: url.Values{"name": {"x"}},
			newSvc: func(ctrl *gomock.Controller) *accountmocks.MockService {
				svc := accountmocks.NewMockService(ctrl)
				svc.EXPECT().SearchByName(gomock.Any(), "x").Return(nil, errors.New("db down"))
				return svc
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server := s.newServer(accountweb.NewHandler(tc.newSvc(ctrl)))
			req, err := http.NewRequest(http.MethodGet, "/api/SmsAccount/GetAccount?"+tc.query.Encode(), nil)
			require.NoError(t, err)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			var resp []accountweb.Account
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantResp, resp)
			assert.NotContains(t, recorder.Body.String(), "AccSecret")
		})
	}
}

func (s *AccountHandlerTestSuite) TestAddAccount() {
	t := s.T()

	testCases := []struct {
		name     string
		query    url.Values
		newSvc   func(ctrl *gomock.Controller) *accountmocks.MockService
		wantCode int
		wantResp accountweb.Account
	}{
		{
			name:  "新建成功并返回密钥",
			query: url.Values{"name": {"测试"}, "smsSuffix": {"品牌"}, "remarks": {"备注"}},
			newSvc: func(ctrl *gomock.Controller) *accountmocks.MockService {
				svc := accountmocks.NewMockService(ctrl)
				svc.EXPECT().AddAccount(gomock.Any(), "测试", "品牌", "备注").Return(domain.Account{
					ID:           3,
					AccID:        "1001",
					AccName:      "测试",
					AccKey:       "2002",
					AccSecret:    "0123456789abcdef0123456789abcdef",
					SmsSuffix:    "【品牌】",
					Status:       domain.AccountStatusEnabled,
					ProviderCode: "aliyun",
					Remarks:      "备注",
				}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			wantResp: accountweb.Account{
				ID:           3,
				AccID:        "1001",
				AccName:      "测试",
				AccKey:       "2002",
				AccSecret:    "0123456789abcdef0123456789abcdef",
				SmsSuffix:    "【品牌】",
				Status:       1,
				ProviderCode: "aliyun",
				Remarks:      "备注",
			},
		},
		{
			name:  "名称为空",
			query: url.Values{"name": {""}},
			newSvc: func(ctrl *gomock.Controller) *accountmocks.MockService {
				svc := accountmocks.NewMockService(ctrl)
				svc.EXPECT().AddAccount(gomock.Any(), "", "", "").
					Return(domain.Account{}, fmt.Errorf("%w: 账号名称不能为空", errs.ErrInvalidParameter))
				return svc
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:  "保存失败",
			query: url.Values{"name": {"x"}},
			newSvc: func(ctrl *gomock.Controller) *accountmocks.MockService {
				svc := accountmocks.NewMockService(ctrl)
				svc.EXPECT().AddAccount(gomock.Any(), "x", "", "").Return(domain.Account{}, errs.ErrAccountDuplicate)
				return svc
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			server := s.newServer(accountweb.NewHandler(tc.newSvc(ctrl)))
			req, err := http.NewRequest(http.MethodPost, "/api/SmsAccount/AddAccount?"+tc.query.Encode(), nil)
			require.NoError(t, err)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			var resp accountweb.Account
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantResp, resp)
		})
	}
}
