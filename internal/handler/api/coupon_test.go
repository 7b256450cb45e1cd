//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"staybook/internal/domain/coupon"
	"staybook/internal/handler/api"
	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/usecase/queries"
	"staybook/tests/common/httptest"
	"staybook/tests/common/testutil"
	queriesmock "staybook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CouponHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCouponQueries
}

func (s *CouponHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *CouponHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCouponQueries(s.mockCtrl)
	s.router.POST("/coupons/validate", api.NewCouponHandler(s.mockQueries).Validate)
}

func (s *CouponHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponHandlerSuite(t *testing.T) {
	suite.Run(t, new(CouponHandlerTestSuite))
}

func (s *CouponHandlerTestSuite) TestValidate() {
	url := "/coupons/validate"
	email := "hanako@example.com"
	reqBody := reqdto.ValidateCouponRequest{Code: "SUMMER10", Subtotal: 750, Nights: 3, GuestEmail: &email}

	s.Run("success: valid coupon reports the discount", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), reqBody.ToCheck()).
			Return(&queries.CouponValidationView{
				Valid:          true,
				DiscountAmount: 75,
				Coupon:         &queries.CouponView{Code: "SUMMER10", DiscountType: coupon.DiscountPercentage, DiscountValue: 1000},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CouponValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Valid)
		s.Require().NotNil(response.DiscountAmount)
		s.Equal(int64(75), *response.DiscountAmount)
		s.Equal("SUMMER10", response.Coupon.Code)
		s.Nil(response.Error)
	})

	s.Run("success: rejection is 200 with an error code", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), gomock.Any()).
			Return(&queries.CouponValidationView{
				Valid:   false,
				Reason:  coupon.ReasonExpired,
				Message: coupon.ErrExpired.Error(),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CouponValidationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Valid)
		s.Nil(response.DiscountAmount)
		s.Require().NotNil(response.Error)
		s.Equal("EXPIRED", response.Error.Code)
		s.Equal("Coupon has expired", response.Error.Message)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing code", mutate: testutil.Field("code", nil)},
			{name: "negative subtotal", mutate: testutil.Field("subtotal", -1)},
			{name: "invalid guest email", mutate: testutil.Field("guestEmail", "nope")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockQueries.EXPECT().Validate(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
