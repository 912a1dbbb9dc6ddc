package routes

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zsmartex/passbook/config"
	"github.com/zsmartex/passbook/controllers/helpers"
	"github.com/zsmartex/passbook/mocks"
	"github.com/zsmartex/passbook/models"
	"github.com/zsmartex/passbook/repositories"
	"github.com/zsmartex/passbook/routes/middlewares"
	"github.com/zsmartex/passbook/services/regulation_service"
	"github.com/zsmartex/passbook/services/report_service"
	"github.com/zsmartex/passbook/types"
)

type RoutesTestSuite struct {
	suite.Suite

	private_key  *rsa.PrivateKey
	type_savings *mocks.TypeSavingRepository
	reports      *mocks.ReportRepository
	app          *fiber.App
}

func (s *RoutesTestSuite) SetupSuite() {
	config.NewLoggerService()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	s.Require().NoError(err)
	s.private_key = key
}

func (s *RoutesTestSuite) SetupTest() {
	s.type_savings = new(mocks.TypeSavingRepository)
	s.reports = new(mocks.ReportRepository)
	s.app = SetupRouter(Services{
		Regulations: regulation_service.NewRegulationService(s.type_savings, ""),
		Reports:     report_service.NewReportService(s.reports),
	}, &s.private_key.PublicKey)
}

func (s *RoutesTestSuite) TearDownTest() {
	s.type_savings.AssertExpectations(s.T())
	s.reports.AssertExpectations(s.T())
}

func (s *RoutesTestSuite) token(key *rsa.PrivateKey, role types.Role, state types.UserState) string {
	claims := middlewares.Auth{
		UID:   "UID00000001",
		Email: "teller@passbook.local",
		Role:  role,
		State: state,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	s.Require().NoError(err)

	return token
}

func (s *RoutesTestSuite) send(method, path, body, token string) *http.Response {
	var reader io.Reader
	if len(body) > 0 {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if len(body) > 0 {
		req.Header.Set("Content-Type", "application/json")
	}
	if len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)

	return resp
}

func (s *RoutesTestSuite) as(role types.Role, method, path, body string) *http.Response {
	return s.send(method, path, body, s.token(s.private_key, role, types.UserStateActive))
}

func (s *RoutesTestSuite) decode(resp *http.Response, dst interface{}) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(dst))
}

func (s *RoutesTestSuite) errorsOf(resp *http.Response) []string {
	var body helpers.Errors
	s.decode(resp, &body)

	return body.Errors
}

func (s *RoutesTestSuite) TestTimestampIsPublic() {
	resp := s.send("GET", "/api/v2/public/timestamp", "", "")

	s.Equal(200, resp.StatusCode)
	s.NotEmpty(resp.Header.Get(middlewares.RequestIDHeader))
}

func (s *RoutesTestSuite) TestRequiresToken() {
	resp := s.send("GET", "/api/v2/regulations", "", "")

	s.Equal(401, resp.StatusCode)
	s.Equal([]string{helpers.AuthzInvalidSession}, s.errorsOf(resp))
}

func (s *RoutesTestSuite) TestRejectsForeignSignature() {
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	s.Require().NoError(err)

	resp := s.send("GET", "/api/v2/regulations", "", s.token(other, types.RoleAdmin, types.UserStateActive))

	s.Equal(401, resp.StatusCode)
	s.Equal([]string{helpers.JwtDecodeAndVerify}, s.errorsOf(resp))
}

func (s *RoutesTestSuite) TestRejectsLockedUser() {
	resp := s.send("GET", "/api/v2/regulations", "", s.token(s.private_key, types.RoleAdmin, types.UserStateLocked))

	s.Equal(401, resp.StatusCode)
}

func (s *RoutesTestSuite) TestGetRegulations() {
	s.type_savings.On("FindAll", mock.Anything).Return([]models.TypeSaving{
		{TypeID: 1, TypeName: "No term", MinimumBalance: decimal.NewFromInt(100000), MinimumTerm: 15},
	}, nil)

	resp := s.as(types.RoleTeller, "GET", "/api/v2/regulations", "")
	s.Equal(200, resp.StatusCode)

	var regulation regulation_service.Regulation
	s.decode(resp, &regulation)
	s.True(regulation.MinimumBalance.Equal(decimal.NewFromInt(100000)))
	s.Equal(int64(15), regulation.MinimumTermDays)
	s.True(regulation.Persisted)
}

func (s *RoutesTestSuite) TestGetRegulationsStoreFailure() {
	s.type_savings.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused"))

	resp := s.as(types.RoleTeller, "GET", "/api/v2/regulations", "")

	s.Equal(500, resp.StatusCode)
	s.Equal([]string{helpers.ServerInternalError}, s.errorsOf(resp))
}

func patchOf(balance int64, term int64) interface{} {
	return mock.MatchedBy(func(patch models.Patch) bool {
		value, ok := patch[models.ColumnMinimumBalance].(decimal.Decimal)
		return ok && value.Equal(decimal.NewFromInt(balance)) && patch[models.ColumnMinimumTerm] == term
	})
}

func (s *RoutesTestSuite) TestUpdateRegulationsAsAdmin() {
	s.type_savings.On("FindAll", mock.Anything).Return([]models.TypeSaving{
		{TypeID: 1, TypeName: "No term", MinimumBalance: decimal.NewFromInt(50000)},
	}, nil)
	s.type_savings.On("Update", mock.Anything, int64(1), patchOf(100000, 15)).Return(&models.TypeSaving{TypeID: 1}, nil).Once()

	resp := s.as(types.RoleAdmin, "PUT", "/api/v2/admin/regulations", `{"minimumBalance":100000,"minimumTermDays":15}`)
	s.Equal(200, resp.StatusCode)

	var regulation regulation_service.Regulation
	s.decode(resp, &regulation)
	s.True(regulation.Persisted)
}

func (s *RoutesTestSuite) TestUpdateRegulationsAcceptsMisspelledBalance() {
	s.type_savings.On("FindAll", mock.Anything).Return([]models.TypeSaving{
		{TypeID: 1, TypeName: "No term"},
	}, nil)
	s.type_savings.On("Update", mock.Anything, int64(1), patchOf(300000, 0)).Return(&models.TypeSaving{TypeID: 1}, nil).Once()

	resp := s.as(types.RoleAdmin, "PUT", "/api/v2/admin/regulations", `{"minimunBalance":300000,"minimumTermDays":0}`)

	s.Equal(200, resp.StatusCode)
}

func (s *RoutesTestSuite) TestUpdateRegulationsValidation() {
	for _, body := range []string{
		`{"minimumBalance":0,"minimumTermDays":15}`,
		`{"minimumBalance":-5,"minimumTermDays":15}`,
		`{"minimumBalance":100000,"minimumTermDays":-1}`,
		`{"minimumBalance":100000}`,
		`{}`,
	} {
		resp := s.as(types.RoleAdmin, "PUT", "/api/v2/admin/regulations", body)
		s.Equal(422, resp.StatusCode, body)
	}

	s.type_savings.AssertNotCalled(s.T(), "FindAll", mock.Anything)
}

func (s *RoutesTestSuite) TestUpdateRegulationsRequiresAdmin() {
	resp := s.as(types.RoleAccountant, "PUT", "/api/v2/admin/regulations", `{"minimumBalance":100000,"minimumTermDays":15}`)

	s.Equal(403, resp.StatusCode)
	s.Equal([]string{helpers.AuthzPermission}, s.errorsOf(resp))
}

func (s *RoutesTestSuite) TestGetRegulationRates() {
	s.type_savings.On("FindAll", mock.Anything).Return([]models.TypeSaving{
		{TypeID: 1, TypeName: "No term", Interest: decimal.RequireFromString("0.15"), TermPeriod: 0},
		{TypeID: 2, TypeName: "3 months", Interest: decimal.RequireFromString("0.5"), TermPeriod: 3},
	}, nil)

	resp := s.as(types.RoleTeller, "GET", "/api/v2/regulations/rates", "")
	s.Equal(200, resp.StatusCode)

	var rates []regulation_service.RegulationRate
	s.decode(resp, &rates)
	s.Require().Len(rates, 2)
	s.Equal("3 months", rates[1].TypeName)
	s.True(rates[1].Editable)
}

func (s *RoutesTestSuite) TestUpdateRegulationRates() {
	s.type_savings.On("Update", mock.Anything, int64(2), mock.MatchedBy(func(patch models.Patch) bool {
		rate, ok := patch[models.ColumnInterest].(decimal.Decimal)
		return ok && rate.Equal(decimal.RequireFromString("0.65")) &&
			patch[models.ColumnTypeName] == "6 months" &&
			patch[models.ColumnTermPeriod] == int64(6)
	})).Return(&models.TypeSaving{TypeID: 2}, nil).Once()

	resp := s.as(types.RoleAdmin, "PUT", "/api/v2/admin/regulations/rates", `[{"typeSavingId":2,"typeName":"6 months","rate":0.65,"term":6}]`)
	s.Equal(200, resp.StatusCode)

	var result regulation_service.UpdateResult
	s.decode(resp, &result)
	s.Equal("Regulations updated successfully.", result.Message)
}

func (s *RoutesTestSuite) TestUpdateRegulationRatesEmpty() {
	for _, body := range []string{"", "[]", "null"} {
		resp := s.as(types.RoleAdmin, "PUT", "/api/v2/admin/regulations/rates", body)

		s.Equal(422, resp.StatusCode, body)
		s.Equal([]string{"No updates provided"}, s.errorsOf(resp), body)
	}
}

func (s *RoutesTestSuite) TestUpdateRegulationRatesRejectsBadRows() {
	for _, body := range []string{
		`[{"typeSavingId":2,"typeName":"6 months","rate":-0.1,"term":6}]`,
		`[{"typeSavingId":0,"typeName":"6 months","rate":0.1,"term":6}]`,
		`[{"typeSavingId":2,"typeName":"","rate":0.1,"term":6}]`,
	} {
		resp := s.as(types.RoleAdmin, "PUT", "/api/v2/admin/regulations/rates", body)
		s.Equal(422, resp.StatusCode, body)
	}

	s.type_savings.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RoutesTestSuite) TestUpdateRegulationRatesUnknownType() {
	s.type_savings.On("Update", mock.Anything, int64(404), mock.Anything).Return(nil, repositories.ErrRecordNotFound)

	resp := s.as(types.RoleAdmin, "PUT", "/api/v2/admin/regulations/rates", `[{"typeSavingId":404,"typeName":"Ghost","rate":0.1,"term":1}]`)

	s.Equal(404, resp.StatusCode)
	s.Equal([]string{helpers.RecordNotFound}, s.errorsOf(resp))
}

func (s *RoutesTestSuite) TestDailyReport() {
	s.reports.On("GetDailyData", mock.Anything, "2025-10-15").Return(&models.DailyData{
		Types: []models.TypeSaving{{TypeID: 1, TypeName: "No term"}},
		Transactions: []models.Transaction{
			{Amount: decimal.NewFromInt(5000000), TransactionType: models.TransactionTypeDeposit, SavingBook: &models.SavingBook{TypeID: 1}},
			{Amount: decimal.NewFromInt(2000000), TransactionType: models.TransactionTypeWithdraw, SavingBook: &models.SavingBook{TypeID: 1}},
		},
	}, nil)

	resp := s.as(types.RoleAccountant, "GET", "/api/v2/reports/daily?date=2025-10-15", "")
	s.Equal(200, resp.StatusCode)

	var report report_service.DailyReport
	s.decode(resp, &report)
	s.Equal("2025-10-15", report.Date)
	s.True(report.Summary.Difference.Equal(decimal.NewFromInt(3000000)))
}

func (s *RoutesTestSuite) TestDailyReportValidation() {
	for _, path := range []string{
		"/api/v2/reports/daily",
		"/api/v2/reports/daily?date=15-10-2025",
		"/api/v2/reports/daily?date=2025-02-30",
		"/api/v2/reports/daily/transactions?date=yesterday",
	} {
		resp := s.as(types.RoleAccountant, "GET", path, "")
		s.Equal(422, resp.StatusCode, path)
	}
}

func (s *RoutesTestSuite) TestReportsRequireAccountant() {
	resp := s.as(types.RoleTeller, "GET", "/api/v2/reports/daily?date=2025-10-15", "")

	s.Equal(403, resp.StatusCode)
}

func (s *RoutesTestSuite) TestDailyTransactionStatistics() {
	s.reports.On("GetDailyData", mock.Anything, "2025-10-15").Return(&models.DailyData{
		Transactions: []models.Transaction{
			{Amount: decimal.NewFromInt(100), TransactionType: models.TransactionTypeDeposit},
			{Amount: decimal.NewFromInt(40), TransactionType: models.TransactionTypeWithdraw},
		},
	}, nil)

	resp := s.as(types.RoleAdmin, "GET", "/api/v2/reports/daily/transactions?date=2025-10-15", "")
	s.Equal(200, resp.StatusCode)

	var statistics report_service.TransactionStatistics
	s.decode(resp, &statistics)
	s.Equal(1, statistics.DepositCount)
	s.Equal(1, statistics.WithdrawalCount)
	s.True(statistics.TotalAmount.Equal(decimal.NewFromInt(140)))
}

func (s *RoutesTestSuite) TestMonthlyReport() {
	s.reports.On("GetMonthlyData", mock.Anything, int64(1), time.February, 2024).Return(&models.MonthlyData{
		TypeInfo: &models.TypeSaving{TypeID: 1, TypeName: "No term"},
		NewBooks: []models.SavingBook{{BookID: 1, RegisterTime: time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC)}},
	}, nil)

	resp := s.as(types.RoleAccountant, "GET", "/api/v2/reports/monthly?typeSavingId=1&month=2&year=2024", "")
	s.Equal(200, resp.StatusCode)

	var report report_service.MonthlyReport
	s.decode(resp, &report)
	s.Len(report.ByDay, 29)
	s.Equal(1, report.ByDay[28].NewSavingBooks)
	s.Equal("No term", report.TypeName)
}

func (s *RoutesTestSuite) TestMonthlyReportValidation() {
	for _, path := range []string{
		"/api/v2/reports/monthly?typeSavingId=1&month=13&year=2025",
		"/api/v2/reports/monthly?typeSavingId=1&month=0&year=2025",
		"/api/v2/reports/monthly?typeSavingId=1&month=2&year=1999",
		"/api/v2/reports/monthly?month=2&year=2025",
		"/api/v2/reports/monthly?typeSavingId=abc&month=2&year=2025",
	} {
		resp := s.as(types.RoleAccountant, "GET", path, "")
		s.Equal(422, resp.StatusCode, path)
	}

	s.reports.AssertNotCalled(s.T(), "GetMonthlyData", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRoutes(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
