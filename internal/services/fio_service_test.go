package services

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/time/rate"

	apperrors "fioapi/internal/errors"
	"fioapi/internal/models"
	"fioapi/internal/services/service_mocks"
)

var testToken = strings.Repeat("t", 64)

const statementJSON = `{"accountStatement":{"info":{"accountId":"2000000000","bankId":"2010","currency":"CZK",
"dateStart":"2023-01-01+0100","dateEnd":"2023-01-31+0100","idLastDownload":124},
"transactionList":{"transaction":[
{"column22":{"value":10001,"name":"ID pohybu","id":22},"column0":{"value":"2023-01-02+0100","name":"Datum","id":0},
"column1":{"value":50.25,"name":"Objem","id":1},"column14":{"value":"CZK","name":"Měna","id":14}}]}}}`

// fakeBank records every request and answers with a fixed status and body
type fakeBank struct {
	mu     sync.Mutex
	paths  []string
	status int
	body   []byte
	delay  time.Duration
}

func (b *fakeBank) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.paths = append(b.paths, r.URL.Path)
	status, body, delay := b.status, b.body, b.delay
	b.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (b *fakeBank) hits() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.paths...)
}

type FioServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	bank    *fakeBank
	server  *httptest.Server
	logs    *bytes.Buffer
	service *FioService
}

func (s *FioServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.bank = &fakeBank{status: http.StatusOK}
	s.server = httptest.NewServer(s.bank)
	s.logs = &bytes.Buffer{}
	s.service = s.newService()
}

func (s *FioServiceTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func TestFioServiceSuite(t *testing.T) {
	suite.Run(t, new(FioServiceTestSuite))
}

func (s *FioServiceTestSuite) newService(opts ...Option) *FioService {
	logger := slog.New(slog.NewTextHandler(s.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	opts = append([]Option{WithBaseURL(s.server.URL + "/v1/rest/")}, opts...)
	svc, err := NewFioService(testToken, logger, opts...)
	s.Require().NoError(err)
	return svc
}

func (s *FioServiceTestSuite) requireCode(err error, code apperrors.ErrorCode) *apperrors.Error {
	s.Require().Error(err)
	var appErr *apperrors.Error
	s.Require().ErrorAs(err, &appErr)
	s.Equal(code, appErr.Code)
	return appErr
}

func (s *FioServiceTestSuite) TestNewFioService_TokenLength() {
	tests := []struct {
		name   string
		length int
		valid  bool
	}{
		{"exact", 64, true},
		{"one short", 63, false},
		{"one long", 65, false},
		{"empty", 0, false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			svc, err := NewFioService(strings.Repeat("a", tt.length), nil)
			if tt.valid {
				s.NoError(err)
				s.NotNil(svc)
				return
			}
			s.Nil(svc)
			appErr := s.requireCode(err, apperrors.ConfigInvalidTokenLength)
			s.Contains(appErr.Error(), "expected 64")
			s.ErrorIs(err, apperrors.ErrInvalidTokenLength)
		})
	}
}

func (s *FioServiceTestSuite) TestNewFioService_InvalidBaseURL() {
	_, err := NewFioService(testToken, nil, WithBaseURL("fioapi.fio.cz/v1/rest"))
	s.requireCode(err, apperrors.ConfigInvalidBaseURL)
}

func (s *FioServiceTestSuite) TestFetchTransactionsForPeriod() {
	s.bank.body = []byte("csv,data\n")

	data, err := s.service.FetchTransactionsForPeriod(context.Background(),
		civil.Date{Year: 2023, Month: 1, Day: 1}, civil.Date{Year: 2023, Month: 1, Day: 31}, models.ReportFormatCSV)

	s.Require().NoError(err)
	s.Equal("csv,data\n", data)
	s.Equal([]string{"/v1/rest/periods/" + testToken + "/2023-01-01/2023-01-31/transactions.csv"}, s.bank.hits())
}

func (s *FioServiceTestSuite) TestFetchTransactionsForPeriod_SameDay() {
	day := civil.Date{Year: 2024, Month: 2, Day: 29}
	_, err := s.service.FetchTransactionsForPeriod(context.Background(), day, day, models.ReportFormatXML)
	s.NoError(err)
	s.Len(s.bank.hits(), 1)
}

func (s *FioServiceTestSuite) TestFetchTransactionsForPeriod_InvalidRangeSendsNothing() {
	_, err := s.service.FetchTransactionsForPeriod(context.Background(),
		civil.Date{Year: 2023, Month: 2, Day: 1}, civil.Date{Year: 2023, Month: 1, Day: 31}, models.ReportFormatJSON)

	s.requireCode(err, apperrors.ValidationInvalidDateRange)
	s.ErrorIs(err, apperrors.ErrInvalidDateRange)
	s.Empty(s.bank.hits())
}

func (s *FioServiceTestSuite) TestFetch_UnknownFormatSendsNothing() {
	_, err := s.service.FetchTransactionsSinceLastDownload(context.Background(), "pdf")
	s.requireCode(err, apperrors.ValidationInvalidFormat)

	_, err = s.service.FetchAccountStatement(context.Background(), 2023, 1, "docx")
	s.requireCode(err, apperrors.ValidationInvalidFormat)

	s.Empty(s.bank.hits())
}

func (s *FioServiceTestSuite) TestFetch_EmptyFormatIsAFormatError() {
	_, err := s.service.FetchTransactionsForPeriod(context.Background(),
		civil.Date{Year: 2023, Month: 1, Day: 1}, civil.Date{Year: 2023, Month: 1, Day: 31}, "")
	s.requireCode(err, apperrors.ValidationInvalidFormat)
	s.ErrorIs(err, apperrors.ErrInvalidFormat)

	_, err = s.service.FetchTransactionsSinceLastDownload(context.Background(), "")
	s.requireCode(err, apperrors.ValidationInvalidFormat)

	_, err = s.service.FetchAccountStatement(context.Background(), 2023, 1, "")
	s.requireCode(err, apperrors.ValidationInvalidFormat)

	s.Empty(s.bank.hits())
}

func (s *FioServiceTestSuite) TestFetchTransactionsSinceLastDownload() {
	s.bank.body = []byte(statementJSON)

	data, err := s.service.FetchTransactionsSinceLastDownload(context.Background(), models.ReportFormatJSON)
	s.Require().NoError(err)
	s.Equal(statementJSON, data)
	s.Equal([]string{"/v1/rest/last/" + testToken + "/transactions.json"}, s.bank.hits())
}

func (s *FioServiceTestSuite) TestFetchAccountStatement_Text() {
	s.bank.body = []byte(":20:MT940")

	data, err := s.service.FetchAccountStatement(context.Background(), 2023, 7, models.StatementFormatMT940)
	s.Require().NoError(err)
	s.False(data.IsBinary())
	s.Equal(":20:MT940", data.Text)
	s.Nil(data.Binary)
	s.Equal([]string{"/v1/rest/by-id/" + testToken + "/2023/7/transactions.mt940"}, s.bank.hits())
}

func (s *FioServiceTestSuite) TestFetchAccountStatement_PDFIsBinary() {
	pdf := []byte{'%', 'P', 'D', 'F', 0x00, 0xff, 0x10}
	s.bank.body = pdf

	data, err := s.service.FetchAccountStatement(context.Background(), 2023, 1, models.StatementFormatPDF)
	s.Require().NoError(err)
	s.True(data.IsBinary())
	s.Equal(pdf, data.Binary)
	s.Empty(data.Text)
}

func (s *FioServiceTestSuite) TestFetchAccountStatement_NegativeID() {
	_, err := s.service.FetchAccountStatement(context.Background(), 2023, -1, models.StatementFormatPDF)
	s.requireCode(err, apperrors.ValidationInvalidParameter)
	s.Empty(s.bank.hits())
}

func (s *FioServiceTestSuite) TestFetchLastStatementInfo() {
	tests := []struct {
		name    string
		body    string
		want    *models.LastStatementInfo
		wantErr bool
	}{
		{"plain", "2023,5", &models.LastStatementInfo{Year: 2023, StatementID: 5}, false},
		{"trailing newline", "2024,12\n", &models.LastStatementInfo{Year: 2024, StatementID: 12}, false},
		{"spaces", " 2024 , 3 ", &models.LastStatementInfo{Year: 2024, StatementID: 3}, false},
		{"single field", "2023", nil, true},
		{"non integer", "2023,abc", nil, true},
		{"empty", "", nil, true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.bank.mu.Lock()
			s.bank.body = []byte(tt.body)
			s.bank.mu.Unlock()

			info, err := s.service.FetchLastStatementInfo(context.Background())
			if tt.wantErr {
				s.requireCode(err, apperrors.DecodeInvalidResponse)
				s.Nil(info)
				return
			}
			s.Require().NoError(err)
			s.Equal(tt.want, info)
		})
	}
}

func (s *FioServiceTestSuite) TestSetLastDownloadedTransactionID() {
	s.Require().NoError(s.service.SetLastDownloadedTransactionID(context.Background(), 123))
	s.Equal([]string{"/v1/rest/set-last-id/" + testToken + "/123/"}, s.bank.hits())

	err := s.service.SetLastDownloadedTransactionID(context.Background(), -5)
	s.requireCode(err, apperrors.ValidationInvalidParameter)
	s.Len(s.bank.hits(), 1)
}

func (s *FioServiceTestSuite) TestSetLastUnsuccessfulDownloadDate() {
	err := s.service.SetLastUnsuccessfulDownloadDate(context.Background(), civil.Date{Year: 2023, Month: 3, Day: 9})
	s.Require().NoError(err)
	s.Equal([]string{"/v1/rest/set-last-date/" + testToken + "/2023-03-09/"}, s.bank.hits())
}

func (s *FioServiceTestSuite) TestStatusClassification() {
	tests := []struct {
		status   int
		code     apperrors.ErrorCode
		sentinel error
	}{
		{http.StatusNotFound, apperrors.APIInvalidRequest, apperrors.ErrInvalidRequest},
		{http.StatusConflict, apperrors.APITimeLimit, apperrors.ErrTimeLimit},
		{http.StatusRequestEntityTooLarge, apperrors.APITooManyItems, apperrors.ErrTooManyItems},
		{http.StatusUnprocessableEntity, apperrors.APIAuthorization, apperrors.ErrAuthorization},
		{http.StatusInternalServerError, apperrors.APIInvalidToken, apperrors.ErrInvalidToken},
		{http.StatusTeapot, apperrors.APIUnexpectedStatus, apperrors.ErrUnexpectedStatus},
		{http.StatusBadGateway, apperrors.APIUnexpectedStatus, apperrors.ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		s.Run(http.StatusText(tt.status), func() {
			s.bank.mu.Lock()
			s.bank.status = tt.status
			s.bank.mu.Unlock()

			err := s.service.SetLastDownloadedTransactionID(context.Background(), 1)
			appErr := s.requireCode(err, tt.code)
			s.Equal(tt.status, appErr.Status)
			s.True(appErr.IsAPIError())
			s.ErrorIs(err, tt.sentinel)
		})
	}
}

func (s *FioServiceTestSuite) TestUnexpectedStatusCarriesCode() {
	s.bank.status = http.StatusServiceUnavailable

	_, err := s.service.FetchTransactionsSinceLastDownload(context.Background(), models.ReportFormatJSON)
	s.requireCode(err, apperrors.APIUnexpectedStatus)
	s.Contains(err.Error(), "503")
}

func (s *FioServiceTestSuite) TestTransportFailureDoesNotLeakToken() {
	s.server.Close()

	_, err := s.service.FetchTransactionsSinceLastDownload(context.Background(), models.ReportFormatJSON)
	s.requireCode(err, apperrors.TransportRequestFailed)
	s.ErrorIs(err, apperrors.ErrTransport)
	s.NotContains(err.Error(), testToken)
	s.Contains(err.Error(), RedactedToken)
	s.NotContains(s.logs.String(), testToken)
}

func (s *FioServiceTestSuite) TestTimeout() {
	s.bank.delay = 200 * time.Millisecond
	svc := s.newService(WithTimeout(20 * time.Millisecond))

	_, err := svc.FetchLastStatementInfo(context.Background())
	s.requireCode(err, apperrors.TransportRequestFailed)
}

func (s *FioServiceTestSuite) TestLogsAreRedacted() {
	s.bank.body = []byte("2023,1")

	_, err := s.service.FetchLastStatementInfo(context.Background())
	s.Require().NoError(err)

	logs := s.logs.String()
	s.NotContains(logs, testToken)
	s.Contains(logs, "/lastStatement/"+RedactedToken+"/statement")
	s.Contains(logs, "request_id=")
}

func (s *FioServiceTestSuite) TestRequestIDFromContextIsReused() {
	ctx := ContextWithRequestID(context.Background(), "req-42")

	_, err := s.service.FetchTransactionsSinceLastDownload(ctx, models.ReportFormatCSV)
	s.Require().NoError(err)
	s.Contains(s.logs.String(), "request_id=req-42")
}

func (s *FioServiceTestSuite) TestMetricsAndRequestLogger() {
	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	requestLogger := service_mocks.NewMockRequestLoggerInterface(s.ctrl)
	svc := s.newService(WithMetrics(metrics), WithRequestLogger(requestLogger))
	s.bank.body = []byte(statementJSON)

	gomock.InOrder(
		requestLogger.EXPECT().LogRequestStarted(gomock.Any(), EndpointPeriods, gomock.Any()).
			Do(func(_ context.Context, _ string, url string) {
				s.NotContains(url, testToken)
			}),
		metrics.EXPECT().IncrementCounter(MetricRequest, map[string]string{"endpoint": EndpointPeriods, "outcome": "ok"}),
		metrics.EXPECT().RecordProcessingTime(MetricRequest, gomock.Any(), map[string]string{"endpoint": EndpointPeriods}),
		requestLogger.EXPECT().LogRequestCompleted(gomock.Any(), EndpointPeriods, http.StatusOK, len(statementJSON), gomock.Any()),
		metrics.EXPECT().AddCounter(MetricTransactionsParsed, float64(1), gomock.Nil()),
		requestLogger.EXPECT().LogTransactionsParsed(gomock.Any(), 1),
	)

	stmt, err := svc.FetchStatementForPeriod(context.Background(),
		civil.Date{Year: 2023, Month: 1, Day: 1}, civil.Date{Year: 2023, Month: 1, Day: 31})
	s.Require().NoError(err)
	s.Equal("CZK", stmt.Info.Currency)
	s.Require().Len(stmt.Transactions, 1)
	s.Equal("10001", stmt.Transactions[0].ID)
}

func (s *FioServiceTestSuite) TestFailedRequestIsRecorded() {
	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	requestLogger := service_mocks.NewMockRequestLoggerInterface(s.ctrl)
	svc := s.newService(WithMetrics(metrics), WithRequestLogger(requestLogger))
	s.bank.status = http.StatusConflict

	requestLogger.EXPECT().LogRequestStarted(gomock.Any(), EndpointLast, gomock.Any())
	metrics.EXPECT().IncrementCounter(MetricRequest, map[string]string{"endpoint": EndpointLast, "outcome": string(apperrors.APITimeLimit)})
	metrics.EXPECT().RecordProcessingTime(MetricRequest, gomock.Any(), gomock.Any())
	requestLogger.EXPECT().LogRequestFailed(gomock.Any(), EndpointLast, gomock.Any(), gomock.Any())

	_, err := svc.FetchStatementSinceLastDownload(context.Background())
	s.ErrorIs(err, apperrors.ErrTimeLimit)
}

func (s *FioServiceTestSuite) TestFetchStatementSinceLastDownload_InvalidBody() {
	s.bank.body = []byte(`{"unexpected":true}`)

	stmt, err := s.service.FetchStatementSinceLastDownload(context.Background())
	s.Nil(stmt)
	s.requireCode(err, apperrors.DecodeInvalidResponse)
}

func (s *FioServiceTestSuite) TestParseHelpers() {
	info, err := s.service.ParseAccountInfo(statementJSON)
	s.Require().NoError(err)
	s.Equal(int64(124), *info.IDLastDownload)

	txns, err := s.service.ParseTransactions(statementJSON)
	s.Require().NoError(err)
	s.Len(txns, 1)

	_, err = s.service.ParseTransactions("[]")
	s.ErrorIs(err, apperrors.ErrInvalidResponse)
	s.Empty(s.bank.hits())
}

func (s *FioServiceTestSuite) TestRateLimiterDelaysWithoutRetry() {
	svc := s.newService(WithRateLimiter(rate.NewLimiter(rate.Every(time.Hour), 1)))

	_, err := svc.FetchTransactionsSinceLastDownload(context.Background(), models.ReportFormatCSV)
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = svc.FetchTransactionsSinceLastDownload(ctx, models.ReportFormatCSV)
	s.requireCode(err, apperrors.TransportRequestFailed)
	s.Len(s.bank.hits(), 1)
}

func (s *FioServiceTestSuite) TestConcurrentUse() {
	s.bank.body = []byte("2023,1")

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.FetchLastStatementInfo(context.Background())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}
	s.Len(s.bank.hits(), 8)
}
