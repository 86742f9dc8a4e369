package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"golang.org/x/time/rate"

	"fioapi/internal/config"
	apperrors "fioapi/internal/errors"
	"fioapi/internal/models"
	"fioapi/internal/parser"
	"fioapi/internal/validation"
)

// RedactedToken replaces the API token wherever a URL is logged or reported
const RedactedToken = "<token>"

// Endpoint names used as log and metric labels
const (
	EndpointPeriods       = "periods"
	EndpointLast          = "last"
	EndpointByID          = "by-id"
	EndpointLastStatement = "lastStatement"
	EndpointSetLastID     = "set-last-id"
	EndpointSetLastDate   = "set-last-date"
)

// Metric names understood by PrometheusMetrics
const (
	MetricRequest            = "fio.request"
	MetricTransactionsParsed = "fio.transactions.parsed"
	MetricParseFailed        = "fio.parse.failed"
	MetricLastStatement      = "fio.last_statement"
)

// FioService talks to one account identified by its token. It holds no
// per-call state and can be shared between goroutines.
type FioService struct {
	token         string
	baseURL       string
	timeout       time.Duration
	client        *http.Client
	logger        *slog.Logger
	requestLogger RequestLoggerInterface
	metrics       MetricsRecorderInterface
	limiter       *rate.Limiter
	validator     *validation.Validator
}

var _ FioServiceInterface = (*FioService)(nil)

// Option configures a FioService
type Option func(*FioService)

// WithBaseURL points the client at another deployment, such as a mock server
func WithBaseURL(baseURL string) Option {
	return func(s *FioService) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout bounds each request including reading the body. It is ignored
// when a custom client is supplied with WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(s *FioService) {
		s.timeout = timeout
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(s *FioService) {
		s.client = client
	}
}

func WithMetrics(metrics MetricsRecorderInterface) Option {
	return func(s *FioService) {
		s.metrics = metrics
	}
}

func WithRequestLogger(requestLogger RequestLoggerInterface) Option {
	return func(s *FioService) {
		s.requestLogger = requestLogger
	}
}

// WithRateLimiter delays outgoing requests so that the bank's minimum interval
// between calls is respected. Nothing is retried.
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(s *FioService) {
		s.limiter = limiter
	}
}

// NewFioService creates a client for the account owning token. The token must
// be exactly 64 bytes long.
func NewFioService(token string, logger *slog.Logger, opts ...Option) (*FioService, error) {
	if len(token) != validation.TokenLength {
		return nil, apperrors.NewInvalidTokenLength(validation.TokenLength, len(token))
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &FioService{
		token:     token,
		baseURL:   config.DefaultBaseURL,
		timeout:   config.DefaultTimeout,
		logger:    logger,
		metrics:   NoopMetrics{},
		validator: validation.GetValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}

	u, err := url.Parse(s.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, apperrors.New(apperrors.ConfigInvalidBaseURL, apperrors.WithDetails(s.baseURL))
	}
	if s.client == nil {
		s.client = &http.Client{Timeout: s.timeout}
	}
	if s.requestLogger == nil {
		s.requestLogger = NewRequestLogger(logger)
	}

	return s, nil
}

type periodRequest struct {
	Format models.TransactionReportFormat `json:"format" validate:"report_format"`
}

type statementRequest struct {
	Year        int                           `json:"year" validate:"gte=0"`
	StatementID int64                         `json:"statement_id" validate:"gte=0"`
	Format      models.AccountStatementFormat `json:"format" validate:"statement_format"`
}

type lastIDRequest struct {
	ID int64 `json:"id" validate:"gte=0"`
}

func (s *FioService) FetchTransactionsForPeriod(ctx context.Context, from, to civil.Date, format models.TransactionReportFormat) (string, error) {
	if from.After(to) {
		return "", apperrors.NewInvalidDateRange(from, to)
	}
	if err := s.validator.Struct(periodRequest{Format: format}); err != nil {
		return "", err
	}

	path := fmt.Sprintf("/periods/%s/%s/%s/transactions.%s", s.token, from, to, format)
	body, err := s.get(ctx, EndpointPeriods, path)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (s *FioService) FetchTransactionsSinceLastDownload(ctx context.Context, format models.TransactionReportFormat) (string, error) {
	if err := s.validator.Struct(periodRequest{Format: format}); err != nil {
		return "", err
	}

	path := fmt.Sprintf("/last/%s/transactions.%s", s.token, format)
	body, err := s.get(ctx, EndpointLast, path)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (s *FioService) FetchAccountStatement(ctx context.Context, year int, statementID int64, format models.AccountStatementFormat) (*models.StatementData, error) {
	req := statementRequest{Year: year, StatementID: statementID, Format: format}
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/by-id/%s/%d/%d/transactions.%s", s.token, year, statementID, format)
	body, err := s.get(ctx, EndpointByID, path)
	if err != nil {
		return nil, err
	}

	data := &models.StatementData{Format: format}
	if format.IsBinary() {
		data.Binary = body
	} else {
		data.Text = string(body)
	}
	return data, nil
}

// FetchLastStatementInfo reads the "year,id" pair of the newest statement
func (s *FioService) FetchLastStatementInfo(ctx context.Context) (*models.LastStatementInfo, error) {
	path := fmt.Sprintf("/lastStatement/%s/statement", s.token)
	body, err := s.get(ctx, EndpointLastStatement, path)
	if err != nil {
		return nil, err
	}

	info, err := parseLastStatement(string(body))
	if err != nil {
		s.metrics.IncrementCounter(MetricParseFailed, map[string]string{"target": "last_statement"})
		s.requestLogger.LogParseFailed(ctx, "last_statement", err)
		return nil, err
	}

	s.metrics.RecordGauge(MetricLastStatement, float64(info.Year), map[string]string{"field": "year"})
	s.metrics.RecordGauge(MetricLastStatement, float64(info.StatementID), map[string]string{"field": "statement_id"})
	return info, nil
}

func (s *FioService) SetLastDownloadedTransactionID(ctx context.Context, id int64) error {
	if err := s.validator.Struct(lastIDRequest{ID: id}); err != nil {
		return err
	}

	path := fmt.Sprintf("/set-last-id/%s/%d/", s.token, id)
	_, err := s.get(ctx, EndpointSetLastID, path)
	return err
}

func (s *FioService) SetLastUnsuccessfulDownloadDate(ctx context.Context, date civil.Date) error {
	path := fmt.Sprintf("/set-last-date/%s/%s/", s.token, date)
	_, err := s.get(ctx, EndpointSetLastDate, path)
	return err
}

func (s *FioService) FetchStatementForPeriod(ctx context.Context, from, to civil.Date) (*models.Statement, error) {
	data, err := s.FetchTransactionsForPeriod(ctx, from, to, models.ReportFormatJSON)
	if err != nil {
		return nil, err
	}
	return s.parseStatement(ctx, data)
}

func (s *FioService) FetchStatementSinceLastDownload(ctx context.Context) (*models.Statement, error) {
	data, err := s.FetchTransactionsSinceLastDownload(ctx, models.ReportFormatJSON)
	if err != nil {
		return nil, err
	}
	return s.parseStatement(ctx, data)
}

func (s *FioService) ParseAccountInfo(data string) (*models.AccountInfo, error) {
	info, err := parser.ParseAccountInfo([]byte(data))
	if err != nil {
		s.recordParseFailure(context.Background(), "account_info", err)
		return nil, err
	}
	return info, nil
}

func (s *FioService) ParseTransactions(data string) ([]models.Transaction, error) {
	txns, err := parser.ParseTransactions([]byte(data))
	if err != nil {
		s.recordParseFailure(context.Background(), "transactions", err)
		return nil, err
	}
	s.recordParsed(context.Background(), len(txns))
	return txns, nil
}

func (s *FioService) parseStatement(ctx context.Context, data string) (*models.Statement, error) {
	stmt, err := parser.ParseStatement([]byte(data))
	if err != nil {
		s.recordParseFailure(ctx, "statement", err)
		return nil, err
	}
	s.recordParsed(ctx, len(stmt.Transactions))
	return stmt, nil
}

func (s *FioService) recordParsed(ctx context.Context, count int) {
	s.metrics.AddCounter(MetricTransactionsParsed, float64(count), nil)
	s.requestLogger.LogTransactionsParsed(ctx, count)
}

func (s *FioService) recordParseFailure(ctx context.Context, target string, err error) {
	s.metrics.IncrementCounter(MetricParseFailed, map[string]string{"target": target})
	s.requestLogger.LogParseFailed(ctx, target, err)
}

// get sends one GET to baseURL+path and returns the body of a 2xx response
func (s *FioService) get(ctx context.Context, endpoint, path string) ([]byte, error) {
	ctx = ensureRequestID(ctx)
	redacted := s.redact(s.baseURL + path)

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, apperrors.NewTransportError(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, apperrors.NewTransportError(s.redactError(err, redacted))
	}
	req.Header.Set(RequestIDHeader, RequestIDFromContext(ctx))

	s.requestLogger.LogRequestStarted(ctx, endpoint, redacted)
	start := time.Now()

	resp, err := s.client.Do(req)
	if err != nil {
		appErr := apperrors.NewTransportError(s.redactError(err, redacted))
		s.finish(ctx, endpoint, start, string(appErr.Code), appErr)
		return nil, appErr
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		appErr := apperrors.New(apperrors.TransportReadFailed, apperrors.WithCause(s.redactError(err, redacted)))
		s.finish(ctx, endpoint, start, string(appErr.Code), appErr)
		return nil, appErr
	}

	if apiErr := apperrors.FromHTTPStatus(resp.StatusCode); apiErr != nil {
		s.finish(ctx, endpoint, start, string(apiErr.Code), apiErr)
		return nil, apiErr
	}

	s.finish(ctx, endpoint, start, "ok", nil)
	s.requestLogger.LogRequestCompleted(ctx, endpoint, resp.StatusCode, len(body), time.Since(start))
	return body, nil
}

func (s *FioService) finish(ctx context.Context, endpoint string, start time.Time, outcome string, err error) {
	duration := time.Since(start)
	s.metrics.IncrementCounter(MetricRequest, map[string]string{"endpoint": endpoint, "outcome": outcome})
	s.metrics.RecordProcessingTime(MetricRequest, duration, map[string]string{"endpoint": endpoint})
	if err != nil {
		s.requestLogger.LogRequestFailed(ctx, endpoint, err, duration)
	}
}

func (s *FioService) redact(raw string) string {
	return strings.ReplaceAll(raw, s.token, RedactedToken)
}

// redactError rewrites errors from net/http, which embed the full request URL
func (s *FioService) redactError(err error, redactedURL string) error {
	var urlErr *url.Error
	if stderrors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: redactedURL, Err: urlErr.Err}
	}
	if strings.Contains(err.Error(), s.token) {
		return stderrors.New(s.redact(err.Error()))
	}
	return err
}

func parseLastStatement(body string) (*models.LastStatementInfo, error) {
	parts := strings.Split(strings.TrimSpace(body), ",")
	if len(parts) < 2 {
		return nil, apperrors.NewInvalidResponse(fmt.Errorf("expected \"year,id\", got %q", body))
	}

	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, apperrors.NewInvalidResponse(fmt.Errorf("statement year: %w", err))
	}
	id, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, apperrors.NewInvalidResponse(fmt.Errorf("statement id: %w", err))
	}

	return &models.LastStatementInfo{Year: year, StatementID: id}, nil
}
