package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/labstack/echo/v4"

	apierrors "fioapi/internal/errors"
	"fioapi/internal/models"
	"fioapi/internal/repositories"
)

const reportFilePrefix = "transactions."

// Formats the mock bank can render. The bank knows more (see models), those
// are answered with 404 here.
var servedFormats = map[string]bool{
	string(models.StatementFormatJSON): true,
	string(models.StatementFormatCSV):  true,
	string(models.StatementFormatXML):  true,
	string(models.StatementFormatPDF):  true,
}

// FioHandler serves the bank API endpoints from the ledger store
type FioHandler struct {
	repo     repositories.LedgerRepositoryInterface
	maxItems int
	logger   *slog.Logger
}

// NewFioHandler creates a new bank API handler. Reports with more than
// maxItems movements are refused with 413.
func NewFioHandler(repo repositories.LedgerRepositoryInterface, maxItems int, logger *slog.Logger) *FioHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FioHandler{
		repo:     repo,
		maxItems: maxItems,
		logger:   logger,
	}
}

// RegisterRoutes mounts the six endpoint templates on g
func (h *FioHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/periods/:token/:from/:to/:file", h.Periods)
	g.GET("/last/:token/:file", h.Last)
	g.GET("/by-id/:token/:year/:id/:file", h.ByID)
	g.GET("/lastStatement/:token/statement", h.LastStatement)
	g.GET("/set-last-id/:token/:id/", h.SetLastID)
	g.GET("/set-last-date/:token/:date/", h.SetLastDate)
}

type periodsParams struct {
	From string `param:"from" validate:"required"`
	To   string `param:"to" validate:"required"`
	File string `param:"file" validate:"required"`
}

type lastParams struct {
	File string `param:"file" validate:"required"`
}

type byIDParams struct {
	Year int    `param:"year" validate:"gte=1900"`
	ID   int    `param:"id" validate:"gte=1,lte=12"`
	File string `param:"file" validate:"required"`
}

type setLastIDParams struct {
	ID int64 `param:"id" validate:"gte=0"`
}

type setLastDateParams struct {
	Date string `param:"date" validate:"required"`
}

// Periods returns the movements booked between two dates inclusive
func (h *FioHandler) Periods(c echo.Context) error {
	account, err := h.account(c)
	if err != nil || account == nil {
		return err
	}

	var p periodsParams
	if err := h.bind(c, &p); err != nil {
		return SendError(c, apierrors.APIInvalidRequest, apierrors.WithDetails(err.Error()))
	}
	format, ok := reportFormat(p.File)
	if !ok {
		return SendError(c, apierrors.APIInvalidRequest, apierrors.WithDetails("unsupported file "+p.File))
	}
	from, errFrom := civil.ParseDate(p.From)
	to, errTo := civil.ParseDate(p.To)
	if errFrom != nil || errTo != nil || from.After(to) {
		return SendError(c, apierrors.APIInvalidRequest, apierrors.WithDetails("invalid period"))
	}

	entries, err := h.repo.GetByDateRange(account.Token, from, to)
	if err != nil {
		return SendSystemError(c, err)
	}
	if len(entries) > h.maxItems {
		return SendError(c, apierrors.APITooManyItems)
	}

	opening, err := h.repo.BalanceBefore(account.Token, from)
	if err != nil {
		return SendSystemError(c, err)
	}

	view := &statementView{
		Account:        account,
		Entries:        entries,
		Opening:        opening,
		DateStart:      from,
		DateEnd:        to,
		IDLastDownload: &account.LastDownloadID,
	}
	return h.send(c, "periods", format, view)
}

// Last returns the movements after the download marker and advances it
func (h *FioHandler) Last(c echo.Context) error {
	account, err := h.account(c)
	if err != nil || account == nil {
		return err
	}

	var p lastParams
	if err := h.bind(c, &p); err != nil {
		return SendError(c, apierrors.APIInvalidRequest, apierrors.WithDetails(err.Error()))
	}
	format, ok := reportFormat(p.File)
	if !ok {
		return SendError(c, apierrors.APIInvalidRequest, apierrors.WithDetails("unsupported file "+p.File))
	}

	previous := account.LastDownloadID
	entries, err := h.repo.GetAfterID(account.Token, previous)
	if err != nil {
		return SendSystemError(c, err)
	}
	if len(entries) > h.maxItems {
		return SendError(c, apierrors.APITooManyItems)
	}

	opening, err := h.repo.BalanceUpToID(account.Token, previous)
	if err != nil {
		return SendSystemError(c, err)
	}

	today := civil.DateOf(time.Now().UTC())
	view := &statementView{
		Account:        account,
		Entries:        entries,
		Opening:        opening,
		DateStart:      today,
		DateEnd:        today,
		IDLastDownload: &previous,
	}
	if len(entries) > 0 {
		view.DateStart = entries[0].Date()
		view.DateEnd = entries[len(entries)-1].Date()
	}

	contentType, body, err := render(view, format)
	if err != nil {
		return SendSystemError(c, err)
	}

	if len(entries) > 0 {
		if err := h.repo.SetLastDownloadID(account.Token, entries[len(entries)-1].ID); err != nil {
			return SendSystemError(c, err)
		}
	}

	h.logServed(c, "last", format, len(entries))
	return c.Blob(http.StatusOK, contentType, body)
}

// ByID returns one monthly statement. Statement ids are months.
func (h *FioHandler) ByID(c echo.Context) error {
	account, err := h.account(c)
	if err != nil || account == nil {
		return err
	}

	var p byIDParams
	if err := h.bind(c, &p); err != nil {
		return SendError(c, apierrors.APIInvalidRequest, apierrors.WithDetails(err.Error()))
	}
	format, ok := statementFormat(p.File)
	if !ok {
		return SendError(c, apierrors.APIInvalidRequest, apierrors.WithDetails("unsupported file "+p.File))
	}

	lastYear, lastID, err := h.repo.GetLastStatement(account.Token)
	if err != nil && !errors.Is(err, repositories.ErrStatementNotFound) {
		return SendSystemError(c, err)
	}
	if err != nil || p.Year > lastYear || (p.Year == lastYear && p.ID > lastID) {
		return SendError(c, apierrors.APIInvalidRequest, apierrors.WithDetails("statement does not exist"))
	}

	entries, err := h.repo.GetByStatement(account.Token, p.Year, p.ID)
	if err != nil {
		return SendSystemError(c, err)
	}
	if len(entries) > h.maxItems {
		return SendError(c, apierrors.APITooManyItems)
	}

	start := civil.Date{Year: p.Year, Month: time.Month(p.ID), Day: 1}
	end := civil.Date{Year: p.Year, Month: time.Month(p.ID) + 1, Day: 1}
	end = civil.DateOf(end.In(time.UTC)).AddDays(-1)

	opening, err := h.repo.BalanceBefore(account.Token, start)
	if err != nil {
		return SendSystemError(c, err)
	}

	year, id := int32(p.Year), int32(p.ID)
	view := &statementView{
		Account:   account,
		Entries:   entries,
		Opening:   opening,
		DateStart: start,
		DateEnd:   end,
		YearList:  &year,
		IDList:    &id,
	}
	return h.send(c, "by-id", format, view)
}

// LastStatement answers "year,id" of the newest statement
func (h *FioHandler) LastStatement(c echo.Context) error {
	account, err := h.account(c)
	if err != nil || account == nil {
		return err
	}

	year, id, err := h.repo.GetLastStatement(account.Token)
	if err != nil {
		if errors.Is(err, repositories.ErrStatementNotFound) {
			return SendError(c, apierrors.APIInvalidRequest, apierrors.WithDetails("no statement issued yet"))
		}
		return SendSystemError(c, err)
	}

	return c.String(http.StatusOK, formatLastStatement(year, id))
}

// SetLastID moves the download marker to a movement id
func (h *FioHandler) SetLastID(c echo.Context) error {
	account, err := h.account(c)
	if err != nil || account == nil {
		return err
	}

	var p setLastIDParams
	if err := h.bind(c, &p); err != nil {
		return SendError(c, apierrors.APIInvalidRequest, apierrors.WithDetails(err.Error()))
	}

	if err := h.repo.SetLastDownloadID(account.Token, p.ID); err != nil {
		return SendSystemError(c, err)
	}

	h.logger.Info("download marker set", "event_type", "set_last_id", "id", p.ID, "trace_id", getTraceID(c))
	return c.NoContent(http.StatusOK)
}

// SetLastDate moves the download marker to the last movement booked before a date
func (h *FioHandler) SetLastDate(c echo.Context) error {
	account, err := h.account(c)
	if err != nil || account == nil {
		return err
	}

	var p setLastDateParams
	if err := h.bind(c, &p); err != nil {
		return SendError(c, apierrors.APIInvalidRequest, apierrors.WithDetails(err.Error()))
	}
	date, err := civil.ParseDate(p.Date)
	if err != nil {
		return SendError(c, apierrors.APIInvalidRequest, apierrors.WithDetails("invalid date"))
	}

	id, err := h.repo.SetLastDownloadDate(account.Token, date)
	if err != nil {
		return SendSystemError(c, err)
	}

	h.logger.Info("download marker set", "event_type", "set_last_date", "date", date.String(), "id", id, "trace_id", getTraceID(c))
	return c.NoContent(http.StatusOK)
}

// account resolves the token path parameter. When it returns a nil account
// the response has already been written and the returned error must be
// passed on.
func (h *FioHandler) account(c echo.Context) (*models.MockAccount, error) {
	account, err := h.repo.GetAccount(c.Param("token"))
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, SendError(c, apierrors.APIInvalidToken)
		}
		return nil, SendSystemError(c, err)
	}
	return account, nil
}

func (h *FioHandler) bind(c echo.Context, params any) error {
	if err := c.Bind(params); err != nil {
		return err
	}
	return c.Validate(params)
}

func (h *FioHandler) send(c echo.Context, endpoint, format string, view *statementView) error {
	contentType, body, err := render(view, format)
	if err != nil {
		return SendSystemError(c, err)
	}

	h.logServed(c, endpoint, format, len(view.Entries))
	return c.Blob(http.StatusOK, contentType, body)
}

func (h *FioHandler) logServed(c echo.Context, endpoint, format string, count int) {
	h.logger.Info("report served",
		"event_type", "report_served",
		"endpoint", endpoint,
		"format", format,
		"count", count,
		"trace_id", getTraceID(c),
	)
}

func render(view *statementView, format string) (string, []byte, error) {
	switch format {
	case string(models.StatementFormatJSON):
		resp, err := view.toFioResponse()
		if err != nil {
			return "", nil, err
		}
		body, err := json.Marshal(resp)
		if err != nil {
			return "", nil, err
		}
		return echo.MIMEApplicationJSON, body, nil
	case string(models.StatementFormatCSV):
		body, err := view.renderCSV()
		return "text/csv; charset=UTF-8", body, err
	case string(models.StatementFormatXML):
		body, err := view.renderXML()
		return echo.MIMEApplicationXMLCharsetUTF8, body, err
	case string(models.StatementFormatPDF):
		body, err := view.renderPDF()
		return "application/pdf", body, err
	}
	return "", nil, apierrors.New(apierrors.ValidationInvalidFormat, apierrors.WithDetails(format))
}

// reportFormat extracts the format of a "transactions.<fmt>" file name
func reportFormat(file string) (string, bool) {
	name, ok := strings.CutPrefix(file, reportFilePrefix)
	if !ok || !models.TransactionReportFormat(name).IsValid() {
		return "", false
	}
	return name, servedFormats[name]
}

func statementFormat(file string) (string, bool) {
	name, ok := strings.CutPrefix(file, reportFilePrefix)
	if !ok || !models.AccountStatementFormat(name).IsValid() {
		return "", false
	}
	return name, servedFormats[name]
}
