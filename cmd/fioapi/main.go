package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"cloud.google.com/go/civil"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"fioapi/internal/config"
	apperrors "fioapi/internal/errors"
	"fioapi/internal/models"
	"fioapi/internal/services"
)

const (
	defaultPeriodDays = 30
	commandTimeout    = 2 * time.Minute
)

// serviceFactory builds the API client for one command invocation
type serviceFactory func(token string, logger *slog.Logger, opts ...services.Option) (services.FioServiceInterface, error)

func newFioService(token string, logger *slog.Logger, opts ...services.Option) (services.FioServiceInterface, error) {
	return services.NewFioService(token, logger, opts...)
}

type cli struct {
	stdout     io.Writer
	stderr     io.Writer
	defaults   config.ClientConfig
	logger     *slog.Logger
	newService serviceFactory
	now        func() time.Time
}

// commonFlags are accepted by every subcommand
type commonFlags struct {
	token       string
	baseURL     string
	metricsFile string
}

// newCLI validates the client settings before any command runs
func newCLI(cfg *config.Config, stdout, stderr io.Writer) (*cli, error) {
	if err := cfg.ValidateClient(); err != nil {
		return nil, err
	}
	return &cli{
		stdout:     stdout,
		stderr:     stderr,
		defaults:   cfg.Client,
		logger:     cfg.Log.NewLogger(stderr),
		newService: newFioService,
		now:        time.Now,
	}, nil
}

func main() {
	app, err := newCLI(config.Load(), os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	err = app.run(ctx, os.Args[1:])
	cancel()
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func (c *cli) printUsage() {
	fmt.Fprintln(c.stdout, "Fio banka API client")
	fmt.Fprintln(c.stdout, "\nUsage:")
	fmt.Fprintln(c.stdout, "  fioapi <command> [options]")
	fmt.Fprintln(c.stdout, "\nCommands:")
	fmt.Fprintln(c.stdout, "  fetch-period     Download movements for a date range (default: last 30 days)")
	fmt.Fprintln(c.stdout, "  fetch-last       Download movements since the last download and advance the marker")
	fmt.Fprintln(c.stdout, "  fetch-statement  Download an official account statement")
	fmt.Fprintln(c.stdout, "  last-info        Show year and id of the newest statement")
	fmt.Fprintln(c.stdout, "  set-last-id      Move the last-download marker to a movement id")
	fmt.Fprintln(c.stdout, "  set-last-date    Move the last-download marker to a date")
	fmt.Fprintln(c.stdout, "  help             Show this help message")
	fmt.Fprintln(c.stdout, "\nThe token is read from -token or FIO_API_TOKEN.")
	fmt.Fprintln(c.stdout, "Run 'fioapi <command> -h' for more information on a command.")
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		c.printUsage()
		return apperrors.New(apperrors.UsageInvalidCommand, apperrors.WithDetails("missing command"))
	}

	switch args[0] {
	case "fetch-period":
		return c.runFetchPeriod(ctx, args[1:])
	case "fetch-last":
		return c.runFetchLast(ctx, args[1:])
	case "fetch-statement":
		return c.runFetchStatement(ctx, args[1:])
	case "last-info":
		return c.runLastInfo(ctx, args[1:])
	case "set-last-id":
		return c.runSetLastID(ctx, args[1:])
	case "set-last-date":
		return c.runSetLastDate(ctx, args[1:])
	case "help", "-h", "--help":
		c.printUsage()
		return nil
	default:
		c.printUsage()
		return apperrors.New(apperrors.UsageInvalidCommand, apperrors.WithDetails("unknown command "+args[0]))
	}
}

func (c *cli) newFlagSet(name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)

	common := &commonFlags{}
	fs.StringVar(&common.token, "token", "", "API token (default $FIO_API_TOKEN)")
	fs.StringVar(&common.baseURL, "base-url", "", "API base URL (default $FIO_BASE_URL or production)")
	fs.StringVar(&common.metricsFile, "metrics-file", "", "write request metrics to this file in Prometheus text format")
	return fs, common
}

// withService builds a client from the common flags, runs fn and dumps the
// metrics file if one was requested, even when fn failed.
func (c *cli) withService(common *commonFlags, fn func(svc services.FioServiceInterface) error) error {
	token := common.token
	if token == "" {
		token = c.defaults.Token
	}
	if token == "" {
		return apperrors.New(apperrors.UsageInvalidCommand, apperrors.WithDetails("token required: use -token or FIO_API_TOKEN"))
	}

	baseURL := common.baseURL
	if baseURL == "" {
		baseURL = c.defaults.BaseURL
	}

	var opts []services.Option
	if baseURL != "" {
		opts = append(opts, services.WithBaseURL(baseURL))
	}
	if c.defaults.Timeout > 0 {
		opts = append(opts, services.WithTimeout(c.defaults.Timeout))
	}
	if c.defaults.MinRequestInterval > 0 {
		opts = append(opts, services.WithRateLimiter(rate.NewLimiter(rate.Every(c.defaults.MinRequestInterval), 1)))
	}

	var registry *prometheus.Registry
	if common.metricsFile != "" {
		registry = prometheus.NewRegistry()
		opts = append(opts, services.WithMetrics(services.NewPrometheusMetrics(registry)))
	}

	svc, err := c.newService(token, c.logger, opts...)
	if err != nil {
		return err
	}

	runErr := fn(svc)
	if registry != nil {
		if err := prometheus.WriteToTextfile(common.metricsFile, registry); err != nil && runErr == nil {
			runErr = fmt.Errorf("failed to write metrics file: %w", err)
		}
	}
	return runErr
}

func (c *cli) runFetchPeriod(ctx context.Context, args []string) error {
	fs, common := c.newFlagSet("fetch-period")
	start := fs.String("start", "", "first day, YYYY-MM-DD (default 30 days ago)")
	end := fs.String("end", "", "last day, YYYY-MM-DD (default today)")
	format := fs.String("format", "json", "report format: csv, gpc, html, json, ofx, xml")
	parse := fs.Bool("parse", false, "print decoded movements instead of the raw report")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkParseFormat(*parse, *format); err != nil {
		return err
	}

	today := civil.DateOf(c.now())
	to, err := parseDateFlag("end", *end, today)
	if err != nil {
		return err
	}
	from, err := parseDateFlag("start", *start, to.AddDays(-defaultPeriodDays))
	if err != nil {
		return err
	}

	return c.withService(common, func(svc services.FioServiceInterface) error {
		if *parse {
			statement, err := svc.FetchStatementForPeriod(ctx, from, to)
			if err != nil {
				return err
			}
			return c.printStatement(statement)
		}

		data, err := svc.FetchTransactionsForPeriod(ctx, from, to, reportFormat(*format))
		if err != nil {
			return err
		}
		return c.printText(data)
	})
}

func (c *cli) runFetchLast(ctx context.Context, args []string) error {
	fs, common := c.newFlagSet("fetch-last")
	format := fs.String("format", "json", "report format: csv, gpc, html, json, ofx, xml")
	parse := fs.Bool("parse", false, "print decoded movements instead of the raw report")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkParseFormat(*parse, *format); err != nil {
		return err
	}

	return c.withService(common, func(svc services.FioServiceInterface) error {
		if *parse {
			statement, err := svc.FetchStatementSinceLastDownload(ctx)
			if err != nil {
				return err
			}
			return c.printStatement(statement)
		}

		data, err := svc.FetchTransactionsSinceLastDownload(ctx, reportFormat(*format))
		if err != nil {
			return err
		}
		return c.printText(data)
	})
}

func (c *cli) runFetchStatement(ctx context.Context, args []string) error {
	fs, common := c.newFlagSet("fetch-statement")
	year := fs.Int("year", c.now().Year(), "statement year")
	id := fs.Int64("id", -1, "statement number within the year (required)")
	format := fs.String("format", "json", "statement format: csv, gpc, html, json, ofx, xml, pdf, mt940, cba_xml, sba_xml")
	output := fs.String("output", "", "write the statement to this file (required for pdf)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id < 0 {
		return apperrors.New(apperrors.UsageInvalidCommand, apperrors.WithDetails("-id is required"))
	}
	stmtFormat := models.AccountStatementFormat(strings.ToLower(*format))
	if stmtFormat.IsBinary() && *output == "" {
		return apperrors.New(apperrors.UsageMissingOutput, apperrors.WithDetails("use -output for format "+stmtFormat.String()))
	}

	return c.withService(common, func(svc services.FioServiceInterface) error {
		data, err := svc.FetchAccountStatement(ctx, *year, *id, stmtFormat)
		if err != nil {
			return err
		}

		if *output == "" {
			return c.printText(data.Text)
		}

		payload := []byte(data.Text)
		if data.IsBinary() {
			payload = data.Binary
		}
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", *output, err)
		}

		if data.IsBinary() {
			fmt.Fprintf(c.stdout, "Wrote %d bytes to %s (PDF)\n", len(payload), *output)
		} else {
			fmt.Fprintf(c.stdout, "Wrote %d bytes to %s\n", len(payload), *output)
		}
		return nil
	})
}

func (c *cli) runLastInfo(ctx context.Context, args []string) error {
	fs, common := c.newFlagSet("last-info")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return c.withService(common, func(svc services.FioServiceInterface) error {
		info, err := svc.FetchLastStatementInfo(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "year=%d, statement_id=%d\n", info.Year, info.StatementID)
		return nil
	})
}

func (c *cli) runSetLastID(ctx context.Context, args []string) error {
	fs, common := c.newFlagSet("set-last-id")
	id := fs.Int64("id", -1, "id of the last processed movement (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *id < 0 {
		return apperrors.New(apperrors.UsageInvalidCommand, apperrors.WithDetails("-id is required"))
	}

	return c.withService(common, func(svc services.FioServiceInterface) error {
		if err := svc.SetLastDownloadedTransactionID(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "Set last downloaded transaction id to %d\n", *id)
		return nil
	})
}

func (c *cli) runSetLastDate(ctx context.Context, args []string) error {
	fs, common := c.newFlagSet("set-last-date")
	date := fs.String("date", "", "date of the last unsuccessful download, YYYY-MM-DD (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *date == "" {
		return apperrors.New(apperrors.UsageInvalidCommand, apperrors.WithDetails("-date is required"))
	}
	day, err := parseDateFlag("date", *date, civil.Date{})
	if err != nil {
		return err
	}

	return c.withService(common, func(svc services.FioServiceInterface) error {
		if err := svc.SetLastUnsuccessfulDownloadDate(ctx, day); err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "Set last unsuccessful download date to %s\n", day)
		return nil
	})
}

func (c *cli) printText(data string) error {
	_, err := io.WriteString(c.stdout, data)
	if err == nil && !strings.HasSuffix(data, "\n") {
		_, err = io.WriteString(c.stdout, "\n")
	}
	return err
}

func (c *cli) printStatement(statement *models.Statement) error {
	info := statement.Info
	fmt.Fprintf(c.stdout, "Account: %s/%s (%s)\n", deref(info.AccountID), deref(info.BankID), info.Currency)
	if info.OpeningBalance != nil && info.ClosingBalance != nil {
		fmt.Fprintf(c.stdout, "Balance: %s -> %s\n", info.OpeningBalance.StringFixed(2), info.ClosingBalance.StringFixed(2))
	}
	fmt.Fprintf(c.stdout, "Transactions: %d\n", len(statement.Transactions))

	if len(statement.Transactions) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(c.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tAMOUNT\tCURRENCY\tCOUNTERPARTY\tTYPE\tMESSAGE")
	for _, tx := range statement.Transactions {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			tx.ID, tx.Date, tx.Amount.StringFixed(2), tx.Currency,
			tx.CounterParty(), deref(tx.Type), deref(tx.RemittanceInfo))
	}
	return w.Flush()
}

// parseDateFlag parses a YYYY-MM-DD flag value, returning fallback when empty
func parseDateFlag(name, value string, fallback civil.Date) (civil.Date, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := civil.ParseDate(value)
	if err != nil {
		return civil.Date{}, apperrors.New(apperrors.UsageInvalidCommand,
			apperrors.WithDetails(fmt.Sprintf("-%s must be YYYY-MM-DD, got %q", name, value)))
	}
	return d, nil
}

// checkParseFormat rejects -parse combined with a report format other than json
func checkParseFormat(parse bool, format string) error {
	if parse && reportFormat(format) != models.ReportFormatJSON {
		return apperrors.New(apperrors.UsageInvalidCommand,
			apperrors.WithDetails(fmt.Sprintf("-parse only works with -format json, got %q", format)))
	}
	return nil
}

func reportFormat(s string) models.TransactionReportFormat {
	return models.TransactionReportFormat(strings.ToLower(s))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
