package models

import (
	"fmt"
	"strings"
)

// TransactionReportFormat is the output format of a transaction report
type TransactionReportFormat string

const (
	ReportFormatCSV  TransactionReportFormat = "csv"
	ReportFormatGPC  TransactionReportFormat = "gpc"
	ReportFormatHTML TransactionReportFormat = "html"
	ReportFormatJSON TransactionReportFormat = "json"
	ReportFormatOFX  TransactionReportFormat = "ofx"
	ReportFormatXML  TransactionReportFormat = "xml"
)

// AccountStatementFormat is the output format of an account statement
type AccountStatementFormat string

const (
	StatementFormatCSV    AccountStatementFormat = "csv"
	StatementFormatGPC    AccountStatementFormat = "gpc"
	StatementFormatHTML   AccountStatementFormat = "html"
	StatementFormatJSON   AccountStatementFormat = "json"
	StatementFormatOFX    AccountStatementFormat = "ofx"
	StatementFormatXML    AccountStatementFormat = "xml"
	StatementFormatPDF    AccountStatementFormat = "pdf"
	StatementFormatMT940  AccountStatementFormat = "mt940"
	StatementFormatCBAXML AccountStatementFormat = "cba_xml"
	StatementFormatSBAXML AccountStatementFormat = "sba_xml"
)

var reportFormats = []TransactionReportFormat{
	ReportFormatCSV, ReportFormatGPC, ReportFormatHTML, ReportFormatJSON, ReportFormatOFX, ReportFormatXML,
}

var statementFormats = []AccountStatementFormat{
	StatementFormatCSV, StatementFormatGPC, StatementFormatHTML, StatementFormatJSON, StatementFormatOFX,
	StatementFormatXML, StatementFormatPDF, StatementFormatMT940, StatementFormatCBAXML, StatementFormatSBAXML,
}

// ReportFormats returns all supported transaction report formats
func ReportFormats() []TransactionReportFormat {
	return append([]TransactionReportFormat(nil), reportFormats...)
}

// StatementFormats returns all supported account statement formats
func StatementFormats() []AccountStatementFormat {
	return append([]AccountStatementFormat(nil), statementFormats...)
}

func (f TransactionReportFormat) String() string {
	return string(f)
}

// IsValid checks if the format is one the bank understands
func (f TransactionReportFormat) IsValid() bool {
	for _, v := range reportFormats {
		if v == f {
			return true
		}
	}
	return false
}

func (f AccountStatementFormat) String() string {
	return string(f)
}

// IsValid checks if the format is one the bank understands
func (f AccountStatementFormat) IsValid() bool {
	for _, v := range statementFormats {
		if v == f {
			return true
		}
	}
	return false
}

// IsBinary returns true for formats delivered as raw bytes
func (f AccountStatementFormat) IsBinary() bool {
	return f == StatementFormatPDF
}

// ParseReportFormat parses a case-insensitive format name
func ParseReportFormat(s string) (TransactionReportFormat, error) {
	f := TransactionReportFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("unknown transaction report format %q", s)
	}
	return f, nil
}

// ParseStatementFormat parses a case-insensitive format name
func ParseStatementFormat(s string) (AccountStatementFormat, error) {
	f := AccountStatementFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", fmt.Errorf("unknown account statement format %q", s)
	}
	return f, nil
}
