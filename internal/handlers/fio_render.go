package handlers

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strconv"

	"cloud.google.com/go/civil"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"fioapi/internal/dto"
	"fioapi/internal/models"
)

// fioDateSuffix is the zone suffix the bank appends to every date
const fioDateSuffix = "+0100"

// statementView is everything a rendered report or statement contains
type statementView struct {
	Account        *models.MockAccount
	Entries        []models.LedgerEntry
	Opening        decimal.Decimal
	DateStart      civil.Date
	DateEnd        civil.Date
	YearList       *int32
	IDList         *int32
	IDLastDownload *int64
}

func (v *statementView) closing() decimal.Decimal {
	total := v.Opening
	for _, e := range v.Entries {
		total = total.Add(e.Amount)
	}
	return total
}

func (v *statementView) idRange() (*int64, *int64) {
	if len(v.Entries) == 0 {
		return nil, nil
	}
	from, to := v.Entries[0].ID, v.Entries[0].ID
	for _, e := range v.Entries[1:] {
		from = min(from, e.ID)
		to = max(to, e.ID)
	}
	return &from, &to
}

func fioDate(d civil.Date) string {
	return d.String() + fioDateSuffix
}

// formatLastStatement renders the body of the lastStatement endpoint
func formatLastStatement(year, id int) string {
	return fmt.Sprintf("%d,%d", year, id)
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ---------- JSON ----------

func (v *statementView) toFioResponse() (*dto.FioResponse, error) {
	opening := v.Opening
	closing := v.closing()
	dateStart := fioDate(v.DateStart)
	dateEnd := fioDate(v.DateEnd)
	idFrom, idTo := v.idRange()

	info := &dto.FioStatementInfo{
		AccountID:      nonEmpty(v.Account.AccountID),
		BankID:         nonEmpty(v.Account.BankID),
		Currency:       &v.Account.Currency,
		IBAN:           nonEmpty(v.Account.IBAN),
		BIC:            nonEmpty(v.Account.BIC),
		OpeningBalance: &opening,
		ClosingBalance: &closing,
		DateStart:      &dateStart,
		DateEnd:        &dateEnd,
		YearList:       v.YearList,
		IDList:         v.IDList,
		IDFrom:         idFrom,
		IDTo:           idTo,
		IDLastDownload: v.IDLastDownload,
	}

	rows := make([]dto.FioTransactionRow, 0, len(v.Entries))
	for i := range v.Entries {
		cells, err := ledgerRow(&v.Entries[i])
		if err != nil {
			return nil, err
		}
		row, err := cells.Encode()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return &dto.FioResponse{
		AccountStatement: &dto.FioAccountStatement{
			Info:            info,
			TransactionList: &dto.FioTransactionList{Transaction: rows},
		},
	}, nil
}

// ledgerRow renders one movement in the bank's column layout. Empty optional
// columns are sent as null.
func ledgerRow(e *models.LedgerEntry) (dto.FioColumnRow, error) {
	row := dto.FioColumnRow{}
	var err error
	put := func(id int, v any) {
		if err != nil {
			return
		}
		row[dto.ColumnKey(id)], err = dto.NewFioColumnValue(id, dto.ColumnNames[id], v)
	}
	putText := func(id int, s string) {
		if s == "" {
			row[dto.ColumnKey(id)] = nil
			return
		}
		put(id, s)
	}

	put(dto.ColumnID, e.ID)
	put(dto.ColumnDate, fioDate(e.Date()))
	put(dto.ColumnAmount, json.Number(e.Amount.StringFixed(2)))
	put(dto.ColumnCurrency, e.Currency)
	putText(dto.ColumnCounterAccount, e.CounterAccount)
	putText(dto.ColumnCounterAccountName, e.CounterAccountName)
	putText(dto.ColumnBankCode, e.CounterBankCode)
	putText(dto.ColumnBankName, e.CounterBankName)
	putText(dto.ColumnConstantSymbol, e.ConstantSymbol)
	putText(dto.ColumnVariableSymbol, e.VariableSymbol)
	putText(dto.ColumnSpecificSymbol, e.SpecificSymbol)
	putText(dto.ColumnUserIdentification, e.UserIdentification)
	putText(dto.ColumnRemittanceInfo, e.RemittanceInfo)
	putText(dto.ColumnType, e.Type)
	putText(dto.ColumnExecutor, e.Executor)
	putText(dto.ColumnSpecification, e.Specification)
	putText(dto.ColumnComment, e.Comment)
	putText(dto.ColumnBIC, e.BIC)
	putText(dto.ColumnPayerReference, e.PayerReference)
	if e.OrderID != nil {
		put(dto.ColumnOrderID, *e.OrderID)
	} else {
		row[dto.ColumnKey(dto.ColumnOrderID)] = nil
	}

	if err != nil {
		return nil, err
	}
	return row, nil
}

// ---------- CSV ----------

// csvColumns is the column order of the CSV and XML renderings
var csvColumns = []int{
	dto.ColumnID, dto.ColumnDate, dto.ColumnAmount, dto.ColumnCurrency,
	dto.ColumnCounterAccount, dto.ColumnCounterAccountName, dto.ColumnBankCode, dto.ColumnBankName,
	dto.ColumnConstantSymbol, dto.ColumnVariableSymbol, dto.ColumnSpecificSymbol,
	dto.ColumnUserIdentification, dto.ColumnRemittanceInfo, dto.ColumnType, dto.ColumnExecutor,
	dto.ColumnSpecification, dto.ColumnComment, dto.ColumnBIC, dto.ColumnOrderID, dto.ColumnPayerReference,
}

func columnText(e *models.LedgerEntry, id int) string {
	switch id {
	case dto.ColumnID:
		return strconv.FormatInt(e.ID, 10)
	case dto.ColumnDate:
		d := e.Date()
		return fmt.Sprintf("%02d.%02d.%04d", d.Day, int(d.Month), d.Year)
	case dto.ColumnAmount:
		return e.Amount.StringFixed(2)
	case dto.ColumnCurrency:
		return e.Currency
	case dto.ColumnCounterAccount:
		return e.CounterAccount
	case dto.ColumnCounterAccountName:
		return e.CounterAccountName
	case dto.ColumnBankCode:
		return e.CounterBankCode
	case dto.ColumnBankName:
		return e.CounterBankName
	case dto.ColumnConstantSymbol:
		return e.ConstantSymbol
	case dto.ColumnVariableSymbol:
		return e.VariableSymbol
	case dto.ColumnSpecificSymbol:
		return e.SpecificSymbol
	case dto.ColumnUserIdentification:
		return e.UserIdentification
	case dto.ColumnRemittanceInfo:
		return e.RemittanceInfo
	case dto.ColumnType:
		return e.Type
	case dto.ColumnExecutor:
		return e.Executor
	case dto.ColumnSpecification:
		return e.Specification
	case dto.ColumnComment:
		return e.Comment
	case dto.ColumnBIC:
		return e.BIC
	case dto.ColumnOrderID:
		if e.OrderID == nil {
			return ""
		}
		return strconv.FormatInt(*e.OrderID, 10)
	case dto.ColumnPayerReference:
		return e.PayerReference
	}
	return ""
}

// infoPairs lists the header fields shared by the text renderings
func (v *statementView) infoPairs() [][2]string {
	idFrom, idTo := v.idRange()
	pairs := [][2]string{
		{"accountId", v.Account.AccountID},
		{"bankId", v.Account.BankID},
		{"currency", v.Account.Currency},
		{"iban", v.Account.IBAN},
		{"bic", v.Account.BIC},
		{"openingBalance", v.Opening.StringFixed(2)},
		{"closingBalance", v.closing().StringFixed(2)},
		{"dateStart", v.DateStart.String()},
		{"dateEnd", v.DateEnd.String()},
	}
	optional := func(key string, p *int64) {
		if p != nil {
			pairs = append(pairs, [2]string{key, strconv.FormatInt(*p, 10)})
		}
	}
	if v.YearList != nil {
		pairs = append(pairs, [2]string{"yearList", strconv.Itoa(int(*v.YearList))})
	}
	if v.IDList != nil {
		pairs = append(pairs, [2]string{"idList", strconv.Itoa(int(*v.IDList))})
	}
	optional("idFrom", idFrom)
	optional("idTo", idTo)
	optional("idLastDownload", v.IDLastDownload)
	return pairs
}

// renderCSV writes a semicolon separated report: info header, blank line, movements
func (v *statementView) renderCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	for _, p := range v.infoPairs() {
		if err := w.Write(p[:]); err != nil {
			return nil, fmt.Errorf("failed to write CSV info: %w", err)
		}
	}
	w.Flush()
	buf.WriteString("\n")

	header := make([]string, len(csvColumns))
	for i, id := range csvColumns {
		header[i] = dto.ColumnNames[id]
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i := range v.Entries {
		record := make([]string, len(csvColumns))
		for j, id := range csvColumns {
			record[j] = columnText(&v.Entries[i], id)
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// ---------- XML ----------

type xmlStatement struct {
	XMLName      xml.Name         `xml:"AccountStatement"`
	Info         []xmlField       `xml:"Info>field"`
	Transactions []xmlTransaction `xml:"TransactionList>Transaction"`
}

// xmlField is an element whose name is chosen at render time
type xmlField struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

type xmlColumn struct {
	XMLName xml.Name
	Name    string `xml:"name,attr"`
	ID      int    `xml:"id,attr"`
	Value   string `xml:",chardata"`
}

type xmlTransaction struct {
	Columns []xmlColumn `xml:"column"`
}

var xmlInfoNames = map[string]string{
	"accountId":      "AccountId",
	"bankId":         "BankId",
	"currency":       "Currency",
	"iban":           "IBAN",
	"bic":            "BIC",
	"openingBalance": "OpeningBalance",
	"closingBalance": "ClosingBalance",
	"dateStart":      "DateStart",
	"dateEnd":        "DateEnd",
	"yearList":       "YearList",
	"idList":         "IdList",
	"idFrom":         "IdFrom",
	"idTo":           "IdTo",
	"idLastDownload": "IdLastDownload",
}

func (v *statementView) renderXML() ([]byte, error) {
	doc := xmlStatement{}
	for _, p := range v.infoPairs() {
		value := p[1]
		if p[0] == "dateStart" || p[0] == "dateEnd" {
			value += fioDateSuffix
		}
		doc.Info = append(doc.Info, xmlField{XMLName: xml.Name{Local: xmlInfoNames[p[0]]}, Value: value})
	}

	for i := range v.Entries {
		e := &v.Entries[i]
		var tx xmlTransaction
		for _, id := range csvColumns {
			text := columnText(e, id)
			if text == "" {
				continue
			}
			if id == dto.ColumnDate {
				text = fioDate(e.Date())
			}
			tx.Columns = append(tx.Columns, xmlColumn{
				XMLName: xml.Name{Local: fmt.Sprintf("column_%d", id)},
				Name:    dto.ColumnNames[id],
				ID:      id,
				Value:   text,
			})
		}
		doc.Transactions = append(doc.Transactions, tx)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render XML: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// ---------- PDF ----------

const (
	pdfLinesPerPage = 50
	pdfLineHeight   = 5.0
)

func (v *statementView) pdfLines() []string {
	lines := []string{
		"Fio banka, a.s. - vypis z uctu",
		fmt.Sprintf("Account: %s/%s  IBAN: %s", v.Account.AccountID, v.Account.BankID, v.Account.IBAN),
		fmt.Sprintf("Period: %s - %s", v.DateStart, v.DateEnd),
		fmt.Sprintf("Opening balance: %s %s", v.Opening.StringFixed(2), v.Account.Currency),
		"",
	}
	for i := range v.Entries {
		e := &v.Entries[i]
		lines = append(lines, fmt.Sprintf("%s  %d  %s %s  %s",
			e.Date(), e.ID, e.Amount.StringFixed(2), e.Currency, e.CounterAccountName))
	}
	lines = append(lines, "", fmt.Sprintf("Closing balance: %s %s", v.closing().StringFixed(2), v.Account.Currency))
	return lines
}

// renderPDF lays the statement out as a plain single column document in the
// core Helvetica font, pdfLinesPerPage lines per page
func (v *statementView) renderPDF() ([]byte, error) {
	return buildPDF(v.pdfLines())
}

func buildPDF(lines []string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Fio banka statement", true)
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont("Helvetica", "", 10)
	// core fonts are cp1252, so Czech names keep their accents
	translate := doc.UnicodeTranslatorFromDescriptor("")

	if len(lines) == 0 {
		doc.AddPage()
	}
	for i, line := range lines {
		if i%pdfLinesPerPage == 0 {
			doc.AddPage()
		}
		doc.CellFormat(0, pdfLineHeight, translate(line), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
