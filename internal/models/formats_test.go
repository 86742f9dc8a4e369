package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReportFormat(t *testing.T) {
	f, err := ParseReportFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, ReportFormatJSON, f)

	_, err = ParseReportFormat("pdf")
	assert.Error(t, err, "pdf is only available for account statements")
}

func TestParseStatementFormat(t *testing.T) {
	testCases := map[string]AccountStatementFormat{
		"pdf":     StatementFormatPDF,
		"mt940":   StatementFormatMT940,
		"cba_xml": StatementFormatCBAXML,
		"SBA_XML": StatementFormatSBAXML,
	}

	for input, expected := range testCases {
		t.Run(input, func(t *testing.T) {
			f, err := ParseStatementFormat(input)
			require.NoError(t, err)
			assert.Equal(t, expected, f)
		})
	}

	_, err := ParseStatementFormat("docx")
	assert.Error(t, err)
}

func TestAccountStatementFormat_IsBinary(t *testing.T) {
	for _, f := range StatementFormats() {
		assert.Equal(t, f == StatementFormatPDF, f.IsBinary(), string(f))
	}
}

func TestFormats_AreValid(t *testing.T) {
	assert.Len(t, ReportFormats(), 6)
	assert.Len(t, StatementFormats(), 10)
	for _, f := range ReportFormats() {
		assert.True(t, f.IsValid())
	}
	assert.False(t, TransactionReportFormat("mt940").IsValid())
}
