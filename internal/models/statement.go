package models

// Statement is a decoded JSON report: account metadata plus its movements
type Statement struct {
	Info         AccountInfo   `json:"info"`
	Transactions []Transaction `json:"transactions"`
}

// LastStatementInfo identifies the newest account statement
type LastStatementInfo struct {
	Year        int `json:"year"`
	StatementID int `json:"statement_id"`
}

// StatementData is the raw payload of an account statement. Text is set for
// textual formats, Binary for PDF.
type StatementData struct {
	Format AccountStatementFormat
	Text   string
	Binary []byte
}

// IsBinary returns true when the payload is carried in Binary
func (d *StatementData) IsBinary() bool {
	return d.Format.IsBinary()
}
