package services

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/civil"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"fioapi/internal/models"
)

const (
	mockBankCode = "2010"
	mockBankBIC  = "FIOBCZPPXXX"
	mockCurrency = "CZK"
	bookingHour  = 12
)

type counterBank struct {
	Code string
	Name string
	BIC  string
}

type movementKind struct {
	Type     string
	Credit   bool
	MinValue float64
	MaxValue float64
	Constant string
}

type ledgerGenerator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
	banks []counterBank
	kinds []movementKind
}

// NewLedgerGenerator creates a generator. A zero seed picks a random one.
func NewLedgerGenerator(seed uint64) LedgerGeneratorInterface {
	return &ledgerGenerator{
		faker: gofakeit.New(seed),
		banks: initializeBankPool(),
		kinds: initializeMovementKinds(),
	}
}

func initializeBankPool() []counterBank {
	return []counterBank{
		{"0100", "Komerční banka, a.s.", "KOMBCZPPXXX"},
		{"0300", "Československá obchodní banka, a. s.", "CEKOCZPPXXX"},
		{"0600", "MONETA Money Bank, a.s.", "AGBACZPPXXX"},
		{"0800", "Česká spořitelna, a.s.", "GIBACZPXXXX"},
		{"2010", "Fio banka, a.s.", "FIOBCZPPXXX"},
		{"2700", "UniCredit Bank Czech Republic and Slovakia, a.s.", "BACXCZPPXXX"},
		{"3030", "Air Bank a.s.", "AIRACZPPXXX"},
		{"5500", "Raiffeisenbank a.s.", "RZBCCZPPXXX"},
		{"6210", "mBank S.A., organizační složka", "BREXCZPPXXX"},
	}
}

// initializeMovementKinds lists movement types with their share encoded by
// repetition: salaries and transfers in, card payments and collections out
func initializeMovementKinds() []movementKind {
	income := movementKind{"Bezhotovostní příjem", true, 500, 45000, "0308"}
	transfer := movementKind{"Bezhotovostní platba", false, 100, 15000, "0558"}
	card := movementKind{"Platba kartou", false, 20, 3500, ""}
	collection := movementKind{"Inkaso", false, 200, 4000, "0308"}
	fee := movementKind{"Poplatek", false, 10, 150, ""}

	return []movementKind{
		income, income, income,
		transfer, transfer, transfer,
		card, card, card,
		collection,
		fee,
	}
}

// GenerateAccount creates the account behind a mock token
func (g *ledgerGenerator) GenerateAccount(token string) *models.MockAccount {
	g.mu.Lock()
	defer g.mu.Unlock()

	accountID := g.faker.Numerify("2#########")
	return &models.MockAccount{
		Token:          token,
		AccountID:      accountID,
		BankID:         mockBankCode,
		Currency:       mockCurrency,
		IBAN:           CzechIBAN(mockBankCode, accountID),
		BIC:            mockBankBIC,
		OpeningBalance: decimal.NewFromFloat(g.faker.Float64Range(1000, 250000)).Round(2),
	}
}

// GenerateEntries creates count movements booked between from and to,
// ordered by booking date
func (g *ledgerGenerator) GenerateEntries(token string, from, to civil.Date, count int) []*models.LedgerEntry {
	if count <= 0 || from.After(to) {
		return nil
	}

	span := to.DaysSince(from)
	days := make([]civil.Date, count)

	g.mu.Lock()
	for i := range days {
		days[i] = from.AddDays(g.faker.IntRange(0, span))
	}
	g.mu.Unlock()

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	entries := make([]*models.LedgerEntry, 0, count)
	for _, day := range days {
		entries = append(entries, g.GenerateEntry(token, day))
	}
	return entries
}

// GenerateEntry creates a single movement booked on day. Statements are
// monthly, so the statement id is the month number.
func (g *ledgerGenerator) GenerateEntry(token string, day civil.Date) *models.LedgerEntry {
	g.mu.Lock()
	defer g.mu.Unlock()

	kind := g.kinds[g.faker.IntRange(0, len(g.kinds)-1)]
	amount := decimal.NewFromFloat(g.faker.Float64Range(kind.MinValue, kind.MaxValue)).Round(2)
	if !kind.Credit {
		amount = amount.Neg()
	}

	entry := &models.LedgerEntry{
		Token:         token,
		BookedOn:      day.In(time.UTC).Add(bookingHour * time.Hour),
		Amount:        amount,
		Currency:      mockCurrency,
		Type:          kind.Type,
		StatementYear: day.Year,
		StatementID:   int(day.Month),
	}

	switch kind.Type {
	case "Platba kartou":
		entry.RemittanceInfo = "Nákup: " + g.faker.Company() + ", " + g.faker.City()
		entry.UserIdentification = entry.RemittanceInfo
	case "Poplatek":
		entry.RemittanceInfo = "Poplatek za vedení účtu"
	default:
		bank := g.banks[g.faker.IntRange(0, len(g.banks)-1)]
		orderID := int64(g.faker.IntRange(10000000, 99999999))

		entry.CounterAccount = g.faker.Numerify("##########")
		entry.CounterBankCode = bank.Code
		entry.CounterBankName = bank.Name
		entry.BIC = bank.BIC
		entry.CounterAccountName = g.faker.Name()
		entry.ConstantSymbol = kind.Constant
		entry.VariableSymbol = g.faker.Numerify("##########")
		entry.RemittanceInfo = g.faker.Sentence(4)
		entry.Executor = entry.CounterAccountName
		entry.OrderID = &orderID
		if g.faker.Bool() {
			entry.SpecificSymbol = g.faker.Numerify("######")
		}
		if kind.Credit && g.faker.Bool() {
			entry.PayerReference = g.faker.Numerify("REF########")
		}
	}

	return entry
}

// CzechIBAN builds the IBAN of a domestic account number with a valid
// ISO 13616 check digit pair
func CzechIBAN(bankCode, accountID string) string {
	bban := leftPad(bankCode, 4) + leftPad(accountID, 16)
	// "CZ00" moved to the end, letters as numbers (C=12, Z=35)
	numeric, _ := new(big.Int).SetString(bban+"123500", 10)
	check := 98 - new(big.Int).Mod(numeric, big.NewInt(97)).Int64()
	return fmt.Sprintf("CZ%02d%s", check, bban)
}

func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
