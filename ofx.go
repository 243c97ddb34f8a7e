package qfxconvert

import (
	"encoding/xml"
	"errors"
	"io"
	"io/ioutil"
	"regexp"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/golang/glog"
)

//revive:disable:exported

// TransactionType is a transaction type as per the OFX Spec 2.2 Section 11.4.4.3
// https://www.ofx.net/downloads/OFX%202.2.pdf
type TransactionType string

const (
	// Common Transaction Types
	DEBIT  TransactionType = "DEBIT"
	CREDIT TransactionType = "CREDIT"
	// Uncommon Transaction Types
	INTEREST      TransactionType = "INT"
	DIVIDENT      TransactionType = "DIV"
	FEE           TransactionType = "FEE"
	SERVICECHARGE TransactionType = "SRVCHG"
	DEPOSIT       TransactionType = "DEP"
	ATM           TransactionType = "ATM"
	POS           TransactionType = "POS"
	TRANSFER      TransactionType = "XFER"
	CHECK         TransactionType = "CHECK"
	PAYMENT       TransactionType = "PAYMENT"
	CASH          TransactionType = "CASH"
	DIRECTDEPOSIT TransactionType = "DIRECTDEP"
	DIRECTDEBIT   TransactionType = "DIRECTDEBIT"
	REPEATPAYMENT TransactionType = "REPEATPMT"
	OTHER         TransactionType = "OTHER"
)

// SecurityID identifies a security, usually by CUSIP or ISIN.
type SecurityID struct {
	UniqueID     string `xml:"UNIQUEID"`
	UniqueIDType string `xml:"UNIQUEIDTYPE"`
}

// Currency is the original currency aggregate on re-denominated amounts.
type Currency struct {
	Rate   string `xml:"CURRATE"`
	Symbol string `xml:"CURSYM"`
}

type Transaction struct {
	Type     TransactionType  `xml:"TRNTYPE"`
	Posted   string           `xml:"DTPOSTED"`
	Amount   *decimal.Decimal `xml:"TRNAMT"`
	ID       string           `xml:"FITID"`
	Date     string           `xml:"DTUSER,omitempty"`
	Number   string           `xml:"CHECKNUM,omitempty"`
	Name     string           `xml:"NAME,omitempty"`
	Payee    string           `xml:"PAYEE,omitempty"`
	Memo     string           `xml:"MEMO,omitempty"`
	Currency *Currency        `xml:"CURRENCY"`
}

// Position is one investment holding snapshot from an INVPOS aggregate.
// Decimal fields are pointers so an element absent from the source stays
// distinguishable from a zero amount.
type Position struct {
	SecID       SecurityID       `xml:"SECID"`
	HeldIn      string           `xml:"HELDINACCT"`
	Type        string           `xml:"POSTYPE"`
	Units       *decimal.Decimal `xml:"UNITS"`
	UnitPrice   *decimal.Decimal `xml:"UNITPRICE"`
	MarketValue *decimal.Decimal `xml:"MKTVAL"`
	PriceAsOf   string           `xml:"DTPRICEASOF"`
	Memo        string           `xml:"MEMO,omitempty"`
}

// PositionEntry is one typed position wrapper (POSSTOCK, POSMF etc).
// Positions are collected through the wrapper so source order is kept
// across security types.
type PositionEntry struct {
	XMLName  xml.Name
	Position Position `xml:"INVPOS"`
}

type PositionList struct {
	Entries []PositionEntry `xml:",any"`
}

type SignOnResponse struct {
	Code           int    `xml:"STATUS>CODE"`
	Severity       string `xml:"STATUS>SEVERITY"`
	Date           string `xml:"DTSERVER"`
	Language       string `xml:"LANGUAGE"`
	Organization   string `xml:"FI>ORG"`
	OrganizationID string `xml:"FI>FID"`
	IntuitID       string `xml:"INTU.BID,omitempty"`
}

type StatementTransactionResponseSet struct {
	ID       string               `xml:"TRNUID"`
	Code     int                  `xml:"STATUS>CODE"`
	Severity string               `xml:"STATUS>SEVERITY"`
	RS       StatementResponseSet `xml:"STMTRS"`
}

type Balance struct {
	Amount decimal.Decimal `xml:"BALAMT"`
	Date   string          `xml:"DTASOF"`
}

type StatementResponseSet struct {
	Currency         string        `xml:"CURDEF"`
	BankID           string        `xml:"BANKACCTFROM>BANKID"`
	AccountID        string        `xml:"BANKACCTFROM>ACCTID"`
	AccountType      string        `xml:"BANKACCTFROM>ACCTTYPE"`
	StartDate        string        `xml:"BANKTRANLIST>DTSTART"`
	EndDate          string        `xml:"BANKTRANLIST>DTEND"`
	Transactions     []Transaction `xml:"BANKTRANLIST>STMTTRN"`
	LedgerBalance    Balance       `xml:"LEDGERBAL"`
	AvailableBalance Balance       `xml:"AVAILBAL"`
}

type BankResponseMessageSet struct {
	TRS []StatementTransactionResponseSet `xml:"STMTTRNRS"`
}

type InvestmentStatementResponseSet struct {
	AsOf             string        `xml:"DTASOF"`
	Currency         string        `xml:"CURDEF"`
	BrokerID         string        `xml:"INVACCTFROM>BROKERID"`
	AccountID        string        `xml:"INVACCTFROM>ACCTID"`
	StartDate        string        `xml:"INVTRANLIST>DTSTART"`
	EndDate          string        `xml:"INVTRANLIST>DTEND"`
	BankTransactions []Transaction `xml:"INVTRANLIST>INVBANKTRAN>STMTTRN"`
	Positions        PositionList  `xml:"INVPOSLIST"`
}

type InvestmentTransactionResponseSet struct {
	ID       string                         `xml:"TRNUID"`
	Code     int                            `xml:"STATUS>CODE"`
	Severity string                         `xml:"STATUS>SEVERITY"`
	RS       InvestmentStatementResponseSet `xml:"INVSTMTRS"`
}

type InvestmentResponseMessageSet struct {
	TRS []InvestmentTransactionResponseSet `xml:"INVSTMTTRNRS"`
}

// Account holds the identifying fields of one statement's account.
type Account struct {
	AccountID   string
	AccountType string
	BankID      string
	BrokerID    string
}

// Statement is a uniform view of one account reporting period, bank or
// investment. Positions is nil for bank statements.
type Statement struct {
	Account      Account
	Transactions []Transaction
	Positions    []Position
}

// Document is a parsed OFX/QFX Statement.
// This does not implement the complete rfc spec yet.
type Document struct {
	XMLName  xml.Name                       `xml:"OFX"`
	Response SignOnResponse                 `xml:"SIGNONMSGSRSV1>SONRS"`
	BRMS     []BankResponseMessageSet       `xml:"BANKMSGSRSV1"`
	IRMS     []InvestmentResponseMessageSet `xml:"INVSTMTMSGSRSV1"`
}

// NewDocumentFromXML parses the given file into a Document.
func NewDocumentFromXML(reader io.Reader, cleaner Cleaner) (*Document, error) {
	var (
		document = &Document{} // The parsed document.
		data     []byte        // Buffer to parse raw bytes from the input file.
		err      error
	)

	// Parse raw byte from the source file into data.
	if data, err = ioutil.ReadAll(reader); err != nil {
		return nil, err
	}
	data = preprocessOFXData(data)
	if err = cleaner.Init(data); err != nil {
		return nil, err
	}
	cleanXML, err := cleaner.CleanupXML()
	if err != nil {
		return nil, err
	}

	glog.V(3).Infof("cleanXML: %s", cleanXML.String())
	if err = xml.Unmarshal(cleanXML.Bytes(), document); err != nil {
		return nil, err
	}
	return document, nil
}

// Statements returns every statement in the document in source order, bank
// statements first as they appear, then investment statements as they appear.
func (d *Document) Statements() []Statement {
	statements := make([]Statement, 0)
	for _, b := range d.BRMS {
		for _, trs := range b.TRS {
			statements = append(statements, Statement{
				Account: Account{
					AccountID:   trs.RS.AccountID,
					AccountType: trs.RS.AccountType,
					BankID:      trs.RS.BankID,
				},
				Transactions: trs.RS.Transactions,
			})
		}
	}
	for _, i := range d.IRMS {
		for _, trs := range i.TRS {
			positions := make([]Position, 0, len(trs.RS.Positions.Entries))
			for _, e := range trs.RS.Positions.Entries {
				positions = append(positions, e.Position)
			}
			statements = append(statements, Statement{
				Account: Account{
					AccountID: trs.RS.AccountID,
					BrokerID:  trs.RS.BrokerID,
				},
				Transactions: trs.RS.BankTransactions,
				Positions:    positions,
			})
		}
	}
	return statements
}

// OFX dates are YYYYMMDD with optional HHMMSS, fractional seconds and a
// trailing [gmt offset:tz name] block.
var datePattern = regexp.MustCompile(`(?P<date>\d{8})(?P<time>\d{6}|\d{4})?(?:\.\d{3})?(?:\[(?P<offset>[+-]?\d+(?:\.\d+)?)(?::(?P<tz>\S+?))?])?`)

// parseOFXDate parses the given OFX formatted date string and reports whether
// the string carried a time-of-day component.
func parseOFXDate(d string, loc *time.Location) (*time.Time, bool, error) {
	parts := datePattern.FindStringSubmatch(d)
	if len(parts) == 0 {
		return nil, false, errors.New("error - date string can not be parsed")
	}
	if loc == nil {
		loc = time.UTC
	}
	if parts[3] != "" {
		name := parts[4]
		if name == "" {
			name = "OFX"
		}
		hours, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			return nil, false, err
		}
		loc = time.FixedZone(name, int(hours*60*60))
	}
	var (
		format  = "20060102"
		value   = parts[1]
		hasTime = parts[2] != ""
	)
	if hasTime {
		format = "200601021504"
		if len(parts[2]) == 6 {
			format = "20060102150405"
		}
		value += parts[2]
	}
	glog.V(3).Infof("parts:%q format:%s", parts, format)
	t, err := time.ParseInLocation(format, value, loc)
	if err != nil {
		return nil, false, err
	}
	return &t, hasTime, nil
}

// ParseDate parses the given OFX formatted date string to a time.Time object.
// loc is the location used when the date string carries no gmt offset, nil
// means UTC.
func ParseDate(d string, loc *time.Location) (*time.Time, error) {
	t, _, err := parseOFXDate(d, loc)
	return t, err
}
