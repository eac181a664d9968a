package ofx_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/banking-api/internal/application/statement"
	"github.com/tu-usuario/banking-api/internal/domain/entity"
	"github.com/tu-usuario/banking-api/internal/infrastructure/ofx"
)

func testStatement() *statement.Statement {
	created := time.Date(2026, time.August, 10, 15, 30, 0, 0, time.UTC)
	return &statement.Statement{
		Account: &entity.Account{
			ID: "acc-1", UserID: "u1", Agency: "0001", Number: "12345", Digit: "6",
			Type: "corriente", Balance: decimal.NewFromInt(40),
		},
		User: &entity.User{ID: "u1", Name: "José", Lastname: "Silva"},
		Entries: []statement.Entry{
			{ID: "dep-1", Kind: statement.EntryDeposit, Amount: decimal.NewFromInt(100), Balance: decimal.NewFromInt(100), CreatedAt: created},
			{ID: "tr-1", Kind: statement.EntryTransferOut, CounterpartyID: "acc-2", Amount: decimal.NewFromInt(-60), Balance: decimal.NewFromInt(40), CreatedAt: created.Add(24 * time.Hour)},
		},
		GeneratedAt: created.Add(48 * time.Hour),
	}
}

// El documento OFX debe ser XML válido con cuenta, movimientos y saldo.
func TestBuildStatementOFX(t *testing.T) {
	out, err := ofx.NewBuilder().BuildStatementOFX(testStatement())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out), "la salida debe ser XML parseable")

	root := doc.SelectElement("OFX")
	require.NotNil(t, root)

	acct := root.FindElement("//BANKACCTFROM")
	require.NotNil(t, acct)
	assert.Equal(t, "0001", acct.SelectElement("BANKID").Text())
	assert.Equal(t, "12345-6", acct.SelectElement("ACCTID").Text())

	trns := root.FindElements("//STMTTRN")
	require.Len(t, trns, 2, "un STMTTRN por movimiento")

	assert.Equal(t, "DEP", trns[0].SelectElement("TRNTYPE").Text())
	assert.Equal(t, "100.00", trns[0].SelectElement("TRNAMT").Text())
	assert.Equal(t, "dep-1", trns[0].SelectElement("FITID").Text())

	assert.Equal(t, "DEBIT", trns[1].SelectElement("TRNTYPE").Text())
	assert.Equal(t, "-60.00", trns[1].SelectElement("TRNAMT").Text())
	assert.Contains(t, trns[1].SelectElement("MEMO").Text(), "acc-2",
		"el memo debe nombrar la contraparte")

	bal := root.FindElement("//LEDGERBAL/BALAMT")
	require.NotNil(t, bal)
	assert.Equal(t, "40.00", bal.Text())
}

// Sin movimientos el rango DTSTART/DTEND cae en la fecha de emisión.
func TestBuildStatementOFX_SinMovimientos(t *testing.T) {
	st := testStatement()
	st.Entries = nil

	out, err := ofx.NewBuilder().BuildStatementOFX(st)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	start := doc.FindElement("//BANKTRANLIST/DTSTART")
	end := doc.FindElement("//BANKTRANLIST/DTEND")
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, start.Text(), end.Text())
	assert.Empty(t, doc.FindElements("//STMTTRN"))
}
