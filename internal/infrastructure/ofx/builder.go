// Package ofx exporta el extracto de una cuenta en formato OFX 2.x (XML),
// el intercambio estándar que entienden los gestores de finanzas personales.
package ofx

import (
	"github.com/beevik/etree"

	appstatement "github.com/tu-usuario/banking-api/internal/application/statement"
)

const (
	ofxVersion = "200"
	bankOrg    = "BANKING-API"
	currency   = "BRL"
	dtFormat   = "20060102150405"
)

// Builder implementa statement.OFXBuilder usando etree.
type Builder struct{}

// NewBuilder construye el exportador OFX.
func NewBuilder() *Builder { return &Builder{} }

var _ appstatement.OFXBuilder = (*Builder)(nil)

// BuildStatementOFX serializa el extracto como documento OFX.
func (b *Builder) BuildStatementOFX(st *appstatement.Statement) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="no"`)
	doc.CreateProcInst("OFX", `OFXHEADER="200" VERSION="`+ofxVersion+`" SECURITY="NONE" OLDFILEUID="NONE" NEWFILEUID="NONE"`)

	root := doc.CreateElement("OFX")
	dtNow := st.GeneratedAt.UTC().Format(dtFormat)

	// Bloque de sesión: estado OK y emisor.
	sonrs := root.CreateElement("SIGNONMSGSRSV1").CreateElement("SONRS")
	status := sonrs.CreateElement("STATUS")
	status.CreateElement("CODE").SetText("0")
	status.CreateElement("SEVERITY").SetText("INFO")
	sonrs.CreateElement("DTSERVER").SetText(dtNow)
	sonrs.CreateElement("LANGUAGE").SetText("POR")
	fi := sonrs.CreateElement("FI")
	fi.CreateElement("ORG").SetText(bankOrg)

	trnrs := root.CreateElement("BANKMSGSRSV1").CreateElement("STMTTRNRS")
	trnrs.CreateElement("TRNUID").SetText(st.Account.ID)
	trnStatus := trnrs.CreateElement("STATUS")
	trnStatus.CreateElement("CODE").SetText("0")
	trnStatus.CreateElement("SEVERITY").SetText("INFO")

	stmtrs := trnrs.CreateElement("STMTRS")
	stmtrs.CreateElement("CURDEF").SetText(currency)

	acctFrom := stmtrs.CreateElement("BANKACCTFROM")
	acctFrom.CreateElement("BANKID").SetText(st.Account.Agency)
	acctFrom.CreateElement("ACCTID").SetText(st.Account.Number + "-" + st.Account.Digit)
	acctFrom.CreateElement("ACCTTYPE").SetText("CHECKING")

	tranList := stmtrs.CreateElement("BANKTRANLIST")
	dtStart, dtEnd := dtNow, dtNow
	if len(st.Entries) > 0 {
		dtStart = st.Entries[0].CreatedAt.UTC().Format(dtFormat)
		dtEnd = st.Entries[len(st.Entries)-1].CreatedAt.UTC().Format(dtFormat)
	}
	tranList.CreateElement("DTSTART").SetText(dtStart)
	tranList.CreateElement("DTEND").SetText(dtEnd)

	for _, e := range st.Entries {
		stmttrn := tranList.CreateElement("STMTTRN")
		stmttrn.CreateElement("TRNTYPE").SetText(trnType(e))
		stmttrn.CreateElement("DTPOSTED").SetText(e.CreatedAt.UTC().Format(dtFormat))
		stmttrn.CreateElement("TRNAMT").SetText(e.Amount.StringFixed(2))
		stmttrn.CreateElement("FITID").SetText(e.ID)
		stmttrn.CreateElement("MEMO").SetText(memo(e))
	}

	ledgerBal := stmtrs.CreateElement("LEDGERBAL")
	ledgerBal.CreateElement("BALAMT").SetText(st.Account.Balance.StringFixed(2))
	ledgerBal.CreateElement("DTASOF").SetText(dtNow)

	doc.Indent(2)
	return doc.WriteToBytes()
}

// trnType mapea el tipo de movimiento a los TRNTYPE del estándar.
func trnType(e appstatement.Entry) string {
	switch e.Kind {
	case appstatement.EntryDeposit:
		return "DEP"
	case appstatement.EntryTransferOut:
		return "DEBIT"
	default:
		return "CREDIT"
	}
}

func memo(e appstatement.Entry) string {
	if e.CounterpartyID == "" {
		return e.Kind
	}
	return e.Kind + " " + e.CounterpartyID
}
