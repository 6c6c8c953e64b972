package infra

// pdf.go — Extrato (ledger statement) generation using go-pdf/fpdf.
// Renders the same table the web client shows: one row per lançamento with
// entrada, saida and the running saldo, closing with the current saldo.

import (
	"bytes"
	"fmt"

	"livrocaixa/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GerarExtratoPDF renders an A4 landscape statement for one ledger.
// titulo names the ledger ("Caixa", "Banco" or the conta's nome); the
// lançamentos are expected in display order (most recent first).
func GerarExtratoPDF(titulo string, lancs []dto.LancamentoResponse) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	// The core Helvetica font is CP1252; every string with accents must go
	// through the translator or "Descrição" comes out as mojibake.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr("Extrato — "+titulo), "", 1, "L", false, 0, "")

	saldoActual := "0"
	if len(lancs) > 0 {
		saldoActual = lancs[0].Saldo.StringFixed(2)
	}
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 6, tr(fmt.Sprintf("Saldo actual: %s  ·  %d lançamentos", saldoActual, len(lancs))), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Table header ─────────────────────────────────────────────────────────
	colData := contentW * 0.09
	colDesc := contentW * 0.31
	colDoc := contentW * 0.10
	colEnt := contentW * 0.14
	colEntr := contentW * 0.12
	colSai := contentW * 0.12
	colSaldo := contentW * 0.12

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(colData, 6, "Data", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colDesc, 6, tr("Descrição"), "B", 0, "L", false, 0, "")
	pdf.CellFormat(colDoc, 6, "Doc.", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colEnt, 6, "Entidade", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colEntr, 6, "Entrada", "B", 0, "R", false, 0, "")
	pdf.CellFormat(colSai, 6, tr("Saída"), "B", 0, "R", false, 0, "")
	pdf.CellFormat(colSaldo, 6, "Saldo", "B", 1, "R", false, 0, "")

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, l := range lancs {
		// Truncate by rune, not byte, so accented text is never split mid-rune.
		descricao := l.Descricao
		if runes := []rune(descricao); len(runes) > 48 {
			descricao = string(runes[:47]) + "…"
		}
		pdf.CellFormat(colData, 5, l.Data, "", 0, "L", false, 0, "")
		pdf.CellFormat(colDesc, 5, tr(descricao), "", 0, "L", false, 0, "")
		pdf.CellFormat(colDoc, 5, tr(l.Documento), "", 0, "L", false, 0, "")
		pdf.CellFormat(colEnt, 5, tr(l.Entidade), "", 0, "L", false, 0, "")
		pdf.CellFormat(colEntr, 5, l.Entrada.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(colSai, 5, l.Saida.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(colSaldo, 5, l.Saldo.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW-colSaldo, 6, tr("SALDO ACTUAL:"), "", 0, "R", false, 0, "")
	pdf.CellFormat(colSaldo, 6, saldoActual, "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render extrato: %w", err)
	}
	return buf.Bytes(), nil
}
