// Package export строит файлы выгрузки платежей: таблицу xlsx и отчет pdf.
// Оба файла целиком собираются в памяти.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// Format - формат выгрузки.
type Format string

const (
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

// ParseFormat распознает параметр formato. Пустое и неизвестное значение дают excel.
func ParseFormat(s string) Format {
	if Format(strings.ToLower(strings.TrimSpace(s))) == FormatPDF {
		return FormatPDF
	}
	return FormatExcel
}

// File - готовый файл выгрузки.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

const (
	ExcelFileName    = "pagamentos.xlsx"
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	PDFFileName      = "relatorio_pagamentos.pdf"
	PDFContentType   = "application/pdf"

	sheetName = "Pagamentos"
	noValue   = "N/A"
)

var excelHeader = []any{
	"ID", "Descrição", "Valor", "Competência", "Vencimento",
	"Data Pagamento", "Status", "Categoria", "Nota Fiscal",
}

// Render строит файл нужного формата.
func Render(format Format, tenantName string, items []*models.Payment, today models.Date) (*File, error) {
	if format == FormatPDF {
		data, err := PDF(tenantName, items, today)
		if err != nil {
			return nil, err
		}
		return &File{Name: PDFFileName, ContentType: PDFContentType, Data: data}, nil
	}
	data, err := Excel(items, today)
	if err != nil {
		return nil, err
	}
	return &File{Name: ExcelFileName, ContentType: ExcelContentType, Data: data}, nil
}

// Excel строит книгу с листом "Pagamentos": жирный заголовок и по строке на платеж.
func Excel(items []*models.Payment, today models.Date) ([]byte, error) {
	const op = "services.export.Excel"

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &excelHeader); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := f.SetCellStyle(sheetName, "A1", "I1", bold); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i, p := range items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		row := []any{
			p.ID,
			p.Description,
			p.Amount.InexactFloat64(),
			p.CompetenceOn.String(),
			dateOrEmpty(p.DueOn),
			dateOrEmpty(p.PaidOn),
			string(p.ComputedStatus(today)),
			strOr(p.CategoryName, noValue),
			strOr(p.InvoiceNumber, ""),
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}

// Геометрия отчета в пунктах (1 дюйм = 72 pt), лист Letter альбомный.
const (
	margin     = 72.0
	lineHeight = 20.0
)

type pdfColumn struct {
	title string
	width float64
	align string
}

var pdfColumns = []pdfColumn{
	{"Competência", 70, "L"},
	{"Vencimento", 70, "L"},
	{"Pagamento", 70, "L"},
	{"Descrição", 118, "L"},
	{"Categoria", 90, "L"},
	{"Nota Fiscal", 70, "L"},
	{"Status", 60, "L"},
	{"Valor (R$)", 100, "R"},
}

// PDF строит отчет: заголовок, имя клиента, строки платежей и итог "Total Filtrado".
// Новая страница начинается, когда место по вертикали заканчивается.
func PDF(tenantName string, items []*models.Payment, today models.Date) ([]byte, error) {
	const op = "services.export.PDF"

	var buf bytes.Buffer
	if err := buildPDF(tenantName, items, today).Output(&buf); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}

func buildPDF(tenantName string, items []*models.Payment, today models.Date) *fpdf.Fpdf {
	pdf := fpdf.New("L", "pt", "Letter", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, margin)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	_, pageHeight := pdf.GetPageSize()

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(margin, margin, tr("Relatório de Pagamentos"))
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(margin, margin+0.2*72, tr("Cliente: "+tenantName))

	pdf.SetXY(margin, margin+72)
	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		for _, c := range pdfColumns {
			pdf.CellFormat(c.width, lineHeight, tr(c.title), "B", 0, c.align, false, 0, "")
		}
		pdf.Ln(lineHeight)
		pdf.SetFont("Helvetica", "", 10)
	}
	header()

	total := decimal.Zero
	for _, p := range items {
		if pdf.GetY()+lineHeight > pageHeight-margin {
			pdf.AddPage()
			header()
		}
		cells := []string{
			p.CompetenceOn.Format("02/01/2006"),
			brDate(p.DueOn),
			brDate(p.PaidOn),
			truncate(p.Description, 24),
			truncate(strOr(p.CategoryName, noValue), 18),
			strOr(p.InvoiceNumber, ""),
			string(p.ComputedStatus(today)),
			FormatBRL(p.Amount),
		}
		for i, c := range pdfColumns {
			pdf.CellFormat(c.width, lineHeight, tr(cells[i]), "", 0, c.align, false, 0, "")
		}
		pdf.Ln(lineHeight)
		total = total.Add(p.Amount)
	}

	if pdf.GetY()+2*lineHeight > pageHeight-margin {
		pdf.AddPage()
	}
	pdf.SetFont("Helvetica", "B", 12)
	width := 0.0
	for _, c := range pdfColumns {
		width += c.width
	}
	pdf.CellFormat(width-120, lineHeight, "Total Filtrado:", "T", 0, "R", false, 0, "")
	pdf.CellFormat(120, lineHeight, FormatBRL(total), "T", 1, "R", false, 0, "")
	return pdf
}

// FormatBRL форматирует сумму как "R$ 1.234,56".
func FormatBRL(v decimal.Decimal) string {
	s := v.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if v.IsNegative() {
		sign = "-"
	}
	return "R$ " + sign + b.String() + "," + frac
}

func dateOrEmpty(d *models.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func brDate(d *models.Date) string {
	if d == nil {
		return noValue
	}
	return d.Format("02/01/2006")
}

func strOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
