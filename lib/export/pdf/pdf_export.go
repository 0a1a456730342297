package pdfexport

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

const (
	bodyFontSize  = 11
	codeFontSize  = 9
	titleFontSize = 18
	lineHeight    = 5.5
)

// GenerateDocumentation формирует PDF (A4) из документации в markdown.
// Заголовки, списки и блоки кода оформляются отдельно, остальное обычными абзацами
func GenerateDocumentation(title, documentation string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateDocumentation panic recover: %v", r)
		}
	}()
	if strings.TrimSpace(title) == "" {
		title = "Code documentation"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.SetCreator("devassist-backend", true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, strconv.Itoa(pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", titleFontSize)
	pdf.MultiCell(0, 9, tr(title), "", "L", false)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 6, time.Now().Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	inCode := false
	for _, line := range strings.Split(strings.ReplaceAll(documentation, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inCode = !inCode
			pdf.Ln(1)
			continue
		}
		if inCode {
			pdf.SetFont("Courier", "", codeFontSize)
			pdf.SetFillColor(242, 242, 242)
			pdf.MultiCell(0, 4.5, tr(strings.ReplaceAll(line, "\t", "    ")), "", "L", true)
			continue
		}
		switch {
		case trimmed == "":
			pdf.Ln(2)
		case strings.HasPrefix(trimmed, "#"):
			level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
			size := 15.0 - float64(level)
			if size < bodyFontSize {
				size = bodyFontSize
			}
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", size)
			pdf.MultiCell(0, 7, tr(strings.TrimSpace(strings.TrimLeft(trimmed, "#"))), "", "L", false)
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			pdf.SetFont("Helvetica", "", bodyFontSize)
			pdf.SetX(pdf.GetX() + 4)
			pdf.MultiCell(0, lineHeight, tr("- "+stripInline(trimmed[2:])), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", bodyFontSize)
			pdf.MultiCell(0, lineHeight, tr(stripInline(trimmed)), "", "L", false)
		}
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// stripInline убирает разметку выделения, которую core-шрифты не отрисуют
func stripInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
