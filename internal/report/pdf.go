// Package report renders monthly and yearly activity summaries as PDF
// documents for download.
package report

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/go-pdf/fpdf"
)

// MonthNames holds Indonesian month names, indexed by month-1.
var MonthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthlyData carries everything the monthly report needs.
type MonthlyData struct {
	UserName        string
	Period          string
	TotalTasks      int
	CompletedTasks  int
	Supervisions    int
	AdditionalTasks int
}

// YearlyData carries everything the yearly report needs.
type YearlyData struct {
	UserName          string
	Year              string
	TotalSupervisions int
	TotalTasks        int
	CompletedTasks    int
	Schools           int
	CompletionRate    int
}

func newDoc(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 18)
	pdf.SetXY(10, 14)
	pdf.CellFormat(190, 8, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetX(10)
	pdf.CellFormat(190, 7, "Pengawas Sekolah", "", 1, "C", false, 0, "")
	return pdf
}

func infoLines(pdf *fpdf.Fpdf, lines ...string) {
	pdf.SetFont("Helvetica", "", 11)
	y := 45.0
	for _, line := range lines {
		pdf.Text(20, y, line)
		y += 7
	}
	pdf.SetLineWidth(0.5)
	pdf.Line(20, 60, 190, 60)
}

// statsTable draws the bordered Kategori/Jumlah table and returns the y
// position below it.
func statsTable(pdf *fpdf.Fpdf, startY float64, rows [][2]string) float64 {
	const labelW, valueW, rowH = 110.0, 60.0, 8.0

	pdf.SetXY(20, startY)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(66, 133, 244)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(labelW, rowH, "Kategori", "1", 0, "L", true, 0, "")
	pdf.CellFormat(valueW, rowH, "Jumlah", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range rows {
		pdf.SetX(20)
		pdf.CellFormat(labelW, rowH, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, rowH, row[1], "1", 1, "L", false, 0, "")
	}
	return pdf.GetY()
}

func footer(pdf *fpdf.Fpdf, y float64) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, y, fmt.Sprintf("Dibuat pada: %s", time.Now().Format("02/01/2006")))
}

// Monthly renders the monthly activity report.
func Monthly(data MonthlyData) ([]byte, error) {
	pdf := newDoc("LAPORAN BULANAN")
	infoLines(pdf,
		fmt.Sprintf("Nama: %s", data.UserName),
		fmt.Sprintf("Periode: %s", data.Period),
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, 70, "RINGKASAN KEGIATAN")

	rate := "0%"
	if data.TotalTasks > 0 {
		rate = fmt.Sprintf("%d%%", int(math.Round(float64(data.CompletedTasks)/float64(data.TotalTasks)*100)))
	}
	endY := statsTable(pdf, 75, [][2]string{
		{"Total Tugas", fmt.Sprint(data.TotalTasks)},
		{"Tugas Selesai", fmt.Sprint(data.CompletedTasks)},
		{"Supervisi Dilakukan", fmt.Sprint(data.Supervisions)},
		{"Tugas Tambahan", fmt.Sprint(data.AdditionalTasks)},
		{"Tingkat Penyelesaian", rate},
	})

	footer(pdf, endY+20)
	return output(pdf)
}

// Yearly renders the yearly activity report.
func Yearly(data YearlyData) ([]byte, error) {
	pdf := newDoc("LAPORAN TAHUNAN")
	infoLines(pdf,
		fmt.Sprintf("Nama: %s", data.UserName),
		fmt.Sprintf("Tahun: %s", data.Year),
	)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(20, 70, "RINGKASAN TAHUNAN")

	perMonth := int(math.Round(float64(data.TotalSupervisions) / 12))
	endY := statsTable(pdf, 75, [][2]string{
		{"Total Supervisi", fmt.Sprint(data.TotalSupervisions)},
		{"Total Tugas", fmt.Sprint(data.TotalTasks)},
		{"Tugas Selesai", fmt.Sprint(data.CompletedTasks)},
		{"Sekolah Binaan", fmt.Sprint(data.Schools)},
		{"Tingkat Penyelesaian", fmt.Sprintf("%d%%", data.CompletionRate)},
		{"Rata-rata Supervisi/Bulan", fmt.Sprint(perMonth)},
	})

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(20, endY+15, "Kesimpulan:")
	pdf.SetFont("Helvetica", "", 10)

	summary := []string{
		fmt.Sprintf("- Total %d supervisi dilakukan sepanjang tahun %s", data.TotalSupervisions, data.Year),
		fmt.Sprintf("- Membina %d sekolah dengan rata-rata %d kunjungan per bulan", data.Schools, perMonth),
		fmt.Sprintf("- Tingkat penyelesaian tugas mencapai %d%%", data.CompletionRate),
	}
	y := endY + 22
	for _, line := range summary {
		pdf.Text(20, y, line)
		y += 7
	}

	footer(pdf, y+10)
	return output(pdf)
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
