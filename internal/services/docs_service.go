package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"bluevoyager/internal/repositories"
	"bluevoyager/internal/utils"
)

// DocsService renders the booking voucher PDF.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	Loader      func(string) (voucherData, error)
}

type voucherData struct {
	Reference string
	CabinName string
	FullName  string
	Email     string
	Phone     string
	CheckIn   string
	CheckOut  string
	Guests    int
	Total     int64
}

func (s DocsService) GenerateVoucher(reference string) ([]byte, string, error) {
	data, err := s.loadVoucherData(reference)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("ref=%s", reference))
	return buildVoucherPDF(data)
}

func (s DocsService) loadVoucherData(reference string) (voucherData, error) {
	if s.Loader != nil {
		return s.Loader(reference)
	}

	b, err := s.BookingRepo.GetByReference(reference)
	if err != nil {
		return voucherData{}, err
	}
	return voucherData{
		Reference: b.Reference,
		CabinName: b.CabinName,
		FullName:  b.FullName,
		Email:     b.Email,
		Phone:     b.Phone,
		CheckIn:   utils.FormatDate(b.CheckIn),
		CheckOut:  utils.FormatDate(b.CheckOut),
		Guests:    b.Guests,
		Total:     b.Total,
	}, nil
}

func buildVoucherPDF(d voucherData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BLUE VOYAGER - BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference  : %s", safe(d.Reference, "-")),
		fmt.Sprintf("Cabin      : %s", safe(d.CabinName, "-")),
		fmt.Sprintf("Guest      : %s", safe(d.FullName, "-")),
		fmt.Sprintf("Email      : %s", safe(d.Email, "-")),
		fmt.Sprintf("Phone      : %s", safe(d.Phone, "-")),
		fmt.Sprintf("Check-in   : %s", safe(d.CheckIn, "-")),
		fmt.Sprintf("Check-out  : %s", safe(d.CheckOut, "-")),
		fmt.Sprintf("Guests     : %d", d.Guests),
		fmt.Sprintf("Total      : %s", utils.FormatEUR(d.Total)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Present this voucher at embarkation together with your dive certification card.")
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Issued %s", utils.FormatDateTime(utils.NowUTC())))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("voucher-%s.pdf", safeFilenamePart(d.Reference))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "unknown"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, v)
}
