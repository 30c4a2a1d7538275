package services

import (
	"bytes"
	"testing"

	"bluevoyager/internal/domain"
)

func TestGenerateVoucherWithLoader(t *testing.T) {
	svc := DocsService{
		Loader: func(ref string) (voucherData, error) {
			if ref != "BV-ABC12345" {
				t.Errorf("loader got ref %q", ref)
			}
			return voucherData{
				Reference: "BV-ABC12345",
				CabinName: "Ocean View Cabin",
				FullName:  "Ana Reyes",
				Email:     "ana@example.com",
				Phone:     "+49 171 2345678",
				CheckIn:   "2025-03-15",
				CheckOut:  "2025-03-22",
				Guests:    3,
				Total:     6597,
			}, nil
		},
	}

	pdf, filename, err := svc.GenerateVoucher("BV-ABC12345")
	if err != nil {
		t.Fatalf("generate voucher: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "voucher-BV-ABC12345.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestGenerateVoucherLoaderError(t *testing.T) {
	svc := DocsService{
		Loader: func(string) (voucherData, error) {
			return voucherData{}, domain.NotFoundError{Resource: "booking"}
		},
	}
	if _, _, err := svc.GenerateVoucher("BV-MISSING"); !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	cases := map[string]string{
		"BV-ABC12345": "BV-ABC12345",
		"a b/c":       "a-b-c",
		"  ":          "unknown",
	}
	for in, want := range cases {
		if got := safeFilenamePart(in); got != want {
			t.Errorf("safeFilenamePart(%q) = %q, want %q", in, got, want)
		}
	}
}
