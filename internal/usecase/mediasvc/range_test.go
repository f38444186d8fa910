package mediasvc

import (
	"errors"
	"testing"

	"github.com/yourname/stream_lite/internal/models"
)

func TestParseRange_NoHeader(t *testing.T) {
	br, err := parseRange("", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if br != nil {
		t.Fatalf("want nil range for empty header, got %+v", br)
	}
}

func TestParseRange_Explicit(t *testing.T) {
	br, err := parseRange("bytes=100-199", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if br.Start != 100 || br.End != 199 {
		t.Fatalf("want [100,199], got [%d,%d]", br.Start, br.End)
	}
	if br.Len() != 100 {
		t.Fatalf("want chunk size 100, got %d", br.Len())
	}
}

func TestParseRange_OpenEnded(t *testing.T) {
	br, err := parseRange("bytes=500-", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if br.Start != 500 || br.End != 999 {
		t.Fatalf("want [500,999], got [%d,%d]", br.Start, br.End)
	}
}

func TestParseRange_EndClampedToFileSize(t *testing.T) {
	br, err := parseRange("bytes=0-5000", 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if br.End != 999 {
		t.Fatalf("end must be clamped to 999, got %d", br.End)
	}
}

func TestParseRange_Invalid(t *testing.T) {
	// Никакой коэрции мусора в окно: всё перечисленное — ErrInvalidRange.
	headers := []string{
		"bytes=200-100",   // start > end
		"bytes=1000-",     // start за пределами файла
		"bytes=abc-",      // не число
		"bytes=-500",      // суффиксная форма не поддерживается
		"bytes=12",        // нет дефиса
		"items=0-10",      // чужая единица измерения
		"bytes=0-5,10-20", // мультидиапазон
	}

	for _, h := range headers {
		if _, err := parseRange(h, 1000); !errors.Is(err, models.ErrInvalidRange) {
			t.Fatalf("header %q: want ErrInvalidRange, got %v", h, err)
		}
	}
}

func TestParseRange_EmptyFile(t *testing.T) {
	if _, err := parseRange("bytes=0-", 0); !errors.Is(err, models.ErrInvalidRange) {
		t.Fatalf("range against empty file must fail, got %v", err)
	}
}
