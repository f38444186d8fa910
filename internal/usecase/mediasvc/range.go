package mediasvc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yourname/stream_lite/internal/models"
)

const rangeUnitPrefix = "bytes="

// parseRange разбирает заголовок Range вида "bytes=<start>-[<end>]" против
// известного размера файла. Пустой заголовок — отдаём файл целиком (nil, nil).
// Всё, что не укладывается в синтаксис, отклоняется как ErrInvalidRange:
// никакой коэрции мусорных чисел в "какое-нибудь" окно.
func parseRange(header string, size int64) (*models.ByteRange, error) {
	if header == "" {
		return nil, nil
	}

	spec, ok := strings.CutPrefix(header, rangeUnitPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidRange, header)
	}

	startStr, endStr, found := strings.Cut(spec, "-")
	if !found || startStr == "" {
		// Суффиксная форма "bytes=-N" и одиночное число не поддерживаются.
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidRange, header)
	}

	start, err := strconv.ParseUint(startStr, 10, 63)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidRange, header)
	}

	end := uint64(size - 1)
	if endStr != "" {
		end, err = strconv.ParseUint(endStr, 10, 63)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", models.ErrInvalidRange, header)
		}
	}

	// Конец за пределами файла усекаем до последнего байта (RFC 9110 §14.1.2).
	if end >= uint64(size) && size > 0 {
		end = uint64(size - 1)
	}

	if start >= uint64(size) || start > end {
		return nil, fmt.Errorf("%w: bytes %d-%d of %d", models.ErrInvalidRange, start, end, size)
	}

	return &models.ByteRange{Start: int64(start), End: int64(end)}, nil
}
