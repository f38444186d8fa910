package mediasvc

import (
	"context"
	"encoding/hex"
	"io"
	"os"

	"github.com/yourname/stream_lite/internal/models"
)

// Probe собирает диагностический отчёт по файлу: существование, stat-поля,
// проверка читаемости и hex первых байт. Никакой мутации. Валидация пути —
// та же, что у раздачи, чтобы диагностика и стриминг не расходились в ответах.
func (s *Media) Probe(ctx context.Context, relPath string) (models.ProbeReport, error) {
	abs, err := s.resolvePath(relPath)
	if err != nil {
		return models.ProbeReport{}, err
	}

	report := models.ProbeReport{Path: relPath}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return report, nil
		}
		report.Error = err.Error()
		return report, nil
	}

	report.Exists = true
	report.Size = info.Size()
	report.Mode = info.Mode().String()
	report.ModTime = info.ModTime()

	f, err := os.Open(abs)
	if err != nil {
		report.Error = err.Error()
		return report, nil
	}
	defer f.Close()
	report.Readable = true

	head := make([]byte, s.headBytes())
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		report.Error = err.Error()
		return report, nil
	}
	report.HeadHex = hex.EncodeToString(head[:n])

	s.Logger.Debug().
		Str("path", relPath).
		Int64("size", report.Size).
		Msg("probe completed")

	return report, nil
}

func (s *Media) headBytes() int {
	if s.ProbeHeadBytes > 0 {
		return s.ProbeHeadBytes
	}
	return 64
}
