package mediasvc

import (
	"context"
	"fmt"
	"strings"

	"github.com/yourname/stream_lite/internal/models"
)

// Resolve находит запись каталога для запрошенного имени файла.
// Каталог опрашивается по базовому имени, но выбирается только запись,
// чьё content_name в точности совпадает с исходным именем: ответ каталога —
// список кандидатов, а не готовый результат.
func (s *Media) Resolve(ctx context.Context, rawFilename string) (models.ContentRecord, error) {
	base := s.baseName(rawFilename)

	records, err := s.Catalog.Lookup(ctx, base)
	if err != nil {
		return models.ContentRecord{}, err
	}

	for _, rec := range records {
		if rec.ContentName != rawFilename {
			continue
		}
		if strings.TrimSpace(rec.ContentURL) == "" {
			return models.ContentRecord{}, fmt.Errorf("%w: %s", models.ErrContentURLMissing, rawFilename)
		}
		return rec, nil
	}

	return models.ContentRecord{}, fmt.Errorf("%w: %s", models.ErrContentNotFound, rawFilename)
}

// baseName подбирает ключ каталога по таблице соответствия из конфигурации:
// выигрывает первый токен, встретившийся в имени файла. Нет совпадения —
// пустой ключ, решение "найдено/не найдено" остаётся за точным сравнением выше.
func (s *Media) baseName(rawFilename string) string {
	for _, t := range s.Tokens {
		if t.Token == "" {
			continue
		}
		if strings.Contains(rawFilename, t.Token) {
			return t.Key
		}
	}

	return ""
}
