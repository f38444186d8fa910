// Package streamhttp реализует HTTP-интерфейс стримингового узла, раздающего
// видеофайлы с локального диска с поддержкой байтовых диапазонов. Основные эндпоинты:
//   - GET /videos/{filename} — раздача по логическому имени через каталог контента.
//   - GET /videos/direct?path= — прямая раздача по пути относительно корня хранилища.
//   - GET /videos/test?path= — диагностический отчёт по файлу (stat + первые байты).
//   - GET /health — агрегированные метрики по корню хранилища для health-check'ов.
package streamhttp
