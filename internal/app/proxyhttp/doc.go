// Package proxyhttp реализует прокси-узел: принимает запросы на раздачу видео
// и транслирует их стриминговому узлу, пробрасывая заголовок Range как есть
// и возвращая статус, заголовки и тело апстрима без изменений.
//   - GET /proxy/video/direct?... — форвард на /videos/direct апстрима.
//   - GET /health — доступность апстрима.
package proxyhttp
