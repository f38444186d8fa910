package mediasvc

import "io"

// countingWriter считает байты, реально ушедшие клиенту, чтобы итог сессии
// отражал фактический прогресс передачи, а не размер запрошенного окна.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
