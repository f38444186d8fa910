package models

// ByteRange — включительное байтовое окно [Start, End], полученное из
// заголовка Range против известного размера файла.
// Инвариант: 0 <= Start <= End < размер файла.
type ByteRange struct {
	Start int64
	End   int64
}

// Len возвращает размер окна в байтах (используется для Content-Length).
func (r ByteRange) Len() int64 {
	return r.End - r.Start + 1
}
