package models

import "time"

// ProbeReport — результат диагностической проверки файла. Только чтение,
// никакой мутации: exists/stat/доступность + hex первых байт.
type ProbeReport struct {
	Path     string    `json:"path"`
	Exists   bool      `json:"exists"`
	Size     int64     `json:"size,omitempty"`
	Mode     string    `json:"mode,omitempty"`
	ModTime  time.Time `json:"mod_time,omitempty"`
	Readable bool      `json:"readable"`
	HeadHex  string    `json:"head_hex,omitempty"`
	Error    string    `json:"error,omitempty"`
}
