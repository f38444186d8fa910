package models

// ContentRecord — запись каталога контента: соответствие логического имени
// и абсолютного пути на хранилище. После получения не мутируется.
type ContentRecord struct {
	ContentName string `json:"content_name"`
	ContentURL  string `json:"content_url"`
}

// CatalogToken описывает одну строку таблицы соответствия: подстрока-идентификатор
// в имени файла и ключ каталога, по которому выполняется поиск.
type CatalogToken struct {
	Token string `yaml:"token" json:"token"`
	Key   string `yaml:"key" json:"key"`
}
