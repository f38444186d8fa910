// Package streamproto описывает протокол HTTP-взаимодействия стриминговых сервисов.
package streamproto

// Параметры протокола взаимодействия с каталогом контента и стриминговым узлом.
const (
	// CatalogLookupFormat — путь запроса к каталогу: base + ключ контента.
	CatalogLookupFormat = "%s/image-content?image_name=%s"
	// DirectPathFormat — путь прямой раздачи на стриминговом узле.
	DirectPathFormat = "%s/videos/direct"

	HeaderRange        = "Range"
	HeaderContentRange = "Content-Range"
	HeaderAcceptRanges = "Accept-Ranges"

	AcceptRangesBytes = "bytes"
)
