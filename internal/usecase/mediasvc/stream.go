package mediasvc

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yourname/stream_lite/internal/models"
	"github.com/yourname/stream_lite/pkg/streamproto"
)

// streamBufferSize — размер окна чтения: файл никогда не поднимается
// в память целиком.
const streamBufferSize = 32 << 10

// StreamByName раздаёт контент по логическому имени: сначала резолв через
// каталог, затем обычная раздача по абсолютному пути из записи.
func (s *Media) StreamByName(ctx context.Context, w http.ResponseWriter, rawFilename, rangeHeader string) (bool, error) {
	sess := newStreamSession(s.Logger, rawFilename)

	rec, err := s.Resolve(ctx, rawFilename)
	if err != nil {
		sess.finish(stateFailed, 0, err)
		return false, err
	}

	return s.serveFile(ctx, w, sess, rec.ContentURL, rangeHeader)
}

// StreamDirect раздаёт файл по пути относительно корня медиахранилища.
func (s *Media) StreamDirect(ctx context.Context, w http.ResponseWriter, relPath, rangeHeader string) (bool, error) {
	sess := newStreamSession(s.Logger, relPath)

	abs, err := s.resolvePath(relPath)
	if err != nil {
		sess.finish(stateFailed, 0, err)
		return false, err
	}

	return s.serveFile(ctx, w, sess, abs, rangeHeader)
}

// serveFile пишет один HTTP-ответ: 206 с Content-Range при наличии диапазона,
// 200 на весь файл без него. До WriteHeader любая ошибка уходит вызывающему,
// после — только в лог: статус уже не изменить.
func (s *Media) serveFile(ctx context.Context, w http.ResponseWriter, sess *streamSession, path, rangeHeader string) (bool, error) {
	sess.advance(stateValidating)

	info, err := os.Stat(path)
	if err != nil {
		err = mapFSError(err, path)
		sess.finish(stateFailed, 0, err)
		return false, err
	}
	if !info.Mode().IsRegular() {
		err = fmt.Errorf("%w: %s is not a regular file", models.ErrFileNotFound, path)
		sess.finish(stateFailed, 0, err)
		return false, err
	}

	size := info.Size()
	byteRange, err := parseRange(rangeHeader, size)
	if err != nil {
		sess.finish(stateFailed, 0, err)
		return false, err
	}

	f, err := os.Open(path)
	if err != nil {
		err = mapFSError(err, path)
		sess.finish(stateFailed, 0, err)
		return false, err
	}
	defer f.Close()

	var (
		reader io.Reader = f
		status           = http.StatusOK
		length           = size
	)

	if byteRange != nil {
		if _, err = f.Seek(byteRange.Start, io.SeekStart); err != nil {
			err = fmt.Errorf("%w: seek to %d: %v", models.ErrStreamIO, byteRange.Start, err)
			sess.finish(stateFailed, 0, err)
			return false, err
		}
		reader = io.LimitReader(f, byteRange.Len())
		length = byteRange.Len()
		status = http.StatusPartialContent
		w.Header().Set(streamproto.HeaderContentRange,
			fmt.Sprintf("bytes %d-%d/%d", byteRange.Start, byteRange.End, size))
	}

	w.Header().Set("Content-Type", contentTypeFor(path))
	w.Header().Set("Content-Length", strconv.FormatInt(length, 10))
	w.Header().Set(streamproto.HeaderAcceptRanges, streamproto.AcceptRangesBytes)
	w.WriteHeader(status)
	sess.advance(stateHeaderSent)

	sess.advance(stateStreaming)
	out := &countingWriter{w: w}
	_, err = io.CopyBuffer(out, reader, make([]byte, streamBufferSize))
	if err != nil {
		// Отвал клиента посреди потока — штатное завершение, не ошибка.
		if ctx.Err() != nil {
			sess.finish(stateAborted, out.n, ctx.Err())
			return true, nil
		}
		err = fmt.Errorf("%w: %v", models.ErrStreamIO, err)
		sess.finish(stateFailed, out.n, err)
		return true, err
	}

	sess.finish(stateCompleted, out.n, nil)
	return true, nil
}

// resolvePath превращает путь из запроса в абсолютный путь под MediaRoot.
// Выход за пределы корня и абсолютные пути запрещены.
func (s *Media) resolvePath(relPath string) (string, error) {
	relPath = strings.TrimSpace(relPath)
	if relPath == "" {
		return "", fmt.Errorf("%w: empty path", models.ErrBadPath)
	}
	if filepath.IsAbs(relPath) {
		return "", fmt.Errorf("%w: absolute path not allowed", models.ErrBadPath)
	}

	root := filepath.Clean(s.MediaRoot)
	joined := filepath.Join(root, relPath)
	if joined != root && !strings.HasPrefix(joined, root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: path escapes media root", models.ErrBadPath)
	}

	return joined, nil
}

// mapFSError переводит ошибки файловой системы в доменные sentinel-ошибки.
func mapFSError(err error, path string) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s", models.ErrFileNotFound, path)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s", models.ErrPermissionDenied, path)
	default:
		return fmt.Errorf("%w: %v", models.ErrStreamIO, err)
	}
}

// contentTypeFor выбирает Content-Type по расширению файла.
func contentTypeFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	default:
		// .mp4 и всё неизвестное — video/mp4, как ожидают плееры.
		return "video/mp4"
	}
}
