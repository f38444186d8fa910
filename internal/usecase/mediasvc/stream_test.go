package mediasvc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yourname/stream_lite/internal/models"
)

func newMediaOverDir(t *testing.T) (*Media, string) {
	t.Helper()
	root := t.TempDir()
	svc := New(Deps{
		MediaRoot: root,
		Logger:    zerolog.Nop(),
	})
	return svc, root
}

func writeFile(t *testing.T, root, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, name), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestStreamDirect_FullFile(t *testing.T) {
	svc, root := newMediaOverDir(t)
	payload := bytes.Repeat([]byte("0123456789abcdef"), 1024) // 16 KiB
	writeFile(t, root, "clip.mp4", payload)

	rec := httptest.NewRecorder()
	sent, err := svc.StreamDirect(context.Background(), rec, "clip.mp4", "")
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if !sent {
		t.Fatal("headers must be sent")
	}

	resp := rec.Result()
	if resp.StatusCode != 200 {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Length"); got != fmt.Sprint(len(payload)) {
		t.Fatalf("content-length %s, want %d", got, len(payload))
	}
	if got := resp.Header.Get("Content-Type"); got != "video/mp4" {
		t.Fatalf("content-type %s", got)
	}
	if !bytes.Equal(rec.Body.Bytes(), payload) {
		t.Fatal("body mismatch")
	}
}

func TestStreamDirect_PartialContent(t *testing.T) {
	svc, root := newMediaOverDir(t)
	payload := make([]byte, 1000)
	for i := range payload {
		payload[i] = byte(i)
	}
	writeFile(t, root, "clip.webm", payload)

	rec := httptest.NewRecorder()
	if _, err := svc.StreamDirect(context.Background(), rec, "clip.webm", "bytes=100-199"); err != nil {
		t.Fatalf("stream: %v", err)
	}

	resp := rec.Result()
	if resp.StatusCode != 206 {
		t.Fatalf("want 206, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Range"); got != "bytes 100-199/1000" {
		t.Fatalf("content-range %q", got)
	}
	if got := resp.Header.Get("Content-Length"); got != "100" {
		t.Fatalf("content-length %q", got)
	}
	if got := resp.Header.Get("Accept-Ranges"); got != "bytes" {
		t.Fatalf("accept-ranges %q", got)
	}
	if got := resp.Header.Get("Content-Type"); got != "video/webm" {
		t.Fatalf("content-type %q", got)
	}
	if !bytes.Equal(rec.Body.Bytes(), payload[100:200]) {
		t.Fatal("window bytes mismatch")
	}
}

func TestStreamDirect_MissingFile(t *testing.T) {
	svc, _ := newMediaOverDir(t)

	rec := httptest.NewRecorder()
	sent, err := svc.StreamDirect(context.Background(), rec, "nope.mp4", "")
	if sent {
		t.Fatal("headers must not be sent for a missing file")
	}
	if !errors.Is(err, models.ErrFileNotFound) {
		t.Fatalf("want ErrFileNotFound, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatal("no body must be written by the service")
	}
}

func TestStreamDirect_PathEscapesRoot(t *testing.T) {
	svc, _ := newMediaOverDir(t)

	for _, p := range []string{"../secret.mp4", "/etc/passwd", "  ", "a/../../b.mp4"} {
		rec := httptest.NewRecorder()
		sent, err := svc.StreamDirect(context.Background(), rec, p, "")
		if sent || !errors.Is(err, models.ErrBadPath) {
			t.Fatalf("path %q: want ErrBadPath before headers, got sent=%v err=%v", p, sent, err)
		}
	}
}

func TestStreamDirect_InvalidRangeBeforeHeaders(t *testing.T) {
	svc, root := newMediaOverDir(t)
	writeFile(t, root, "clip.mp4", make([]byte, 100))

	rec := httptest.NewRecorder()
	sent, err := svc.StreamDirect(context.Background(), rec, "clip.mp4", "bytes=500-600")
	if sent || !errors.Is(err, models.ErrInvalidRange) {
		t.Fatalf("want ErrInvalidRange before headers, got sent=%v err=%v", sent, err)
	}
}

// brokenWriter обрывает запись после лимита, имитируя умерший сокет.
type brokenWriter struct {
	*httptest.ResponseRecorder
	limit int
}

func (b *brokenWriter) Write(p []byte) (int, error) {
	if b.Body.Len() >= b.limit {
		return 0, errors.New("write: broken pipe")
	}
	return b.ResponseRecorder.Write(p)
}

func TestStreamDirect_MidStreamWriteFailure(t *testing.T) {
	svc, root := newMediaOverDir(t)
	writeFile(t, root, "clip.mp4", bytes.Repeat([]byte{0xAB}, 256<<10))

	w := &brokenWriter{ResponseRecorder: httptest.NewRecorder(), limit: 64 << 10}
	sent, err := svc.StreamDirect(context.Background(), w, "clip.mp4", "")
	if !sent {
		t.Fatal("headers were sent before the failure")
	}
	if !errors.Is(err, models.ErrStreamIO) {
		t.Fatalf("want ErrStreamIO, got %v", err)
	}
}

func TestStreamDirect_ClientDisconnectIsNotAnError(t *testing.T) {
	svc, root := newMediaOverDir(t)
	writeFile(t, root, "clip.mp4", bytes.Repeat([]byte{0xCD}, 256<<10))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Отменённый контекст + упавшая запись = обрыв клиента: не ошибка.
	w := &brokenWriter{ResponseRecorder: httptest.NewRecorder(), limit: 0}
	sent, err := svc.StreamDirect(ctx, w, "clip.mp4", "")
	if !sent {
		t.Fatal("headers were sent before the disconnect")
	}
	if err != nil {
		t.Fatalf("client disconnect must not surface as an error, got %v", err)
	}
}

func TestContentTypeFor(t *testing.T) {
	cases := map[string]string{
		"a.mp4":  "video/mp4",
		"a.webm": "video/webm",
		"a.MOV":  "video/quicktime",
		"a.mkv":  "video/mp4",
		"a":      "video/mp4",
	}
	for path, want := range cases {
		if got := contentTypeFor(path); got != want {
			t.Fatalf("%s: want %s, got %s", path, want, got)
		}
	}
}
