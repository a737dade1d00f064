package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Gzip writers are pooled; allocating one per response is measurably slow.
var gzipPool = sync.Pool{
	New: func() any {
		w, _ := gzip.NewWriterLevel(nil, gzip.BestSpeed)
		return w
	},
}

// DecompressMiddleware transparently unwraps gzip request bodies.
func DecompressMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		reader, err := gzip.NewReader(r.Body)
		if err != nil {
			http.Error(w, "malformed gzip body", http.StatusBadRequest)
			return
		}
		defer reader.Close()

		r.Body = reader
		r.Header.Del("Content-Encoding")
		next.ServeHTTP(w, r)
	})
}

type compressedWriter struct {
	http.ResponseWriter
	gz *gzip.Writer
}

func (cw *compressedWriter) Write(b []byte) (int, error) {
	return cw.gz.Write(b)
}

// CompressMiddleware gzips responses for clients that accept it.
func CompressMiddleware(logger *zap.SugaredLogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gz := gzipPool.Get().(*gzip.Writer)
			gz.Reset(w)
			defer func() {
				if err := gz.Close(); err != nil {
					logger.Errorf("flush gzip response: %v", err)
				}
				gzipPool.Put(gz)
			}()

			w.Header().Set("Content-Encoding", "gzip")
			next.ServeHTTP(&compressedWriter{ResponseWriter: w, gz: gz}, r)
		})
	}
}
