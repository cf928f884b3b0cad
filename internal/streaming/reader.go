// Package streaming содержит компоненты для потокового чтения треков по HTTP
package streaming

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

// userAgent идентифицирует плеер перед сервером
const userAgent = "go-jukebox/1.0"

// client без общего таймаута: трек читается все время, пока играет
var client = &http.Client{
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		IdleConnTimeout:       300 * time.Second,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   2,
		ExpectContinueTimeout: 1 * time.Second,
	},
}

// Reader представляет буферизованный поток для чтения данных порциями
type Reader struct {
	reader *bufio.Reader
	resp   *http.Response
}

// NewReader открывает поток по URL. Контекст прерывает чтение при закрытии плеера.
func NewReader(ctx context.Context, url string, bufferSize int) (*Reader, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Accept-Encoding", "identity") // Сжатие ломает декодер
	req.Header.Set("Range", "bytes=0-")
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		resp.Body.Close()
		return nil, fmt.Errorf("ошибка HTTP: %s", resp.Status)
	}

	return &Reader{
		reader: bufio.NewReaderSize(resp.Body, bufferSize),
		resp:   resp,
	}, nil
}

// Read реализует интерфейс io.Reader для потокового чтения
func (sr *Reader) Read(p []byte) (n int, err error) {
	return sr.reader.Read(p)
}

// Close закрывает соединение
func (sr *Reader) Close() error {
	return sr.resp.Body.Close()
}

// ContentType возвращает тип содержимого из ответа сервера
func (sr *Reader) ContentType() string {
	return sr.resp.Header.Get("Content-Type")
}
