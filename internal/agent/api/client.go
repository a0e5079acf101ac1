// Package api содержит HTTP-клиент для взаимодействия с сервером courses API.
//
// Клиент инкапсулирует базовый URL сервера и настроенный http.Client,
// предоставляя методы для отправки JSON-запросов (POST/GET/PUT/DELETE)
// с Basic-аутентификацией.
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/").
//   - По умолчанию добавляется заголовок Accept: application/json.
//   - Заголовок Content-Type: application/json добавляется только при наличии тела запроса.
//   - При ответах 204 No Content тело не читается и это считается успехом.
//   - Пустое тело ответа (EOF при декодировании) не считается ошибкой.
//   - При ошибочных ответах (не 2xx) возвращается *APIError с сообщениями сервера.
package api

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apimodels "github.com/IvanChernomyrdin/go-courses-api/internal/shared/models"
)

// Credentials — пара email/пароль для заголовка Authorization: Basic.
type Credentials struct {
	Email    string
	Password string
}

// Client реализует HTTP-клиент для общения с сервером.
//
// Поля:
//   - baseURL: базовый адрес сервера без завершающего слэша.
//   - http: настроенный http.Client (таймаут, транспорт, TLS).
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient создаёт новый HTTP-клиент для общения с сервером.
//
// Параметры:
//   - baseURL: базовый адрес сервера (например: "http://localhost:5000").
//   - insecure: не проверять TLS-сертификат сервера (только для локальной разработки).
func NewClient(baseURL string, insecure bool) *Client {
	tr := http.DefaultTransport.(*http.Transport).Clone()
	if insecure {
		tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // только для dev
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: tr,
		},
	}
}

// APIError — ответ сервера со статусом не 2xx.
type APIError struct {
	Status   int
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("%d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("%d %s: %s", e.Status, http.StatusText(e.Status), strings.Join(e.Messages, "; "))
}

// IsStatus сообщает, что err — ответ сервера с указанным статусом.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// readAPIError читает тело ответа {"message"} или {"errors"} и возвращает *APIError.
func readAPIError(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)
	apiErr := &APIError{Status: res.StatusCode}

	var body struct {
		apimodels.MessageResponse
		apimodels.ErrorsResponse
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			apiErr.Messages = append(apiErr.Messages, body.Message)
		}
		apiErr.Messages = append(apiErr.Messages, body.Errors...)
	} else if msg := strings.TrimSpace(string(raw)); msg != "" {
		apiErr.Messages = []string{msg}
	}
	return apiErr
}

// decodeJSONOrOK декодирует JSON из r в resp.
// Пустое тело (io.EOF) ошибкой не считается.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// do отправляет запрос и возвращает заголовки успешного ответа.
func (c *Client) do(method, path string, req any, resp any, auth *Credentials) (http.Header, error) {
	var body io.Reader
	if req != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return nil, err
		}
		body = &buf
	}

	r, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	r.Header.Set("Accept", "application/json")
	if req != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if auth != nil {
		r.SetBasicAuth(auth.Email, auth.Password)
	}

	res, err := c.http.Do(r)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, readAPIError(res)
	}

	// 204/пустое тело — ок
	if res.StatusCode == http.StatusNoContent {
		return res.Header, nil
	}

	return res.Header, decodeJSONOrOK(res.Body, resp)
}

// PostJSON выполняет POST-запрос, сериализуя req в JSON.
// Возвращает заголовки ответа: для 201 в них Location созданного ресурса.
func (c *Client) PostJSON(path string, req any, resp any, auth *Credentials) (http.Header, error) {
	return c.do(http.MethodPost, path, req, resp, auth)
}

// GetJSON выполняет GET-запрос и (опционально) декодирует JSON-ответ.
func (c *Client) GetJSON(path string, resp any, auth *Credentials) error {
	_, err := c.do(http.MethodGet, path, nil, resp, auth)
	return err
}

// PutJSON выполняет PUT-запрос, сериализуя req в JSON.
func (c *Client) PutJSON(path string, req any, resp any, auth *Credentials) error {
	_, err := c.do(http.MethodPut, path, req, resp, auth)
	return err
}

// DeleteJSON выполняет DELETE-запрос.
func (c *Client) DeleteJSON(path string, resp any, auth *Credentials) error {
	_, err := c.do(http.MethodDelete, path, nil, resp, auth)
	return err
}
