package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	apperrors "admin-panel/errors"
)

// ImgBBClient client upload ảnh lên host ảnh ngoài. API key truyền qua
// query string, ảnh gửi dạng multipart với field "image".
type ImgBBClient struct {
	Endpoint string
	APIKey   string
	HTTP     *http.Client
}

// NewImgBBClient tạo client upload ảnh
func NewImgBBClient(endpoint, apiKey string) *ImgBBClient {
	return &ImgBBClient{
		Endpoint: endpoint,
		APIKey:   apiKey,
		HTTP:     &http.Client{Timeout: 30 * time.Second},
	}
}

type imgbbResponse struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload đẩy một ảnh lên host và trả về URL công khai
func (c *ImgBBClient) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	uploadURL := fmt.Sprintf("%s?key=%s", c.Endpoint, url.QueryEscape(c.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeUploadFailed, "Không gọi được host ảnh", err)
	}
	defer resp.Body.Close()

	var parsed imgbbResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", apperrors.NewAppError(apperrors.ErrCodeUploadFailed, "Response host ảnh không hợp lệ", err)
	}

	if !parsed.Success {
		msg := parsed.Error.Message
		if msg == "" {
			msg = "Upload ảnh thất bại"
		}
		return "", apperrors.NewAppError(apperrors.ErrCodeUploadFailed, msg, nil)
	}

	return parsed.Data.URL, nil
}
