package dto

import "encoding/json"

// ContentRequest ghi đè toàn bộ nội dung một mục của site
type ContentRequest struct {
	Title  string          `json:"title"`
	Body   string          `json:"body"`
	Images json.RawMessage `json:"images"`
}

// GalleryAddRequest caption cho ảnh thư viện, ảnh gửi qua multipart
type GalleryAddRequest struct {
	Caption string `form:"caption"`
}
