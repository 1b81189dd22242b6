package dto

import "encoding/json"

// CreateAuthorRequest HTTP创建作者请求
// 必填字段使用指针：缺失与JSON null都会被required拒绝，零值（如空字符串）则交给领域层校验
type CreateAuthorRequest struct {
	Name      *string `json:"name" binding:"required" example:"Лев Толстой"`
	BirthDate *string `json:"birth_date" binding:"required" example:"1828-09-09"`
}

// CreateBookRequest HTTP创建图书请求
// barcode键必须出现，值可以为null或空字符串
type CreateBookRequest struct {
	Barcode     NullString `json:"barcode" swaggertype:"string" example:"4600000000017"`
	Title       *string `json:"title" binding:"required" example:"Война и мир"`
	PublishYear *int    `json:"publish_year" binding:"required" example:"1869"`
	AuthorID    *uint   `json:"author_id" binding:"required" example:"1"`
}

// SearchBooksQuery GET /book?barcode=X
type SearchBooksQuery struct {
	Barcode string `form:"barcode"`
}

// NullString 记录JSON键是否出现，null按空字符串处理
type NullString struct {
	Value   string
	Present bool
}

func (n *NullString) UnmarshalJSON(data []byte) error {
	n.Present = true
	if string(data) == "null" {
		n.Value = ""
		return nil
	}
	return json.Unmarshal(data, &n.Value)
}
