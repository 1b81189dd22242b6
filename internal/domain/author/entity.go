package author

import "time"

// Author 作者实体
// 设计说明：
// 1. 创建后不可修改、不可删除（图书通过AuthorID引用作者）
// 2. BirthDate保持客户端提交的YYYY-MM-DD文本，不做日历校验
type Author struct {
	ID        uint
	Name      string
	BirthDate string
	CreatedAt time.Time
}

// NewAuthor 创建作者（工厂方法）
func NewAuthor(name, birthDate string) *Author {
	return &Author{
		Name:      name,
		BirthDate: birthDate,
		CreatedAt: time.Now(),
	}
}
