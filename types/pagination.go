package types

// PageQuery 列表查询的分页参数
// page 从 1 开始，size 限定在 [10,50]，越界直接在绑定层拒绝
type PageQuery struct {
	Page int `form:"page,default=1" binding:"min=1"`
	Size int `form:"size,default=10" binding:"min=10,max=50"`
}

func (q *PageQuery) Offset() int {
	return (q.Page - 1) * q.Size
}

type PageLinks struct {
	Prev *int `json:"prev"`
	Next *int `json:"next"`
}

// Page 分页响应体
type Page[T any] struct {
	Links PageLinks `json:"links"`
	Data  []T       `json:"data"`
}

// NewPage 组装分页游标：首页没有 prev；本页满员就给 next
// next 是启发式的，下一页可能为空，调用方需要容忍
func NewPage[T any](page, size int, data []T) *Page[T] {
	links := PageLinks{}

	if page > 1 {
		prev := page - 1
		links.Prev = &prev
	}

	if len(data) == size {
		next := page + 1
		links.Next = &next
	}

	if data == nil {
		data = make([]T, 0)
	}

	return &Page[T]{Links: links, Data: data}
}
