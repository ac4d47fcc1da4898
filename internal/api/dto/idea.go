package dto

import "time"

// IdeaBaseDTO 创建/更新创意的请求体。
// 允许修改的字段只有这四个，点赞状态只能通过 toggle 接口变化；
// 创建者身份取自已校验的调用方，不接受请求体传入。
type IdeaBaseDTO struct {
	Title       string `json:"title" binding:"required,max=120"`
	Description string `json:"description" binding:"required,max=5000"`
	Category    string `json:"category" binding:"required,oneof=Technology Business Education Health Entertainment Other"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,max=2048"`
}

// IdeaDTO 创意返回详情
type IdeaDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	Likes       int64     `json:"likes"`
	LikedBy     []string  `json:"likedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
