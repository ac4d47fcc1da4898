package dto

// ToggleLikeDTO 点赞翻转结果：新的计数与调用方当前的成员关系
type ToggleLikeDTO struct {
	Likes int64 `json:"likes"`
	Liked bool  `json:"liked"`
}

// LikedDTO 点赞成员关系查询结果
type LikedDTO struct {
	Liked bool `json:"liked"`
}

// IdeaActionStateDTO 创意详情页的交互状态
type IdeaActionStateDTO struct {
	LikeCount int64 `json:"like_count"`
	IsLiked   bool  `json:"is_liked"`
}

// IdeaBatchLikesReq 批量获取点赞数请求
type IdeaBatchLikesReq struct {
	IdeaIDs []string `json:"idea_ids" binding:"required,min=1,max=100"`
}

// IdeaBatchLikesDTO 批量获取点赞数响应
type IdeaBatchLikesDTO struct {
	Likes map[string]int64 `json:"likes"`
}
