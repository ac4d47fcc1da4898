package dto

// CategoryStatsDTO 分类统计快照
type CategoryStatsDTO struct {
	Categories map[string]int64 `json:"categories"`
	TotalLikes int64            `json:"total_likes"`
}

// MediaUploadDTO 上传结果
type MediaUploadDTO struct {
	URL string `json:"url"`
}
