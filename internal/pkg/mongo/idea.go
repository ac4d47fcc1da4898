package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IdeaModel 创意文档模型
//
// likes 是 liked_by 的派生计数，两者只会在同一次原子更新中一起变化，
// 任何时刻对外可见的状态都满足 likes == len(liked_by)。
type IdeaModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"` // Technology/Business/Education/Health/Entertainment/Other
	ImageURL    string             `bson:"image_url" json:"imageUrl"`
	UserID      string             `bson:"user_id" json:"userId"`     // 创建者身份，创建后不可变
	UserName    string             `bson:"user_name" json:"userName"` // 创建时的展示名快照
	Likes       int64              `bson:"likes" json:"likes"`
	LikedBy     []string           `bson:"liked_by" json:"likedBy"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}
