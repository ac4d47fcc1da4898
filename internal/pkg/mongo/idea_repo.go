package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IdeaRepo interface {
	Insert(ctx context.Context, idea *IdeaModel) error
	InsertMany(ctx context.Context, ideas []*IdeaModel) error
	FindAll(ctx context.Context) ([]*IdeaModel, error)
	FindByCategory(ctx context.Context, category string) ([]*IdeaModel, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*IdeaModel, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*IdeaModel, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteAll(ctx context.Context) error

	ToggleLike(ctx context.Context, id primitive.ObjectID, userID string) (*IdeaModel, error)
	LikeCounts(ctx context.Context, ids []primitive.ObjectID) (map[string]int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
	SumLikes(ctx context.Context) (int64, error)
}

type ideaRepoImpl struct {
	col *mongo.Collection
}

func NewIdeaRepo(db *mongo.Database) IdeaRepo {
	return &ideaRepoImpl{
		col: db.Collection("ideas"),
	}
}

// Insert 插入新创意并回填生成的 ID
func (s *ideaRepoImpl) Insert(ctx context.Context, idea *IdeaModel) error {
	result, err := s.col.InsertOne(ctx, idea)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		idea.ID = oid
	}
	return nil
}

func (s *ideaRepoImpl) InsertMany(ctx context.Context, ideas []*IdeaModel) error {
	docs := make([]interface{}, len(ideas))
	for i, idea := range ideas {
		docs[i] = idea
	}
	_, err := s.col.InsertMany(ctx, docs)
	return err
}

// FindAll 获取全部创意 (按创建时间倒序)
func (s *ideaRepoImpl) FindAll(ctx context.Context) ([]*IdeaModel, error) {
	return s.findSorted(ctx, bson.M{})
}

// FindByCategory 按分类获取创意，未知分类返回空列表而非错误
func (s *ideaRepoImpl) FindByCategory(ctx context.Context, category string) ([]*IdeaModel, error) {
	return s.findSorted(ctx, bson.M{"category": category})
}

func (s *ideaRepoImpl) findSorted(ctx context.Context, filter bson.M) ([]*IdeaModel, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	list := make([]*IdeaModel, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// FindByID 根据 ID 获取创意，不存在返回 mongo.ErrNoDocuments
func (s *ideaRepoImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*IdeaModel, error) {
	var idea IdeaModel
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&idea)
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// UpdateFields 以 $set 更新给定字段并返回更新后的文档。
// 允许的字段集合由调用方 (service 层) 约束，点赞状态不会经过这里。
func (s *ideaRepoImpl) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*IdeaModel, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var idea IdeaModel
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		opts,
	).Decode(&idea)
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// Delete 删除创意，文档不存在时静默成功
func (s *ideaRepoImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (s *ideaRepoImpl) DeleteAll(ctx context.Context) error {
	_, err := s.col.DeleteMany(ctx, bson.M{})
	return err
}

// ToggleLike 翻转 userID 在 liked_by 中的成员关系并重算 likes。
// 成员变更和派生计数在同一条 pipeline 更新中落库，由存储端原子执行，
// 不同用户对同一创意的并发点赞会在存储端串行化，不存在读-改-写竞争。
// 不存在返回 mongo.ErrNoDocuments。
func (s *ideaRepoImpl) ToggleLike(ctx context.Context, id primitive.ObjectID, userID string) (*IdeaModel, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var idea IdeaModel
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		toggleLikePipeline(userID),
		opts,
	).Decode(&idea)
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// toggleLikePipeline 构造翻转点赞的 pipeline 更新：
// 阶段一按当前成员关系增删 userID，阶段二把 likes 重算为集合基数。
func toggleLikePipeline(userID string) mongo.Pipeline {
	members := bson.D{{Key: "$ifNull", Value: bson.A{"$liked_by", bson.A{}}}}

	return mongo.Pipeline{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "liked_by", Value: bson.D{{Key: "$cond", Value: bson.D{
				{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{userID, members}}}},
				{Key: "then", Value: bson.D{{Key: "$setDifference", Value: bson.A{members, bson.A{userID}}}}},
				{Key: "else", Value: bson.D{{Key: "$concatArrays", Value: bson.A{members, bson.A{userID}}}}},
			}}}},
		}}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "likes", Value: bson.D{{Key: "$size", Value: "$liked_by"}}},
		}}},
	}
}

// LikeCounts 批量获取点赞数，键为创意 ID 的十六进制串
func (s *ideaRepoImpl) LikeCounts(ctx context.Context, ids []primitive.ObjectID) (map[string]int64, error) {
	opts := options.Find().SetProjection(bson.M{"likes": 1})

	cursor, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	type likeRow struct {
		ID    primitive.ObjectID `bson:"_id"`
		Likes int64              `bson:"likes"`
	}

	counts := make(map[string]int64, len(ids))
	for cursor.Next(ctx) {
		var row likeRow
		if err = cursor.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.ID.Hex()] = row.Likes
	}
	return counts, cursor.Err()
}

// CountByCategory 按分类聚合创意数量
func (s *ideaRepoImpl) CountByCategory(ctx context.Context) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	type categoryRow struct {
		Category string `bson:"_id"`
		Count    int64  `bson:"count"`
	}

	counts := make(map[string]int64)
	for cursor.Next(ctx) {
		var row categoryRow
		if err = cursor.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Category] = row.Count
	}
	return counts, cursor.Err()
}

// SumLikes 全站点赞总数
func (s *ideaRepoImpl) SumLikes(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$likes"}}},
		}}},
	}

	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var row struct {
		Total int64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err = cursor.Decode(&row); err != nil {
			return 0, err
		}
	}
	return row.Total, cursor.Err()
}
