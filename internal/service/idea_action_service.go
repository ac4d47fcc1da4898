package service

import (
	"IdeaVerse/internal/api/dto"
	"IdeaVerse/internal/pkg/consts"
	"IdeaVerse/internal/pkg/mongo"
	"IdeaVerse/internal/pkg/redis"
	"context"
	"errors"
	log "log/slog"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

const statsExpiration = 0 // 快照由定时任务覆盖刷新，不设过期

type IdeaActionService interface {
	ToggleLike(ctx context.Context, userID string, ideaID primitive.ObjectID) (*dto.ToggleLikeDTO, error)
	IsLiked(ctx context.Context, userID string, ideaID primitive.ObjectID) (bool, error)
	GetLikeCount(ctx context.Context, ideaID primitive.ObjectID) (int64, error)
	GetLikeCounts(ctx context.Context, ideaIDs []primitive.ObjectID) (map[string]int64, error)

	GetCategoryStats(ctx context.Context) (*dto.CategoryStatsDTO, error)
	RefreshCategoryStats(ctx context.Context) error
}

type ideaActionServiceImpl struct {
	ideaRepo mongo.IdeaRepo
}

func NewIdeaActionService(ideaRepo mongo.IdeaRepo) IdeaActionService {
	return &ideaActionServiceImpl{
		ideaRepo: ideaRepo,
	}
}

// ToggleLike 翻转调用方对创意的点赞状态。
// 任何已登录用户都可以点赞任何创意，不做所有权限制。
// 翻转两次等价于回到原状态；返回的计数与成员关系取自同一次原子更新的结果。
func (s *ideaActionServiceImpl) ToggleLike(ctx context.Context, userID string, ideaID primitive.ObjectID) (*dto.ToggleLikeDTO, error) {
	updated, err := s.ideaRepo.ToggleLike(ctx, ideaID, userID)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, ErrIdeaNotFound
		}
		log.ErrorContext(ctx, "toggle like failed", "err", err)
		return nil, UnExpectedError
	}

	return &dto.ToggleLikeDTO{
		Likes: updated.Likes,
		Liked: containsUser(updated.LikedBy, userID),
	}, nil
}

// IsLiked 纯成员关系查询，创意不存在时报 NotFound
func (s *ideaActionServiceImpl) IsLiked(ctx context.Context, userID string, ideaID primitive.ObjectID) (bool, error) {
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return false, ErrIdeaNotFound
		}
		log.ErrorContext(ctx, "check liked failed", "err", err)
		return false, UnExpectedError
	}
	return containsUser(idea.LikedBy, userID), nil
}

func (s *ideaActionServiceImpl) GetLikeCount(ctx context.Context, ideaID primitive.ObjectID) (int64, error) {
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return 0, ErrIdeaNotFound
		}
		log.ErrorContext(ctx, "get like count failed", "err", err)
		return 0, UnExpectedError
	}
	return idea.Likes, nil
}

// GetLikeCounts 批量获取点赞数（用于瀑布流渲染），不存在的 ID 不出现在结果中
func (s *ideaActionServiceImpl) GetLikeCounts(ctx context.Context, ideaIDs []primitive.ObjectID) (map[string]int64, error) {
	counts, err := s.ideaRepo.LikeCounts(ctx, ideaIDs)
	if err != nil {
		log.ErrorContext(ctx, "get like counts failed", "err", err)
		return nil, UnExpectedError
	}
	return counts, nil
}

// GetCategoryStats 读取统计快照，缓存未命中时现算并回填
func (s *ideaActionServiceImpl) GetCategoryStats(ctx context.Context) (*dto.CategoryStatsDTO, error) {
	cached, err := redis.HGetAll(ctx, consts.IdeaStatsCategoryKey)
	if err == nil && len(cached) > 0 {
		categories := make(map[string]int64, len(cached))
		for k, v := range cached {
			n, _ := strconv.ParseInt(v, 10, 64)
			categories[k] = n
		}
		totalLikes, err := redis.GetInt64(ctx, consts.IdeaStatsLikesKey)
		if err == nil {
			return &dto.CategoryStatsDTO{Categories: categories, TotalLikes: totalLikes}, nil
		}
	}

	categories, totalLikes, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheStats(ctx, categories, totalLikes)

	return &dto.CategoryStatsDTO{Categories: categories, TotalLikes: totalLikes}, nil
}

// RefreshCategoryStats 重算统计并覆盖快照，由定时任务周期触发
func (s *ideaActionServiceImpl) RefreshCategoryStats(ctx context.Context) error {
	categories, totalLikes, err := s.computeStats(ctx)
	if err != nil {
		return err
	}
	s.cacheStats(ctx, categories, totalLikes)
	return nil
}

func (s *ideaActionServiceImpl) computeStats(ctx context.Context) (map[string]int64, int64, error) {
	categories, err := s.ideaRepo.CountByCategory(ctx)
	if err != nil {
		log.ErrorContext(ctx, "compute category stats failed", "err", err)
		return nil, 0, UnExpectedError
	}
	totalLikes, err := s.ideaRepo.SumLikes(ctx)
	if err != nil {
		log.ErrorContext(ctx, "compute like stats failed", "err", err)
		return nil, 0, UnExpectedError
	}
	return categories, totalLikes, nil
}

func (s *ideaActionServiceImpl) cacheStats(ctx context.Context, categories map[string]int64, totalLikes int64) {
	if err := redis.HSetAll(ctx, consts.IdeaStatsCategoryKey, categories, statsExpiration); err != nil {
		log.WarnContext(ctx, "cache category stats failed", "err", err)
	}
	if err := redis.SetWithExpiration(ctx, consts.IdeaStatsLikesKey, totalLikes, statsExpiration); err != nil {
		log.WarnContext(ctx, "cache like stats failed", "err", err)
	}
}

func containsUser(likedBy []string, userID string) bool {
	for _, uid := range likedBy {
		if uid == userID {
			return true
		}
	}
	return false
}
