package service

import (
	"IdeaVerse/internal/api/dto"
	"IdeaVerse/internal/pkg/mongo"
	"context"
	"errors"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

type IdeaService interface {
	CreateIdea(ctx context.Context, userID, userName string, req *dto.IdeaBaseDTO) (*dto.IdeaDTO, error)
	ListIdeas(ctx context.Context, category string) ([]*dto.IdeaDTO, error)
	GetIdea(ctx context.Context, ideaID primitive.ObjectID) (*dto.IdeaDTO, error)
	UpdateIdea(ctx context.Context, userID string, ideaID primitive.ObjectID, req *dto.IdeaBaseDTO) (*dto.IdeaDTO, error)
	DeleteIdea(ctx context.Context, userID string, ideaID primitive.ObjectID) error
}

type ideaServiceImpl struct {
	ideaRepo mongo.IdeaRepo
}

func NewIdeaService(ideaRepo mongo.IdeaRepo) IdeaService {
	return &ideaServiceImpl{
		ideaRepo: ideaRepo,
	}
}

// CreateIdea 创建创意。所有者身份来自已校验的调用方，
// 展示名为创建时刻的快照，之后不随身份提供方变化。
func (s *ideaServiceImpl) CreateIdea(ctx context.Context, userID, userName string, req *dto.IdeaBaseDTO) (*dto.IdeaDTO, error) {
	if userName == "" {
		userName = userID
	}

	idea := &mongo.IdeaModel{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		UserID:      userID,
		UserName:    userName,
		Likes:       0,
		LikedBy:     []string{},
		CreatedAt:   time.Now(),
	}

	if err := s.ideaRepo.Insert(ctx, idea); err != nil {
		log.ErrorContext(ctx, "create idea failed", "err", err)
		return nil, UnExpectedError
	}

	return toIdeaDTO(idea), nil
}

// ListIdeas 获取创意列表 (按创建时间倒序)。
// category 为空取全量；未知分类返回空列表而非错误。
func (s *ideaServiceImpl) ListIdeas(ctx context.Context, category string) ([]*dto.IdeaDTO, error) {
	var (
		ideas []*mongo.IdeaModel
		err   error
	)

	if category == "" {
		ideas, err = s.ideaRepo.FindAll(ctx)
	} else {
		ideas, err = s.ideaRepo.FindByCategory(ctx, category)
	}
	if err != nil {
		log.ErrorContext(ctx, "list ideas failed", "err", err)
		return nil, UnExpectedError
	}

	list := make([]*dto.IdeaDTO, 0, len(ideas))
	for _, idea := range ideas {
		list = append(list, toIdeaDTO(idea))
	}
	return list, nil
}

func (s *ideaServiceImpl) GetIdea(ctx context.Context, ideaID primitive.ObjectID) (*dto.IdeaDTO, error) {
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, ErrIdeaNotFound
		}
		log.ErrorContext(ctx, "get idea failed", "err", err)
		return nil, UnExpectedError
	}
	return toIdeaDTO(idea), nil
}

// UpdateIdea 仅所有者可更新，且可更新字段限定为
// title/description/category/imageUrl，点赞状态不在其中。
func (s *ideaServiceImpl) UpdateIdea(ctx context.Context, userID string, ideaID primitive.ObjectID, req *dto.IdeaBaseDTO) (*dto.IdeaDTO, error) {
	old, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, ErrIdeaNotFound
		}
		log.ErrorContext(ctx, "update idea failed", "err", err)
		return nil, UnExpectedError
	}
	if old.UserID != userID {
		return nil, ErrNotOwner
	}

	fields := bson.M{
		"title":       req.Title,
		"description": req.Description,
		"category":    req.Category,
		"image_url":   req.ImageURL,
	}

	updated, err := s.ideaRepo.UpdateFields(ctx, ideaID, fields)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, ErrIdeaNotFound
		}
		log.ErrorContext(ctx, "update idea failed", "err", err)
		return nil, UnExpectedError
	}
	return toIdeaDTO(updated), nil
}

// DeleteIdea 仅所有者可删除，删除本身幂等
func (s *ideaServiceImpl) DeleteIdea(ctx context.Context, userID string, ideaID primitive.ObjectID) error {
	old, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return ErrIdeaNotFound
		}
		log.ErrorContext(ctx, "delete idea failed", "err", err)
		return UnExpectedError
	}
	if old.UserID != userID {
		return ErrNotOwner
	}

	if err = s.ideaRepo.Delete(ctx, ideaID); err != nil {
		log.ErrorContext(ctx, "delete idea failed", "err", err)
		return UnExpectedError
	}
	return nil
}

func toIdeaDTO(idea *mongo.IdeaModel) *dto.IdeaDTO {
	var out dto.IdeaDTO
	_ = copier.Copy(&out, idea)
	out.ID = idea.ID.Hex()
	if out.LikedBy == nil {
		out.LikedBy = []string{}
	}
	return &out
}
