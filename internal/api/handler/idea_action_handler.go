package handler

import (
	"IdeaVerse/internal/api/dto"
	"IdeaVerse/internal/pkg/response"
	"IdeaVerse/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

type IdeaActionHandler struct {
	actionSvc service.IdeaActionService
}

func NewIdeaActionHandler(actionSvc service.IdeaActionService) *IdeaActionHandler {
	return &IdeaActionHandler{
		actionSvc: actionSvc,
	}
}

// ToggleLike 点赞/取消点赞创意。同一用户重复调用在两种状态间翻转，
// 返回翻转后的计数和调用方当前的点赞状态，前端无需二次查询。
func (s *IdeaActionHandler) ToggleLike(c *gin.Context) {
	ideaID, err := primitive.ObjectIDFromHex(c.Param("idea_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetString("user_id")

	result, err := s.actionSvc.ToggleLike(c.Request.Context(), userID, ideaID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetLiked 查询调用方是否点赞过该创意
func (s *IdeaActionHandler) GetLiked(c *gin.Context) {
	ideaID, err := primitive.ObjectIDFromHex(c.Param("idea_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetString("user_id")

	liked, err := s.actionSvc.IsLiked(c.Request.Context(), userID, ideaID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.LikedDTO{Liked: liked})
}

// GetActionState 获取创意详情页的交互状态，点赞数与成员关系并发获取
func (s *IdeaActionHandler) GetActionState(c *gin.Context) {
	ideaID, err := primitive.ObjectIDFromHex(c.Param("idea_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetString("user_id")

	ctx := c.Request.Context()
	state := &dto.IdeaActionStateDTO{}
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.actionSvc.GetLikeCount(gCtx, ideaID)
		state.LikeCount = count
		return err
	})
	g.Go(func() error {
		if userID == "" {
			return nil
		}
		liked, err := s.actionSvc.IsLiked(gCtx, userID, ideaID)
		state.IsLiked = liked
		return err
	})

	if err = g.Wait(); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, state)
}

// GetBatchLikes 批量获取点赞数（用于瀑布流渲染）
func (s *IdeaActionHandler) GetBatchLikes(c *gin.Context) {
	var req dto.IdeaBatchLikesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	ids := make([]primitive.ObjectID, 0, len(req.IdeaIDs))
	for _, raw := range req.IdeaIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			response.Error(c, service.ErrParamInvalid)
			return
		}
		ids = append(ids, id)
	}

	counts, err := s.actionSvc.GetLikeCounts(c.Request.Context(), ids)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.IdeaBatchLikesDTO{Likes: counts})
}
