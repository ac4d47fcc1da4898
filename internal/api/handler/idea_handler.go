package handler

import (
	"IdeaVerse/internal/api/dto"
	"IdeaVerse/internal/pkg/response"
	"IdeaVerse/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IdeaHandler struct {
	ideaSvc service.IdeaService
}

func NewIdeaHandler(ideaSvc service.IdeaService) *IdeaHandler {
	return &IdeaHandler{
		ideaSvc: ideaSvc,
	}
}

// ListIdeas 获取创意列表，可选按分类过滤。
// 未知分类返回空列表，不做枚举校验（与前端的宽松约定保持一致）。
func (s *IdeaHandler) ListIdeas(c *gin.Context) {
	category := c.Query("category")

	ideas, err := s.ideaSvc.ListIdeas(c.Request.Context(), category)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, ideas)
}

// GetIdea 获取单条创意详情
func (s *IdeaHandler) GetIdea(c *gin.Context) {
	ideaID, err := primitive.ObjectIDFromHex(c.Param("idea_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	idea, err := s.ideaSvc.GetIdea(c.Request.Context(), ideaID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, idea)
}

// CreateIdea 发布创意
func (s *IdeaHandler) CreateIdea(c *gin.Context) {
	userID := c.GetString("user_id")
	userName := c.GetString("user_name")

	var req dto.IdeaBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	idea, err := s.ideaSvc.CreateIdea(c.Request.Context(), userID, userName, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, idea)
}

// UpdateIdea 更新创意内容 (仅所有者)
func (s *IdeaHandler) UpdateIdea(c *gin.Context) {
	userID := c.GetString("user_id")
	ideaID, err := primitive.ObjectIDFromHex(c.Param("idea_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.IdeaBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	idea, err := s.ideaSvc.UpdateIdea(c.Request.Context(), userID, ideaID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, idea)
}

// DeleteIdea 删除创意 (仅所有者)
func (s *IdeaHandler) DeleteIdea(c *gin.Context) {
	userID := c.GetString("user_id")
	ideaID, err := primitive.ObjectIDFromHex(c.Param("idea_id"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err = s.ideaSvc.DeleteIdea(c.Request.Context(), userID, ideaID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
