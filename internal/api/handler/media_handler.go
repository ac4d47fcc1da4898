package handler

import (
	"IdeaVerse/internal/api/dto"
	"IdeaVerse/internal/pkg/consts"
	"IdeaVerse/internal/pkg/minio"
	"IdeaVerse/internal/pkg/response"
	"IdeaVerse/internal/pkg/util"
	"IdeaVerse/internal/service"
	log "log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MediaHandler struct{}

func NewMediaHandler() *MediaHandler {
	return &MediaHandler{}
}

// Upload 上传创意封面图。只接受图片，按真实内容嗅探类型，
// 重编码后存入 MinIO，返回可直接填入 imageUrl 的公共地址。
func (s *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	contentType, err := util.GetSafeContentType(reader)
	if err != nil || !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	normalized, size, outType, err := util.NormalizeImage(reader)
	if err != nil {
		response.Error(c, service.ErrFileNotSupported)
		return
	}

	objectName := "covers/" + uuid.NewString()
	if outType == "image/png" {
		objectName += ".png"
	} else {
		objectName += ".jpg"
	}

	key, err := minio.UploadFile(c.Request.Context(), objectName, normalized, size, outType)
	if err != nil {
		log.ErrorContext(c.Request.Context(), "upload cover failed", "err", err)
		response.Error(c, service.ErrStorageUnavailable)
		return
	}

	response.Success(c, dto.MediaUploadDTO{URL: minio.GetPublicURL(key)})
}
