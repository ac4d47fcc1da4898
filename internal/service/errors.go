package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
	ServiceUnavailable  = 503
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrIdeaNotFound            = errors.New("创意不存在")
	ErrNotOwner                = errors.New("无权操作他人的创意")
	ErrCategoryInvalid         = errors.New("不支持的分类")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrTokenInvalid            = errors.New("Token 无效或已过期")
	ErrIdentityUnavailable     = errors.New("身份服务不可用，请稍后重试")
	ErrFileNotSupported        = errors.New("不支持的文件类型")
	ErrStorageUnavailable      = errors.New("存储服务不可用")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrIdeaNotFound:            NotFound,
	ErrNotOwner:                Forbidden,
	ErrCategoryInvalid:         BadRequest,
	ErrMissingLoginCredentials: Unauthorized,
	ErrTokenInvalid:            Unauthorized,
	ErrIdentityUnavailable:     ServiceUnavailable,
	ErrFileNotSupported:        BadRequest,
	ErrStorageUnavailable:      ServiceUnavailable,
	UnExpectedError:            InternalServerError,
}
