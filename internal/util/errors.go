package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrUserExists         = errors.New("用户名或邮箱已被注册")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCourseNotFound     = errors.New("course not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidApproval    = errors.New("invalid approved value")
	ErrInvalidScore       = errors.New("score must be between 1 and 5")
)
