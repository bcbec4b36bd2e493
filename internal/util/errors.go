package util

import "errors"

var (
	ErrUserNotFound     = errors.New("用户不存在")
	ErrUserDisabled     = errors.New("账号已被禁用")
	ErrPermissionDenied = errors.New("permission denied")
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrAttemptNotFound  = errors.New("attempt not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionNotBooked = errors.New("session is not in booked state")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrTutorNotFound    = errors.New("tutor profile not found")
	ErrTutorUnavailable = errors.New("tutor is not available at the requested time")
	ErrPostNotFound     = errors.New("blog post not found")
	ErrSlugTaken        = errors.New("该 slug 已被占用")
	ErrUnsupportedFile  = errors.New("不支持的文件类型")
)
