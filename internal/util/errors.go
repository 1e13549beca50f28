package util

import (
	"errors"
	"fmt"
)

// 错误分类：NotFound / Conflict / Validation，其余一律视为存储层失败。
// 服务层用 %w 包装后向上传递，控制器用 errors.Is 映射到 HTTP 状态码。
var (
	ErrNotFound   = errors.New("resource not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

var (
	ErrUserNotFound          = fmt.Errorf("%w: 用户不存在", ErrNotFound)
	ErrUsernameTaken         = fmt.Errorf("%w: 该用户名已被注册", ErrConflict)
	ErrQuestionNotFound      = fmt.Errorf("%w: question not found", ErrNotFound)
	ErrAnswerNotFound        = fmt.Errorf("%w: answer not found", ErrNotFound)
	ErrReviewNotFound        = fmt.Errorf("%w: review not found", ErrNotFound)
	ErrTrustEdgeNotFound     = fmt.Errorf("%w: trusted reviewer not found", ErrNotFound)
	ErrScorecardNotFound     = fmt.Errorf("%w: reviewer scorecard not found", ErrNotFound)
	ErrRequestNotFound       = fmt.Errorf("%w: request not found", ErrNotFound)
	ErrDuplicateRoleRequest  = fmt.Errorf("%w: pending role request already exists", ErrConflict)
	ErrRequestAlreadyDecided = fmt.Errorf("%w: role request already decided", ErrConflict)
	ErrRequestNotClosed      = fmt.Errorf("%w: only closed requests can be reopened", ErrConflict)
	ErrRequestAlreadyClosed  = fmt.Errorf("%w: request already closed", ErrConflict)
	ErrReviewTargetInvalid   = fmt.Errorf("%w: review must target exactly one of question or answer", ErrValidation)
	ErrTrustWeightOutOfRange = fmt.Errorf("%w: trust weight must be between 1 and 10", ErrValidation)
	ErrInvalidRole           = fmt.Errorf("%w: unknown role tag", ErrValidation)
	ErrInvalidCredentials    = errors.New("invalid credentials")
)

// StoreError 包装底层 gorm 错误，保留原因但统一出口。
func StoreError(op string, err error) error {
	return fmt.Errorf("store failure in %s: %w", op, err)
}
