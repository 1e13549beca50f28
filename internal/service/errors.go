package service

import (
	"errors"

	"gorm.io/gorm"

	"course_qa_backend/internal/util"
)

// orNotFound 把 gorm 的未命中翻译成领域 NotFound，其余包装为存储层失败。
// "没查到" 和 "查询失败" 必须是两种可区分的结果。
func orNotFound(err error, sentinel error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return util.StoreError(op, err)
}
