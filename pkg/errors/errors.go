package errors

import "errors"

// ========== 错误码常量定义 ==========

// CodeSuccess 成功码
const (
	CodeSuccess = 200
)

// HTTP层错误码 (400-599)
const (
	CodeInvalidParam = 400
	CodeNotFound     = 404
	CodeServerError  = 500
)

// ========== 业务错误 ==========

// 服务层返回的哨兵错误，handler层据此决定HTTP状态码
var (
	// ErrDuplicateCode 客户代码已存在
	ErrDuplicateCode = errors.New("客户代码已存在")
	// ErrDuplicateKey 唯一约束冲突（如料号重复）
	ErrDuplicateKey = errors.New("唯一约束冲突")
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrInvalidStatus 非法的状态值
	ErrInvalidStatus = errors.New("非法的状态值")
)
