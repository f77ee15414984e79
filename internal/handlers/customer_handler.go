package handlers

import (
	"errors"

	"ecpm/internal/services"
	apperrors "ecpm/pkg/errors"
	"ecpm/pkg/logger"
	"ecpm/pkg/pagination"
	"ecpm/pkg/response"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	service *services.CustomerService
}

func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service: service,
	}
}

// UpdateStatusRequest 更新客户状态请求
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Create 创建客户
func (h *CustomerHandler) Create(c *gin.Context) {
	var req services.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, "参数错误", []string{err.Error()})
		return
	}

	// 客户代码格式校验在进入服务层之前完成
	if !services.ValidateCode(req.Code) {
		response.BadRequest(c, "客户代码只能包含字母、数字、下划线和连字符")
		return
	}

	customer, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateCode) {
			response.BadRequest(c, "客户代码 "+services.NormalizeCode(req.Code)+" 已存在")
			return
		}
		logger.GetLogger().Errorf("创建客户失败: %v", err)
		response.ServerError(c, "创建客户失败")
		return
	}

	response.Created(c, "客户创建成功", customer)
}

// List 获取客户列表
func (h *CustomerHandler) List(c *gin.Context) {
	pageParams := pagination.ParsePageParams(c)
	status := c.Query("status")

	customers, total, err := h.service.List(pageParams.GetOffset(), pageParams.GetLimit(), status)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidStatus) {
			response.BadRequest(c, "非法的状态值: "+status)
			return
		}
		logger.GetLogger().Errorf("获取客户列表失败: %v", err)
		response.ServerError(c, "获取客户列表失败")
		return
	}

	response.Success(c, "获取客户列表成功", gin.H{
		"items":     customers,
		"page":      pageParams.Page,
		"page_size": pageParams.PageSize,
		"total":     total,
	})
}

// GetByID 获取客户详情
func (h *CustomerHandler) GetByID(c *gin.Context) {
	customer, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		logger.GetLogger().Errorf("获取客户详情失败: %v", err)
		response.ServerError(c, "获取客户详情失败")
		return
	}
	if customer == nil {
		response.NotFound(c, "客户不存在")
		return
	}

	response.Success(c, "获取客户详情成功", customer)
}

// GetByCode 根据客户代码获取客户
func (h *CustomerHandler) GetByCode(c *gin.Context) {
	customer, err := h.service.GetByCode(c.Param("code"))
	if err != nil {
		logger.GetLogger().Errorf("获取客户详情失败: %v", err)
		response.ServerError(c, "获取客户详情失败")
		return
	}
	if customer == nil {
		response.NotFound(c, "客户不存在")
		return
	}

	response.Success(c, "获取客户详情成功", customer)
}

// UpdateStatus 更新客户状态
func (h *CustomerHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "状态字段是必需的")
		return
	}

	customer, err := h.service.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidStatus) {
			response.BadRequest(c, "非法的状态值: "+req.Status)
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "客户不存在")
			return
		}
		logger.GetLogger().Errorf("更新客户状态失败: %v", err)
		response.ServerError(c, "更新客户状态失败")
		return
	}

	response.Success(c, "客户状态更新成功", customer)
}

// Delete 删除客户（级联删除联系人）
func (h *CustomerHandler) Delete(c *gin.Context) {
	ok, err := h.service.Delete(c.Param("id"))
	if err != nil {
		logger.GetLogger().Errorf("删除客户失败: %v", err)
		response.ServerError(c, "删除客户失败")
		return
	}
	if !ok {
		response.NotFound(c, "客户不存在")
		return
	}

	response.Success(c, "客户删除成功", nil)
}
