package handlers

import (
	"errors"
	"strconv"

	"ecpm/internal/services"
	apperrors "ecpm/pkg/errors"
	"ecpm/pkg/logger"
	"ecpm/pkg/pagination"
	"ecpm/pkg/response"

	"github.com/gin-gonic/gin"
)

type ComponentHandler struct {
	service *services.ComponentService
}

func NewComponentHandler(service *services.ComponentService) *ComponentHandler {
	return &ComponentHandler{
		service: service,
	}
}

// List 获取元器件列表，支持category/subcategory过滤
func (h *ComponentHandler) List(c *gin.Context) {
	category := c.Query("category")
	subcategory := c.Query("subcategory")
	pageParams := pagination.ParsePageParamsWith(c, "per_page")

	items, total, err := h.service.List(category, subcategory, pageParams.Page, pageParams.PageSize)
	if err != nil {
		logger.GetLogger().Errorf("Failed to list components: %v", err)
		response.ServerError(c, "Failed to list components")
		return
	}

	response.Success(c, "success", gin.H{
		"items":    items,
		"page":     pageParams.Page,
		"per_page": pageParams.PageSize,
		"total":    total,
	})
}

// GetByID 获取元器件详情
func (h *ComponentHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid component id")
		return
	}

	data, err := h.service.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Component not found")
			return
		}
		logger.GetLogger().Errorf("Failed to get component %d: %v", id, err)
		response.ServerError(c, "Failed to get component")
		return
	}

	response.Success(c, "success", data)
}

// CreateACDC 创建AC-DC控制器
func (h *ComponentHandler) CreateACDC(c *gin.Context) {
	var req services.CreateACDCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, "Invalid request body", []string{err.Error()})
		return
	}
	data, err := h.service.CreateACDC(&req)
	h.created(c, data, err)
}

// CreateDCDC 创建DC-DC稳压器
func (h *ComponentHandler) CreateDCDC(c *gin.Context) {
	var req services.CreateDCDCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, "Invalid request body", []string{err.Error()})
		return
	}
	data, err := h.service.CreateDCDC(&req)
	h.created(c, data, err)
}

// CreateLDO 创建LDO稳压器
func (h *ComponentHandler) CreateLDO(c *gin.Context) {
	var req services.CreateLDORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, "Invalid request body", []string{err.Error()})
		return
	}
	data, err := h.service.CreateLDO(&req)
	h.created(c, data, err)
}

// CreateMCU 创建MCU控制器
func (h *ComponentHandler) CreateMCU(c *gin.Context) {
	var req services.CreateMCURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, "Invalid request body", []string{err.Error()})
		return
	}
	data, err := h.service.CreateMCU(&req)
	h.created(c, data, err)
}

// CreateMemory 创建存储器芯片
func (h *ComponentHandler) CreateMemory(c *gin.Context) {
	var req services.CreateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, "Invalid request body", []string{err.Error()})
		return
	}
	data, err := h.service.CreateMemory(&req)
	h.created(c, data, err)
}

// CreateDiscrete 创建分立器件
func (h *ComponentHandler) CreateDiscrete(c *gin.Context) {
	var req services.CreateDiscreteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, "Invalid request body", []string{err.Error()})
		return
	}
	data, err := h.service.CreateDiscrete(&req)
	h.created(c, data, err)
}

// CreatePassive 创建被动元件
func (h *ComponentHandler) CreatePassive(c *gin.Context) {
	var req services.CreatePassiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, "Invalid request body", []string{err.Error()})
		return
	}
	data, err := h.service.CreatePassive(&req)
	h.created(c, data, err)
}

// CreateFilter 创建滤波器
func (h *ComponentHandler) CreateFilter(c *gin.Context) {
	var req services.CreateFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, "Invalid request body", []string{err.Error()})
		return
	}
	data, err := h.service.CreateFilter(&req)
	h.created(c, data, err)
}

// CreateRelay 创建继电器
func (h *ComponentHandler) CreateRelay(c *gin.Context) {
	var req services.CreateRelayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, "Invalid request body", []string{err.Error()})
		return
	}
	data, err := h.service.CreateRelay(&req)
	h.created(c, data, err)
}

// created 统一处理创建结果
// 所有创建路径一致处理唯一约束冲突，内部错误不回显细节
func (h *ComponentHandler) created(c *gin.Context, data map[string]interface{}, err error) {
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateKey) {
			response.BadRequest(c, "Part number already exists")
			return
		}
		logger.GetLogger().Errorf("Failed to create component: %v", err)
		response.ServerError(c, "Failed to create component")
		return
	}
	response.Created(c, "Component created successfully", data)
}

// Update 更新元器件通用字段
func (h *ComponentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid component id")
		return
	}

	var req services.UpdateComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, "Invalid request body", []string{err.Error()})
		return
	}

	data, err := h.service.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Component not found")
			return
		}
		logger.GetLogger().Errorf("Failed to update component %d: %v", id, err)
		response.ServerError(c, "Failed to update component")
		return
	}

	response.Success(c, "Component updated successfully", data)
}

// Delete 删除元器件
func (h *ComponentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid component id")
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Component not found")
			return
		}
		logger.GetLogger().Errorf("Failed to delete component %d: %v", id, err)
		response.ServerError(c, "Failed to delete component")
		return
	}

	response.Success(c, "Component deleted successfully", nil)
}
