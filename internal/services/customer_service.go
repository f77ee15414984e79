package services

import (
	"errors"
	"strings"

	"ecpm/internal/models"
	apperrors "ecpm/pkg/errors"
	"ecpm/pkg/logger"
	"ecpm/pkg/queue"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CustomerService 客户服务
type CustomerService struct {
	db    *gorm.DB
	queue *queue.RedisQueue
}

// NewCustomerService 创建客户服务，queue可为nil
func NewCustomerService(db *gorm.DB, redisQueue *queue.RedisQueue) *CustomerService {
	return &CustomerService{
		db:    db,
		queue: redisQueue,
	}
}

// ContactCreateRequest 创建联系人请求
type ContactCreateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Position    string `json:"position" binding:"max=100"`
	Department  string `json:"department" binding:"max=100"`
	IsPurchaser bool   `json:"is_purchaser"`
	IsPrimary   bool   `json:"is_primary"`
	Phone       string `json:"phone" binding:"max=50"`
	Mobile      string `json:"mobile" binding:"max=50"`
	Email       string `json:"email" binding:"omitempty,email"`
	WeChat      string `json:"wechat" binding:"max=100"`
	Notes       string `json:"notes"`
}

// CreateCustomerRequest 创建客户请求，至少需要一个联系人
type CreateCustomerRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=200"`
	Code         string `json:"code" binding:"required,min=1,max=50"`
	CustomerType string `json:"customer_type" binding:"omitempty,oneof=direct distributor agent"`

	CompanyAddress string `json:"company_address" binding:"required,min=1"`
	CompanyPhone   string `json:"company_phone" binding:"max=50"`
	CompanyEmail   string `json:"company_email" binding:"omitempty,email"`
	Website        string `json:"website" binding:"max=200"`

	BusinessLicenseNumber   string `json:"business_license_number" binding:"max=100"`
	TaxIdentificationNumber string `json:"tax_identification_number" binding:"max=100"`
	RegisteredCapital       string `json:"registered_capital" binding:"max=100"`

	PaymentTerms       string `json:"payment_terms" binding:"max=100"`
	CreditLimit        string `json:"credit_limit" binding:"max=100"`
	CurrencyPreference string `json:"currency_preference" binding:"max=10"`

	Contacts []ContactCreateRequest `json:"contacts" binding:"required,min=1,dive"`
}

// NormalizeCode 客户代码统一转大写
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidateCode 客户代码只允许字母、数字、下划线和连字符
func ValidateCode(code string) bool {
	if code == "" {
		return false
	}
	for _, r := range code {
		if !((r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '_' || r == '-') {
			return false
		}
	}
	return true
}

// Create 创建客户及其联系人（一个事务内完成）
// 客户代码大小写不敏感唯一：先查重，并发竞态由唯一索引兜底
func (s *CustomerService) Create(req *CreateCustomerRequest) (*models.Customer, error) {
	code := NormalizeCode(req.Code)

	// 检查客户代码是否已存在
	var count int64
	if err := s.db.Model(&models.Customer{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCode
	}

	customer := &models.Customer{
		Name:                    req.Name,
		Code:                    code,
		CustomerType:            req.CustomerType,
		Status:                  models.CustomerStatusPending,
		CompanyAddress:          req.CompanyAddress,
		CompanyPhone:            req.CompanyPhone,
		CompanyEmail:            req.CompanyEmail,
		Website:                 req.Website,
		BusinessLicenseNumber:   req.BusinessLicenseNumber,
		TaxIdentificationNumber: req.TaxIdentificationNumber,
		RegisteredCapital:       req.RegisteredCapital,
		PaymentTerms:            req.PaymentTerms,
		CreditLimit:             req.CreditLimit,
		CurrencyPreference:      req.CurrencyPreference,
	}

	// 默认值
	if customer.CustomerType == "" {
		customer.CustomerType = models.CustomerTypeDirect
	}
	if customer.PaymentTerms == "" {
		customer.PaymentTerms = "Net 30"
	}
	if customer.CurrencyPreference == "" {
		customer.CurrencyPreference = "CNY"
	}

	for _, contact := range req.Contacts {
		customer.Contacts = append(customer.Contacts, models.CustomerContact{
			Name:        contact.Name,
			Position:    contact.Position,
			Department:  contact.Department,
			IsPurchaser: contact.IsPurchaser,
			IsPrimary:   contact.IsPrimary,
			Phone:       contact.Phone,
			Mobile:      contact.Mobile,
			Email:       contact.Email,
			WeChat:      contact.WeChat,
			Notes:       contact.Notes,
		})
	}

	// 客户与联系人在同一事务内写入，任一失败整体回滚
	if err := s.db.Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateCode
		}
		return nil, err
	}

	s.publishEvent("customer.created", customer.ID, map[string]interface{}{
		"code": customer.Code,
	})

	return customer, nil
}

// GetByID 根据ID获取客户（含联系人），不存在时返回nil而非错误
func (s *CustomerService) GetByID(id string) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.Preload("Contacts").Where("id = ?", id).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// GetByCode 根据客户代码获取客户（含联系人），不存在时返回nil
func (s *CustomerService) GetByCode(code string) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.Preload("Contacts").Where("code = ?", NormalizeCode(code)).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

// List 分页获取客户列表，按插入顺序稳定排序，可按状态过滤
func (s *CustomerService) List(skip, limit int, status string) ([]models.Customer, int64, error) {
	query := s.db.Model(&models.Customer{})

	if status != "" {
		if !models.ValidCustomerStatus(status) {
			return nil, 0, apperrors.ErrInvalidStatus
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []models.Customer
	err := query.Order("created_at, id").Offset(skip).Limit(limit).Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}

	return customers, total, nil
}

// UpdateStatus 更新客户状态
// 无状态机约束，任意状态可以迁移到任意状态
func (s *CustomerService) UpdateStatus(id string, status string) (*models.Customer, error) {
	if !models.ValidCustomerStatus(status) {
		return nil, apperrors.ErrInvalidStatus
	}

	var customer models.Customer
	if err := s.db.Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	customer.Status = status
	if err := s.db.Save(&customer).Error; err != nil {
		return nil, err
	}

	s.publishEvent("customer.status_updated", customer.ID, map[string]interface{}{
		"status": status,
	})

	return &customer, nil
}

// Delete 删除客户，联系人一并删除；不存在时返回false而非错误
func (s *CustomerService) Delete(id string) (bool, error) {
	var customer models.Customer
	if err := s.db.Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	// 显式删除关联联系人，不依赖数据库方言的级联行为
	if err := s.db.Select(clause.Associations).Delete(&customer).Error; err != nil {
		return false, err
	}

	s.publishEvent("customer.deleted", id, nil)

	return true, nil
}

// publishEvent 发送变更事件到队列和广播频道，失败只记录日志
func (s *CustomerService) publishEvent(eventType, resourceID string, payload map[string]interface{}) {
	if s.queue == nil {
		return
	}

	message := &queue.EventMessage{
		EventType:  eventType,
		Resource:   "customer",
		ResourceID: resourceID,
		Payload:    payload,
	}

	if err := s.queue.Enqueue("events", message); err != nil {
		logger.GetLogger().Warnf("事件入队失败 %s: %v", eventType, err)
	}
	if err := s.queue.Publish("events", message); err != nil {
		logger.GetLogger().Warnf("事件广播失败 %s: %v", eventType, err)
	}
}
