package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 客户类型常量
const (
	CustomerTypeDirect      = "direct"      // 直接客户
	CustomerTypeDistributor = "distributor" // 分销商
	CustomerTypeAgent       = "agent"       // 代理商
)

// 客户状态常量
const (
	CustomerStatusActive   = "active"   // 活跃
	CustomerStatusInactive = "inactive" // 非活跃
	CustomerStatusPending  = "pending"  // 待审核
)

// ValidCustomerStatus 检查状态值是否合法
func ValidCustomerStatus(status string) bool {
	switch status {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusPending:
		return true
	}
	return false
}

// ValidCustomerType 检查客户类型是否合法
func ValidCustomerType(customerType string) bool {
	switch customerType {
	case CustomerTypeDirect, CustomerTypeDistributor, CustomerTypeAgent:
		return true
	}
	return false
}

// Customer 客户模型（采购方）
type Customer struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Name         string `gorm:"size:200;not null;index:idx_customer_name" json:"name"`
	Code         string `gorm:"size:50;not null;uniqueIndex" json:"code"` // 客户代码，入库前统一转大写
	CustomerType string `gorm:"size:20;not null;default:'direct'" json:"customer_type"`
	Status       string `gorm:"size:20;not null;default:'pending';index:idx_customer_status" json:"status"`

	// 公司信息
	CompanyAddress string `gorm:"type:text;not null" json:"company_address"`
	CompanyPhone   string `gorm:"size:50" json:"company_phone"`
	CompanyEmail   string `gorm:"size:100" json:"company_email"`
	Website        string `gorm:"size:200" json:"website"`

	// 营业执照信息
	BusinessLicenseNumber   string `gorm:"size:100" json:"business_license_number"`
	TaxIdentificationNumber string `gorm:"size:100" json:"tax_identification_number"`
	RegisteredCapital       string `gorm:"size:100" json:"registered_capital"` // 可能带单位，字符串存储

	// 商务信息
	PaymentTerms       string `gorm:"size:100;default:'Net 30'" json:"payment_terms"`
	CreditLimit        string `gorm:"size:100" json:"credit_limit"`
	CurrencyPreference string `gorm:"size:10;default:'CNY'" json:"currency_preference"`

	// 关联：删除客户时级联删除联系人
	Contacts []CustomerContact `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"contacts,omitempty"`
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}

// BeforeCreate 生成UUID主键
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CustomerContact 客户联系人模型，生命周期完全绑定所属客户
type CustomerContact struct {
	ID         string    `gorm:"type:varchar(36);primarykey" json:"id"`
	CustomerID string    `gorm:"type:varchar(36);not null;index:idx_contact_customer" json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Position    string `gorm:"size:100" json:"position"`
	Department  string `gorm:"size:100" json:"department"`
	IsPurchaser bool   `gorm:"default:false" json:"is_purchaser"` // 是否是采购员
	IsPrimary   bool   `gorm:"default:false" json:"is_primary"`   // 是否是主要联系人

	Phone  string `gorm:"size:50" json:"phone"`
	Mobile string `gorm:"size:50" json:"mobile"`
	Email  string `gorm:"size:100" json:"email"`
	WeChat string `gorm:"size:100;column:wechat" json:"wechat"`

	Notes string `gorm:"type:text" json:"notes"`
}

// TableName 指定表名
func (CustomerContact) TableName() string {
	return "customer_contacts"
}

// BeforeCreate 生成UUID主键
func (cc *CustomerContact) BeforeCreate(tx *gorm.DB) error {
	if cc.ID == "" {
		cc.ID = uuid.NewString()
	}
	return nil
}
