package models

// 元器件大类常量
const (
	CategoryPower    = "power"    // 电源管理芯片
	CategoryMCU      = "mcu"      // MCU控制器
	CategoryMemory   = "memory"   // 存储器芯片
	CategoryDiscrete = "discrete" // 分立器件
	CategoryPassive  = "passive"  // 被动元件
	CategoryFilter   = "filter"   // 滤波器
	CategoryRelay    = "relay"    // 继电器
)

// 电源芯片类型常量（power大类下的二级判别）
const (
	PowerChipTypeACDC = "ac_dc"
	PowerChipTypeDCDC = "dc_dc"
	PowerChipTypeLDO  = "ldo"
)

// ElectronicComponent 电子元器件基础模型 - 所有元器件的通用属性
// 每条基础记录在对应大类的子表中有且仅有一条扩展记录（共享主键）
type ElectronicComponent struct {
	BaseModel
	Name                    string   `gorm:"size:100;not null" json:"name"`                       // 元器件显示名称
	Manufacturer            string   `gorm:"size:100;not null" json:"manufacturer"`               // 制造商，如TI、ADI、ST
	PartNumber              string   `gorm:"size:50;not null;uniqueIndex" json:"part_number"`     // 型号/料号，全局唯一
	Description             string   `gorm:"type:text" json:"description"`                        // 详细描述
	PackageType             string   `gorm:"size:50" json:"package_type"`                         // 封装类型，如SOP-8、QFN-16
	OperatingTemperatureMin *float64 `json:"operating_temperature_min"`                           // 最低工作温度，单位：°C
	OperatingTemperatureMax *float64 `json:"operating_temperature_max"`                           // 最高工作温度，单位：°C
	ComponentCategory       string   `gorm:"size:20;not null;index" json:"component_category"`    // 大类判别值
	ComponentSubcategory    string   `gorm:"size:30;not null;index" json:"component_subcategory"` // 子类
}

// TableName 指定表名
func (ElectronicComponent) TableName() string {
	return "electronic_components"
}
