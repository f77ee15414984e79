package models

// PowerManagementChip 电源管理芯片扩展表
// 与基础表共享主键，power_chip_type进一步判别三种电源子类
// 三个电源叶子表的外键挂在这里声明，指向本表并级联删除
type PowerManagementChip struct {
	ComponentID   uint   `gorm:"primarykey" json:"component_id"`
	PowerChipType string `gorm:"size:20;not null" json:"power_chip_type"` // ac_dc / dc_dc / ldo

	Component ElectronicComponent `gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE" json:"-"`

	ACDC *ACDCController `gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE" json:"-"`
	DCDC *DCDCConverter  `gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE" json:"-"`
	LDO  *LDORegulator   `gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (PowerManagementChip) TableName() string {
	return "power_management_chips"
}

// ACDCController AC-DC控制器 - 交流转直流电源芯片
type ACDCController struct {
	ComponentID        uint     `gorm:"primarykey" json:"component_id"`
	InputVoltageMin    *float64 `json:"input_voltage_min"`    // 最小输入电压，单位：V（交流有效值）
	InputVoltageMax    *float64 `json:"input_voltage_max"`    // 最大输入电压，单位：V（交流有效值）
	OutputVoltage      *float64 `json:"output_voltage"`       // 额定输出电压，单位：V
	OutputCurrentMax   *float64 `json:"output_current_max"`   // 最大输出电流，单位：A
	OutputPowerMax     *float64 `json:"output_power_max"`     // 最大输出功率，单位：W
	Efficiency         *float64 `json:"efficiency"`           // 典型转换效率，单位：%
	SwitchingFrequency *float64 `json:"switching_frequency"`  // 开关频率，单位：Hz
	Topology           string   `gorm:"size:50" json:"topology"` // 拓扑结构：Flyback、Forward、LLC等
	HasPFC             bool     `gorm:"default:false" json:"has_pfc"` // 是否支持功率因数校正
}

// TableName 指定表名
func (ACDCController) TableName() string {
	return "ac_dc_controllers"
}

// DCDCConverter DC-DC稳压器 - 直流转直流电源芯片
type DCDCConverter struct {
	ComponentID        uint     `gorm:"primarykey" json:"component_id"`
	InputVoltageMin    *float64 `json:"input_voltage_min"`   // 最小输入电压，单位：V
	InputVoltageMax    *float64 `json:"input_voltage_max"`   // 最大输入电压，单位：V
	OutputVoltageMin   *float64 `json:"output_voltage_min"`  // 最小输出电压（可调输出），单位：V
	OutputVoltageMax   *float64 `json:"output_voltage_max"`  // 最大输出电压（可调输出），单位：V
	OutputCurrentMax   *float64 `json:"output_current_max"`  // 最大输出电流，单位：A
	SwitchingFrequency *float64 `json:"switching_frequency"` // 开关频率，单位：Hz
	Efficiency         *float64 `json:"efficiency"`          // 典型转换效率，单位：%
	ConverterType      string   `gorm:"size:20" json:"converter_type"` // BUCK / BOOST / BUCK-BOOST
}

// TableName 指定表名
func (DCDCConverter) TableName() string {
	return "dc_dc_converters"
}

// LDORegulator LDO稳压器 - 低压差线性稳压器
type LDORegulator struct {
	ComponentID      uint     `gorm:"primarykey" json:"component_id"`
	InputVoltageMin  *float64 `json:"input_voltage_min"`  // 最小输入电压，单位：V
	InputVoltageMax  *float64 `json:"input_voltage_max"`  // 最大输入电压，单位：V
	OutputVoltage    *float64 `json:"output_voltage"`     // 额定输出电压，单位：V
	OutputCurrentMax *float64 `json:"output_current_max"` // 最大输出电流，单位：A
	DropoutVoltage   *float64 `json:"dropout_voltage"`    // 压差电压，单位：V
	QuiescentCurrent *float64 `json:"quiescent_current"`  // 静态工作电流，单位：A
}

// TableName 指定表名
func (LDORegulator) TableName() string {
	return "ldo_regulators"
}
