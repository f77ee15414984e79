package models

// PassiveComponent 被动元件扩展表 - 电阻、电容、电感等
type PassiveComponent struct {
	ComponentID            uint     `gorm:"primarykey" json:"component_id"`
	ComponentType          string   `gorm:"size:50" json:"component_type"` // resistor、capacitor、inductor
	NominalValue           *float64 `json:"nominal_value"`                 // 额定值（阻值、容值、感值）
	ValueUnit              string   `gorm:"size:10" json:"value_unit"`     // Ω、F、H
	Tolerance              *float64 `json:"tolerance"`                     // 容差，单位：%
	RatedVoltage           *float64 `json:"rated_voltage"`                 // 额定电压，单位：V
	TemperatureCoefficient string   `gorm:"size:50" json:"temperature_coefficient"` // 温度系数

	Component ElectronicComponent `gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (PassiveComponent) TableName() string {
	return "passive_components"
}
