package models

// DiscreteDevice 分立器件扩展表 - 二极管、晶体管等
type DiscreteDevice struct {
	ComponentID         uint     `gorm:"primarykey" json:"component_id"`
	DeviceType          string   `gorm:"size:50" json:"device_type"` // diode、transistor、mosfet、thyristor等
	RatedVoltage        *float64 `json:"rated_voltage"`              // 额定电压，单位：V
	RatedCurrent        *float64 `json:"rated_current"`              // 额定电流，单位：A
	MaxPowerDissipation *float64 `json:"max_power_dissipation"`      // 最大功耗，单位：W
	ForwardVoltage      *float64 `json:"forward_voltage"`            // 正向压降，单位：V
	ReverseRecoveryTime *float64 `json:"reverse_recovery_time"`      // 反向恢复时间，单位：ns

	Component ElectronicComponent `gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (DiscreteDevice) TableName() string {
	return "discrete_devices"
}
