package models

// Relay 继电器扩展表
type Relay struct {
	ComponentID          uint     `gorm:"primarykey" json:"component_id"`
	RelayType            string   `gorm:"size:50" json:"relay_type"` // electromechanical、solid_state、reed
	CoilVoltage          *float64 `json:"coil_voltage"`              // 线圈电压，单位：V
	ContactConfiguration string   `gorm:"size:50" json:"contact_configuration"` // SPST、SPDT、DPDT等
	ContactCurrentRating *float64 `json:"contact_current_rating"`    // 触点额定电流，单位：A
	ContactVoltageRating *float64 `json:"contact_voltage_rating"`    // 触点额定电压，单位：V
	OperateTime          *float64 `json:"operate_time"`              // 操作时间，单位：ms

	Component ElectronicComponent `gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (Relay) TableName() string {
	return "relays"
}
