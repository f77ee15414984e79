package models

// MemoryChip 存储器芯片扩展表
type MemoryChip struct {
	ComponentID      uint     `gorm:"primarykey" json:"component_id"`
	MemoryType       string   `gorm:"size:50" json:"memory_type"`    // Flash、SRAM、DRAM、EEPROM等
	Capacity         *int     `json:"capacity"`                      // 存储容量
	CapacityUnit     string   `gorm:"size:10" json:"capacity_unit"`  // KB、MB、GB
	InterfaceType    string   `gorm:"size:50" json:"interface_type"` // SPI、I2C、Parallel、SDIO等
	Speed            *float64 `json:"speed"`                         // 读写速度，单位：MHz或MB/s
	OperatingVoltage *float64 `json:"operating_voltage"`             // 工作电压，单位：V

	Component ElectronicComponent `gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (MemoryChip) TableName() string {
	return "memory_chips"
}
