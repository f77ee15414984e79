package models

// MCUController MCU控制器扩展表
type MCUController struct {
	ComponentID             uint     `gorm:"primarykey" json:"component_id"`
	CoreArchitecture        string   `gorm:"size:50" json:"core_architecture"` // ARM Cortex-M0/M3/M4/M7、RISC-V、8051等
	ClockFrequency          *float64 `json:"clock_frequency"`                  // 最大工作频率，单位：MHz
	FlashMemory             *int     `json:"flash_memory"`                     // 内置闪存容量，单位：KB
	SRAMMemory              *int     `json:"sram_memory"`                      // 内置SRAM容量，单位：KB
	OperatingVoltage        *float64 `json:"operating_voltage"`                // 工作电压，单位：V
	GPIOCount               *int     `json:"gpio_count"`                       // 通用输入输出引脚数量
	ADCResolution           *int     `json:"adc_resolution"`                   // ADC分辨率，单位：bit
	CommunicationInterfaces string   `gorm:"size:200" json:"communication_interfaces"` // I2C、SPI、UART、USB、CAN等

	Component ElectronicComponent `gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (MCUController) TableName() string {
	return "mcu_controllers"
}
