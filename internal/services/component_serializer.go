package services

import (
	"time"

	"ecpm/internal/models"
)

// ComponentDetail 元器件完整视图：基础记录加上已解析的子类记录
// 子类指针中至多一个非nil，由 ComponentCategory / PowerChipType 判别
type ComponentDetail struct {
	Component models.ElectronicComponent

	PowerChip *models.PowerManagementChip
	ACDC      *models.ACDCController
	DCDC      *models.DCDCConverter
	LDO       *models.LDORegulator

	MCU      *models.MCUController
	Memory   *models.MemoryChip
	Discrete *models.DiscreteDevice
	Passive  *models.PassiveComponent
	Filter   *models.Filter
	Relay    *models.Relay
}

// Serialize 将元器件视图展平为响应字典
// 对7个大类加3个电源子类做封闭分发；未匹配的子类只输出基础字段
func (d *ComponentDetail) Serialize() map[string]interface{} {
	c := d.Component

	data := map[string]interface{}{
		"id":                        c.ID,
		"name":                      c.Name,
		"manufacturer":              c.Manufacturer,
		"part_number":               c.PartNumber,
		"description":               c.Description,
		"package_type":              c.PackageType,
		"operating_temperature_min": c.OperatingTemperatureMin,
		"operating_temperature_max": c.OperatingTemperatureMax,
		"component_category":        c.ComponentCategory,
		"component_subcategory":     c.ComponentSubcategory,
		"created_at":                formatTime(c.CreatedAt),
		"updated_at":                formatTime(c.UpdatedAt),
	}

	switch c.ComponentCategory {
	case models.CategoryPower:
		if d.PowerChip == nil {
			break
		}
		data["power_chip_type"] = d.PowerChip.PowerChipType

		switch d.PowerChip.PowerChipType {
		case models.PowerChipTypeACDC:
			if chip := d.ACDC; chip != nil {
				data["input_voltage_min"] = chip.InputVoltageMin
				data["input_voltage_max"] = chip.InputVoltageMax
				data["output_voltage"] = chip.OutputVoltage
				data["output_current_max"] = chip.OutputCurrentMax
				data["output_power_max"] = chip.OutputPowerMax
				data["efficiency"] = chip.Efficiency
				data["switching_frequency"] = chip.SwitchingFrequency
				data["topology"] = chip.Topology
				data["has_pfc"] = chip.HasPFC
			}
		case models.PowerChipTypeDCDC:
			if chip := d.DCDC; chip != nil {
				data["input_voltage_min"] = chip.InputVoltageMin
				data["input_voltage_max"] = chip.InputVoltageMax
				data["output_voltage_min"] = chip.OutputVoltageMin
				data["output_voltage_max"] = chip.OutputVoltageMax
				data["output_current_max"] = chip.OutputCurrentMax
				data["switching_frequency"] = chip.SwitchingFrequency
				data["efficiency"] = chip.Efficiency
				data["converter_type"] = chip.ConverterType
			}
		case models.PowerChipTypeLDO:
			if chip := d.LDO; chip != nil {
				data["input_voltage_min"] = chip.InputVoltageMin
				data["input_voltage_max"] = chip.InputVoltageMax
				data["output_voltage"] = chip.OutputVoltage
				data["output_current_max"] = chip.OutputCurrentMax
				data["dropout_voltage"] = chip.DropoutVoltage
				data["quiescent_current"] = chip.QuiescentCurrent
			}
		}

	case models.CategoryMCU:
		if mcu := d.MCU; mcu != nil {
			data["core_architecture"] = mcu.CoreArchitecture
			data["clock_frequency"] = mcu.ClockFrequency
			data["flash_memory"] = mcu.FlashMemory
			data["sram_memory"] = mcu.SRAMMemory
			data["operating_voltage"] = mcu.OperatingVoltage
			data["gpio_count"] = mcu.GPIOCount
			data["adc_resolution"] = mcu.ADCResolution
			data["communication_interfaces"] = mcu.CommunicationInterfaces
		}

	case models.CategoryMemory:
		if mem := d.Memory; mem != nil {
			data["memory_type"] = mem.MemoryType
			data["capacity"] = mem.Capacity
			data["capacity_unit"] = mem.CapacityUnit
			data["interface_type"] = mem.InterfaceType
			data["speed"] = mem.Speed
			data["operating_voltage"] = mem.OperatingVoltage
		}

	case models.CategoryDiscrete:
		if dev := d.Discrete; dev != nil {
			data["device_type"] = dev.DeviceType
			data["rated_voltage"] = dev.RatedVoltage
			data["rated_current"] = dev.RatedCurrent
			data["max_power_dissipation"] = dev.MaxPowerDissipation
			data["forward_voltage"] = dev.ForwardVoltage
			data["reverse_recovery_time"] = dev.ReverseRecoveryTime
		}

	case models.CategoryPassive:
		if p := d.Passive; p != nil {
			data["component_type"] = p.ComponentType
			data["nominal_value"] = p.NominalValue
			data["value_unit"] = p.ValueUnit
			data["tolerance"] = p.Tolerance
			data["rated_voltage"] = p.RatedVoltage
			data["temperature_coefficient"] = p.TemperatureCoefficient
		}

	case models.CategoryFilter:
		if f := d.Filter; f != nil {
			data["filter_type"] = f.FilterType
			data["cutoff_frequency"] = f.CutoffFrequency
			data["impedance"] = f.Impedance
			data["insertion_loss"] = f.InsertionLoss
			data["bandwidth"] = f.Bandwidth
		}

	case models.CategoryRelay:
		if r := d.Relay; r != nil {
			data["relay_type"] = r.RelayType
			data["coil_voltage"] = r.CoilVoltage
			data["contact_configuration"] = r.ContactConfiguration
			data["contact_current_rating"] = r.ContactCurrentRating
			data["contact_voltage_rating"] = r.ContactVoltageRating
			data["operate_time"] = r.OperateTime
		}
	}

	return data
}

// formatTime 时间字段输出ISO-8601字符串，零值输出null
func formatTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
