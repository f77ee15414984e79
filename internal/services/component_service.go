package services

import (
	"errors"
	"fmt"

	"ecpm/internal/models"
	"ecpm/pkg/cache"
	apperrors "ecpm/pkg/errors"
	"ecpm/pkg/logger"
	"ecpm/pkg/queue"

	"gorm.io/gorm"
)

// 元器件子类值
const (
	SubcategoryACDC     = "ac_dc_controller"
	SubcategoryDCDC     = "dc_dc_converter"
	SubcategoryLDO      = "ldo_regulator"
	SubcategoryMCU      = "mcu_controller"
	SubcategoryMemory   = "memory_chip"
	SubcategoryDiscrete = "discrete_device"
	SubcategoryPassive  = "passive_component"
	SubcategoryFilter   = "filter"
	SubcategoryRelay    = "relay"
)

// ComponentService 元器件服务
type ComponentService struct {
	db    *gorm.DB
	cache *cache.RedisCache
	queue *queue.RedisQueue
}

// NewComponentService 创建元器件服务，cache和queue可为nil（尽力而为，不影响正确性）
func NewComponentService(db *gorm.DB, redisCache *cache.RedisCache, redisQueue *queue.RedisQueue) *ComponentService {
	return &ComponentService{
		db:    db,
		cache: redisCache,
		queue: redisQueue,
	}
}

// ========== 请求结构 ==========

// ComponentBaseRequest 所有元器件创建请求的公共字段
type ComponentBaseRequest struct {
	Name                    string   `json:"name" binding:"required,min=1,max=100"`
	Manufacturer            string   `json:"manufacturer" binding:"required,min=1,max=100"`
	PartNumber              string   `json:"part_number" binding:"required,min=1,max=50"`
	Description             string   `json:"description"`
	PackageType             string   `json:"package_type" binding:"max=50"`
	OperatingTemperatureMin *float64 `json:"operating_temperature_min"`
	OperatingTemperatureMax *float64 `json:"operating_temperature_max"`
}

// CreateACDCRequest 创建AC-DC控制器请求
type CreateACDCRequest struct {
	ComponentBaseRequest
	InputVoltageMin    *float64 `json:"input_voltage_min"`
	InputVoltageMax    *float64 `json:"input_voltage_max"`
	OutputVoltage      *float64 `json:"output_voltage"`
	OutputCurrentMax   *float64 `json:"output_current_max"`
	OutputPowerMax     *float64 `json:"output_power_max"`
	Efficiency         *float64 `json:"efficiency"`
	SwitchingFrequency *float64 `json:"switching_frequency"`
	Topology           string   `json:"topology" binding:"max=50"`
	HasPFC             bool     `json:"has_pfc"`
}

// CreateDCDCRequest 创建DC-DC稳压器请求
type CreateDCDCRequest struct {
	ComponentBaseRequest
	InputVoltageMin    *float64 `json:"input_voltage_min"`
	InputVoltageMax    *float64 `json:"input_voltage_max"`
	OutputVoltageMin   *float64 `json:"output_voltage_min"`
	OutputVoltageMax   *float64 `json:"output_voltage_max"`
	OutputCurrentMax   *float64 `json:"output_current_max"`
	SwitchingFrequency *float64 `json:"switching_frequency"`
	Efficiency         *float64 `json:"efficiency"`
	ConverterType      string   `json:"converter_type" binding:"max=20"`
}

// CreateLDORequest 创建LDO稳压器请求
type CreateLDORequest struct {
	ComponentBaseRequest
	InputVoltageMin  *float64 `json:"input_voltage_min"`
	InputVoltageMax  *float64 `json:"input_voltage_max"`
	OutputVoltage    *float64 `json:"output_voltage"`
	OutputCurrentMax *float64 `json:"output_current_max"`
	DropoutVoltage   *float64 `json:"dropout_voltage"`
	QuiescentCurrent *float64 `json:"quiescent_current"`
}

// CreateMCURequest 创建MCU控制器请求
type CreateMCURequest struct {
	ComponentBaseRequest
	Subcategory             string   `json:"subcategory" binding:"max=30"`
	CoreArchitecture        string   `json:"core_architecture" binding:"max=50"`
	ClockFrequency          *float64 `json:"clock_frequency"`
	FlashMemory             *int     `json:"flash_memory"`
	SRAMMemory              *int     `json:"sram_memory"`
	OperatingVoltage        *float64 `json:"operating_voltage"`
	GPIOCount               *int     `json:"gpio_count"`
	ADCResolution           *int     `json:"adc_resolution"`
	CommunicationInterfaces string   `json:"communication_interfaces" binding:"max=200"`
}

// CreateMemoryRequest 创建存储器芯片请求
type CreateMemoryRequest struct {
	ComponentBaseRequest
	MemoryType       string   `json:"memory_type" binding:"max=50"`
	Capacity         *int     `json:"capacity"`
	CapacityUnit     string   `json:"capacity_unit" binding:"max=10"`
	InterfaceType    string   `json:"interface_type" binding:"max=50"`
	Speed            *float64 `json:"speed"`
	OperatingVoltage *float64 `json:"operating_voltage"`
}

// CreateDiscreteRequest 创建分立器件请求
type CreateDiscreteRequest struct {
	ComponentBaseRequest
	DeviceType          string   `json:"device_type" binding:"max=50"`
	RatedVoltage        *float64 `json:"rated_voltage"`
	RatedCurrent        *float64 `json:"rated_current"`
	MaxPowerDissipation *float64 `json:"max_power_dissipation"`
	ForwardVoltage      *float64 `json:"forward_voltage"`
	ReverseRecoveryTime *float64 `json:"reverse_recovery_time"`
}

// CreatePassiveRequest 创建被动元件请求
type CreatePassiveRequest struct {
	ComponentBaseRequest
	ComponentType          string   `json:"component_type" binding:"max=50"`
	NominalValue           *float64 `json:"nominal_value"`
	ValueUnit              string   `json:"value_unit" binding:"max=10"`
	Tolerance              *float64 `json:"tolerance"`
	RatedVoltage           *float64 `json:"rated_voltage"`
	TemperatureCoefficient string   `json:"temperature_coefficient" binding:"max=50"`
}

// CreateFilterRequest 创建滤波器请求
type CreateFilterRequest struct {
	ComponentBaseRequest
	FilterType      string   `json:"filter_type" binding:"max=50"`
	CutoffFrequency *float64 `json:"cutoff_frequency"`
	Impedance       *float64 `json:"impedance"`
	InsertionLoss   *float64 `json:"insertion_loss"`
	Bandwidth       *float64 `json:"bandwidth"`
}

// CreateRelayRequest 创建继电器请求
type CreateRelayRequest struct {
	ComponentBaseRequest
	RelayType            string   `json:"relay_type" binding:"max=50"`
	CoilVoltage          *float64 `json:"coil_voltage"`
	ContactConfiguration string   `json:"contact_configuration" binding:"max=50"`
	ContactCurrentRating *float64 `json:"contact_current_rating"`
	ContactVoltageRating *float64 `json:"contact_voltage_rating"`
	OperateTime          *float64 `json:"operate_time"`
}

// UpdateComponentRequest 通用字段更新请求
// 子类特有字段不通过此路径更新（预留的扩展点）
type UpdateComponentRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=100"`
	Manufacturer *string `json:"manufacturer" binding:"omitempty,min=1,max=100"`
	Description  *string `json:"description"`
	PackageType  *string `json:"package_type" binding:"omitempty,max=50"`
}

// ========== 查询 ==========

// List 分页获取元器件列表，支持按大类/子类过滤
func (s *ComponentService) List(category, subcategory string, page, pageSize int) ([]map[string]interface{}, int64, error) {
	query := s.db.Model(&models.ElectronicComponent{})

	if category != "" {
		query = query.Where("component_category = ?", category)
	}
	if subcategory != "" {
		query = query.Where("component_subcategory = ?", subcategory)
	}

	// 计算总数
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询，按插入顺序稳定排序
	offset := (page - 1) * pageSize
	var components []models.ElectronicComponent
	if err := query.Order("id").Offset(offset).Limit(pageSize).Find(&components).Error; err != nil {
		return nil, 0, err
	}

	items := make([]map[string]interface{}, 0, len(components))
	for i := range components {
		detail, err := s.loadDetail(&components[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, detail.Serialize())
	}

	return items, total, nil
}

// GetByID 获取元器件详情（含子类字段），优先读缓存
func (s *ComponentService) GetByID(id uint) (map[string]interface{}, error) {
	cacheKey := fmt.Sprintf("component:%d", id)

	var cached map[string]interface{}
	if s.cache.Get(cacheKey, &cached) {
		return cached, nil
	}

	var component models.ElectronicComponent
	if err := s.db.First(&component, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	detail, err := s.loadDetail(&component)
	if err != nil {
		return nil, err
	}

	data := detail.Serialize()
	s.cache.Set(cacheKey, data)
	return data, nil
}

// loadDetail 按判别列加载对应的子类记录
// 子类记录缺失时不报错，序列化只输出基础字段
func (s *ComponentService) loadDetail(component *models.ElectronicComponent) (*ComponentDetail, error) {
	detail := &ComponentDetail{Component: *component}

	switch component.ComponentCategory {
	case models.CategoryPower:
		var chip models.PowerManagementChip
		if err := s.subtypeRow(&chip, component.ID); err != nil {
			return detail, err
		} else if chip.ComponentID != 0 {
			detail.PowerChip = &chip

			switch chip.PowerChipType {
			case models.PowerChipTypeACDC:
				var acdc models.ACDCController
				if err := s.subtypeRow(&acdc, component.ID); err != nil {
					return detail, err
				} else if acdc.ComponentID != 0 {
					detail.ACDC = &acdc
				}
			case models.PowerChipTypeDCDC:
				var dcdc models.DCDCConverter
				if err := s.subtypeRow(&dcdc, component.ID); err != nil {
					return detail, err
				} else if dcdc.ComponentID != 0 {
					detail.DCDC = &dcdc
				}
			case models.PowerChipTypeLDO:
				var ldo models.LDORegulator
				if err := s.subtypeRow(&ldo, component.ID); err != nil {
					return detail, err
				} else if ldo.ComponentID != 0 {
					detail.LDO = &ldo
				}
			}
		}

	case models.CategoryMCU:
		var mcu models.MCUController
		if err := s.subtypeRow(&mcu, component.ID); err != nil {
			return detail, err
		} else if mcu.ComponentID != 0 {
			detail.MCU = &mcu
		}

	case models.CategoryMemory:
		var mem models.MemoryChip
		if err := s.subtypeRow(&mem, component.ID); err != nil {
			return detail, err
		} else if mem.ComponentID != 0 {
			detail.Memory = &mem
		}

	case models.CategoryDiscrete:
		var dev models.DiscreteDevice
		if err := s.subtypeRow(&dev, component.ID); err != nil {
			return detail, err
		} else if dev.ComponentID != 0 {
			detail.Discrete = &dev
		}

	case models.CategoryPassive:
		var p models.PassiveComponent
		if err := s.subtypeRow(&p, component.ID); err != nil {
			return detail, err
		} else if p.ComponentID != 0 {
			detail.Passive = &p
		}

	case models.CategoryFilter:
		var f models.Filter
		if err := s.subtypeRow(&f, component.ID); err != nil {
			return detail, err
		} else if f.ComponentID != 0 {
			detail.Filter = &f
		}

	case models.CategoryRelay:
		var r models.Relay
		if err := s.subtypeRow(&r, component.ID); err != nil {
			return detail, err
		} else if r.ComponentID != 0 {
			detail.Relay = &r
		}
	}

	return detail, nil
}

// subtypeRow 按共享主键查询子类记录，不存在时不视为错误
func (s *ComponentService) subtypeRow(dest interface{}, componentID uint) error {
	err := s.db.Where("component_id = ?", componentID).First(dest).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

// ========== 创建 ==========

// CreateACDC 创建AC-DC控制器
func (s *ComponentService) CreateACDC(req *CreateACDCRequest) (map[string]interface{}, error) {
	component := s.newBaseComponent(&req.ComponentBaseRequest, models.CategoryPower, SubcategoryACDC)

	err := s.createComponent(component, func(tx *gorm.DB) error {
		if err := tx.Create(&models.PowerManagementChip{
			ComponentID:   component.ID,
			PowerChipType: models.PowerChipTypeACDC,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.ACDCController{
			ComponentID:        component.ID,
			InputVoltageMin:    req.InputVoltageMin,
			InputVoltageMax:    req.InputVoltageMax,
			OutputVoltage:      req.OutputVoltage,
			OutputCurrentMax:   req.OutputCurrentMax,
			OutputPowerMax:     req.OutputPowerMax,
			Efficiency:         req.Efficiency,
			SwitchingFrequency: req.SwitchingFrequency,
			Topology:           req.Topology,
			HasPFC:             req.HasPFC,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.afterCreate(component)
}

// CreateDCDC 创建DC-DC稳压器
func (s *ComponentService) CreateDCDC(req *CreateDCDCRequest) (map[string]interface{}, error) {
	component := s.newBaseComponent(&req.ComponentBaseRequest, models.CategoryPower, SubcategoryDCDC)

	err := s.createComponent(component, func(tx *gorm.DB) error {
		if err := tx.Create(&models.PowerManagementChip{
			ComponentID:   component.ID,
			PowerChipType: models.PowerChipTypeDCDC,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.DCDCConverter{
			ComponentID:        component.ID,
			InputVoltageMin:    req.InputVoltageMin,
			InputVoltageMax:    req.InputVoltageMax,
			OutputVoltageMin:   req.OutputVoltageMin,
			OutputVoltageMax:   req.OutputVoltageMax,
			OutputCurrentMax:   req.OutputCurrentMax,
			SwitchingFrequency: req.SwitchingFrequency,
			Efficiency:         req.Efficiency,
			ConverterType:      req.ConverterType,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.afterCreate(component)
}

// CreateLDO 创建LDO稳压器
func (s *ComponentService) CreateLDO(req *CreateLDORequest) (map[string]interface{}, error) {
	component := s.newBaseComponent(&req.ComponentBaseRequest, models.CategoryPower, SubcategoryLDO)

	err := s.createComponent(component, func(tx *gorm.DB) error {
		if err := tx.Create(&models.PowerManagementChip{
			ComponentID:   component.ID,
			PowerChipType: models.PowerChipTypeLDO,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&models.LDORegulator{
			ComponentID:      component.ID,
			InputVoltageMin:  req.InputVoltageMin,
			InputVoltageMax:  req.InputVoltageMax,
			OutputVoltage:    req.OutputVoltage,
			OutputCurrentMax: req.OutputCurrentMax,
			DropoutVoltage:   req.DropoutVoltage,
			QuiescentCurrent: req.QuiescentCurrent,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.afterCreate(component)
}

// CreateMCU 创建MCU控制器
func (s *ComponentService) CreateMCU(req *CreateMCURequest) (map[string]interface{}, error) {
	subcategory := req.Subcategory
	if subcategory == "" {
		subcategory = SubcategoryMCU
	}
	component := s.newBaseComponent(&req.ComponentBaseRequest, models.CategoryMCU, subcategory)

	err := s.createComponent(component, func(tx *gorm.DB) error {
		return tx.Create(&models.MCUController{
			ComponentID:             component.ID,
			CoreArchitecture:        req.CoreArchitecture,
			ClockFrequency:          req.ClockFrequency,
			FlashMemory:             req.FlashMemory,
			SRAMMemory:              req.SRAMMemory,
			OperatingVoltage:        req.OperatingVoltage,
			GPIOCount:               req.GPIOCount,
			ADCResolution:           req.ADCResolution,
			CommunicationInterfaces: req.CommunicationInterfaces,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.afterCreate(component)
}

// CreateMemory 创建存储器芯片
func (s *ComponentService) CreateMemory(req *CreateMemoryRequest) (map[string]interface{}, error) {
	component := s.newBaseComponent(&req.ComponentBaseRequest, models.CategoryMemory, SubcategoryMemory)

	err := s.createComponent(component, func(tx *gorm.DB) error {
		return tx.Create(&models.MemoryChip{
			ComponentID:      component.ID,
			MemoryType:       req.MemoryType,
			Capacity:         req.Capacity,
			CapacityUnit:     req.CapacityUnit,
			InterfaceType:    req.InterfaceType,
			Speed:            req.Speed,
			OperatingVoltage: req.OperatingVoltage,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.afterCreate(component)
}

// CreateDiscrete 创建分立器件
func (s *ComponentService) CreateDiscrete(req *CreateDiscreteRequest) (map[string]interface{}, error) {
	component := s.newBaseComponent(&req.ComponentBaseRequest, models.CategoryDiscrete, SubcategoryDiscrete)

	err := s.createComponent(component, func(tx *gorm.DB) error {
		return tx.Create(&models.DiscreteDevice{
			ComponentID:         component.ID,
			DeviceType:          req.DeviceType,
			RatedVoltage:        req.RatedVoltage,
			RatedCurrent:        req.RatedCurrent,
			MaxPowerDissipation: req.MaxPowerDissipation,
			ForwardVoltage:      req.ForwardVoltage,
			ReverseRecoveryTime: req.ReverseRecoveryTime,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.afterCreate(component)
}

// CreatePassive 创建被动元件
func (s *ComponentService) CreatePassive(req *CreatePassiveRequest) (map[string]interface{}, error) {
	component := s.newBaseComponent(&req.ComponentBaseRequest, models.CategoryPassive, SubcategoryPassive)

	err := s.createComponent(component, func(tx *gorm.DB) error {
		return tx.Create(&models.PassiveComponent{
			ComponentID:            component.ID,
			ComponentType:          req.ComponentType,
			NominalValue:           req.NominalValue,
			ValueUnit:              req.ValueUnit,
			Tolerance:              req.Tolerance,
			RatedVoltage:           req.RatedVoltage,
			TemperatureCoefficient: req.TemperatureCoefficient,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.afterCreate(component)
}

// CreateFilter 创建滤波器
func (s *ComponentService) CreateFilter(req *CreateFilterRequest) (map[string]interface{}, error) {
	component := s.newBaseComponent(&req.ComponentBaseRequest, models.CategoryFilter, SubcategoryFilter)

	err := s.createComponent(component, func(tx *gorm.DB) error {
		return tx.Create(&models.Filter{
			ComponentID:     component.ID,
			FilterType:      req.FilterType,
			CutoffFrequency: req.CutoffFrequency,
			Impedance:       req.Impedance,
			InsertionLoss:   req.InsertionLoss,
			Bandwidth:       req.Bandwidth,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.afterCreate(component)
}

// CreateRelay 创建继电器
func (s *ComponentService) CreateRelay(req *CreateRelayRequest) (map[string]interface{}, error) {
	component := s.newBaseComponent(&req.ComponentBaseRequest, models.CategoryRelay, SubcategoryRelay)

	err := s.createComponent(component, func(tx *gorm.DB) error {
		return tx.Create(&models.Relay{
			ComponentID:          component.ID,
			RelayType:            req.RelayType,
			CoilVoltage:          req.CoilVoltage,
			ContactConfiguration: req.ContactConfiguration,
			ContactCurrentRating: req.ContactCurrentRating,
			ContactVoltageRating: req.ContactVoltageRating,
			OperateTime:          req.OperateTime,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	return s.afterCreate(component)
}

func (s *ComponentService) newBaseComponent(req *ComponentBaseRequest, category, subcategory string) *models.ElectronicComponent {
	return &models.ElectronicComponent{
		Name:                    req.Name,
		Manufacturer:            req.Manufacturer,
		PartNumber:              req.PartNumber,
		Description:             req.Description,
		PackageType:             req.PackageType,
		OperatingTemperatureMin: req.OperatingTemperatureMin,
		OperatingTemperatureMax: req.OperatingTemperatureMax,
		ComponentCategory:       category,
		ComponentSubcategory:    subcategory,
	}
}

// createComponent 在一个事务内创建基础记录和子类记录
// 料号唯一性最终由数据库约束裁决，并发重复创建只会成功一个
func (s *ComponentService) createComponent(component *models.ElectronicComponent, createSubtypes func(tx *gorm.DB) error) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(component).Error; err != nil {
			return err
		}
		return createSubtypes(tx)
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (s *ComponentService) afterCreate(component *models.ElectronicComponent) (map[string]interface{}, error) {
	s.publishEvent("component.created", fmt.Sprintf("%d", component.ID), map[string]interface{}{
		"part_number": component.PartNumber,
		"category":    component.ComponentCategory,
	})

	detail, err := s.loadDetail(component)
	if err != nil {
		return nil, err
	}
	return detail.Serialize(), nil
}

// ========== 更新 / 删除 ==========

// Update 更新元器件通用字段（name/manufacturer/description/package_type）
func (s *ComponentService) Update(id uint, req *UpdateComponentRequest) (map[string]interface{}, error) {
	var component models.ElectronicComponent
	if err := s.db.First(&component, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		component.Name = *req.Name
	}
	if req.Manufacturer != nil {
		component.Manufacturer = *req.Manufacturer
	}
	if req.Description != nil {
		component.Description = *req.Description
	}
	if req.PackageType != nil {
		component.PackageType = *req.PackageType
	}

	if err := s.db.Save(&component).Error; err != nil {
		return nil, err
	}

	s.cache.Delete(fmt.Sprintf("component:%d", id))
	s.publishEvent("component.updated", fmt.Sprintf("%d", id), nil)

	detail, err := s.loadDetail(&component)
	if err != nil {
		return nil, err
	}
	return detail.Serialize(), nil
}

// Delete 删除元器件，子类记录由共享主键外键级联删除
func (s *ComponentService) Delete(id uint) error {
	var component models.ElectronicComponent
	if err := s.db.First(&component, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	if err := s.db.Delete(&component).Error; err != nil {
		return err
	}

	s.cache.Delete(fmt.Sprintf("component:%d", id))
	s.publishEvent("component.deleted", fmt.Sprintf("%d", id), map[string]interface{}{
		"part_number": component.PartNumber,
	})

	return nil
}

// publishEvent 发送变更事件到队列和广播频道，失败只记录日志
func (s *ComponentService) publishEvent(eventType, resourceID string, payload map[string]interface{}) {
	if s.queue == nil {
		return
	}

	message := &queue.EventMessage{
		EventType:  eventType,
		Resource:   "component",
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
