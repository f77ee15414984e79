package services

import (
	"errors"
	"testing"

	"ecpm/internal/models"
	apperrors "ecpm/pkg/errors"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func baseRequest(partNumber string) ComponentBaseRequest {
	return ComponentBaseRequest{
		Name:                    "测试元器件",
		Manufacturer:            "Texas Instruments",
		PartNumber:              partNumber,
		PackageType:             "SOT-23",
		OperatingTemperatureMin: fptr(-40),
		OperatingTemperatureMax: fptr(125),
	}
}

func TestComponentCreateACDC(t *testing.T) {
	service := NewComponentService(newTestDB(t), nil, nil)

	data, err := service.CreateACDC(&CreateACDCRequest{
		ComponentBaseRequest: baseRequest("UCC28740DR"),
		InputVoltageMin:      fptr(85),
		InputVoltageMax:      fptr(265),
		OutputVoltage:        fptr(12),
		Topology:             "Flyback",
		HasPFC:               true,
	})
	if err != nil {
		t.Fatalf("创建AC-DC控制器失败: %v", err)
	}

	if data["component_category"] != models.CategoryPower {
		t.Errorf("大类应为power, got %v", data["component_category"])
	}
	if data["component_subcategory"] != SubcategoryACDC {
		t.Errorf("子类应为ac_dc_controller, got %v", data["component_subcategory"])
	}
	if data["power_chip_type"] != models.PowerChipTypeACDC {
		t.Errorf("电源芯片类型应为ac_dc, got %v", data["power_chip_type"])
	}
	if data["topology"] != "Flyback" {
		t.Errorf("topology字段丢失, got %v", data["topology"])
	}
	if data["has_pfc"] != true {
		t.Errorf("has_pfc字段丢失, got %v", data["has_pfc"])
	}
	if v, ok := data["output_voltage"].(*float64); !ok || v == nil || *v != 12 {
		t.Errorf("output_voltage应为12, got %v", data["output_voltage"])
	}

	// 其他电源子类的字段不应出现在AC-DC响应中
	for _, key := range []string{"output_voltage_min", "converter_type", "dropout_voltage", "quiescent_current"} {
		if _, exists := data[key]; exists {
			t.Errorf("AC-DC响应不应包含字段 %q", key)
		}
	}
	if data["created_at"] == nil {
		t.Error("created_at应为ISO时间字符串")
	}
}

func TestComponentCreateAllVariants(t *testing.T) {
	service := NewComponentService(newTestDB(t), nil, nil)

	cases := []struct {
		name        string
		create      func() (map[string]interface{}, error)
		subcategory string
		markerKey   string
	}{
		{
			name: "dc_dc",
			create: func() (map[string]interface{}, error) {
				return service.CreateDCDC(&CreateDCDCRequest{
					ComponentBaseRequest: baseRequest("TPS54331DR"),
					OutputVoltageMin:     fptr(0.8),
					OutputVoltageMax:     fptr(25),
					ConverterType:        "buck",
				})
			},
			subcategory: SubcategoryDCDC,
			markerKey:   "converter_type",
		},
		{
			name: "ldo",
			create: func() (map[string]interface{}, error) {
				return service.CreateLDO(&CreateLDORequest{
					ComponentBaseRequest: baseRequest("TLV75533PDBVR"),
					OutputVoltage:        fptr(3.3),
					DropoutVoltage:       fptr(0.13),
				})
			},
			subcategory: SubcategoryLDO,
			markerKey:   "dropout_voltage",
		},
		{
			name: "mcu",
			create: func() (map[string]interface{}, error) {
				return service.CreateMCU(&CreateMCURequest{
					ComponentBaseRequest: baseRequest("STM32F103C8T6"),
					CoreArchitecture:     "ARM Cortex-M3",
					FlashMemory:          iptr(64),
					GPIOCount:            iptr(37),
				})
			},
			subcategory: SubcategoryMCU,
			markerKey:   "core_architecture",
		},
		{
			name: "memory",
			create: func() (map[string]interface{}, error) {
				return service.CreateMemory(&CreateMemoryRequest{
					ComponentBaseRequest: baseRequest("W25Q128JVSIQ"),
					MemoryType:           "NOR Flash",
					Capacity:             iptr(128),
					CapacityUnit:         "Mbit",
				})
			},
			subcategory: SubcategoryMemory,
			markerKey:   "memory_type",
		},
		{
			name: "discrete",
			create: func() (map[string]interface{}, error) {
				return service.CreateDiscrete(&CreateDiscreteRequest{
					ComponentBaseRequest: baseRequest("SS34"),
					DeviceType:           "schottky_diode",
					ForwardVoltage:       fptr(0.5),
				})
			},
			subcategory: SubcategoryDiscrete,
			markerKey:   "device_type",
		},
		{
			name: "passive",
			create: func() (map[string]interface{}, error) {
				return service.CreatePassive(&CreatePassiveRequest{
					ComponentBaseRequest: baseRequest("GRM188R71H104KA93D"),
					ComponentType:        "capacitor",
					NominalValue:         fptr(100),
					ValueUnit:            "nF",
				})
			},
			subcategory: SubcategoryPassive,
			markerKey:   "component_type",
		},
		{
			name: "filter",
			create: func() (map[string]interface{}, error) {
				return service.CreateFilter(&CreateFilterRequest{
					ComponentBaseRequest: baseRequest("NFM18PC104F1C3D"),
					FilterType:           "EMI",
					CutoffFrequency:      fptr(100),
				})
			},
			subcategory: SubcategoryFilter,
			markerKey:   "filter_type",
		},
		{
			name: "relay",
			create: func() (map[string]interface{}, error) {
				return service.CreateRelay(&CreateRelayRequest{
					ComponentBaseRequest: baseRequest("G5V-1-DC5"),
					RelayType:            "signal",
					CoilVoltage:          fptr(5),
				})
			},
			subcategory: SubcategoryRelay,
			markerKey:   "relay_type",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := tc.create()
			if err != nil {
				t.Fatalf("创建失败: %v", err)
			}
			if data["component_subcategory"] != tc.subcategory {
				t.Errorf("子类应为%q, got %v", tc.subcategory, data["component_subcategory"])
			}
			if _, exists := data[tc.markerKey]; !exists {
				t.Errorf("响应应包含子类字段 %q", tc.markerKey)
			}

			// 详情查询应返回同样的字段集合
			id, ok := data["id"].(uint)
			if !ok {
				t.Fatalf("id字段类型不正确: %T", data["id"])
			}
			fetched, err := service.GetByID(id)
			if err != nil {
				t.Fatalf("详情查询失败: %v", err)
			}
			if _, exists := fetched[tc.markerKey]; !exists {
				t.Errorf("详情应包含子类字段 %q", tc.markerKey)
			}
		})
	}
}

func TestPowerChipTablesAcceptRows(t *testing.T) {
	db := newTestDB(t)
	service := NewComponentService(db, nil, nil)

	// 基础表→电源表→叶子表的外键链：三层记录都要真实落库
	data, err := service.CreateACDC(&CreateACDCRequest{
		ComponentBaseRequest: baseRequest("FK-ACDC"),
		Topology:             "Flyback",
	})
	if err != nil {
		t.Fatalf("创建AC-DC控制器失败: %v", err)
	}
	id := data["id"].(uint)

	var chipCount, leafCount int64
	if err := db.Model(&models.PowerManagementChip{}).Where("component_id = ?", id).Count(&chipCount).Error; err != nil {
		t.Fatalf("统计电源芯片记录失败: %v", err)
	}
	if err := db.Model(&models.ACDCController{}).Where("component_id = ?", id).Count(&leafCount).Error; err != nil {
		t.Fatalf("统计AC-DC记录失败: %v", err)
	}
	if chipCount != 1 || leafCount != 1 {
		t.Fatalf("电源芯片链记录缺失: chip=%d leaf=%d", chipCount, leafCount)
	}

	// 外键方向：没有叶子记录时也能直接插入电源芯片记录
	base := &models.ElectronicComponent{
		Name:                 "裸电源记录",
		Manufacturer:         "TI",
		PartNumber:           "FK-BARE",
		ComponentCategory:    models.CategoryPower,
		ComponentSubcategory: SubcategoryDCDC,
	}
	if err := db.Create(base).Error; err != nil {
		t.Fatalf("创建基础记录失败: %v", err)
	}
	if err := db.Create(&models.PowerManagementChip{
		ComponentID:   base.ID,
		PowerChipType: models.PowerChipTypeDCDC,
	}).Error; err != nil {
		t.Fatalf("插入电源芯片记录不应受叶子表约束: %v", err)
	}
}

func TestComponentDuplicatePartNumber(t *testing.T) {
	service := NewComponentService(newTestDB(t), nil, nil)

	if _, err := service.CreateLDO(&CreateLDORequest{
		ComponentBaseRequest: baseRequest("AMS1117-3.3"),
	}); err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	// 料号全局唯一，跨子类也冲突
	_, err := service.CreateMCU(&CreateMCURequest{
		ComponentBaseRequest: baseRequest("AMS1117-3.3"),
	})
	if !errors.Is(err, apperrors.ErrDuplicateKey) {
		t.Fatalf("重复料号应返回ErrDuplicateKey, got %v", err)
	}
}

func TestComponentGetMissing(t *testing.T) {
	service := NewComponentService(newTestDB(t), nil, nil)

	_, err := service.GetByID(99999)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("不存在的元器件应返回ErrNotFound, got %v", err)
	}
}

func TestComponentListFilter(t *testing.T) {
	service := NewComponentService(newTestDB(t), nil, nil)

	if _, err := service.CreateLDO(&CreateLDORequest{ComponentBaseRequest: baseRequest("LDO-1")}); err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if _, err := service.CreateDCDC(&CreateDCDCRequest{ComponentBaseRequest: baseRequest("DCDC-1")}); err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if _, err := service.CreateMCU(&CreateMCURequest{ComponentBaseRequest: baseRequest("MCU-1")}); err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	items, total, err := service.List("", "", 1, 20)
	if err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}
	if total != 3 || len(items) != 3 {
		t.Fatalf("应返回3个元器件, got total=%d len=%d", total, len(items))
	}

	items, total, err = service.List(models.CategoryPower, "", 1, 20)
	if err != nil {
		t.Fatalf("大类过滤失败: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("power大类应命中2个, got total=%d len=%d", total, len(items))
	}

	items, total, err = service.List(models.CategoryPower, SubcategoryLDO, 1, 20)
	if err != nil {
		t.Fatalf("子类过滤失败: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0]["part_number"] != "LDO-1" {
		t.Errorf("ldo_regulator子类应只命中LDO-1, got total=%d len=%d", total, len(items))
	}

	// 分页：每页1条，第2页
	items, total, err = service.List("", "", 2, 1)
	if err != nil {
		t.Fatalf("分页查询失败: %v", err)
	}
	if total != 3 || len(items) != 1 || items[0]["part_number"] != "DCDC-1" {
		t.Errorf("第2页应为DCDC-1, got total=%d len=%d", total, len(items))
	}
}

func TestComponentUpdateCommonFields(t *testing.T) {
	service := NewComponentService(newTestDB(t), nil, nil)

	data, err := service.CreateLDO(&CreateLDORequest{
		ComponentBaseRequest: baseRequest("UPD-LDO"),
		DropoutVoltage:       fptr(0.2),
	})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	id := data["id"].(uint)

	newName := "低压差线性稳压器"
	newDescription := "3.3V 500mA"
	updated, err := service.Update(id, &UpdateComponentRequest{
		Name:        &newName,
		Description: &newDescription,
	})
	if err != nil {
		t.Fatalf("更新失败: %v", err)
	}

	if updated["name"] != newName || updated["description"] != newDescription {
		t.Errorf("通用字段未更新: %v / %v", updated["name"], updated["description"])
	}
	// 未提交的字段保持不变
	if updated["manufacturer"] != "Texas Instruments" {
		t.Errorf("manufacturer不应被改动, got %v", updated["manufacturer"])
	}
	// 子类字段不受通用更新影响
	if v, ok := updated["dropout_voltage"].(*float64); !ok || v == nil || *v != 0.2 {
		t.Errorf("dropout_voltage不应被改动, got %v", updated["dropout_voltage"])
	}

	if _, err := service.Update(99999, &UpdateComponentRequest{Name: &newName}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("更新不存在的元器件应返回ErrNotFound, got %v", err)
	}
}

func TestComponentDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	service := NewComponentService(db, nil, nil)

	data, err := service.CreateLDO(&CreateLDORequest{
		ComponentBaseRequest: baseRequest("DEL-LDO"),
	})
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	id := data["id"].(uint)

	if err := service.Delete(id); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	if _, err := service.GetByID(id); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("删除后查询应返回ErrNotFound, got %v", err)
	}

	// 子类记录随基础记录级联删除
	var chipCount, ldoCount int64
	if err := db.Model(&models.PowerManagementChip{}).Where("component_id = ?", id).Count(&chipCount).Error; err != nil {
		t.Fatalf("统计电源芯片记录失败: %v", err)
	}
	if err := db.Model(&models.LDORegulator{}).Where("component_id = ?", id).Count(&ldoCount).Error; err != nil {
		t.Fatalf("统计LDO记录失败: %v", err)
	}
	if chipCount != 0 || ldoCount != 0 {
		t.Errorf("子类记录应级联删除, 剩余 chip=%d ldo=%d", chipCount, ldoCount)
	}

	if err := service.Delete(99999); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("删除不存在的元器件应返回ErrNotFound, got %v", err)
	}
}

func TestSerializeWithoutSubtypeRow(t *testing.T) {
	// 子类记录缺失时只输出基础字段
	detail := &ComponentDetail{
		Component: models.ElectronicComponent{
			Name:              "孤儿记录",
			PartNumber:        "ORPHAN-1",
			ComponentCategory: models.CategoryPower,
		},
	}

	data := detail.Serialize()
	if data["part_number"] != "ORPHAN-1" {
		t.Errorf("基础字段丢失, got %v", data["part_number"])
	}
	for _, key := range []string{"power_chip_type", "output_voltage", "topology"} {
		if _, exists := data[key]; exists {
			t.Errorf("缺少子类记录时不应输出字段 %q", key)
		}
	}
	if data["created_at"] != nil {
		t.Errorf("零值时间应输出null, got %v", data["created_at"])
	}
}
