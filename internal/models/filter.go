package models

// Filter 滤波器扩展表
type Filter struct {
	ComponentID     uint     `gorm:"primarykey" json:"component_id"`
	FilterType      string   `gorm:"size:50" json:"filter_type"` // low_pass、high_pass、band_pass、band_stop
	CutoffFrequency *float64 `json:"cutoff_frequency"`           // 截止频率，单位：Hz
	Impedance       *float64 `json:"impedance"`                  // 特征阻抗，单位：Ω
	InsertionLoss   *float64 `json:"insertion_loss"`             // 插入损耗，单位：dB
	Bandwidth       *float64 `json:"bandwidth"`                  // 带宽，单位：Hz

	Component ElectronicComponent `gorm:"foreignKey:ComponentID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (Filter) TableName() string {
	return "filters"
}
