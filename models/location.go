package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// City 对应数据库中的 city 表
type City struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`  // ID: 城市主键
	Name string    `gorm:"size:100;not null;column:name" json:"name"` // Name: 城市名称

	// 城市下属门店，删除城市时级联删除
	Stores []Store `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE" json:"stores,omitempty"`
	// 城市关联的销售单，随城市级联删除
	Sales []Sale `gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE" json:"-"`
}

func (City) TableName() string {
	return "city"
}

func (c *City) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Store 对应数据库中的 store 表
type Store struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`               // ID: 门店主键
	Name   string    `gorm:"size:100;not null;column:name" json:"name"`              // Name: 门店名称
	CityID uuid.UUID `gorm:"type:uuid;not null;index;column:city_id" json:"city_id"` // CityID: 所属城市ID

	City *City `gorm:"foreignKey:CityID" json:"city,omitempty"`
	// 门店在售商品，删除门店时级联删除
	Products []Product `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	// 门店产生的销售单，随门店级联删除
	Sales []Sale `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Store) TableName() string {
	return "store"
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
