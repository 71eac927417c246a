package models

import (
	"time"
)

// Patient model
type Patient struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	DisplayName string    `gorm:"column:display_name;unique;not null" json:"display_name"`
	Sex         string    `gorm:"column:sex;check:sex IN ('Male', 'Female', 'Other');not null" json:"sex"`
	DateOfBirth string    `gorm:"column:date_of_birth;not null;index" json:"date_of_birth"`
	Phone       string    `gorm:"column:phone" json:"phone"`
	Email       string    `gorm:"column:email" json:"email"`
	Address     string    `gorm:"column:address" json:"address"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	MedicalRecords []MedicalRecord `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patient"
}

// Diagnosis model
type Diagnosis struct {
	ID   uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name string `gorm:"column:name;unique;not null" json:"name"`
}

func (Diagnosis) TableName() string {
	return "diagnosis"
}

// Symptom model
type Symptom struct {
	ID   uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name string `gorm:"column:name;unique;not null" json:"name"`
}

func (Symptom) TableName() string {
	return "symptom"
}

// ItemCategory model
type ItemCategory struct {
	ID   uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name string `gorm:"column:name;unique;not null" json:"name"`
}

func (ItemCategory) TableName() string {
	return "item_category"
}

// ItemType model
type ItemType struct {
	ID   uint   `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name string `gorm:"column:name;unique;not null" json:"name"`
}

func (ItemType) TableName() string {
	return "item_type"
}
