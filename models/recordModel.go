package models

import (
	"time"
)

// MedicalRecord model. Symptoms and Reviews are unordered, duplicate-free sets
// kept in the record_symptoms and record_reviews join tables.
type MedicalRecord struct {
	ID          uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title       string    `gorm:"column:title;not null;index" json:"title"`
	Body        *string   `gorm:"column:body" json:"body"`
	PatientID   string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DiagnosisID uint      `gorm:"column:diagnosis_id;not null;index" json:"diagnosis_id"`
	IsPublic    bool      `gorm:"column:is_public;not null" json:"is_public"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Patient   Patient      `gorm:"foreignKey:PatientID;references:ID" json:"-"`
	Diagnosis Diagnosis    `gorm:"foreignKey:DiagnosisID;references:ID" json:"-"`
	Symptoms  []Symptom    `gorm:"many2many:record_symptoms" json:"symptoms,omitempty"`
	Reviews   []ItemReview `gorm:"many2many:record_reviews" json:"reviews,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_record"
}

// RecordSymptom is a row of the record/symptom join table. Membership is
// mutated through this model so adds can be idempotent.
type RecordSymptom struct {
	MedicalRecordID uint `gorm:"primaryKey;column:medical_record_id" json:"medical_record_id"`
	SymptomID       uint `gorm:"primaryKey;column:symptom_id" json:"symptom_id"`
}

func (RecordSymptom) TableName() string {
	return "record_symptoms"
}

// RecordReview is a row of the record/review join table.
type RecordReview struct {
	MedicalRecordID uint `gorm:"primaryKey;column:medical_record_id" json:"medical_record_id"`
	ItemReviewID    uint `gorm:"primaryKey;column:item_review_id" json:"item_review_id"`
}

func (RecordReview) TableName() string {
	return "record_reviews"
}
