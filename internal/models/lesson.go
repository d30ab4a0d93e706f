package models

import "time"

// Module groups the lessons of a course.
type Module struct {
	ModuleID     string    `json:"moduleId" gorm:"primaryKey;type:varchar(36)"`
	CourseID     string    `json:"courseId" gorm:"type:varchar(36);index"`
	Title        string    `json:"title" gorm:"type:varchar(150);not null"`
	Description  string    `json:"description" gorm:"type:varchar(250)"`
	CreationDate time.Time `json:"creationDate" gorm:"not null"`
	Lessons      []Lesson  `json:"-" gorm:"foreignKey:ModuleID;references:ModuleID;constraint:OnDelete:CASCADE"`
}

func (Module) TableName() string { return "tb_modules" }

// Lesson is owned by exactly one Module.
type Lesson struct {
	LessonID       string    `json:"lessonId" gorm:"primaryKey;type:varchar(36)"`
	ModuleID       string    `json:"moduleId" gorm:"type:varchar(36);not null;index"`
	Title          string    `json:"title" gorm:"type:varchar(150);not null"`
	Description    string    `json:"description" gorm:"type:varchar(250)"`
	VideoURL       string    `json:"videoUrl" gorm:"column:video_url;not null"`
	CreationDate   time.Time `json:"creationDate" gorm:"not null"`
	LastUpdateDate time.Time `json:"lastUpdateDate" gorm:"not null"`
}

func (Lesson) TableName() string { return "tb_lessons" }

// ModuleRequest is the payload of POST /modules.
type ModuleRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	CourseID    string `json:"courseId" validate:"omitempty,uuid"`
}

// LessonRequest is the payload of lesson create and update.
type LessonRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl" validate:"required"`
}
