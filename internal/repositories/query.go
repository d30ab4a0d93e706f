package repositories

import (
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound is returned by lookups that match no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage keeps Page*Size within an int for every allowed size.
	MaxPage = math.MaxInt / MaxPageSize
)

// Direction of a sort.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// PageRequest describes which slice of a listing to return.
// Page is 0-based. Sort is a json field name of the listed entity.
type PageRequest struct {
	Page      int
	Size      int
	Sort      string
	Direction Direction
}

// Normalize clamps page and size into their valid ranges.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	if p.Direction != Desc {
		p.Direction = Asc
	}
	return p
}

func (p PageRequest) offset() int { return p.Page * p.Size }

// UserFilter narrows a user listing. Empty fields match everything.
type UserFilter struct {
	UserType   string
	UserStatus string
	Email      string
	FullName   string
}

func (f UserFilter) scope(db *gorm.DB) *gorm.DB {
	if f.UserType != "" {
		db = db.Where("user_type = ?", f.UserType)
	}
	if f.UserStatus != "" {
		db = db.Where("user_status = ?", f.UserStatus)
	}
	if f.Email != "" {
		db = db.Where("email LIKE ? ESCAPE '\\'", contains(f.Email))
	}
	if f.FullName != "" {
		db = db.Where("full_name LIKE ? ESCAPE '\\'", contains(f.FullName))
	}
	return db
}

// LessonFilter narrows a lesson listing inside one module.
type LessonFilter struct {
	Title string
}

func (f LessonFilter) scope(db *gorm.DB) *gorm.DB {
	if f.Title != "" {
		db = db.Where("title LIKE ? ESCAPE '\\'", contains(f.Title))
	}
	return db
}

func contains(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// paginate counts the rows matched by query and loads the requested page
// into dest. columns maps sortable json names to table columns; unknown
// sort keys fall back to fallback.
func paginate(query *gorm.DB, page PageRequest, columns map[string]string, fallback string, dest interface{}) (int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	column, ok := columns[page.Sort]
	if !ok {
		column = fallback
	}
	order := clause.OrderByColumn{
		Column: clause.Column{Name: column},
		Desc:   page.Direction == Desc,
	}
	err := query.Session(&gorm.Session{}).
		Order(order).
		Offset(page.offset()).
		Limit(page.Size).
		Find(dest).Error
	return total, err
}
