package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList stores an ordered list of strings as a JSON array column
type StringList []string

// Value implements the driver.Valuer interface
func (a StringList) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal([]string(a))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *StringList) Scan(value interface{}) error {
	if value == nil {
		*a = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported StringList source %T", value)
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is the stored recipe document. ID and CreatedBy are assigned by the
// system on create and never change afterwards.
type Recipe struct {
	ID           string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title        string     `gorm:"size:255;not null;index" json:"title"`
	Ingredients  StringList `gorm:"type:jsonb;not null" json:"ingredients"`
	Instructions StringList `gorm:"type:jsonb;not null" json:"instructions"`
	CookingTime  int        `gorm:"not null" json:"cookingTime"`
	Category     string     `gorm:"size:100;not null;index" json:"category"`
	CreatedBy    string     `gorm:"size:255;not null;index" json:"createdBy"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// BeforeCreate assigns the identifier when the caller has not
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Instructions == nil {
		r.Instructions = StringList{}
	}
	return nil
}
