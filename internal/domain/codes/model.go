package codes

import "time"

// Option maps to the code_option reference table: one display name per
// {category, code} pair.
type Option struct {
	ID           int64     `db:"id" json:"id"`
	Category     string    `db:"category" json:"category"`
	Code         string    `db:"code" json:"code"`
	Name         string    `db:"name" json:"name"`
	Description  *string   `db:"description" json:"description,omitempty"`
	DisplayOrder int       `db:"display_order" json:"displayOrder"`
	IsActive     bool      `db:"is_active" json:"isActive"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// Categories used by the record domains.
const (
	CategoryBiologicalGender = "biological_gender"
	CategoryMaritalStatus    = "marital_status"
	CategoryBloodTypeABO     = "blood_type_abo"
	CategoryBloodTypeRH      = "blood_type_rh"
	CategoryEducationLevel   = "education_level"
	CategoryIncomeLevel      = "income_level"
	CategoryNationality      = "nationality"
	CategoryLanguage         = "language"
	CategoryReligion         = "religion"
	CategoryIDType           = "id_type"
)
