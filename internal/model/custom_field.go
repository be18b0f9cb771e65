package model

// FieldType specifies how custom field value is entered
type FieldType string

const (
	// FieldTypeText is single line input
	FieldTypeText FieldType = "text"
	// FieldTypeTextarea is multi line input
	FieldTypeTextarea FieldType = "textarea"
)

// CustomField is definition of extra data attached to cases through Case.CustomFields
type CustomField struct {
	ID       string    `json:"_id"`
	Key      string    `json:"id" validate:"required"`
	Label    string    `json:"label" validate:"required"`
	Type     FieldType `json:"type" validate:"required,oneof=text textarea"`
	Required bool      `json:"required"`
}

// Normalize fills defaults
func (f *CustomField) Normalize() {
	if f.Type == "" {
		f.Type = FieldTypeText
	}
}
