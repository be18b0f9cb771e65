package service

// Validator checks entity against schema rules and reports every violation at once
type Validator interface {
	Validate(i any) error
}
