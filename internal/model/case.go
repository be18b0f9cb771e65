package model

import (
	"strings"
	"time"
)

// Status specifies case lifecycle state
type Status string

const (
	// StatusOpen means case is still being worked on
	StatusOpen Status = "open"
	// StatusClosed means case is resolved
	StatusClosed Status = "closed"
)

// Case is support case model entity
type Case struct {
	ID           string            `json:"_id"`
	CaseNumber   string            `json:"caseNumber" validate:"required"`
	Subject      string            `json:"subject" validate:"required"`
	Description  string            `json:"description" validate:"required"`
	Department   string            `json:"department" validate:"required,department"`
	Status       Status            `json:"status" validate:"required,oneof=open closed"`
	ContactName  string            `json:"contactName,omitempty" validate:"contact"`
	BusinessName string            `json:"businessName,omitempty" validate:"contact"`
	Coid         string            `json:"coid,omitempty" validate:"contact"`
	Mid          string            `json:"mid,omitempty" validate:"contact"`
	CustomFields map[string]string `json:"customFields"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// Normalize trims identifying text fields and fills defaults
func (c *Case) Normalize() {
	c.CaseNumber = strings.TrimSpace(c.CaseNumber)
	c.Subject = strings.TrimSpace(c.Subject)

	if c.Status == "" {
		c.Status = StatusOpen
	}

	if c.CustomFields == nil {
		c.CustomFields = make(map[string]string)
	}
}

// CasePatch holds fields to be replaced on existing case, nil means untouched
type CasePatch struct {
	CaseNumber   *string
	Subject      *string
	Description  *string
	Department   *string
	Status       *Status
	ContactName  *string
	BusinessName *string
	Coid         *string
	Mid          *string
	CustomFields map[string]string
}

// Apply returns copy of case with patch fields merged in
func (p *CasePatch) Apply(c Case) Case {
	if p.CaseNumber != nil {
		c.CaseNumber = *p.CaseNumber
	}

	if p.Subject != nil {
		c.Subject = *p.Subject
	}

	if p.Description != nil {
		c.Description = *p.Description
	}

	if p.Department != nil {
		c.Department = *p.Department
	}

	if p.Status != nil {
		c.Status = *p.Status
	}

	if p.ContactName != nil {
		c.ContactName = *p.ContactName
	}

	if p.BusinessName != nil {
		c.BusinessName = *p.BusinessName
	}

	if p.Coid != nil {
		c.Coid = *p.Coid
	}

	if p.Mid != nil {
		c.Mid = *p.Mid
	}

	if p.CustomFields != nil {
		fields := make(map[string]string, len(p.CustomFields))
		for k, v := range p.CustomFields {
			fields[k] = v
		}
		c.CustomFields = fields
	}
	return c
}
