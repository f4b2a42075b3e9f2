// Package domain holds DTOs for the convert http transport
package domain

import cdom "termswap/internal/services/convert/domain"

// DocumentInput is one text in a batch request
type DocumentInput struct {
	Name string `json:"name" validate:"omitempty,max=512,singleline" example:"docs/intro.md"`
	Text string `json:"text" validate:"required" example:"请检查软件的默认设置"`
}

// BatchInput is the body of check and fix
type BatchInput struct {
	Documents []DocumentInput `json:"documents" validate:"required,min=1,dive"`
}

// ToDocuments converts the request into service documents
func (in BatchInput) ToDocuments() []cdom.Document {
	out := make([]cdom.Document, len(in.Documents))
	for i, d := range in.Documents {
		out[i] = cdom.Document{Name: d.Name, Text: d.Text}
	}
	return out
}
