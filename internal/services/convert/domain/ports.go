package domain

import "context"

// ConverterPort is what transports (CLI, HTTP) need from the convert service
type ConverterPort interface {
	// Check reports the issues in doc without changing it
	Check(doc Document) Result
	// Fix reports like Check and also returns the rewritten text
	Fix(doc Document) Result
	// Run processes docs concurrently; partial results come back with a canceled error
	Run(ctx context.Context, docs []Document, fix bool) (Summary, error)
	// Terms describes the dictionary the service was built with
	Terms() TermsInfo
}
