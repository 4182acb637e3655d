package geojson

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ValidationError describes a single failed GeoJSON rule. Field names the
// offending member, Key is a stable machine-comparable identifier suitable
// for programmatic branching or i18n, and Message is for humans only.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Key     string `json:"key"`
}

func errorOf(field, message, key string) ValidationError {
	return ValidationError{Field: field, Message: message, Key: key}
}

func (e ValidationError) String() string {
	return fmt.Sprintf("ValidationError{field=%q, message=%q, key=%q}", e.Field, e.Message, e.Key)
}

// ValidationResult aggregates the errors of one Validate call. The error set
// is duplicate-free by value equality and carries no ordering semantics;
// Errors returns a deterministic ordering for stable output.
type ValidationResult struct {
	errors map[ValidationError]struct{}
}

func newValidationResult(errs []ValidationError) ValidationResult {
	if len(errs) == 0 {
		return ValidationResult{}
	}
	set := make(map[ValidationError]struct{}, len(errs))
	for _, e := range errs {
		set[e] = struct{}{}
	}
	return ValidationResult{errors: set}
}

// HasErrors reports whether at least one rule failed.
func (r ValidationResult) HasErrors() bool {
	return len(r.errors) > 0
}

// Errors returns the error set sorted by key, then field, then message.
func (r ValidationResult) Errors() []ValidationError {
	out := make([]ValidationError, 0, len(r.errors))
	for e := range r.errors {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Key != out[j].Key {
			return out[i].Key < out[j].Key
		}
		if out[i].Field != out[j].Field {
			return out[i].Field < out[j].Field
		}
		return out[i].Message < out[j].Message
	})
	return out
}

// HasKey reports whether any error carries the given key.
func (r ValidationResult) HasKey(key string) bool {
	for e := range r.errors {
		if e.Key == key {
			return true
		}
	}
	return false
}

// MarshalJSON encodes the result as {"valid":bool,"errors":[...]}, the shape
// served by the validation endpoint.
func (r ValidationResult) MarshalJSON() ([]byte, error) {
	out := struct {
		Valid  bool              `json:"valid"`
		Errors []ValidationError `json:"errors"`
	}{
		Valid:  !r.HasErrors(),
		Errors: r.Errors(),
	}
	if out.Errors == nil {
		out.Errors = []ValidationError{}
	}
	return json.Marshal(out)
}

// typeTagValid reports whether the "type" member is non-blank and exactly
// the canonical name (case-sensitive).
func typeTagValid(got, want string) bool {
	return strings.TrimSpace(got) != "" && got == want
}

func typeError(got, want string) ValidationError {
	return errorOf("type", fmt.Sprintf("type '%s' is not valid. expected '%s'", got, want), "type.invalid")
}

// ValidationFailedError is returned by the eager New* constructors when the
// constructed value is invalid. It carries the full error set; it is never
// produced by Validate itself.
type ValidationFailedError struct {
	Result ValidationResult
}

func (e *ValidationFailedError) Error() string {
	errs := e.Result.Errors()
	keys := make([]string, len(errs))
	for i, ve := range errs {
		keys[i] = ve.Key
	}
	return "geojson: validation failed: " + strings.Join(keys, ", ")
}
