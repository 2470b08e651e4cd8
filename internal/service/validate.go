package service

import "github.com/briggittemora/Gestion-de-tareas/internal/validation"

func validate(v *validation.Validator, req interface{}) error {
	if fields := v.Struct(req); len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
