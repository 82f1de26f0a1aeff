package pricing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrMethodNotFound       = errors.New("pricing method not found")
	ErrMethodInactive       = errors.New("pricing method is inactive")
	ErrUnknownConditionType = errors.New("unknown condition type")
)

const (
	CodeRequired = "required"
	CodeInvalid  = "invalid"
	CodeConflict = "conflict"
)

// FieldError - ошибка конкретного поля формы
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return e.Field + ": " + e.Message
}

func joinFields(fields []FieldError) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, "; ")
}

// ValidationError - форма не прошла проверку, запись не выполнялась
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + joinFields(e.Fields)
}

// ConflictError - единственная проблема формы в дублирующемся имени
type ConflictError struct {
	Fields []FieldError
}

func (e *ConflictError) Error() string {
	return "conflict: " + joinFields(e.Fields)
}

// PreconditionError - расчет цены запрошен для отсутствующего или выключенного метода
type PreconditionError struct {
	MethodID uint
	Err      error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cannot quote method %d: %v", e.MethodID, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// FieldsError превращает список ошибок полей в ошибку нужного типа.
// Если все ошибки - конфликты имени, возвращается *ConflictError.
func FieldsError(fields []FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	for _, f := range fields {
		if f.Code != CodeConflict {
			return &ValidationError{Fields: fields}
		}
	}
	return &ConflictError{Fields: fields}
}

// FieldsOf достает ошибки полей из ValidationError или ConflictError
func FieldsOf(err error) ([]FieldError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields, true
	}
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.Fields, true
	}
	return nil, false
}
