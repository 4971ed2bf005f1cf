package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды SQLSTATE, которые сервис обрабатывает отдельно
const (
	CodeUniqueViolation      = "23505"
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
	CodeQueryCanceled        = "57014"
)

// Code возвращает SQLSTATE ошибки PostgreSQL или пустую строку
func Code(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// Constraint возвращает имя нарушенного ограничения или пустую строку
func Constraint(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

// IsUniqueViolation проверяет нарушение уникального индекса
func IsUniqueViolation(err error) bool {
	return Code(err) == CodeUniqueViolation
}

// IsUniqueViolationOn проверяет нарушение конкретного уникального индекса
func IsUniqueViolationOn(err error, constraint string) bool {
	return IsUniqueViolation(err) && Constraint(err) == constraint
}

// IsSerializationFailure проверяет конфликт сериализуемой транзакции.
// Такую транзакцию можно безопасно повторить целиком.
func IsSerializationFailure(err error) bool {
	code := Code(err)
	return code == CodeSerializationFailure || code == CodeDeadlockDetected
}
