package errors

import (
	"fmt"
)

type ErrPreferencesNotFound struct {
	UserID string
}

func (e *ErrPreferencesNotFound) Error() string {
	return "настройки уведомлений не найдены: " + e.UserID
}

func (e *ErrPreferencesNotFound) Is(target error) bool {
	_, ok := target.(*ErrPreferencesNotFound)
	return ok
}

type ErrScheduleNotFound struct {
	UserID string
}

func (e *ErrScheduleNotFound) Error() string {
	return "расписание чек-инов не найдено: " + e.UserID
}

func (e *ErrScheduleNotFound) Is(target error) bool {
	_, ok := target.(*ErrScheduleNotFound)
	return ok
}

type ErrSessionNotFound struct {
	SessionID string
}

func (e *ErrSessionNotFound) Error() string {
	return "фокус-сессия не найдена: " + e.SessionID
}

func (e *ErrSessionNotFound) Is(target error) bool {
	_, ok := target.(*ErrSessionNotFound)
	return ok
}

type ErrInvalidSlotTime struct {
	Value string
}

func (e *ErrInvalidSlotTime) Error() string {
	return "некорректное время слота: " + e.Value
}

func (e *ErrInvalidSlotTime) Is(target error) bool {
	_, ok := target.(*ErrInvalidSlotTime)
	return ok
}

type ErrUnknownChannel struct {
	Channel string
}

func (e *ErrUnknownChannel) Error() string {
	return "неизвестный канал доставки: " + e.Channel
}

func (e *ErrUnknownChannel) Is(target error) bool {
	_, ok := target.(*ErrUnknownChannel)
	return ok
}

type ErrQueueOverflow struct {
	Depth int
}

func (e *ErrQueueOverflow) Error() string {
	return fmt.Sprintf("очередь действий переполнена: %d", e.Depth)
}

func (e *ErrQueueOverflow) Is(target error) bool {
	_, ok := target.(*ErrQueueOverflow)
	return ok
}

type ErrBuildSQLQuery struct {
	Operation string
	Cause     error
}

func (e *ErrBuildSQLQuery) Error() string {
	return fmt.Sprintf("ошибка при построении SQL запроса (%s): %v", e.Operation, e.Cause)
}

func (e *ErrBuildSQLQuery) Unwrap() error {
	return e.Cause
}

type ErrSQLExecution struct {
	Operation string
	Cause     error
}

func (e *ErrSQLExecution) Error() string {
	return fmt.Sprintf("ошибка при выполнении SQL запроса (%s): %v", e.Operation, e.Cause)
}

func (e *ErrSQLExecution) Unwrap() error {
	return e.Cause
}

type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP ошибка: статус %d", e.StatusCode)
}
