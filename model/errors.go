package model

import (
	"errors"
	"fmt"
)

// Các loại lỗi mà caller phải phân biệt được (không gộp chung).
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("order not found")
	ErrConflict          = errors.New("order already exists")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownAction     = errors.New("unknown action")
)

type InvalidTransitionError struct {
	From   OrderStatus
	Target OrderStatus
	Action OrderAction
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s -> %s (action %s)", e.From, e.Target, e.Action)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

type UnknownActionError struct {
	Action OrderAction
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action: %q", e.Action)
}

func (e *UnknownActionError) Unwrap() error { return ErrUnknownAction }

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
