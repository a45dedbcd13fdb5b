package utils

import (
	"fmt"
)

type ServiceError struct {
	Code uint32
	Msg  string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ServiceError: code=%d, msg=%s", e.Code, e.Msg)
}

var (
	// business error code: [500000, 600000)
	ErrOpenCsv      = &ServiceError{500001, "open csv error"}
	ErrReadCsv      = &ServiceError{500002, "read csv error"}
	ErrBadRecord    = &ServiceError{500003, "malformed record"}
	ErrThreshold    = &ServiceError{500004, "min_sup and min_conf must be numbers between 0 and 1"}
	ErrMineFailed   = &ServiceError{500005, "mine task failed"}
	ErrWriteReport  = &ServiceError{500006, "write report error"}
	ErrTaskNotFound = &ServiceError{500007, "mine task not found"}
)
