/*
Copyright 2025 The TeenMind Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package httpclient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// StatusReason is an enumeration of possible failure causes. Each StatusReason
// maps to a single HTTP status code, but multiple reasons may map to the same
// HTTP status code.
type StatusReason string

const (
	// StatusReasonUnknown means the server has declined to indicate a specific reason.
	StatusReasonUnknown StatusReason = ""

	// StatusReasonBadRequest means that the request itself was invalid and makes
	// no sense to retry as-is.
	// Status code 400
	StatusReasonBadRequest StatusReason = "BadRequest"

	// StatusReasonUnauthorized means the server requires the client to present
	// appropriate authorization credentials for the action to be completed.
	// Status code 401
	StatusReasonUnauthorized StatusReason = "Unauthorized"

	// StatusReasonForbidden means the server understood the request but refuses
	// to take any further action.
	// Status code 403
	StatusReasonForbidden StatusReason = "Forbidden"

	// StatusReasonNotFound means one or more resources required for this
	// operation could not be found.
	// Status code 404
	StatusReasonNotFound StatusReason = "NotFound"

	// StatusReasonMethodNotAllowed means the action the client attempted to
	// perform on the resource is not supported.
	// Status code 405
	StatusReasonMethodNotAllowed StatusReason = "MethodNotAllowed"

	// StatusReasonAlreadyExists means the resource being created already exists.
	// Status code 409 on POST
	StatusReasonAlreadyExists StatusReason = "AlreadyExists"

	// StatusReasonConflict means the requested operation cannot be completed
	// due to a conflict in the operation.
	// Status code 409
	StatusReasonConflict StatusReason = "Conflict"

	// StatusReasonInvalid means the requested create or update operation cannot
	// be completed due to invalid data provided as part of the request.
	// Status code 422
	StatusReasonInvalid StatusReason = "Invalid"

	// StatusReasonTooManyRequests means the server experienced too many
	// requests within a given window and the client must wait.
	// Status code 429
	StatusReasonTooManyRequests StatusReason = "TooManyRequests"

	// StatusReasonInternalError indicates that an internal error occurred, it
	// is unexpected and the outcome of the call is unknown.
	// Status code 500
	StatusReasonInternalError StatusReason = "InternalError"

	// StatusReasonServiceUnavailable means the request itself was valid, but
	// the requested service is unavailable at this time.
	// Status code 503
	StatusReasonServiceUnavailable StatusReason = "ServiceUnavailable"
)

type httpStatus interface {
	Status() StatusReason
}

// Error carries the HTTP status of a failed exchange together with the raw
// response body, untouched, so that callers see exactly what the server sent.
type Error struct {
	Code      int
	ErrStatus StatusReason
	Message   string
	Detail    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d %s] %s", e.Code, e.ErrStatus, e.Detail)
}

func (e *Error) Status() StatusReason {
	return e.ErrStatus
}

var _ error = &Error{}
var _ httpStatus = &Error{}

func IsNotFound(err error) bool {
	return ReasonForError(err) == StatusReasonNotFound
}

func IsUnauthorized(err error) bool {
	return ReasonForError(err) == StatusReasonUnauthorized
}

func ReasonForError(err error) StatusReason {
	if status := httpStatus(nil); errors.As(err, &status) {
		return status.Status()
	}
	return StatusReasonUnknown
}

func NewErrorFromRestyResponse(res *resty.Response) *Error {
	return NewGenericServerResponse(res.StatusCode(), res.Request.Method, res.String())
}

// NewGenericServerResponse returns a new error for server responses.
func NewGenericServerResponse(code int, method string, detail string) *Error {
	reason := StatusReasonUnknown
	message := fmt.Sprintf("the server responded with the status code %d but did not return more information", code)
	switch code {
	case http.StatusConflict:
		if method == resty.MethodPost {
			reason = StatusReasonAlreadyExists
		} else {
			reason = StatusReasonConflict
		}
		message = "the server reported a conflict"
	case http.StatusNotFound:
		reason = StatusReasonNotFound
		message = "the server could not find the requested resource"
	case http.StatusBadRequest:
		reason = StatusReasonBadRequest
		message = "the server rejected our request for an unknown reason"
	case http.StatusUnauthorized:
		reason = StatusReasonUnauthorized
		message = "the server has asked for the client to provide credentials"
	case http.StatusForbidden:
		reason = StatusReasonForbidden
		message = detail
	case http.StatusMethodNotAllowed:
		reason = StatusReasonMethodNotAllowed
		message = "the server does not allow this method on the requested resource"
	case http.StatusUnprocessableEntity:
		reason = StatusReasonInvalid
		message = "the server rejected our request due to an error in our request"
	case http.StatusTooManyRequests:
		reason = StatusReasonTooManyRequests
		message = "the server has received too many requests and has asked us to try again later"
	case http.StatusInternalServerError:
		reason = StatusReasonInternalError
		message = "an error on the server has prevented the request from succeeding"
	case http.StatusServiceUnavailable:
		reason = StatusReasonServiceUnavailable
		message = "the server is currently unable to handle the request"
	}

	return &Error{
		Code:      code,
		ErrStatus: reason,
		Message:   message,
		Detail:    detail,
	}
}
