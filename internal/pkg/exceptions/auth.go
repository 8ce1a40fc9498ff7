package exceptions

import (
	"errors"
	"fmt"
	"medicare-portal/internal/pkg/constvars"
	"strings"
)

type AuthFailure int

const (
	AuthFailureUncategorized AuthFailure = iota
	AuthFailureMemberNotFound
	AuthFailureCredentialMismatch
	AuthFailureBlocked
	AuthFailureDuplicate
)

func (f AuthFailure) String() string {
	switch f {
	case AuthFailureMemberNotFound:
		return "member_not_found"
	case AuthFailureCredentialMismatch:
		return "credential_mismatch"
	case AuthFailureBlocked:
		return "blocked"
	case AuthFailureDuplicate:
		return "duplicate"
	default:
		return "uncategorized"
	}
}

// CodedError is implemented by upstream errors that carry a machine readable code.
type CodedError interface {
	error
	ErrorCode() string
}

var failuresByCode = map[string]AuthFailure{
	constvars.GraphQLCodeMemberNotFound: AuthFailureMemberNotFound,
	constvars.GraphQLCodeWrongPassword:  AuthFailureCredentialMismatch,
	constvars.GraphQLCodeBlockedUser:    AuthFailureBlocked,
	constvars.GraphQLCodeAlreadyExists:  AuthFailureDuplicate,
}

// ClassifyAuthFailure is the only place upstream auth errors are categorized.
// A known error code wins; the message substrings are a legacy fallback.
func ClassifyAuthFailure(err error) AuthFailure {
	if err == nil {
		return AuthFailureUncategorized
	}

	var coded CodedError
	if errors.As(err, &coded) {
		if failure, ok := failuresByCode[coded.ErrorCode()]; ok {
			return failure
		}
		return classifyByMessage(coded.Error())
	}

	return classifyByMessage(rootMessage(err))
}

// rootMessage returns the message of the innermost error, leaving out the
// call site trail CustomError adds.
func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	if custom, ok := err.(*CustomError); ok {
		return custom.DevMessage
	}
	return err.Error()
}

func classifyByMessage(message string) AuthFailure {
	message = strings.ToLower(message)
	switch {
	case strings.Contains(message, "no member"), strings.Contains(message, "not found"):
		return AuthFailureMemberNotFound
	case strings.Contains(message, "password"), strings.Contains(message, "do not match"):
		return AuthFailureCredentialMismatch
	case strings.Contains(message, "blocked"):
		return AuthFailureBlocked
	case strings.Contains(message, "already exists"), strings.Contains(message, "already used"):
		return AuthFailureDuplicate
	default:
		return AuthFailureUncategorized
	}
}

// AuthFailureMessage returns the notification text shown for a failure.
// Doctor signup names the license number among the duplicate identities.
func AuthFailureMessage(failure AuthFailure, doctorSignup bool) string {
	switch failure {
	case AuthFailureCredentialMismatch:
		return constvars.NotifyCheckPassword
	case AuthFailureBlocked:
		return constvars.NotifyUserBlocked
	case AuthFailureDuplicate:
		if doctorSignup {
			return constvars.NotifyDoctorAlreadyExists
		}
		return constvars.NotifyMemberAlreadyExists
	default:
		return constvars.NotifyGenericFailure
	}
}

func authFailureStatus(failure AuthFailure) int {
	switch failure {
	case AuthFailureCredentialMismatch, AuthFailureMemberNotFound:
		return constvars.StatusUnauthorized
	case AuthFailureBlocked:
		return constvars.StatusForbidden
	case AuthFailureDuplicate:
		return constvars.StatusConflict
	default:
		return constvars.StatusBadGateway
	}
}

// ErrAuthFailed builds a fresh error for a classified failure so the client
// message always matches the notification text.
func ErrAuthFailed(err error, failure AuthFailure, clientMessage string) *CustomError {
	devMessage := fmt.Sprintf(constvars.ErrDevAuthFailed, failure)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    authFailureStatus(failure),
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(2)},
		Err:           err,
	}
}
