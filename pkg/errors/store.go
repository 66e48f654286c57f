package errors

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"github.com/sony/gobreaker"
)

// FromStoreError classifies an error returned by the document store client.
func FromStoreError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if GetAppError(err) != nil {
		return err
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return NewUnavailableError("dynamodb").WithCode("CIRCUIT_OPEN").WithCause(err)
	}

	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return NewConflictError("conditional check failed").WithCode("CONDITION_FAILED").WithCause(err)
	}

	var ae smithy.APIError
	if errors.As(err, &ae) {
		switch ae.ErrorCode() {
		case "ResourceNotFoundException":
			return NewUnavailableError("dynamodb").WithCode("TABLE_NOT_FOUND").WithCause(err)
		case "ProvisionedThroughputExceededException", "ThrottlingException", "RequestLimitExceeded":
			return NewUnavailableError("dynamodb").WithCode("THROTTLED").WithCause(err)
		case "ValidationException":
			return NewDatabaseError(operation, err).WithCode("STORE_VALIDATION")
		}
	}

	return NewDatabaseError(operation, err)
}

// IsConditionFailed reports whether err came from a failed DynamoDB condition expression.
func IsConditionFailed(err error) bool {
	appErr := GetAppError(err)
	if appErr != nil && appErr.Code == "CONDITION_FAILED" {
		return true
	}
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}
