package command

import (
	"errors"

	"atelier-storefront/internal/model"
	"atelier-storefront/internal/notify"
	"atelier-storefront/pkg/apierror"
)

// Backend user-error codes that get a dedicated message instead of the raw
// backend text.
const backendCodeTaken = "TAKEN"

// surface maps an error to a user-facing notice, applying the propagation
// policy: validation errors point at their field, backend user errors show the
// first message only, 402 gets its billing-plan explanation, and everything
// else collapses into one generic transport notice. Returns err unchanged so
// the caller can still report a non-zero exit.
func surface(deps *Deps, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, model.ErrSuperseded) {
		// A newer action already won; saying anything would be noise.
		return nil
	}

	apiErr, ok := apierror.AsAPIError(err)
	if !ok {
		switch {
		case errors.Is(err, model.ErrNotLoggedIn):
			notify.Error(deps.Notices, "please log in first")
		case errors.Is(err, model.ErrCartEmpty):
			notify.Error(deps.Notices, "your cart is empty")
		case errors.Is(err, model.ErrLineNotFound):
			notify.Error(deps.Notices, "that item is not in your cart")
		case errors.Is(err, model.ErrInvalidQuantity):
			notify.Error(deps.Notices, "quantity must be a positive number")
		case errors.Is(err, model.ErrProductNotFound):
			notify.Error(deps.Notices, "product not found")
		case errors.Is(err, model.ErrArticleNotFound):
			notify.Error(deps.Notices, "article not found")
		default:
			// The notice stays generic; the detail goes to the log.
			deps.logger().Warn("unhandled error", "error", err)
			notify.Error(deps.Notices, "something went wrong, please try again")
		}
		return err
	}

	switch apiErr.Code {
	case apierror.CodeValidation:
		notify.FieldError(deps.Notices, apiErr.Field, apiErr.Message)
	case apierror.CodePaymentRequired:
		notify.Error(deps.Notices, "the shop is temporarily unavailable due to a billing issue, please try again later")
	case apierror.CodeUserError:
		if apiErr.BackendCode == backendCodeTaken {
			notify.Error(deps.Notices, "an account with this email already exists")
		} else {
			notify.Error(deps.Notices, apiErr.Message)
		}
	default:
		deps.logger().Warn("unhandled error", "code", apiErr.Code, "error", err)
		notify.Error(deps.Notices, "something went wrong, please try again")
	}

	return err
}
