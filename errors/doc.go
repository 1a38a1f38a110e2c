// Package errors defines the error taxonomy of the authentication service.
//
// Every failure a caller can observe is an *AppError with a machine-readable
// code and a fixed HTTP status. Expected failures (weak password, duplicate
// email, bad credentials, bad tokens, missing role) have dedicated
// constructors and pass through to the HTTP boundary unchanged; anything
// unexpected is wrapped by Internal, which hides the cause from clients.
//
// Usage:
//
//	if err := strength.Check(pw); err != nil {
//	    return errors.WeakPassword(err.Rules)
//	}
//
//	appErr, ok := errors.AsAppError(err)
//	if ok {
//	    c.JSON(appErr.HTTPStatus, appErr.ToResponse())
//	}
package errors
