// pkg/ops_err/types.go

package ops_err

// UserError marks an error as expected and user-fixable: a failed
// precondition on the host rather than a bug in botops. These print
// without a stack trace and map to exit code 1.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	if e.cause == nil {
		return "user error"
	}
	return e.cause.Error()
}

func (e *UserError) Unwrap() error { return e.cause }
