package domain

import "errors"

// Registration errors.
var ErrMissingName = errors.New("must provide name")
var ErrMissingEmail = errors.New("must provide email")
var ErrMissingPassword = errors.New("must provide password")
var ErrPasswordMismatch = errors.New("passwords must match")
var ErrEmailTaken = errors.New("email already registered")

// Authentication errors.
var ErrMissingCredentials = errors.New("must provide email and password")
var ErrInvalidCredentials = errors.New("invalid email and/or password")

// ErrAccountNotFound is returned when an account lookup comes up empty.
// During session restoration it means "anonymous", never a failure.
var ErrAccountNotFound = errors.New("account not found")
