package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrNotCompanyOwner = errors.New("you are not the owner of this company")
	ErrEmailTaken      = errors.New("company email already registered")
	ErrPhoneTaken      = errors.New("company phone already registered")
	ErrSlugTaken       = errors.New("company slug already taken")
)
