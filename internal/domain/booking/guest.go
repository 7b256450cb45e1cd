package booking

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"staybook/internal/domain/user"
	"staybook/internal/pkg/errs"
)

var (
	ErrGuestNameRequired = errors.New("guest name is required")
	ErrGuestNameTooLong  = errors.New("guest name is too long")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
)

const maxGuestNameLength = 120

var phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-.]{6,32}$`)

type Guest struct {
	name  string
	email user.Email
	phone *string
	count int
}

func NewGuest(name, email string, phone *string, count int) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Guest{}, errs.NewValidation("guest.name", ErrGuestNameRequired)
	}
	if utf8.RuneCountInString(name) > maxGuestNameLength {
		return Guest{}, errs.NewValidation("guest.name", ErrGuestNameTooLong)
	}
	addr, err := user.NewEmail(email)
	if err != nil {
		return Guest{}, errs.NewValidation("guest.email", err)
	}
	if phone != nil {
		p := strings.TrimSpace(*phone)
		if p == "" {
			phone = nil
		} else if !phoneRegex.MatchString(p) {
			return Guest{}, errs.NewValidation("guest.phone", ErrInvalidPhone)
		} else {
			phone = &p
		}
	}
	if count < 1 {
		return Guest{}, errs.NewValidation("guest.count", ErrInvalidGuestCount)
	}
	return Guest{name: name, email: addr, phone: phone, count: count}, nil
}

func (g Guest) Name() string      { return g.name }
func (g Guest) Email() user.Email { return g.email }
func (g Guest) Phone() *string    { return g.phone }
func (g Guest) Count() int        { return g.count }
