package user

// Credentials is a parsed login attempt. The email is already normalized so it
// can be used as the lookup key.
type Credentials struct {
	Email    Email
	Password Password
}

func ParseCredentials(email, password string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Email: e, Password: p}, nil
}
