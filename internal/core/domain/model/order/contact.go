package order

// Contact holds the optional customer contact details attached to an order
// header. All fields are optional; the zero value means no contact details
// were provided with the intake payload.
type Contact struct {
	phone    string
	email    string
	language string
}

// NewContact creates contact details from the intake payload.
// Empty fields are allowed; they simply mean the detail was not provided.
func NewContact(phone string, email string, language string) Contact {
	return Contact{
		phone:    phone,
		email:    email,
		language: language,
	}
}

// Phone returns the contact phone number, possibly empty.
func (c Contact) Phone() string {
	return c.phone
}

// Email returns the contact email address, possibly empty.
func (c Contact) Email() string {
	return c.email
}

// Language returns the preferred contact language code, possibly empty.
func (c Contact) Language() string {
	return c.language
}

// IsZero reports whether no contact detail was provided at all.
func (c Contact) IsZero() bool {
	return c == Contact{}
}
