package clients

// Fields is what a caller submits to create a client. Free text fields are
// optional, empty ones are not stored.
type Fields struct {
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Address      string `json:"address,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Email        string `json:"email,omitempty"`
	Pesel        string `json:"pesel,omitempty"`
	Identity     string `json:"identity,omitempty"`
	Business     bool   `json:"business"`
	BusinessName string `json:"businessName,omitempty"`
	Nip          string `json:"nip,omitempty"`
	Marketing    bool   `json:"marketing"`
	Image        string `json:"image,omitempty"` // encoded image, usually a data URL
}

// Client is a stored record, ID is assigned by the Store.
type Client struct {
	ID int64 `json:"id"`
	Fields
}

// TextFields returns pointers to every free text field, in display order.
func (f *Fields) TextFields() []*string {
	return []*string{
		&f.FirstName,
		&f.LastName,
		&f.Address,
		&f.PhoneNumber,
		&f.Email,
		&f.Pesel,
		&f.Identity,
		&f.BusinessName,
		&f.Nip,
		&f.Image,
	}
}
