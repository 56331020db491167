package model

// Dataset is a point-in-time copy of every collection.
type Dataset struct {
	Contacts []Contact `json:"contacts"`
	Meetings []Meeting `json:"meetings"`
	Tasks    []Task    `json:"tasks"`
}

// Contact looks up a contact by id.
func (d Dataset) Contact(id int64) (Contact, bool) {
	for _, c := range d.Contacts {
		if c.ID == id {
			return c, true
		}
	}
	return Contact{}, false
}

// Meeting looks up a meeting by id.
func (d Dataset) Meeting(id int64) (Meeting, bool) {
	for _, m := range d.Meetings {
		if m.ID == id {
			return m, true
		}
	}
	return Meeting{}, false
}

// WithoutPasswords returns a copy whose contacts carry no shared secret.
func (d Dataset) WithoutPasswords() Dataset {
	contacts := make([]Contact, len(d.Contacts))
	for i, c := range d.Contacts {
		c.Password = ""
		contacts[i] = c
	}
	d.Contacts = contacts
	return d
}
