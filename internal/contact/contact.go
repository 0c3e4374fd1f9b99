package contact

import (
	"github.com/Medardo-Design/sitestoliworteck/internal/form"
)

// Message is a contact form submission. The site does not persist these;
// the send is acknowledged after a short simulated delay.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Schema returns the validation rules for the contact form.
func Schema() form.Schema {
	return form.Schema{
		"name":    {form.Required("Le nom est requis")},
		"email":   {form.Required("L'email est requis"), form.Email("L'email n'est pas valide")},
		"subject": {form.Required("Le sujet est requis")},
		"message": {form.Required("Le message est requis")},
	}
}

// Validate maps a message onto the form schema and returns field errors.
func Validate(m Message) map[string]string {
	f := form.NewController(Schema())
	f.SetField("name", m.Name)
	f.SetField("email", m.Email)
	f.SetField("subject", m.Subject)
	f.SetField("message", m.Message)
	return f.Validate()
}
