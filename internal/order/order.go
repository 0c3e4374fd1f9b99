package order

import (
	"github.com/Medardo-Design/sitestoliworteck/internal/form"
)

// Order is the lead-capture record produced by the order form. Rows are
// write-once: the site only ever inserts, never updates or deletes.
type Order struct {
	ID                int     `json:"id,omitempty"`
	FirstName         string  `json:"first_name"`
	LastName          string  `json:"last_name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	CompanyName       *string `json:"company_name,omitempty"`
	WebsiteType       string  `json:"website_type"`
	ModelID           *int    `json:"model_id,omitempty"`
	ModelReference    *string `json:"model_reference,omitempty"`
	ProjectGoal       string  `json:"project_goal"`
	AdditionalDetails *string `json:"additional_details,omitempty"`
	CreatedAt         string  `json:"created_at,omitempty"`
}

// WebsiteTypes lists the site types offered on the order form. Selecting a
// model pre-fills the type from the model's category instead.
var WebsiteTypes = []string{
	"Site Vitrine",
	"Site E-commerce",
	"Site Institutionnel",
	"Blog / Magazine",
	"Application Web",
}

// Schema returns the validation rules for the order form.
func Schema() form.Schema {
	return form.Schema{
		"first_name":   {form.Required("Le prénom est requis")},
		"last_name":    {form.Required("Le nom est requis")},
		"email":        {form.Required("L'email est requis"), form.Email("L'email n'est pas valide")},
		"phone":        {form.Required("Le téléphone est requis")},
		"website_type": {form.Required("Le type de site est requis")},
		"project_goal": {form.Required("L'objectif du projet est requis")},
	}
}

// Validate maps an order onto the form schema and returns the field
// errors, empty iff the order may be written.
func Validate(o Order) map[string]string {
	f := form.NewController(Schema())
	f.SetField("first_name", o.FirstName)
	f.SetField("last_name", o.LastName)
	f.SetField("email", o.Email)
	f.SetField("phone", o.Phone)
	f.SetField("website_type", o.WebsiteType)
	f.SetField("project_goal", o.ProjectGoal)
	return f.Validate()
}
