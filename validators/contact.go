package validators

import "regexp"

var (
	contactNameRe    = regexp.MustCompile(`^[A-Za-z ]+$`)
	emailRe          = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	contactSubjectRe = regexp.MustCompile(`^[A-Za-z0-9 ,.!?-]+$`)
	contactMessageRe = regexp.MustCompile(`^[A-Za-z0-9 \n,.!?-]+$`)
)

// ContactInput is the contact form payload.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Contact validates the contact form, accumulating every failure.
func Contact(in ContactInput) Errors {
	errs := Errors{}

	switch {
	case in.Name == "":
		errs["name"] = "name is required"
	case !contactNameRe.MatchString(in.Name):
		errs["name"] = "only letters and spaces allowed"
	case len(in.Name) < 2 || len(in.Name) > 100:
		errs["name"] = "name must be 2-100 characters"
	}

	switch {
	case in.Email == "":
		errs["email"] = "email is required"
	case !emailRe.MatchString(in.Email):
		errs["email"] = "please enter a valid email address"
	}

	switch {
	case in.Phone == "":
		errs["phone"] = "phone number is required"
	case Mobile(in.Phone) != nil:
		errs["phone"] = "phone must be exactly 10 digits"
	}

	switch {
	case in.Subject == "":
		errs["subject"] = "subject is required"
	case !contactSubjectRe.MatchString(in.Subject):
		errs["subject"] = "subject cannot contain special characters except ,.!?-"
	case len(in.Subject) < 5 || len(in.Subject) > 100:
		errs["subject"] = "subject must be 5-100 characters"
	}

	switch {
	case in.Message == "":
		errs["message"] = "message is required"
	case !contactMessageRe.MatchString(in.Message):
		errs["message"] = "message cannot contain special characters except ,.!?-"
	case len(in.Message) < 10 || len(in.Message) > 1000:
		errs["message"] = "message must be 10-1000 characters"
	}

	return errs
}
