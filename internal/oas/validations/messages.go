package validations

// Rule descriptions and failure messages.
const (
	ApacheNginxUnderscoreDescription    = "Apache and Nginx default to legacy CGI behavior in which header with underscore are ignored. Raise this for awareness to the user."
	ApacheNginxUnderscoreFailureMessage = "Header name contains an underscore"
)
