package form

// SignupRequest is the cleaned result of a valid signup submission.
// Optional fields are always present, empty string when omitted.
type SignupRequest struct {
	Email           string
	Name            string
	ExperienceLevel int
	ProjectInterest string
	ProjectDetails  string
	GithubUsername  string
	LinkedinURL     string
	DiscordUsername string
}

// LoginRequest is the cleaned result of a valid login submission.
type LoginRequest struct {
	Email    string
	Password string

	// Remember is true when the checkbox was checked and nil otherwise.
	// It is never false: an absent checkbox means "no preference given".
	Remember *bool
}

// FieldErrors maps input field names to the first validation message per
// field. This is the only validation state surfaced to end users.
type FieldErrors map[string]string
