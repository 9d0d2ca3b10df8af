package form

import (
	"net/url"
	"regexp"
	"strconv"

	"github.com/commonshub/signup/pkg/sanitizer"
	"github.com/commonshub/signup/pkg/validator"
)

// Field length limits. Handle limits mirror the platforms' own
// constraints so anything we store can be resolved there.
const (
	maxEmailLen    = 254
	maxNameLen     = 100
	maxGithubLen   = 38
	maxDiscordLen  = 31
	maxInterestLen = 500
	maxDetailsLen  = 2000

	minExperienceLevel = 1
	maxExperienceLevel = 100
)

var (
	nameRegex    = regexp.MustCompile(`^[\p{L} '-]+$`)
	githubRegex  = regexp.MustCompile(`^[A-Za-z0-9-]*$`)
	discordRegex = regexp.MustCompile(`^[A-Za-z0-9._]*$`)
)

// lastValue resolves a possibly repeated form key. Repeated keys are not
// treated specially: the last submitted value wins.
func lastValue(values url.Values, key string) string {
	vs := values[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[len(vs)-1]
}

// linkedinHosts are the only hosts accepted for profile URLs. Exact
// match only - subdomains and look-alikes are rejected.
var linkedinHosts = []string{"linkedin.com", "www.linkedin.com"}

// check wraps an already-known outcome as a rule so one Apply pass
// collects every failure, including ones that have no string predicate
// (e.g. integer parsing).
func check(field string, ok bool, message string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return ok },
		Error: validator.ValidationError{Field: field, Message: message},
	}
}

// ValidateSignup applies the signup schema to a decoded form payload
// (repeated keys: last value wins). All fields are sanitized, then
// validated independently; on failure the returned map holds the first
// error per failing field.
func ValidateSignup(values url.Values) (SignupRequest, FieldErrors) {
	email := sanitizer.SanitizeEmail(lastValue(values, "email"))
	name := sanitizer.SanitizeString(lastValue(values, "name"))
	levelRaw := sanitizer.Trim(lastValue(values, "experienceLevel"))
	interest := sanitizer.SanitizeString(lastValue(values, "projectInterest"))
	details := sanitizer.SanitizeString(lastValue(values, "projectDetails"))
	github := sanitizer.SanitizeString(lastValue(values, "githubUsername"))
	linkedin := sanitizer.SanitizeURL(lastValue(values, "linkedinUrl"))
	discord := sanitizer.SanitizeString(lastValue(values, "discordUsername"))

	rules := []validator.Rule{
		validator.Required("email", email).WithMessage("Email is required"),
	}

	if email != "" {
		rules = append(rules,
			validator.ValidEmail("email", email).WithMessage("Please enter a valid email address"),
			validator.MaxLen("email", email, maxEmailLen).WithMessage("Email must be at most 254 characters"),
		)
	}

	if name != "" {
		rules = append(rules,
			validator.Matches("name", name, nameRegex, "letters").
				WithMessage("Name can only contain letters, spaces, hyphens, and apostrophes"),
			validator.MaxLen("name", name, maxNameLen).WithMessage("Name must be at most 100 characters"),
		)
	}

	level, levelErr := strconv.Atoi(levelRaw)
	switch {
	case levelRaw == "":
		rules = append(rules, check("experienceLevel", false, "Experience level is required"))
	case levelErr != nil:
		rules = append(rules, check("experienceLevel", false, "Experience level must be a number"))
	default:
		rules = append(rules,
			validator.Min("experienceLevel", level, minExperienceLevel).
				WithMessage("Experience level must be at least 1"),
			validator.Max("experienceLevel", level, maxExperienceLevel).
				WithMessage("Experience level must be at most 100"),
		)
	}

	if github != "" {
		rules = append(rules,
			validator.Matches("githubUsername", github, githubRegex, "letters").
				WithMessage("GitHub username can only contain letters, numbers, and hyphens"),
			validator.MaxLen("githubUsername", github, maxGithubLen).
				WithMessage("GitHub username must be at most 38 characters"),
		)
	}

	if linkedin != "" {
		rules = append(rules,
			validator.ValidURLHost("linkedinUrl", linkedin, linkedinHosts).
				WithMessage("Must be a LinkedIn profile URL"),
		)
	}

	if discord != "" {
		rules = append(rules,
			validator.Matches("discordUsername", discord, discordRegex, "letters").
				WithMessage("Discord username can only contain letters, numbers, dots, and underscores"),
			validator.MaxLen("discordUsername", discord, maxDiscordLen).
				WithMessage("Discord username must be at most 31 characters"),
		)
	}

	rules = append(rules,
		validator.MaxLen("projectInterest", interest, maxInterestLen).
			WithMessage("Project interest must be at most 500 characters"),
		validator.MaxLen("projectDetails", details, maxDetailsLen).
			WithMessage("Project details must be at most 2000 characters"),
	)

	if err := validator.Apply(rules...); err != nil {
		return SignupRequest{}, validator.ExtractValidationErrors(err).ToFieldMap()
	}

	return SignupRequest{
		Email:           email,
		Name:            name,
		ExperienceLevel: level,
		ProjectInterest: interest,
		ProjectDetails:  details,
		GithubUsername:  github,
		LinkedinURL:     linkedin,
		DiscordUsername: discord,
	}, nil
}
