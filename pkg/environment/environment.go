package environment

import "strings"

// Environment names the deployment the process runs in.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse normalizes an environment name. The short aliases "dev", "stage" and
// "prod" map to their full names and an empty value means Development.
// Unknown names are kept, lowercased.
func Parse(s string) Environment {
	switch env := strings.ToLower(strings.TrimSpace(s)); env {
	case "", "dev", string(Development):
		return Development
	case "stage", string(Staging):
		return Staging
	case "prod", string(Production):
		return Production
	default:
		return Environment(env)
	}
}

// UnmarshalText lets config loaders decode APP_ENV straight into an Environment.
func (e *Environment) UnmarshalText(text []byte) error {
	*e = Parse(string(text))
	return nil
}

func (e Environment) String() string { return string(e) }

// IsDevelopment reports whether e is Development or one of its aliases.
// Error pages show internal details only then.
func (e Environment) IsDevelopment() bool { return e != "" && Parse(string(e)) == Development }

func (e Environment) IsStaging() bool { return Parse(string(e)) == Staging }

func (e Environment) IsProduction() bool { return Parse(string(e)) == Production }
