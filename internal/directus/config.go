package directus

import "time"

// Config holds the connection settings for the Directus instance that
// stores community members. The static token must belong to a role with
// create/read access to the members collection.
type Config struct {
	BaseURL    string        `env:"DIRECTUS_URL,required"`
	Token      string        `env:"DIRECTUS_TOKEN,required"`
	Collection string        `env:"DIRECTUS_COLLECTION" envDefault:"members"`
	Timeout    time.Duration `env:"DIRECTUS_TIMEOUT" envDefault:"10s"`
}
