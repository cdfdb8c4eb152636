package existence

import (
	"net/http"

	"qualifygym/internal/config"
)

// Resource path segments of the standard exists endpoint.
const (
	ResourceUsers        = "users"
	ResourcePublications = "publications"
	ResourceTopics       = "topics"
	ResourceStates       = "states"
)

// Checkers groups one checker per referenced entity type.
type Checkers struct {
	Users        Checker
	Publications Checker
	Topics       Checker
	States       Checker
}

// NewCheckers builds HTTP checkers sharing one client bounded by the
// configured timeout.
func NewCheckers(cfg *config.Config) *Checkers {
	client := &http.Client{Timeout: cfg.Existence.Timeout}

	return &Checkers{
		Users: NewHTTPChecker(client, cfg.Services.UsersURL, ResourceUsers,
			PolicyFor(cfg.Existence.UsersFailOpen)),
		Publications: NewHTTPChecker(client, cfg.Services.PublicationsURL, ResourcePublications,
			PolicyFor(cfg.Existence.PublicationsFailOpen)),
		Topics: NewHTTPChecker(client, cfg.Services.TopicsURL, ResourceTopics,
			PolicyFor(cfg.Existence.TopicsFailOpen)),
		States: NewHTTPChecker(client, cfg.Services.StatesURL, ResourceStates,
			PolicyFor(cfg.Existence.StatesFailOpen)),
	}
}
