package scenario

import (
	"errors"
	"fmt"
	"os"

	"bookstore/internal/entity"
	"bookstore/internal/seed"
	"bookstore/internal/validation"

	"gopkg.in/yaml.v3"
)

const (
	OpRegister      = "register"
	OpLogin         = "login"
	OpUpdateProfile = "update_profile"
	OpAddBook       = "add_book"
	OpRemoveBook    = "remove_book"
	OpSearch        = "search"
	OpPurchase      = "purchase"
	OpReview        = "review"
	OpReviews       = "reviews"
)

var (
	ErrUnknownOp   = errors.New("unknown op")
	ErrUnknownUser = errors.New("unknown user")
	ErrMissingBook = errors.New("step needs a book")
)

// Scenario is an ordered list of bookstore operations, optionally preceded
// by a seed fixture.
type Scenario struct {
	Name  string        `yaml:"name"`
	Seed  *seed.Fixture `yaml:"seed"`
	Steps []Step        `yaml:"steps" validate:"dive"`
}

// Step is one operation. Which fields are read depends on Op. Expect and
// ExpectCount are optional assertions on the outcome.
type Step struct {
	Op          string            `yaml:"op" validate:"required,oneof=register login update_profile add_book remove_book search purchase review reviews"`
	User        string            `yaml:"user"`
	Password    string            `yaml:"password"`
	Email       string            `yaml:"email"`
	NewUsername string            `yaml:"new_username"`
	NewPassword string            `yaml:"new_password"`
	NewEmail    string            `yaml:"new_email"`
	Book        *seed.BookFixture `yaml:"book"`
	Keyword     string            `yaml:"keyword"`
	Review      string            `yaml:"review"`
	Expect      *bool             `yaml:"expect"`
	ExpectCount *int              `yaml:"expect_count"`
}

type StepResult struct {
	Index    int            `json:"index"`
	Op       string         `json:"op"`
	OK       bool           `json:"ok"`
	User     *entity.User   `json:"user,omitempty"`
	Books    []*entity.Book `json:"books,omitempty"`
	Reviews  []string       `json:"reviews,omitempty"`
	Mismatch string         `json:"mismatch,omitempty"`
}

type Report struct {
	Name     string        `json:"name"`
	RunID    string        `json:"run_id"`
	Seed     *seed.Summary `json:"seed,omitempty"`
	Steps    []StepResult  `json:"steps"`
	Failures int           `json:"failures"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := validation.Struct(sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
