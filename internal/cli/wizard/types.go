// Package wizard asks for the project choices the user did not pass on
// the command line. Answers are written straight into a
// models.ProjectConfig.
package wizard

import (
	"errors"

	"github.com/BuunGroupCore/precast-app-sub003/pkg/models"
)

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeMultiSelect picks any number of options.
	QuestionTypeMultiSelect
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question. ID is the configuration key
// the answer is stored under.
type Question struct {
	ID          string
	Type        QuestionType
	Title       string
	Description string
	// Options lists the choices; it is evaluated when the question is
	// reached so it can depend on earlier answers.
	Options   func(*models.ProjectConfig) []Option
	Required  bool
	Condition func(*models.ProjectConfig) bool
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrUnknownQuestion is returned for an ID with no configuration field.
	ErrUnknownQuestion = errors.New("unknown question")
)
