package ledger

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

// MaxDescriptionLength is the longest description accepted, in characters.
const MaxDescriptionLength = 200

// Input holds raw form values for a new transaction.
type Input struct {
	Amount      string
	Category    string
	Date        string
	Description string
}

// parsedInput is Input after validation.
type parsedInput struct {
	amount      decimal.Decimal
	date        model.Date
	category    string
	description string
}

// Amount limits. Exponent notation is never accepted.
const (
	MaxAmountIntegerDigits  = 12
	MaxAmountFractionDigits = 4
)

var amountPattern = regexp.MustCompile(`^(\d+)(?:[.,](\d+))?$`)

// ParseAmount parses a positive decimal amount written as plain digits.
// Either a dot or a comma may separate the fraction.
func ParseAmount(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return decimal.Decimal{}, common.NewValidationError("amount", "is required")
	}

	m := amountPattern.FindStringSubmatch(raw)
	if m == nil {
		if strings.HasPrefix(raw, "-") {
			return decimal.Decimal{}, common.NewValidationError("amount", "must be greater than zero")
		}
		return decimal.Decimal{}, common.NewValidationError("amount", "must be a number like 12.50")
	}
	if len(strings.TrimLeft(m[1], "0")) > MaxAmountIntegerDigits {
		return decimal.Decimal{}, common.NewValidationError("amount", fmt.Sprintf("must have at most %d digits before the decimal separator", MaxAmountIntegerDigits))
	}
	if len(m[2]) > MaxAmountFractionDigits {
		return decimal.Decimal{}, common.NewValidationError("amount", fmt.Sprintf("must have at most %d decimal places", MaxAmountFractionDigits))
	}

	normalized := m[1]
	if m[2] != "" {
		normalized += "." + m[2]
	}
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, common.NewValidationError("amount", "must be a number like 12.50")
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, common.NewValidationError("amount", "must be greater than zero")
	}
	return amount, nil
}

func (in Input) parse() (parsedInput, error) {
	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return parsedInput{}, err
	}

	if strings.TrimSpace(in.Date) == "" {
		return parsedInput{}, common.NewValidationError("date", "is required")
	}
	date, err := model.ParseDate(in.Date)
	if err != nil {
		return parsedInput{}, common.NewValidationError("date", "must be a calendar date formatted YYYY-MM-DD")
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		return parsedInput{}, common.NewValidationError("category", "is required")
	}

	description := strings.TrimSpace(in.Description)
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return parsedInput{}, common.NewValidationError("description", fmt.Sprintf("must be at most %d characters", MaxDescriptionLength))
	}

	return parsedInput{
		amount:      amount,
		date:        date,
		category:    category,
		description: description,
	}, nil
}
