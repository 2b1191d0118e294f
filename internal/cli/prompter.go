package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/tally/internal/categories"
	"github.com/Veraticus/tally/internal/ledger"
	"github.com/Veraticus/tally/internal/model"
)

// Prompter asks for the fields of a new transaction on the terminal.
type Prompter struct {
	writer io.Writer
	reader *LineReader
	now    func() time.Time
}

// NewPrompter creates a prompter. Nil arguments fall back to stdin and stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		writer: writer,
		reader: NewLineReader(reader),
		now:    time.Now,
	}
}

// CompleteInput prompts for every field of in that is still empty.
// Descriptions are only asked for when amount or category were missing too,
// so a fully flagged command never blocks on input.
func (p *Prompter) CompleteInput(ctx context.Context, v model.View, in ledger.Input) (ledger.Input, error) {
	interactive := in.Amount == "" || in.Category == ""

	if in.Amount == "" {
		amount, err := p.ask(ctx, "Amount", "")
		if err != nil {
			return in, err
		}
		in.Amount = amount
	}

	if in.Category == "" {
		category, err := p.askCategory(ctx, v)
		if err != nil {
			return in, err
		}
		in.Category = category
	}

	if in.Date == "" {
		today := model.DateOf(p.now()).String()
		if !interactive {
			in.Date = today
		} else {
			date, err := p.ask(ctx, "Date", today)
			if err != nil {
				return in, err
			}
			in.Date = date
		}
	}

	if interactive && in.Description == "" {
		description, err := p.ask(ctx, "Description (optional)", "")
		if err != nil {
			return in, err
		}
		in.Description = description
	}

	return in, nil
}

func (p *Prompter) ask(ctx context.Context, label, def string) (string, error) {
	prompt := label
	if def != "" {
		prompt = fmt.Sprintf("%s [%s]", label, def)
	}
	if _, err := fmt.Fprint(p.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	answer, err := p.reader.ReadLine(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// askCategory lists the partition for v and accepts either a list number or
// a category id. Ids outside the partition are accepted as typed.
func (p *Prompter) askCategory(ctx context.Context, v model.View) (string, error) {
	cats := categories.ForView(v)
	for i, c := range cats {
		if _, err := fmt.Fprintf(p.writer, "  [%d] %s %s %s\n", i+1, ColorSwatch(c.Color), c.Name, SubtleStyle.Render(c.ID)); err != nil {
			return "", fmt.Errorf("failed to write category list: %w", err)
		}
	}

	answer, err := p.ask(ctx, "Category", cats[0].ID)
	if err != nil {
		return "", err
	}
	if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(cats) {
		return cats[n-1].ID, nil
	}
	return answer, nil
}
