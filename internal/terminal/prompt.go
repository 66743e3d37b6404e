package terminal

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/statistics"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// RequestChoice asks a human to hit or stand. Picking QuitChoice aborts the
// round.
func (t *Terminal) RequestChoice(ctx context.Context, p *blackjack.Participant, choices []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	options := append(append([]string{}, choices...), QuitChoice)
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultOption(options[0]).
		Show(fmt.Sprintf("%s, your score is %d", p.Name, p.Score()))
	if err != nil {
		return "", err
	}
	if choice == QuitChoice {
		return "", fmt.Errorf("%s left the table: %w", p.Name, blackjack.ErrAbort)
	}
	return choice, nil
}

// Confirm asks a yes or no question
func (t *Terminal) Confirm(ctx context.Context, question string, defaultValue bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return pterm.DefaultInteractiveConfirm.WithDefaultValue(defaultValue).Show(question)
}

// Number asks for a whole number of at least min, asking again until it gets one
func (t *Terminal) Number(ctx context.Context, question string, min int) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		answer, err := pterm.DefaultInteractiveTextInput.Show(question)
		if err != nil {
			return 0, err
		}

		n, err := parseNumber(answer, min)
		if err != nil {
			pterm.Warning.Println(err.Error())
			continue
		}
		return n, nil
	}
}

// Text asks for a line of text, falling back to defaultValue when left empty
func (t *Terminal) Text(ctx context.Context, question, defaultValue string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	answer, err := pterm.DefaultInteractiveTextInput.WithDefaultValue(defaultValue).Show(question)
	if err != nil {
		return "", err
	}
	if answer = strings.TrimSpace(answer); answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Banner greets the players
func (t *Terminal) Banner() {
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Srender()
	if err != nil {
		t.log.Debug("Failed to render banner: %v", err)
		title = "Blackjack\n"
	}

	pterm.Print(title)
	pterm.Info.Println("Welcome to Sud's Casino. Let's play Blackjack")
	pterm.Println()
}

// Farewell says goodbye
func (t *Terminal) Farewell() {
	pterm.Println()
	pterm.Success.Println("Hope to see you again soon! Thanks for playing 😊")
}

// ShowScoreboard renders the session standings of a table
func (t *Terminal) ShowScoreboard(board *statistics.Scoreboard) {
	if board == nil || len(board.Standings) == 0 {
		return
	}

	data := pterm.TableData{{"#", "Player", "Rounds", "Wins", "Blackjacks", "Busts", "Win rate"}}
	for _, standing := range board.Standings {
		name := standing.Name
		if standing.IsTopWinner {
			name += " 🏆"
		}
		data = append(data, []string{
			strconv.Itoa(standing.Rank),
			name,
			strconv.Itoa(standing.RoundsPlayed),
			strconv.Itoa(standing.Wins),
			strconv.Itoa(standing.Blackjacks),
			strconv.Itoa(standing.Busts),
			fmt.Sprintf("%.0f%%", standing.WinRate),
		})
	}

	pterm.DefaultSection.WithLevel(2).Println("Scoreboard")
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		t.log.Error("Failed to render scoreboard: %v", err)
	}
}

// parseNumber validates a typed number
func parseNumber(answer string, min int) (int, error) {
	answer = strings.TrimSpace(answer)
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid integer. Please enter a valid integer", answer)
	}
	if n < min {
		return 0, fmt.Errorf("%d is too small, the minimum is %d", n, min)
	}
	return n, nil
}
