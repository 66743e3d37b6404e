package terminal

import (
	"fmt"
	"strings"

	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/pterm/pterm"
)

// Show renders one engine event
func (t *Terminal) Show(event blackjack.Event) {
	p := event.Participant

	switch event.Type {
	case blackjack.EventTableSeated:
		pterm.Info.Println("Human players are marked with (h) and bots with (b)")
		t.renderTable(event.Table)

	case blackjack.EventRoundStarted:
		t.busted = make(map[int]string)
		pterm.DefaultSection.Println(fmt.Sprintf("Round %d", event.Round))

	case blackjack.EventCardDealt:
		pterm.Printfln("%s receives %s", p.String(), event.Card)

	case blackjack.EventBlackjack:
		pterm.Success.Printfln("Congrats %s, you hit Blackjack 🎉", p.Name)

	case blackjack.EventTurnStarted:
		pterm.Println()
		pterm.Info.Printfln("%s's turn: %s", p.Name, handLine(p))

	case blackjack.EventThinking:
		t.think(p)

	case blackjack.EventDecision:
		if p.Role == blackjack.RoleHuman {
			return
		}
		pterm.Printfln("%s chose to %s.", p.Name, actionText(event.Action))

	case blackjack.EventBusted:
		if p.IsDealer() {
			return
		}
		emoji := BustedEmojis[t.rng.Intn(len(BustedEmojis))]
		t.busted[p.ID] = emoji
		pterm.Error.Printfln("%s busted with %d %s", p.Name, p.Score(), emoji)

	case blackjack.EventHoleCardRevealed:
		pterm.Printfln("Dealer flips %s: %s", event.Card, handLine(p))

	case blackjack.EventRoundResolved:
		t.renderResult(event.Result)

	case blackjack.EventCardsCollected:
		t.log.Debug("Cards collected after round %d", event.Round)

	default:
		t.log.Warn("Unhandled event %s", event.Type)
	}
}

// think shows a spinner while a bot makes up its mind
func (t *Terminal) think(p *blackjack.Participant) {
	if t.botDelay <= 0 {
		return
	}

	spinner, err := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(fmt.Sprintf("%s is playing...", p.Name))
	t.sleep(t.botDelay)
	if err != nil {
		t.log.Debug("Spinner unavailable: %v", err)
		return
	}
	_ = spinner.Stop()
}

func (t *Terminal) renderTable(table []*blackjack.Participant) {
	data := pterm.TableData{{"Seat", "Player", "Cards", "Score", "Status"}}
	for i, p := range table {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			p.String(),
			cardsLine(p.Hand.Cards),
			fmt.Sprintf("%d", p.Score()),
			t.statusText(p),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		t.log.Error("Failed to render table: %v", err)
	}
}

func (t *Terminal) renderResult(result *entities.RoundResult) {
	if result == nil {
		return
	}

	data := pterm.TableData{{"Player", "Cards", "Score", "Result"}}
	for _, pr := range result.Participants {
		data = append(data, []string{
			pr.Name,
			strings.Join(pr.Cards, " "),
			fmt.Sprintf("%d", pr.Score),
			resultText(pr),
		})
	}

	pterm.Println()
	if result.Aborted {
		pterm.Warning.Println("The round was ended early")
	}
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
		t.log.Error("Failed to render results: %v", err)
	}

	box := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pterm.Println(box.WithTitle(pterm.LightGreen("|WINNERS|")).WithTitleTopCenter().Sprint(winnersText(result)))
}

// statusText is the short status shown next to a seat. The dealer's status
// is never shown.
func (t *Terminal) statusText(p *blackjack.Participant) string {
	if p.IsDealer() {
		return ""
	}

	switch p.Hand.Status {
	case blackjack.StatusBlackjack:
		return "Blackjack 🎉"
	case blackjack.StatusBusted:
		if emoji, ok := t.busted[p.ID]; ok {
			return "Busted " + emoji
		}
		return "Busted"
	}
	return ""
}

func actionText(action blackjack.Action) string {
	switch action {
	case blackjack.ActionHit:
		return "Hit"
	case blackjack.ActionStand:
		return "Stay"
	}
	return "quit"
}

func cardsLine(cards []*entities.Card) string {
	faces := make([]string, 0, len(cards))
	for _, card := range cards {
		faces = append(faces, card.String())
	}
	return strings.Join(faces, " ")
}

func handLine(p *blackjack.Participant) string {
	return fmt.Sprintf("%s (%d)", cardsLine(p.Hand.Cards), p.Score())
}

func resultText(pr *entities.ParticipantResult) string {
	if pr.Role == string(blackjack.RoleDealer) && pr.Result == entities.ResultBust {
		return entities.ResultLose.String()
	}
	return pr.Result.String()
}

func winnersText(result *entities.RoundResult) string {
	winners := result.Winners()
	if len(winners) == 0 {
		return "Unlucky day!! Nobody won this round"
	}

	lines := make([]string, 0, len(winners))
	for _, w := range winners {
		lines = append(lines, fmt.Sprintf("%s, score: %d 🏆", w.Name, w.Score))
	}
	return strings.Join(lines, "\n")
}
