package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kinobilet-cli/model"
)

const (
	fieldCardNumber = iota
	fieldExpiry
	fieldCVV
	fieldHolder
	fieldCount
)

// paymentForm collects card details for the active purchase. The values
// live only in the inputs and are wiped after a successful payment.
type paymentForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

func newPaymentForm() paymentForm {
	var form paymentForm

	number := textinput.New()
	number.Placeholder = "4111 1111 1111 1111"
	number.Prompt = "Card number    "
	number.CharLimit = 23
	form.inputs[fieldCardNumber] = number

	expiry := textinput.New()
	expiry.Placeholder = "MM/YY"
	expiry.Prompt = "Expiry         "
	expiry.CharLimit = 5
	form.inputs[fieldExpiry] = expiry

	cvv := textinput.New()
	cvv.Placeholder = "123"
	cvv.Prompt = "CVV            "
	cvv.CharLimit = 4
	cvv.EchoMode = textinput.EchoPassword
	cvv.EchoCharacter = '•'
	form.inputs[fieldCVV] = cvv

	holder := textinput.New()
	holder.Placeholder = "IVAN IVANOV"
	holder.Prompt = "Name on card   "
	holder.CharLimit = 64
	form.inputs[fieldHolder] = holder

	form.inputs[fieldCardNumber].Focus()
	return form
}

func (f paymentForm) Update(msg tea.Msg) (paymentForm, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, fieldCount)
	for i := range f.inputs {
		var cmd tea.Cmd
		f.inputs[i], cmd = f.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return f, tea.Batch(cmds...)
}

func (f paymentForm) Next() paymentForm {
	return f.focusField((f.focus + 1) % fieldCount)
}

func (f paymentForm) Prev() paymentForm {
	return f.focusField((f.focus + fieldCount - 1) % fieldCount)
}

func (f paymentForm) focusField(focus int) paymentForm {
	f.focus = focus
	for i := range f.inputs {
		if i == focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
	return f
}

// Card returns the details as entered, with spacing noise stripped from
// the number.
func (f paymentForm) Card() model.CardDetails {
	return model.CardDetails{
		CardNumber:     strings.ReplaceAll(strings.TrimSpace(f.inputs[fieldCardNumber].Value()), " ", ""),
		ExpiryDate:     strings.TrimSpace(f.inputs[fieldExpiry].Value()),
		CVV:            strings.TrimSpace(f.inputs[fieldCVV].Value()),
		CardHolderName: strings.TrimSpace(f.inputs[fieldHolder].Value()),
	}
}

// Validate runs the local checks the server would reject anyway, so the
// user gets feedback without a round trip.
func (f paymentForm) Validate() error {
	card := f.Card()
	if len(card.CardNumber) < 12 {
		return errors.New("card number looks too short")
	}
	for _, r := range card.CardNumber {
		if r < '0' || r > '9' {
			return errors.New("card number must contain only digits")
		}
	}
	if len(card.ExpiryDate) != 5 || card.ExpiryDate[2] != '/' {
		return errors.New("expiry must be MM/YY")
	}
	if len(card.CVV) < 3 {
		return errors.New("cvv looks too short")
	}
	if card.CardHolderName == "" {
		return errors.New("cardholder name is required")
	}
	return nil
}

func (f paymentForm) Reset() paymentForm {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	return f.focusField(fieldCardNumber)
}

func (f paymentForm) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("Payment")
	lines := make([]string, 0, fieldCount+2)
	lines = append(lines, title, "")
	for i := range f.inputs {
		lines = append(lines, f.inputs[i].View())
	}
	return strings.Join(lines, "\n")
}
