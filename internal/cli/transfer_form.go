package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/trebuchet-org/treb-ccip/internal/cli/render"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// formField is an editable row of the transfer form
type formField int

const (
	fieldAmount formField = iota
	fieldReceiver
	fieldFee
	fieldCount
)

// quoteMsg carries a debounced estimate into the program
type quoteMsg usecase.QuoteResult

// refreshMsg asks the model to schedule an estimate for its current input
type refreshMsg struct{}

// transferFormModel is the bubbletea model for the interactive transfer
type transferFormModel struct {
	source   domain.Descriptor
	dest     domain.Descriptor
	token    domain.TokenMetadata
	amount   string
	receiver string
	fee      domain.FeeCurrency
	focus    formField

	schedule   func(domain.TransferRequest) uint64
	invalidate func()

	pending  uint64
	quote    *usecase.FeeQuote
	quoteErr error
	inputErr error
	done     bool
	quit     bool
}

func newTransferFormModel(source, dest domain.Descriptor, token domain.TokenMetadata, receiver common.Address,
	schedule func(domain.TransferRequest) uint64, invalidate func()) transferFormModel {
	m := transferFormModel{
		source:     source,
		dest:       dest,
		token:      token,
		fee:        domain.FeeNative,
		schedule:   schedule,
		invalidate: invalidate,
	}
	if receiver != (common.Address{}) {
		m.receiver = receiver.Hex()
	}
	return m
}

// Init is the initial command for bubbletea
func (m transferFormModel) Init() tea.Cmd {
	return func() tea.Msg { return refreshMsg{} }
}

// request builds the transfer from the current input
func (m transferFormModel) request() (domain.TransferRequest, error) {
	amount, err := domain.ParseUnits(m.amount, m.token.Decimals)
	if err != nil {
		return domain.TransferRequest{}, err
	}
	if !domain.IsStrictHexAddress(m.receiver) {
		return domain.TransferRequest{}, fmt.Errorf("%w: receiver", domain.ErrInvalidAddress)
	}
	req := domain.TransferRequest{
		Source:      m.source.Key,
		Destination: m.dest.Key,
		Token:       m.token.Address,
		Amount:      amount,
		Receiver:    common.HexToAddress(m.receiver),
		FeeCurrency: m.fee,
	}
	return req, req.Validate()
}

// refresh drops the shown quote and schedules a new one when the input is
// complete
func (m transferFormModel) refresh() transferFormModel {
	m.quote, m.quoteErr = nil, nil
	req, err := m.request()
	m.inputErr = err
	if err != nil {
		m.invalidate()
		m.pending = 0
		return m
	}
	m.pending = m.schedule(req)
	return m
}

// ready reports whether the shown quote matches the current input
func (m transferFormModel) ready() bool {
	if m.quote == nil {
		return false
	}
	req, err := m.request()
	return err == nil && req.Key() == m.quote.Request.Key()
}

// Update handles messages and updates the model
func (m transferFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		return m.refresh(), nil
	case quoteMsg:
		if msg.Seq != m.pending {
			return m, nil
		}
		m.quote, m.quoteErr = msg.Quote, msg.Err
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		case "up", "shift+tab":
			m.focus = (m.focus + fieldCount - 1) % fieldCount
		case "down", "tab":
			m.focus = (m.focus + 1) % fieldCount
		case "enter":
			if m.ready() {
				m.done = true
				return m, tea.Quit
			}
		case "backspace":
			if m.edit(func(s string) string {
				if s == "" {
					return s
				}
				return s[:len(s)-1]
			}) {
				return m.refresh(), nil
			}
		case " ", "left", "right":
			if m.focus == fieldFee {
				if m.fee == domain.FeeNative {
					m.fee = domain.FeeLink
				} else {
					m.fee = domain.FeeNative
				}
				return m.refresh(), nil
			}
		default:
			if msg.Type == tea.KeyRunes && m.edit(func(s string) string { return s + string(msg.Runes) }) {
				return m.refresh(), nil
			}
		}
	}
	return m, nil
}

// edit applies f to the focused text field
func (m *transferFormModel) edit(f func(string) string) bool {
	switch m.focus {
	case fieldAmount:
		m.amount = f(m.amount)
	case fieldReceiver:
		m.receiver = f(m.receiver)
	default:
		return false
	}
	return true
}

// View renders the UI
func (m transferFormModel) View() string {
	if m.done || m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(color.New(color.FgCyan, color.Bold).Sprintf("Transfer %s: %s → %s\n\n", m.token.Symbol, m.source.Name, m.dest.Name))

	row := func(field formField, label, value string) {
		cursor := " "
		if m.focus == field {
			cursor = color.New(color.FgCyan).Sprint("▸")
			value += color.New(color.FgCyan).Sprint("_")
		}
		b.WriteString(fmt.Sprintf("%s %-10s %s\n", cursor, label, value))
	}
	row(fieldAmount, "Amount", m.amount)
	row(fieldReceiver, "Receiver", m.receiver)

	native := fmt.Sprintf("○ %s", m.source.NativeSymbol)
	link := "○ LINK"
	if m.fee == domain.FeeNative {
		native = color.New(color.FgGreen).Sprintf("● %s", m.source.NativeSymbol)
	} else {
		link = color.New(color.FgGreen).Sprint("● LINK")
	}
	cursor := " "
	if m.focus == fieldFee {
		cursor = color.New(color.FgCyan).Sprint("▸")
	}
	b.WriteString(fmt.Sprintf("%s %-10s %s  %s\n\n", cursor, "Pay fee in", native, link))

	switch {
	case m.inputErr != nil:
		b.WriteString(color.New(color.Faint).Sprintf("Fee: %v\n", m.inputErr))
	case m.quoteErr != nil:
		b.WriteString(color.New(color.FgRed).Sprintf("Fee: %v\n", m.quoteErr))
	case m.ready():
		b.WriteString(fmt.Sprintf("Fee: %s\n", color.New(color.FgGreen).Sprint(render.FeeLabel(m.quote.Fee, m.fee, m.source))))
	default:
		b.WriteString(color.New(color.FgYellow).Sprint("Fee: estimating…\n"))
	}

	b.WriteString("\n")
	b.WriteString(color.New(color.FgYellow).Sprint("↑/↓: move  Space: toggle fee  Enter: send  Esc: quit\n"))

	return b.String()
}

// runTransferForm shows the form and returns the confirmed request. The fee
// is re-estimated after every edit, debounced by the configured window.
func runTransferForm(ctx context.Context, estimator *usecase.FeeEstimator, window time.Duration, out io.Writer,
	source, dest domain.Descriptor, token domain.TokenMetadata, receiver common.Address) (*usecase.FeeQuote, error) {
	var p *tea.Program
	quoter := usecase.NewFeeQuoter(estimator, window, func(r usecase.QuoteResult) {
		if p != nil {
			p.Send(quoteMsg(r))
		}
	})
	defer quoter.Stop()

	model := newTransferFormModel(source, dest, token, receiver,
		func(req domain.TransferRequest) uint64 { return quoter.Schedule(ctx, req) },
		quoter.Invalidate)
	p = tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("transfer form failed: %w", err)
	}
	m := final.(transferFormModel)
	if !m.done {
		return nil, fmt.Errorf("transfer cancelled")
	}
	return m.quote, nil
}
