package render

import (
	"fmt"
	"io"
	"math/big"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// feeDecimals is the precision of LINK and of every supported native token
const feeDecimals = 18

// FeeLabel formats a fee in the currency it is paid in
func FeeLabel(fee *big.Int, currency domain.FeeCurrency, source domain.Descriptor) string {
	symbol := source.NativeSymbol
	if currency == domain.FeeLink {
		symbol = "LINK"
	}
	return fmt.Sprintf("%s %s", domain.FormatUnits(fee, feeDecimals), symbol)
}

// TransferQuote is a fee quote together with what the operator needs to
// judge it.
type TransferQuote struct {
	Quote   *usecase.FeeQuote
	Token   domain.TokenMetadata
	Balance *usecase.TokenBalance
}

// TransferQuoteRenderer renders fee quotes
type TransferQuoteRenderer struct {
	out io.Writer
}

// NewTransferQuoteRenderer creates a new quote renderer
func NewTransferQuoteRenderer(out io.Writer) *TransferQuoteRenderer {
	return &TransferQuoteRenderer{out: out}
}

// Render prints the route, amount and fee
func (r *TransferQuoteRenderer) Render(q *TransferQuote) error {
	quote := q.Quote
	req := quote.Request
	symbol := q.Token.Symbol

	fmt.Fprintf(r.out, "📨 %s → %s\n", quote.Source.Name, quote.Destination.Name)
	r.line("Token", fmt.Sprintf("%s (%s)", symbol, req.Token.Hex()))
	r.line("Amount", fmt.Sprintf("%s %s", domain.FormatUnits(req.Amount, q.Token.Decimals), symbol))
	r.line("Receiver", req.Receiver.Hex())
	r.line("Fee", okStyle.Sprint(FeeLabel(quote.Fee, req.FeeCurrency, quote.Source)))
	if q.Balance != nil {
		balance := fmt.Sprintf("%s %s", domain.FormatUnits(q.Balance.Balance, q.Balance.Metadata.Decimals), symbol)
		if domain.NeedsApproval(q.Balance.Balance, req.Amount) {
			balance = failStyle.Sprintf("%s (insufficient)", balance)
		}
		r.line("Balance", balance)
	}
	return nil
}

func (r *TransferQuoteRenderer) line(label, value string) {
	fmt.Fprintf(r.out, "   %s %s\n", labelStyle.Sprintf("%-10s", label+":"), value)
}

// TransferAttemptRenderer renders a single transfer attempt
type TransferAttemptRenderer struct {
	out      io.Writer
	registry usecase.NetworkRegistry
}

// NewTransferAttemptRenderer creates a new attempt renderer
func NewTransferAttemptRenderer(out io.Writer, registry usecase.NetworkRegistry) *TransferAttemptRenderer {
	return &TransferAttemptRenderer{out: out, registry: registry}
}

// Render prints the attempt status, transactions and tracking link
func (r *TransferAttemptRenderer) Render(a *domain.TransferAttempt) error {
	source, _ := r.registry.Descriptor(a.Request.Source)

	switch a.Status {
	case domain.TransferConfirmed:
		fmt.Fprintln(r.out, FormatSuccess("Transfer sent"))
	case domain.TransferFailed:
		fmt.Fprintln(r.out, failStyle.Sprint("❌ Transfer failed"))
	default:
		fmt.Fprintf(r.out, "Transfer %s\n", pendingStyle.Sprint(Title(string(a.Status))))
	}

	r.line("ID", a.ID)
	r.line("Route", fmt.Sprintf("%s → %s", a.Request.Source, a.Request.Destination))
	if a.Fee != nil {
		r.line("Fee", FeeLabel(a.Fee, a.Request.FeeCurrency, source))
	}
	if a.NeedsApproval {
		r.line("Approval", pendingStyle.Sprintf("token allowance %s is too low", bigOrZero(a.Allowance)))
	}
	if a.NeedsFeeApproval {
		r.line("Fee token", pendingStyle.Sprintf("LINK allowance %s is too low", bigOrZero(a.FeeTokenAllowance)))
	}
	if a.ApprovalTx != nil {
		r.line("Approve tx", a.ApprovalTx.Hex())
	}
	if a.SendTx != nil {
		r.line("Send tx", a.SendTx.Hex())
		if url := source.TxURL(*a.SendTx); url != "" {
			r.line("Explorer", linkStyle.Sprint(url))
		}
	}
	if a.MessageID != nil {
		r.line("Message", a.MessageID.Hex())
	}
	if a.TrackingURL != "" {
		r.line("Track", linkStyle.Sprint(a.TrackingURL))
	}
	if a.LastError != "" {
		r.line("Error", failStyle.Sprint(a.LastError))
	}
	return nil
}

func (r *TransferAttemptRenderer) line(label, value string) {
	fmt.Fprintf(r.out, "   %s %s\n", labelStyle.Sprintf("%-11s", label+":"), value)
}

func bigOrZero(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

// TransferHistoryRenderer renders recorded attempts as a table
type TransferHistoryRenderer struct {
	out io.Writer
}

// NewTransferHistoryRenderer creates a new history renderer
func NewTransferHistoryRenderer(out io.Writer) *TransferHistoryRenderer {
	return &TransferHistoryRenderer{out: out}
}

// Render prints one row per attempt, newest first
func (r *TransferHistoryRenderer) Render(attempts []*domain.TransferAttempt) error {
	if len(attempts) == 0 {
		fmt.Fprintln(r.out, "No transfers recorded")
		return nil
	}

	t := newTable()
	t.AppendHeader(table.Row{"ID", "TIME", "ROUTE", "AMOUNT", "FEE", "STATUS", "TX"})
	for _, a := range attempts {
		tx := labelStyle.Sprint("–")
		if a.SendTx != nil {
			tx = shortHash(*a.SendTx)
		}
		fee := "–"
		if a.Fee != nil {
			fee = fmt.Sprintf("%s %s", domain.FormatUnits(a.Fee, feeDecimals), a.Request.FeeCurrency)
		}
		t.AppendRow(table.Row{
			a.ID[:min(8, len(a.ID))],
			a.CreatedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%s → %s", a.Request.Source, a.Request.Destination),
			bigOrZero(a.Request.Amount),
			fee,
			statusLabel(a.Status),
			tx,
		})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

func statusLabel(s domain.TransferStatus) string {
	label := Title(string(s))
	switch s {
	case domain.TransferConfirmed:
		return okStyle.Sprint(label)
	case domain.TransferFailed:
		return failStyle.Sprint(label)
	}
	return pendingStyle.Sprint(label)
}

var (
	_ Renderer[*TransferQuote]            = (*TransferQuoteRenderer)(nil)
	_ Renderer[*domain.TransferAttempt]   = (*TransferAttemptRenderer)(nil)
	_ Renderer[[]*domain.TransferAttempt] = (*TransferHistoryRenderer)(nil)
)
