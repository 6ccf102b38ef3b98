package render

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
	labelStyle         = color.New(color.Faint)
	addressStyle       = color.New(color.FgWhite)
	linkStyle          = color.New(color.FgCyan)
	okStyle            = color.New(color.FgGreen)
	pendingStyle       = color.New(color.FgYellow)
	failStyle          = color.New(color.FgRed)
	hintStyle          = color.New(color.FgYellow)
)

var titleCaser = cases.Title(language.English)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error with the error icon and, for known error
// classes, a hint on how to recover.
func FormatError(err error) string {
	msg := err.Error()
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	out := color.New(color.FgRed).Sprintf("❌ %s", msg)
	if hint := errorHint(err); hint != "" {
		out += "\n" + hintStyle.Sprintf("   %s", hint)
	}
	return out
}

func errorHint(err error) string {
	switch {
	case errors.Is(err, domain.ErrWalletNotConnected):
		return "Set TREB_CCIP_PRIVATE_KEY, pass --private-key, or configure --signer-endpoint"
	case errors.Is(err, domain.ErrWrongNetwork):
		return "Check the RPC URL configured for the network in networks.toml"
	case errors.Is(err, domain.ErrPipelineBusy):
		return "Wait for the running action to finish"
	case errors.Is(err, domain.ErrStageDisabled):
		return "Run `treb-ccip pipeline status` to see which stages are enabled"
	case errors.Is(err, domain.ErrApprovalRequired):
		return "Run `treb-ccip transfer approve` first or pass --approve"
	case errors.Is(err, domain.ErrTransactionReverted):
		return "The transaction was mined but reverted; the saved state was not changed"
	case errors.Is(err, domain.ErrUnsupportedNetwork):
		return "Supported networks: " + strings.Join(networkNames(), ", ")
	case errors.Is(err, domain.ErrConfig):
		return "Check .treb-ccip/config.local.json, networks.toml and TREB_CCIP_* variables"
	}
	return ""
}

func networkNames() []string {
	names := make([]string, len(domain.NetworkKeys))
	for i, k := range domain.NetworkKeys {
		names[i] = k.String()
	}
	return names
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// Title title-cases a status or stage word
func Title(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "-", " "))
}

func check(done bool) string {
	if done {
		return okStyle.Sprint("✓")
	}
	return labelStyle.Sprint("–")
}

func addressOrDash(addr *common.Address) string {
	if addr == nil {
		return labelStyle.Sprint("–")
	}
	return addressStyle.Sprint(addr.Hex())
}

func shortHash(h common.Hash) string {
	hex := h.Hex()
	return hex[:10] + "…" + hex[len(hex)-6:]
}

// newTable creates a borderless table in the style of the list views
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Options.SeparateHeader = true
	t.Style().Box.PaddingRight = "  "
	t.Style().Format.Header = 0
	return t
}
