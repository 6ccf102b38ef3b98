package render

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// FunctionsRenderer renders Functions request and consumer deployments
type FunctionsRenderer struct {
	out io.Writer
}

// NewFunctionsRenderer creates a new functions renderer
func NewFunctionsRenderer(out io.Writer) *FunctionsRenderer {
	return &FunctionsRenderer{out: out}
}

// Render prints the confirmed updateRequest transaction
func (r *FunctionsRenderer) Render(result *usecase.SendFunctionsRequestResult) error {
	d := result.Descriptor
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Request stored on consumer %s (%s)", result.Consumer.Hex(), d.Name)))
	fmt.Fprintf(r.out, "   %s %d bytes, 0x%s\n", labelStyle.Sprintf("%-10s", "Request:"), len(result.Request), hex.EncodeToString(result.Request))
	r.receipt(d, result.Receipt)
	return nil
}

// RenderConsumer prints a deployed consumer address
func (r *FunctionsRenderer) RenderConsumer(d domain.Descriptor, receipt *domain.TxReceipt) error {
	if receipt.ContractAddress != nil {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Consumer deployed at %s on %s", receipt.ContractAddress.Hex(), d.Name)))
		if url := d.AddressURL(*receipt.ContractAddress); url != "" {
			fmt.Fprintf(r.out, "   %s %s\n", labelStyle.Sprintf("%-10s", "Explorer:"), linkStyle.Sprint(url))
		}
	}
	r.receipt(d, receipt)
	return nil
}

func (r *FunctionsRenderer) receipt(d domain.Descriptor, receipt *domain.TxReceipt) {
	fmt.Fprintf(r.out, "   %s %s (block %d, %d confirmations)\n", labelStyle.Sprintf("%-10s", "Tx:"),
		receipt.Hash.Hex(), receipt.BlockNumber, receipt.Confirmations)
	if url := d.TxURL(receipt.Hash); url != "" {
		fmt.Fprintf(r.out, "   %-10s %s\n", "", linkStyle.Sprint(url))
	}
}

var _ Renderer[*usecase.SendFunctionsRequestResult] = (*FunctionsRenderer)(nil)
