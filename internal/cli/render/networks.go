package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// Render prints the registry as a table, with RPC health when checked
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	checked := lo.SomeBy(result.Networks, func(n usecase.NetworkStatus) bool { return n.Checked })

	fmt.Fprintln(r.out, "🌐 Supported Networks:")
	fmt.Fprintln(r.out)

	t := newTable()
	header := table.Row{"KEY", "NAME", "CHAIN ID", "SELECTOR", "ROUTER", "RPC"}
	if checked {
		header = append(header, "STATUS")
	}
	t.AppendHeader(header)

	for _, n := range result.Networks {
		d := n.Descriptor
		row := table.Row{d.Key, d.Name, d.ChainID, d.ChainSelector, addressStyle.Sprint(d.Router.Hex()), labelStyle.Sprint(d.RPCURL)}
		if checked {
			row = append(row, r.status(n))
		}
		t.AppendRow(row)
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}

func (r *NetworksRenderer) status(n usecase.NetworkStatus) string {
	switch {
	case n.Healthy():
		return okStyle.Sprint("✅ reachable")
	case n.Error != nil:
		return failStyle.Sprintf("❌ %v", n.Error)
	default:
		return pendingStyle.Sprint("unchecked")
	}
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
