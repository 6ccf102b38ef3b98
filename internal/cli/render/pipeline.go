package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// PipelineStatusRenderer renders the per-network progress of a deployment
type PipelineStatusRenderer struct {
	out io.Writer
}

// NewPipelineStatusRenderer creates a new pipeline status renderer
func NewPipelineStatusRenderer(out io.Writer) *PipelineStatusRenderer {
	return &PipelineStatusRenderer{out: out}
}

// Render prints the recorded addresses, stage flags and stage availability
func (r *PipelineStatusRenderer) Render(result *usecase.PipelineStatusResult) error {
	state := result.State
	active := result.ActiveStage

	fmt.Fprintf(r.out, "%s %s\n", sectionHeaderStyle.Sprint("Deployment:"), state.Name)
	fmt.Fprintf(r.out, "%s [%d/%d] %s\n", sectionHeaderStyle.Sprint("Active stage:"), int(active), len(domain.Stages), active.Title())
	if result.Run.Busy {
		fmt.Fprintf(r.out, "%s %s on %s (since %s)\n", pendingStyle.Sprint("Busy:"),
			result.Run.Action, result.Run.Network, result.Run.StartedAt.Format(time.Kitchen))
	}
	fmt.Fprintln(r.out)

	t := newTable()
	header := table.Row{"NETWORK", "TOKEN", "POOL", "ROLES", "ADMIN", "LINKED", "CONFIGURED", "MINTED"}
	if result.Verification != nil {
		header = append(header, "ON CHAIN")
	}
	t.AppendHeader(header)
	for _, d := range result.Networks {
		n := state.Network(d.Key)
		row := table.Row{
			d.Name,
			addressOrDash(n.Token),
			addressOrDash(n.Pool),
			check(n.RolesGranted),
			check(n.AdminClaimed),
			check(n.Linked),
			check(n.Configured),
			check(n.Minted),
		}
		if result.Verification != nil {
			row = append(row, verification(result.Verification[d.Key]))
		}
		t.AppendRow(row)
	}
	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("Stages:"))
	stages := newTable()
	stages.AppendHeader(append(table.Row{"#", "STAGE"}, lo.Map(result.Networks, func(d domain.Descriptor, _ int) interface{} {
		return d.Name
	})...))
	for _, stage := range domain.Stages {
		marker := "  "
		if stage == active {
			marker = "▸ "
		}
		row := table.Row{fmt.Sprintf("%s%d", marker, int(stage)), stage.Title()}
		for _, d := range result.Networks {
			row = append(row, availability(state.Network(d.Key), result.Availability[stage][d.Key]))
		}
		stages.AppendRow(row)
	}
	fmt.Fprintln(r.out, stages.Render())
	return nil
}

func availability(n *domain.NetworkDeployment, a domain.Availability) string {
	switch {
	case a.Enabled && n.Completed(a.Stage):
		return okStyle.Sprint("✓ done, repeatable")
	case a.Enabled:
		return pendingStyle.Sprint("● ready")
	case n.Completed(a.Stage):
		return okStyle.Sprint("✓ done")
	default:
		return labelStyle.Sprint(a.Reason)
	}
}

func verification(v usecase.NetworkVerification) string {
	if v.Error != nil {
		return failStyle.Sprintf("error: %v", v.Error)
	}
	describe := func(name string, ok *bool) string {
		switch {
		case ok == nil:
			return ""
		case *ok:
			return okStyle.Sprintf("%s ✓", name)
		default:
			return failStyle.Sprintf("%s ✗ no code", name)
		}
	}
	parts := lo.Compact([]string{describe("token", v.TokenHasCode), describe("pool", v.PoolHasCode)})
	if len(parts) == 0 {
		return labelStyle.Sprint("–")
	}
	return strings.Join(parts, "  ")
}

// StageResultRenderer renders the outcome of pipeline run/advance
type StageResultRenderer struct {
	out io.Writer
}

// NewStageResultRenderer creates a new stage result renderer
func NewStageResultRenderer(out io.Writer) *StageResultRenderer {
	return &StageResultRenderer{out: out}
}

// Render prints the confirmed transactions and what the pipeline does next
func (r *StageResultRenderer) Render(result *usecase.RunPipelineStageResult) error {
	d := result.Descriptor
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s completed on %s", result.Stage.Title(), d.Name)))

	if res := result.Result; res != nil {
		if res.Token != nil {
			r.address("Token", d, *res.Token)
		}
		if res.Pool != nil {
			r.address("Pool", d, *res.Pool)
		}
		for _, tx := range res.Transactions {
			fmt.Fprintf(r.out, "   %s %s (block %d)\n", labelStyle.Sprintf("%-22s", tx.Action), tx.Hash.Hex(), tx.BlockNumber)
			if url := d.TxURL(tx.Hash); url != "" {
				fmt.Fprintf(r.out, "   %-22s %s\n", "", linkStyle.Sprint(url))
			}
		}
	}

	if result.Advanced {
		next := result.ActiveStage
		fmt.Fprintf(r.out, "\nPipeline advanced to [%d/%d] %s\n", int(next), len(domain.Stages), next.Title())
	}
	return nil
}

func (r *StageResultRenderer) address(label string, d domain.Descriptor, addr common.Address) {
	fmt.Fprintf(r.out, "   %s %s\n", labelStyle.Sprintf("%-22s", label+":"), addressStyle.Sprint(addr.Hex()))
	if url := d.AddressURL(addr); url != "" {
		fmt.Fprintf(r.out, "   %-22s %s\n", "", linkStyle.Sprint(url))
	}
}

// RenderImported prints a state after addresses were recorded manually
func (r *StageResultRenderer) RenderImported(network domain.NetworkKey, state *domain.DeploymentState) error {
	n := state.Network(network)
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Recorded addresses on %s in deployment %q", network, state.Name)))
	fmt.Fprintf(r.out, "   %s %s\n", labelStyle.Sprintf("%-22s", "Token:"), addressOrDash(n.Token))
	fmt.Fprintf(r.out, "   %s %s\n", labelStyle.Sprintf("%-22s", "Pool:"), addressOrDash(n.Pool))
	active := state.ActiveStage()
	fmt.Fprintf(r.out, "\nActive stage: [%d/%d] %s\n", int(active), len(domain.Stages), active.Title())
	return nil
}

var (
	_ Renderer[*usecase.PipelineStatusResult]   = (*PipelineStatusRenderer)(nil)
	_ Renderer[*usecase.RunPipelineStageResult] = (*StageResultRenderer)(nil)
)
