// ABOUTME: Referral pipeline graph generation
// ABOUTME: Companies as boxes, referrals as status-colored nodes, DOT output
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/serviceradar/radar/models"
)

// statusColor maps referral status to node fill color.
func statusColor(status string) string {
	switch status {
	case models.ReferralAccepted:
		return "palegreen"
	case models.ReferralRejected:
		return "lightcoral"
	default:
		return "lightyellow"
	}
}

// GenerateReferralGraph renders referrals grouped by target company as DOT.
func GenerateReferralGraph(referrals []models.Referral) (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetRankDir(cgraph.LRRank)

	companies := make(map[int]*cgraph.Node)
	for _, r := range referrals {
		company, ok := companies[r.TargetCompany.ID]
		if !ok {
			name := r.TargetCompany.Name
			if name == "" {
				name = fmt.Sprintf("company %d", r.TargetCompany.ID)
			}
			company, err = graph.CreateNodeByName(name)
			if err != nil {
				return "", fmt.Errorf("failed to create company node: %w", err)
			}
			company.SetShape(cgraph.BoxShape)
			companies[r.TargetCompany.ID] = company
		}

		label := fmt.Sprintf("#%d %s\n%s", r.ID, r.CustomerName, r.Status)
		node, err := graph.CreateNodeByName(fmt.Sprintf("referral-%d", r.ID))
		if err != nil {
			return "", fmt.Errorf("failed to create referral node: %w", err)
		}
		node.SetLabel(label)
		node.SetStyle(cgraph.FilledNodeStyle)
		node.SetFillColor(statusColor(r.Status))

		edge, err := graph.CreateEdgeByName("", node, company)
		if err != nil {
			return "", fmt.Errorf("failed to create edge: %w", err)
		}
		if r.RequestedListing.Title != "" {
			edge.SetLabel(r.RequestedListing.Title)
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}
	return buf.String(), nil
}
